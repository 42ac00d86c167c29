package model

// Guest represents a guest profile created standalone or inline during
// reservation creation.
type Guest struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	FirstName   string `gorm:"size:128;not null" json:"firstName"`
	LastName    string `gorm:"size:128;not null" json:"lastName"`
	Email       string `gorm:"size:256" json:"email"`
	Phone       string `gorm:"size:64" json:"phone"`
	Address     string `gorm:"size:512" json:"address"`
	Nationality string `gorm:"size:64" json:"nationality"`
	Preferences string `gorm:"size:512" json:"preferences,omitempty"`

	// Associations
	BookingHistory []BookingHistoryEntry `gorm:"foreignKey:GuestID" json:"bookingHistory,omitempty"`
}

// BookingHistoryEntry is one element of a guest's append-only booking
// history. Entries are appended when a reservation is created for the guest
// and are never used to cascade-delete.
type BookingHistoryEntry struct {
	ID            int64  `gorm:"autoIncrement;primaryKey" json:"-"`
	GuestID       string `gorm:"index;size:36;not null" json:"-"`
	Seq           int    `gorm:"not null" json:"seq"`
	ReservationID string `gorm:"size:36;not null" json:"reservationId"`
}
