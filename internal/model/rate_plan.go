package model

// RatePlan describes a named pricing tier shown to staff when creating a
// reservation.
type RatePlan struct {
	ID          RateTypeID `gorm:"primaryKey;size:16" json:"id"`
	Name        string     `gorm:"size:64;not null" json:"name"`
	RoomType    RoomType   `gorm:"size:16;not null" json:"roomType"`
	Rate        float64    `gorm:"not null" json:"rate"`
	Description string     `gorm:"size:256" json:"description,omitempty"`
}
