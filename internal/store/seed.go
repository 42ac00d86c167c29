package store

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"hotel-pms-backend/internal/model"
)

var defaultRooms = []model.Room{
	{Number: "101", Type: model.RoomTypeSingle, Status: model.RoomAvailable, Rate: 80, Features: []string{"Wi-Fi", "AC", "TV"}},
	{Number: "102", Type: model.RoomTypeSingle, Status: model.RoomAvailable, Rate: 80, Features: []string{"Wi-Fi", "AC", "TV"}},
	{Number: "201", Type: model.RoomTypeDouble, Status: model.RoomAvailable, Rate: 120, Features: []string{"Wi-Fi", "AC", "TV", "Mini Bar"}},
	{Number: "202", Type: model.RoomTypeDouble, Status: model.RoomAvailable, Rate: 120, Features: []string{"Wi-Fi", "AC", "TV", "Mini Bar"}},
	{Number: "301", Type: model.RoomTypeSuite, Status: model.RoomAvailable, Rate: 200, Features: []string{"Wi-Fi", "AC", "TV", "Mini Bar", "Balcony"}},
	{Number: "401", Type: model.RoomTypeDormitory, Status: model.RoomAvailable, Rate: 40, Features: []string{"Wi-Fi", "AC", "Shared Bath"}},
}

var defaultRatePlans = []model.RatePlan{
	{ID: model.RateTypeRack, Name: "Rack Rate", RoomType: model.RoomTypeSingle, Rate: 80},
	{ID: model.RateTypeCorporate, Name: "Corporate Rate", RoomType: model.RoomTypeSingle, Rate: 70},
	{ID: model.RateTypeStudent, Name: "Student Package", RoomType: model.RoomTypeSingle, Rate: 60},
	{ID: model.RateTypeSeasonal, Name: "Seasonal Rate", RoomType: model.RoomTypeSingle, Rate: 90},
}

// SeedDefaults inserts the starter room inventory and rate plans when the
// corresponding tables are empty, so a fresh install is usable immediately.
func (s *gormStore) SeedDefaults(ctx context.Context) error {
	var roomCount int64
	if err := s.db.WithContext(ctx).Model(&model.Room{}).Count(&roomCount).Error; err != nil {
		return fmt.Errorf("failed to count rooms: %w", err)
	}
	if roomCount == 0 {
		rooms := make([]model.Room, len(defaultRooms))
		copy(rooms, defaultRooms)
		for i := range rooms {
			rooms[i].ID = uuid.NewString()
		}
		if err := s.db.WithContext(ctx).Create(&rooms).Error; err != nil {
			return fmt.Errorf("failed to seed rooms: %w", err)
		}
		log.Printf("seeded %d default rooms", len(rooms))
	}

	var planCount int64
	if err := s.db.WithContext(ctx).Model(&model.RatePlan{}).Count(&planCount).Error; err != nil {
		return fmt.Errorf("failed to count rate plans: %w", err)
	}
	if planCount == 0 {
		plans := make([]model.RatePlan, len(defaultRatePlans))
		copy(plans, defaultRatePlans)
		if err := s.db.WithContext(ctx).Create(&plans).Error; err != nil {
			return fmt.Errorf("failed to seed rate plans: %w", err)
		}
		log.Printf("seeded %d default rate plans", len(plans))
	}
	return nil
}
