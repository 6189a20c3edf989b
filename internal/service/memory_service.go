package service

import (
	"context"
	"time"

	"furreal/internal/calendar"
	"furreal/internal/models"
	"furreal/internal/repository"
)

// MemoryService builds the trailing memory calendar.
type MemoryService struct {
	realRepo repository.RealRepository
}

// Memory is one calendar-day slot in the memory view. Real is nil for days
// the user did not post; Date always carries the slot's calendar day.
type Memory struct {
	Date time.Time    `json:"date"`
	Real *models.Real `json:"real"`
}

// NewMemoryService returns a new MemoryService.
func NewMemoryService(realRepo repository.RealRepository) *MemoryService {
	return &MemoryService{realRepo: realRepo}
}

// GetMemories returns one slot per day for the trailing window ending on the
// day containing ref, oldest first. The result always has exactly
// calendar.MemoryWindowDays entries; days without a real keep a placeholder
// slot so the caller can render a stable grid.
func (s *MemoryService) GetMemories(ctx context.Context, userID uint, ref time.Time) ([]Memory, error) {
	start, end := calendar.TrailingWindow(ref, calendar.MemoryWindowDays)

	reals, err := s.realRepo.GetByUserBetween(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	days := calendar.EachDay(start, ref)
	memories := make([]Memory, 0, len(days))
	for _, day := range days {
		// SameDay observes the real in the slot's location: drivers may
		// return CreatedAt in a different zone than the server clock.
		var slot *models.Real
		for _, real := range reals {
			if calendar.SameDay(day, real.CreatedAt) {
				// Reals arrive oldest first; the latest of a day wins.
				slot = real
			}
		}
		memories = append(memories, Memory{Date: day, Real: slot})
	}
	return memories, nil
}
