package pickup

import (
	"fmt"
	"time"
)

// Slot is a fixed time-of-day pickup window. The registry holds one
// daily template; combining a slot with a caller-chosen date yields
// the concrete pickup appointment.
type Slot struct {
	ID    int64  `json:"id"`
	Start string `json:"start"` // "09:00"
	End   string `json:"end"`   // "10:00"
}

// StartOn resolves the slot's start on a concrete date, in the given
// location.
func (s Slot) StartOn(date time.Time) (time.Time, error) {
	t, err := time.Parse("15:04", s.Start)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad slot start %q: %w", s.Start, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

// DefaultSlots is the daily template: hourly windows from 09:00 to
// 18:00, seeded into the store on first startup.
func DefaultSlots() []Slot {
	slots := make([]Slot, 0, 9)
	for h := 9; h < 18; h++ {
		slots = append(slots, Slot{
			Start: fmt.Sprintf("%02d:00", h),
			End:   fmt.Sprintf("%02d:00", h+1),
		})
	}
	return slots
}
