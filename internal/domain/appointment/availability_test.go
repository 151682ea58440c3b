package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/barberlane/booking-engine/internal/models"
)

func monday() time.Time {
	// 2026-09-07 é segunda-feira
	return time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
}

func sunday() time.Time {
	return time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
}

func TestComputeAvailability_MorningShift(t *testing.T) {
	hours := []models.WorkingHours{
		{ProviderID: 1, Weekday: 1, StartTime: "09:00", EndTime: "12:00", Available: true},
	}

	av := ComputeAvailability(
		AvailabilityInput{ProviderID: 1, Date: monday(), AdvisoryWeekday: 0},
		hours,
		nil,
	)

	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, av.Slots)
	assert.Equal(t, "segunda-feira", av.DayLabel)
	assert.Empty(t, av.Advisory)
}

func TestComputeAvailability_ExcludesOccupied(t *testing.T) {
	hours := []models.WorkingHours{
		{ProviderID: 1, Weekday: 1, StartTime: "09:00", EndTime: "12:00", Available: true},
	}

	av := ComputeAvailability(
		AvailabilityInput{ProviderID: 1, Date: monday(), AdvisoryWeekday: 0},
		hours,
		[]string{"10:00"},
	)

	assert.Equal(t, []string{"09:00", "11:00"}, av.Slots)
}

func TestComputeAvailability_SplitShiftSortedAndDeduped(t *testing.T) {
	hours := []models.WorkingHours{
		{StartTime: "14:00", EndTime: "18:00", Available: true},
		{StartTime: "09:00", EndTime: "12:00", Available: true},
		{StartTime: "11:00", EndTime: "12:00", Available: true}, // sobreposto
	}

	av := ComputeAvailability(
		AvailabilityInput{ProviderID: 1, Date: monday(), AdvisoryWeekday: 0},
		hours,
		[]string{"15:00"},
	)

	assert.Equal(t,
		[]string{"09:00", "10:00", "11:00", "14:00", "16:00", "17:00"},
		av.Slots,
	)
}

func TestComputeAvailability_UnavailableEntriesIgnored(t *testing.T) {
	hours := []models.WorkingHours{
		{StartTime: "09:00", EndTime: "12:00", Available: false},
	}

	av := ComputeAvailability(
		AvailabilityInput{ProviderID: 1, Date: monday(), AdvisoryWeekday: 0},
		hours,
		nil,
	)

	assert.Empty(t, av.Slots)
	assert.Empty(t, av.Advisory)
}

func TestComputeAvailability_AdvisoryDay(t *testing.T) {
	av := ComputeAvailability(
		AvailabilityInput{ProviderID: 1, Date: sunday(), AdvisoryWeekday: 0},
		nil,
		nil,
	)

	assert.Empty(t, av.Slots)
	assert.Equal(t, "domingo", av.DayLabel)
	assert.NotEmpty(t, av.Advisory)
}

func TestComputeAvailability_NoAdvisoryOnRegularClosedDay(t *testing.T) {
	av := ComputeAvailability(
		AvailabilityInput{ProviderID: 1, Date: monday(), AdvisoryWeekday: 0},
		nil,
		nil,
	)

	assert.Empty(t, av.Slots)
	assert.Empty(t, av.Advisory)
}

func TestComputeAvailability_AllSlotsTaken(t *testing.T) {
	hours := []models.WorkingHours{
		{StartTime: "09:00", EndTime: "11:00", Available: true},
	}

	av := ComputeAvailability(
		AvailabilityInput{ProviderID: 1, Date: monday(), AdvisoryWeekday: 0},
		hours,
		[]string{"09:00", "10:00"},
	)

	assert.Empty(t, av.Slots)
}
