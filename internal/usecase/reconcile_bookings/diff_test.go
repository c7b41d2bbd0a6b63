package reconcile_bookings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func reservation(id int64, day time.Time, duration domain.Duration) *domain.Reservation {
	return &domain.Reservation{
		ID:          id,
		DeskID:      1,
		UserID:      "user-1",
		BookingDate: day,
		Duration:    duration,
	}
}

func TestComputeDiff_CreateAndUpdate(t *testing.T) {
	// Исходно: вторник AM. Выбор: вторник + среда, FULL.
	tue := date(2025, time.June, 10)
	wed := date(2025, time.June, 11)

	initial := []*domain.Reservation{reservation(10, tue, domain.DurationAM)}
	diff := computeDiff(initial, []time.Time{tue, wed}, domain.DurationFull)

	require.Len(t, diff.toCreate, 1)
	assert.Equal(t, wed, diff.toCreate[0])

	assert.Empty(t, diff.toDelete)

	require.Len(t, diff.toUpdateDuration, 1)
	assert.Equal(t, int64(10), diff.toUpdateDuration[0].ID)
}

func TestComputeDiff_UnchangedDurationIsNoOp(t *testing.T) {
	tue := date(2025, time.June, 10)

	initial := []*domain.Reservation{reservation(10, tue, domain.DurationFull)}
	diff := computeDiff(initial, []time.Time{tue}, domain.DurationFull)

	assert.True(t, diff.isEmpty())
	assert.Equal(t, 0, diff.operationCount())
}

func TestComputeDiff_EmptySelectionDeletesEverything(t *testing.T) {
	initial := []*domain.Reservation{
		reservation(10, date(2025, time.June, 10), domain.DurationAM),
		reservation(11, date(2025, time.June, 11), domain.DurationFull),
	}

	diff := computeDiff(initial, nil, domain.DurationFull)

	assert.Empty(t, diff.toCreate)
	assert.Empty(t, diff.toUpdateDuration)
	require.Len(t, diff.toDelete, 2)
	assert.Equal(t, int64(10), diff.toDelete[0].ID)
	assert.Equal(t, int64(11), diff.toDelete[1].ID)
}

func TestComputeDiff_SetsArePairwiseDisjoint(t *testing.T) {
	// Исходно: пн(AM), вт(FULL), ср(PM). Выбор: вт, ср, чт, FULL.
	mon := date(2025, time.June, 9)
	tue := date(2025, time.June, 10)
	wed := date(2025, time.June, 11)
	thu := date(2025, time.June, 12)

	initial := []*domain.Reservation{
		reservation(1, mon, domain.DurationAM),
		reservation(2, tue, domain.DurationFull),
		reservation(3, wed, domain.DurationPM),
	}

	diff := computeDiff(initial, []time.Time{tue, wed, thu}, domain.DurationFull)

	seen := map[time.Time]int{}
	for _, d := range diff.toCreate {
		seen[d]++
	}
	for _, r := range diff.toDelete {
		seen[domain.DateOnly(r.BookingDate)]++
	}
	for _, r := range diff.toUpdateDuration {
		seen[domain.DateOnly(r.BookingDate)]++
	}
	for day, count := range seen {
		assert.Equal(t, 1, count, "date %s appears in more than one operation set", day.Format(domain.DateFormat))
	}

	require.Len(t, diff.toCreate, 1)
	assert.Equal(t, thu, diff.toCreate[0])
	require.Len(t, diff.toDelete, 1)
	assert.Equal(t, int64(1), diff.toDelete[0].ID)
	require.Len(t, diff.toUpdateDuration, 1)
	assert.Equal(t, int64(3), diff.toUpdateDuration[0].ID)
}

func TestComputeDiff_DeduplicatesSelectedDates(t *testing.T) {
	wed := date(2025, time.June, 11)

	diff := computeDiff(nil, []time.Time{wed, wed, wed}, domain.DurationAM)

	require.Len(t, diff.toCreate, 1)
	assert.Equal(t, wed, diff.toCreate[0])
}

func TestComputeDiff_NormalizesTimeOfDay(t *testing.T) {
	// Выбор с временем суток сводится к той же дате, что исходное
	// бронирование в полночь UTC
	tue := date(2025, time.June, 10)
	tueNoon := time.Date(2025, time.June, 10, 12, 30, 0, 0, time.UTC)

	initial := []*domain.Reservation{reservation(10, tue, domain.DurationAM)}
	diff := computeDiff(initial, []time.Time{tueNoon}, domain.DurationAM)

	assert.True(t, diff.isEmpty())
}
