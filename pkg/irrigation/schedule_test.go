package irrigation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garden/entities"
	"garden/pkg/agronomy"
	"garden/pkg/reference"
)

var scheduleNow = time.Date(2026, 1, 30, 12, 0, 0, 0, time.UTC)

func eventAt(t time.Time) entities.IrrigationEvent {
	return entities.IrrigationEvent{WateredAt: t}
}

func profile(name string, freq int, volPerSqFt float64) reference.Profile {
	return reference.Profile{Name: name, WateringFrequencyDays: freq, WateringVolumeLPerSqFt: volPerSqFt}
}

func TestEvaluateScheduleNoEvents(t *testing.T) {
	rec := EvaluateSchedule(nil, profile("Tomato", 3, 1.9), nil, 0, scheduleNow)
	assert.Equal(t, StatusNoData, rec.Status)
	assert.Equal(t, agronomy.PriorityMedium, rec.Priority)
	assert.Equal(t, 3, rec.RecommendedFrequency)
	assert.Nil(t, rec.RecommendedVolumeL)
	assert.Contains(t, rec.Recommendation, "No watering has been recorded")
}

func TestEvaluateScheduleOnSchedule(t *testing.T) {
	// last watered 2 days ago, every 3 days: within the one-day tolerance.
	events := []entities.IrrigationEvent{eventAt(scheduleNow.Add(-48 * time.Hour))}
	rec := EvaluateSchedule(events, profile("Tomato", 3, 1.9), nil, 0, scheduleNow)
	assert.Equal(t, StatusOnSchedule, rec.Status)
	assert.Equal(t, agronomy.PriorityLow, rec.Priority)
	assert.Equal(t, 2, rec.DaysSinceLastWatering)
}

func TestEvaluateScheduleToleranceBoundaries(t *testing.T) {
	p := profile("Tomato", 3, 0)
	cases := []struct {
		hoursAgo int
		status   string
	}{
		{48, StatusOnSchedule},  // 2 days
		{96, StatusOnSchedule},  // 4 days, still within +-1
		{120, StatusOverdue},    // 5 days
		{24, StatusOverwatered}, // 1 day
	}
	for _, tc := range cases {
		events := []entities.IrrigationEvent{eventAt(scheduleNow.Add(-time.Duration(tc.hoursAgo) * time.Hour))}
		rec := EvaluateSchedule(events, p, nil, 0, scheduleNow)
		assert.Equal(t, tc.status, rec.Status, "hoursAgo=%d", tc.hoursAgo)
	}
}

func TestEvaluateScheduleOverwatered(t *testing.T) {
	// last watered 1 day ago, every 4 days.
	events := []entities.IrrigationEvent{eventAt(scheduleNow.Add(-24 * time.Hour))}
	rec := EvaluateSchedule(events, profile("Fern", 4, 0), nil, 0, scheduleNow)
	assert.Equal(t, StatusOverwatered, rec.Status)
	assert.Equal(t, agronomy.PriorityMedium, rec.Priority)
	assert.Contains(t, rec.Recommendation, "Wait 3 more days")
}

func TestEvaluateScheduleOverduePriorityEscalates(t *testing.T) {
	p := profile("Tomato", 3, 0)

	// 5 days ago: overdue but under 2x target.
	rec := EvaluateSchedule([]entities.IrrigationEvent{eventAt(scheduleNow.Add(-5 * 24 * time.Hour))}, p, nil, 0, scheduleNow)
	assert.Equal(t, StatusOverdue, rec.Status)
	assert.Equal(t, agronomy.PriorityMedium, rec.Priority)

	// 7 days ago: past 2x target.
	rec = EvaluateSchedule([]entities.IrrigationEvent{eventAt(scheduleNow.Add(-7 * 24 * time.Hour))}, p, nil, 0, scheduleNow)
	assert.Equal(t, StatusOverdue, rec.Status)
	assert.Equal(t, agronomy.PriorityHigh, rec.Priority)
}

func TestEvaluateScheduleOverdueMentionsLowMoisture(t *testing.T) {
	events := []entities.IrrigationEvent{eventAt(scheduleNow.Add(-5 * 24 * time.Hour))}
	moisture := 12.0
	rec := EvaluateSchedule(events, profile("Tomato", 3, 0), &moisture, 0, scheduleNow)
	assert.Equal(t, StatusOverdue, rec.Status)
	assert.Contains(t, rec.Recommendation, "down to 12%")
}

func TestEvaluateSchedulePicksLatestEvent(t *testing.T) {
	events := []entities.IrrigationEvent{
		eventAt(scheduleNow.Add(-10 * 24 * time.Hour)),
		eventAt(scheduleNow.Add(-2 * 24 * time.Hour)),
		eventAt(scheduleNow.Add(-6 * 24 * time.Hour)),
	}
	rec := EvaluateSchedule(events, profile("Tomato", 3, 0), nil, 0, scheduleNow)
	assert.Equal(t, 2, rec.DaysSinceLastWatering)
	assert.Equal(t, StatusOnSchedule, rec.Status)
}

func TestEvaluateScheduleVolumeScalesWithArea(t *testing.T) {
	events := []entities.IrrigationEvent{eventAt(scheduleNow.Add(-2 * 24 * time.Hour))}
	rec := EvaluateSchedule(events, profile("Tomato", 3, 1.9), nil, 10, scheduleNow)
	require.NotNil(t, rec.RecommendedVolumeL)
	assert.InDelta(t, 19.0, *rec.RecommendedVolumeL, 0.001)
	assert.Contains(t, rec.Recommendation, "19.0 liters")
}

func TestEvaluateScheduleIsPure(t *testing.T) {
	events := []entities.IrrigationEvent{eventAt(scheduleNow.Add(-5 * 24 * time.Hour))}
	p := profile("Tomato", 3, 1.9)
	first := EvaluateSchedule(events, p, nil, 10, scheduleNow)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, EvaluateSchedule(events, p, nil, 10, scheduleNow))
	}
}

func TestAdjustForSeason(t *testing.T) {
	cases := []struct {
		days  int
		month time.Month
		want  int
	}{
		{3, time.April, 3},
		{3, time.July, 4},    // 3.9 rounds to 4
		{3, time.January, 2}, // 2.1 rounds to 2
		{4, time.June, 5},    // 5.2 rounds to 5
		{1, time.December, 1},
		{1, time.February, 1}, // never below one day
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, AdjustForSeason(tc.days, tc.month), "days=%d month=%s", tc.days, tc.month)
	}
}
