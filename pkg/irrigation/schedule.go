package irrigation

import (
	"fmt"
	"math"
	"time"

	"garden/entities"
	"garden/pkg/agronomy"
	"garden/pkg/reference"
)

const (
	StatusOnSchedule  = "on_schedule"
	StatusOverdue     = "overdue"
	StatusOverwatered = "overwatered"
	StatusNoData      = "no_data"
)

// AdjustForSeason scales a recommended watering interval for the month:
// x1.3 in Jun-Aug, x0.7 in Dec-Feb. Applied by the caller, never inside
// EvaluateSchedule, so evaluations stay reproducible for a fixed input.
func AdjustForSeason(days int, month time.Month) int {
	f := 1.0
	switch month {
	case time.June, time.July, time.August:
		f = 1.3
	case time.December, time.January, time.February:
		f = 0.7
	}
	adj := int(math.Round(float64(days) * f))
	if adj < 1 {
		adj = 1
	}
	return adj
}

// EvaluateSchedule compares the watering history for one scope against the
// profile's recommended cadence. now is supplied by the caller; the evaluator
// never reads the clock. areaSqFt sizes the volume guidance; pass 0 when the
// area is unknown.
func EvaluateSchedule(events []entities.IrrigationEvent, p reference.Profile, latestMoisture *float64, areaSqFt float64, now time.Time) entities.IrrigationRecommendation {
	rec := entities.IrrigationRecommendation{
		PlantName:            p.Name,
		RecommendedFrequency: p.WateringFrequencyDays,
	}
	if p.WateringVolumeLPerSqFt > 0 && areaSqFt > 0 {
		v := round1(p.WateringVolumeLPerSqFt * areaSqFt)
		rec.RecommendedVolumeL = &v
	}

	last, ok := latestEvent(events)
	if !ok {
		rec.Status = StatusNoData
		rec.Priority = agronomy.PriorityMedium
		rec.Recommendation = fmt.Sprintf("No watering has been recorded for %s yet. Water now%s and log the event so the schedule can be tracked.", plantPhrase(p), volumeClause(rec.RecommendedVolumeL))
		return rec
	}

	days := int(math.Floor(now.Sub(last.WateredAt).Hours() / 24))
	rec.DaysSinceLastWatering = days
	target := p.WateringFrequencyDays

	switch {
	case abs(days-target) <= 1:
		rec.Status = StatusOnSchedule
		rec.Priority = agronomy.PriorityLow
		rec.Recommendation = fmt.Sprintf("Last watered %d days ago; every %d days is on track for %s.%s", days, target, plantPhrase(p), volumeSentence(rec.RecommendedVolumeL))
	case days > target+1:
		rec.Status = StatusOverdue
		// Overdue caps at high; critical is reserved for the pattern
		// engine's soil-response rule.
		rec.Priority = agronomy.PriorityMedium
		if days > 2*target {
			rec.Priority = agronomy.PriorityHigh
		}
		msg := fmt.Sprintf("It has been %d days since the last watering; %s needs water every %d days. Water deeply now%s.", days, plantPhrase(p), target, volumeClause(rec.RecommendedVolumeL))
		if latestMoisture != nil && *latestMoisture < agronomy.MoistureRange.Min {
			msg += fmt.Sprintf(" Soil moisture is already down to %.0f%%, so do not wait for the next scheduled day.", *latestMoisture)
		}
		rec.Recommendation = msg
	default:
		rec.Status = StatusOverwatered
		rec.Priority = agronomy.PriorityMedium
		rec.Recommendation = fmt.Sprintf("Last watering was only %d days ago but %s needs water every %d days. Wait %d more days before watering again.", days, plantPhrase(p), target, target-days)
	}
	return rec
}

func latestEvent(events []entities.IrrigationEvent) (entities.IrrigationEvent, bool) {
	var last entities.IrrigationEvent
	found := false
	for _, e := range events {
		if !found || e.WateredAt.After(last.WateredAt) {
			last = e
			found = true
		}
	}
	return last, found
}

func plantPhrase(p reference.Profile) string {
	if p.Name == "" || p.Name == reference.DefaultName {
		return "this plant"
	}
	return p.Name
}

func volumeClause(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf(" with about %.1f liters", *v)
}

func volumeSentence(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf(" Apply about %.1f liters per watering.", *v)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
