package irrigation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"garden/entities"
)

// Rule ids are stable codes consumed by the UI.
const (
	RuleShortInterval = "FREQ_001"     // mean interval < 2 days
	RuleLongInterval  = "FREQ_002"     // mean interval > 10 days
	RuleShortRuns     = "DUR_001"      // majority of waterings under 10 minutes
	RuleSoilConflict  = "CONFLICT_001" // zone spans sandy and clay soils
	RuleNoResponse    = "RESPONSE_001" // low moisture right after watering
)

const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

const (
	shortIntervalDays = 2.0
	longIntervalDays  = 10.0
	shortRunMinutes   = 10
	shortRunFraction  = 0.5
	lowMoisturePct    = 20.0
	responseWindowHrs = 48.0
)

// AnalysisInput is one window of history for one scope. The analyzer treats
// every field as read-only.
type AnalysisInput struct {
	Scope     string
	Events    []entities.IrrigationEvent
	Samples   []entities.SoilSample
	SoilTypes []string
}

// AnalyzePatterns evaluates every pattern rule independently over the window
// and returns the triggered insights ordered by rule id. Rules that need at
// least two events are skipped, not failed, on smaller windows.
func AnalyzePatterns(in AnalysisInput) []entities.Insight {
	var out []entities.Insight

	events := make([]entities.IrrigationEvent, len(in.Events))
	copy(events, in.Events)
	sort.SliceStable(events, func(i, j int) bool { return events[i].WateredAt.Before(events[j].WateredAt) })

	if len(events) >= 2 {
		if ins, ok := checkIntervals(events, in.Scope); ok {
			out = append(out, ins)
		}
		if ins, ok := checkDurations(events, in.Scope); ok {
			out = append(out, ins)
		}
	}
	if ins, ok := checkSoilConflict(in.SoilTypes, in.Scope); ok {
		out = append(out, ins)
	}
	if ins, ok := checkSoilResponse(events, in.Samples, in.Scope); ok {
		out = append(out, ins)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].RuleID < out[j].RuleID })
	return out
}

func checkIntervals(events []entities.IrrigationEvent, scope string) (entities.Insight, bool) {
	total := 0.0
	for i := 1; i < len(events); i++ {
		total += events[i].WateredAt.Sub(events[i-1].WateredAt).Hours() / 24
	}
	mean := total / float64(len(events)-1)

	switch {
	case mean < shortIntervalDays:
		return entities.Insight{
			RuleID:   RuleShortInterval,
			Severity: SeverityWarning,
			Scope:    scope,
			Message:  fmt.Sprintf("Watering runs every %.1f days on average; frequent shallow watering encourages shallow roots. Water less often and more deeply.", mean),
			Evidence: mean,
		}, true
	case mean > longIntervalDays:
		return entities.Insight{
			RuleID:   RuleLongInterval,
			Severity: SeverityInfo,
			Scope:    scope,
			Message:  fmt.Sprintf("Average gap between waterings is %.1f days; check whether rainfall covers the gap or plants are drying out between runs.", mean),
			Evidence: mean,
		}, true
	}
	return entities.Insight{}, false
}

func checkDurations(events []entities.IrrigationEvent, scope string) (entities.Insight, bool) {
	withDuration, short := 0, 0
	for _, e := range events {
		if e.DurationMin == nil {
			continue
		}
		withDuration++
		if *e.DurationMin < shortRunMinutes {
			short++
		}
	}
	if withDuration == 0 {
		return entities.Insight{}, false
	}
	frac := float64(short) / float64(withDuration)
	if frac <= shortRunFraction {
		return entities.Insight{}, false
	}
	pct := frac * 100
	return entities.Insight{
		RuleID:   RuleShortRuns,
		Severity: SeverityWarning,
		Scope:    scope,
		Message:  fmt.Sprintf("%.0f%% of waterings run under %d minutes; short cycles rarely wet the full root zone. Lengthen run times and water less often.", pct, shortRunMinutes),
		Evidence: pct,
	}, true
}

func checkSoilConflict(soilTypes []string, scope string) (entities.Insight, bool) {
	distinct := map[string]bool{}
	for _, t := range soilTypes {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			distinct[t] = true
		}
	}
	if !distinct["sandy"] || !distinct["clay"] {
		return entities.Insight{}, false
	}
	return entities.Insight{
		RuleID:   RuleSoilConflict,
		Severity: SeverityWarning,
		Scope:    scope,
		Message:  fmt.Sprintf("This scope mixes sandy and clay soil (%d soil types present); they hold water very differently. Split the zone or schedule for the clay and spot-water the sand.", len(distinct)),
		Evidence: float64(len(distinct)),
	}, true
}

func checkSoilResponse(events []entities.IrrigationEvent, samples []entities.SoilSample, scope string) (entities.Insight, bool) {
	worst := 0.0
	found := false
	for _, s := range samples {
		if s.MoisturePct == nil || *s.MoisturePct >= lowMoisturePct {
			continue
		}
		if !wateredWithin(events, s.DateCollected, responseWindowHrs) {
			continue
		}
		if !found || *s.MoisturePct < worst {
			worst = *s.MoisturePct
			found = true
		}
	}
	if !found {
		return entities.Insight{}, false
	}
	return entities.Insight{
		RuleID:   RuleNoResponse,
		Severity: SeverityCritical,
		Scope:    scope,
		Message:  fmt.Sprintf("Soil moisture measured %.0f%% within 2 days of a watering; water is not reaching or staying in the root zone. Check emitters, runoff and compaction.", worst),
		Evidence: worst,
	}, true
}

// wateredWithin reports whether any event precedes t by at most window hours.
func wateredWithin(events []entities.IrrigationEvent, t time.Time, window float64) bool {
	for _, e := range events {
		if e.WateredAt.After(t) {
			continue
		}
		if t.Sub(e.WateredAt).Hours() <= window {
			return true
		}
	}
	return false
}
