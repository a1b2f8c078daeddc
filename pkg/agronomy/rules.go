package agronomy

import (
	"fmt"

	"garden/entities"
	"garden/pkg/reference"
)

// Status values are part of the API contract.
const (
	StatusOptimal  = "optimal"
	StatusLow      = "low"
	StatusHigh     = "high"
	StatusCritical = "critical"
)

const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// Fixed bands that apply regardless of plant.
var (
	OrganicMatterRange = reference.Range{Min: 3, Max: 6}
	MoistureRange      = reference.Range{Min: 20, Max: 60}
)

// Amendment coefficients. The narrative sources give illustrative numbers, not
// a single formula table, so the chosen constants live here and nowhere else.
const (
	limeLbsPerPHUnit    = 5.0  // dolomitic lime, lbs per 100 sq ft per pH unit deficit
	sulfurLbsPerPHUnit  = 1.5  // elemental sulfur, lbs per 100 sq ft per pH unit excess
	bloodMealLbsPerPPMN = 0.15 // lbs per 100 sq ft per ppm nitrogen deficit
	boneMealLbsPerPPMP  = 0.20 // lbs per 100 sq ft per ppm phosphorus deficit
	greensandLbsPerPPMK = 0.10 // lbs per 100 sq ft per ppm potassium deficit
	compostInchPerPctOM = 0.5  // inches of compost per percent organic matter deficit
)

// Critical bands: deviation past the range boundary beyond which the status
// escalates from low/high to critical.
const (
	phCriticalBand       = 1.0
	nutrientCriticalFrac = 0.5 // fraction of the nearer boundary value
	omCriticalBand       = 2.0
	moistureCriticalBand = 15.0
)

// borderlineFrac: deviations within this fraction of the optimal range width
// get medium priority instead of high.
const borderlineFrac = 0.2

// ValidationError reports input outside the documented domain. Such input is
// supposed to be rejected upstream; the evaluator refuses to clamp it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid soil sample: %s %s", e.Field, e.Reason)
}

// side of a reading relative to its optimal range.
const (
	sideBelow = -1
	sideIn    = 0
	sideAbove = 1
)

// decision is the numeric outcome of one parameter rule, before phrasing.
type decision struct {
	parameter string
	value     float64
	rng       reference.Range
	unit      string
	status    string
	priority  string
	side      int
	deviation float64 // distance past the nearer boundary; 0 when optimal
	amount    float64 // amendment quantity; 0 when none applies
}

// classify places a value against its range. criticalBand is the deviation
// past a boundary at which the status becomes critical.
func classify(v float64, r reference.Range, criticalBand float64) (status string, side int, deviation float64) {
	switch {
	case r.Contains(v):
		return StatusOptimal, sideIn, 0
	case v < r.Min:
		deviation = r.Min - v
		if deviation > criticalBand {
			return StatusCritical, sideBelow, deviation
		}
		return StatusLow, sideBelow, deviation
	default:
		deviation = v - r.Max
		if deviation > criticalBand {
			return StatusCritical, sideAbove, deviation
		}
		return StatusHigh, sideAbove, deviation
	}
}

func priorityFor(status string, deviation float64, r reference.Range) string {
	switch status {
	case StatusOptimal:
		return PriorityLow
	case StatusCritical:
		return PriorityCritical
	}
	if width := r.Max - r.Min; width > 0 && deviation <= borderlineFrac*width {
		return PriorityMedium
	}
	return PriorityHigh
}

// nutrientCriticalBand scales with the nearer boundary so a deficit has to be
// large relative to the plant's own requirement before it reads as critical.
func nutrientCriticalBand(v float64, r reference.Range) float64 {
	if v < r.Min {
		return nutrientCriticalFrac * r.Min
	}
	return nutrientCriticalFrac * r.Max
}

// EvaluateSoil derives parameter-level recommendations for one sample against
// one resolved profile. Pure: no clock, no I/O, inputs are never mutated.
func EvaluateSoil(s entities.SoilSample, p reference.Profile) ([]entities.SoilRecommendation, error) {
	if err := validate(s); err != nil {
		return nil, err
	}

	var out []entities.SoilRecommendation

	add := func(d decision) {
		d.priority = priorityFor(d.status, d.deviation, d.rng)
		out = append(out, entities.SoilRecommendation{
			Parameter:      d.parameter,
			CurrentValue:   d.value,
			OptimalRange:   d.rng.Format(d.unit),
			Status:         d.status,
			Recommendation: phrase(d, p),
			Priority:       d.priority,
		})
	}

	// pH is required; the rest are evaluated only when sampled.
	{
		st, side, dev := classify(s.PH, p.PH, phCriticalBand)
		d := decision{parameter: "pH", value: s.PH, rng: p.PH, unit: "pH", status: st, side: side, deviation: dev}
		if side == sideBelow {
			d.amount = limeLbsPerPHUnit * dev
		} else if side == sideAbove {
			d.amount = sulfurLbsPerPHUnit * dev
		}
		add(d)
	}

	nutrient := func(name string, v float64, r reference.Range, lbsPerPPM float64) {
		st, side, dev := classify(v, r, nutrientCriticalBand(v, r))
		d := decision{parameter: name, value: v, rng: r, unit: "ppm", status: st, side: side, deviation: dev}
		if side == sideBelow {
			d.amount = lbsPerPPM * dev
		}
		add(d)
	}
	if s.NitrogenPPM != nil {
		nutrient("Nitrogen", *s.NitrogenPPM, p.NitrogenPPM, bloodMealLbsPerPPMN)
	}
	if s.PhosphorusPPM != nil {
		nutrient("Phosphorus", *s.PhosphorusPPM, p.PhosphorusPPM, boneMealLbsPerPPMP)
	}
	if s.PotassiumPPM != nil {
		nutrient("Potassium", *s.PotassiumPPM, p.PotassiumPPM, greensandLbsPerPPMK)
	}

	if s.OrganicMatterPct != nil {
		v := *s.OrganicMatterPct
		st, side, dev := classify(v, OrganicMatterRange, omCriticalBand)
		d := decision{parameter: "OrganicMatter", value: v, rng: OrganicMatterRange, unit: "%", status: st, side: side, deviation: dev}
		if side == sideBelow {
			d.amount = compostInchPerPctOM * dev
		}
		add(d)
	}
	if s.MoisturePct != nil {
		v := *s.MoisturePct
		st, side, dev := classify(v, MoistureRange, moistureCriticalBand)
		add(decision{parameter: "Moisture", value: v, rng: MoistureRange, unit: "%", status: st, side: side, deviation: dev})
	}

	return out, nil
}

func validate(s entities.SoilSample) error {
	if s.PH < 0 || s.PH > 14 {
		return &ValidationError{Field: "ph", Reason: "outside [0,14]"}
	}
	for _, f := range []struct {
		name string
		v    *float64
	}{
		{"nitrogen_ppm", s.NitrogenPPM},
		{"phosphorus_ppm", s.PhosphorusPPM},
		{"potassium_ppm", s.PotassiumPPM},
	} {
		if f.v != nil && *f.v < 0 {
			return &ValidationError{Field: f.name, Reason: "negative"}
		}
	}
	for _, f := range []struct {
		name string
		v    *float64
	}{
		{"organic_matter_percent", s.OrganicMatterPct},
		{"moisture_percent", s.MoisturePct},
	} {
		if f.v != nil && (*f.v < 0 || *f.v > 100) {
			return &ValidationError{Field: f.name, Reason: "outside [0,100]"}
		}
	}
	return nil
}
