package serviceImp

import (
	"fmt"
	"sort"
	"time"

	"garden/entities"
	"garden/pkg/advisor/types"
	"garden/pkg/agronomy"
	gardenrepo "garden/pkg/garden/repository"
	"garden/pkg/irrigation"
	"garden/pkg/reference"
	soilrepo "garden/pkg/soil/repository"
	waterrepo "garden/pkg/water/repository"
)

const defaultWindowDays = 30

type kbSearcher interface {
	Refs(query string, k int) ([]entities.ArticleRef, error)
}

type AdvisorSvc struct {
	table   *reference.Table
	gardens gardenrepo.GardenRepository
	soil    soilrepo.SoilRepository
	water   waterrepo.WaterRepository
	kb      kbSearcher
}

func New(table *reference.Table, gr gardenrepo.GardenRepository, sr soilrepo.SoilRepository, wr waterrepo.WaterRepository, kb kbSearcher) *AdvisorSvc {
	return &AdvisorSvc{table: table, gardens: gr, soil: sr, water: wr, kb: kb}
}

// SoilReport runs the soil evaluator over every sample in the user's gardens.
// A failure inside one garden is recorded and does not abort the rest.
func (s *AdvisorSvc) SoilReport(uid string, now time.Time) (*types.SoilReport, error) {
	gs, err := s.gardens.ListByUser(uid)
	if err != nil {
		return nil, err
	}
	report := &types.SoilReport{Gardens: []types.GardenSoilReport{}}
	for _, g := range gs {
		plantings, err := s.gardens.PlantingsByGarden(g.GardenID)
		if err != nil {
			report.Errors = append(report.Errors, types.ScopeError{GardenID: g.GardenID, Error: err.Error()})
			continue
		}
		samples, err := s.soil.ByGarden(g.GardenID)
		if err != nil {
			report.Errors = append(report.Errors, types.ScopeError{GardenID: g.GardenID, Error: err.Error()})
			continue
		}
		gr := types.GardenSoilReport{GardenID: g.GardenID, GardenName: g.Name, Samples: []types.SampleReport{}}
		for _, smp := range samples {
			p := s.profileForSample(smp, plantings)
			recs, err := agronomy.EvaluateSoil(smp, p)
			if err != nil {
				// Bad single sample: report it, keep evaluating siblings.
				report.Errors = append(report.Errors, types.ScopeError{GardenID: g.GardenID, Error: fmt.Sprintf("sample %d: %v", smp.SampleID, err)})
				continue
			}
			gr.Samples = append(gr.Samples, types.SampleReport{Sample: smp, PlantName: p.Name, Recommendations: recs})
		}
		report.Gardens = append(report.Gardens, gr)
	}
	return report, nil
}

// IrrigationSummary returns recent events plus one schedule recommendation
// per garden, with the cadence threshold season-adjusted for the given month.
func (s *AdvisorSvc) IrrigationSummary(uid string, now time.Time) (*types.IrrigationSummary, error) {
	gs, err := s.gardens.ListByUser(uid)
	if err != nil {
		return nil, err
	}
	out := &types.IrrigationSummary{Gardens: []types.GardenIrrigation{}}
	for _, g := range gs {
		events, err := s.water.Since(g.GardenID, now.AddDate(0, 0, -defaultWindowDays))
		if err != nil {
			out.Errors = append(out.Errors, types.ScopeError{GardenID: g.GardenID, Error: err.Error()})
			continue
		}
		plantings, err := s.gardens.PlantingsByGarden(g.GardenID)
		if err != nil {
			out.Errors = append(out.Errors, types.ScopeError{GardenID: g.GardenID, Error: err.Error()})
			continue
		}
		p := s.mostDemanding(plantings)
		p.WateringFrequencyDays = irrigation.AdjustForSeason(p.WateringFrequencyDays, now.Month())
		rec := irrigation.EvaluateSchedule(events, p, s.latestMoisture(g.GardenID, now), g.SizeSqFt, now)
		out.Gardens = append(out.Gardens, types.GardenIrrigation{
			GardenID:   g.GardenID,
			GardenName: g.Name,
			Events:     events,
			Summary:    types.IrrigationSummaryBlock{Recommendations: []entities.IrrigationRecommendation{rec}},
		})
	}
	return out, nil
}

// SystemInsights runs the pattern engine per zone, then per garden, and merges
// the triggered rules in a reproducible order (garden id, then rule id).
func (s *AdvisorSvc) SystemInsights(uid string, now time.Time, windowDays int) (*types.InsightReport, error) {
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	gs, err := s.gardens.ListByUser(uid)
	if err != nil {
		return nil, err
	}
	report := &types.InsightReport{WindowDays: windowDays, Insights: []entities.Insight{}}
	since := now.AddDate(0, 0, -windowDays)

	for _, g := range gs {
		zones, err := s.gardens.ZonesByGarden(g.GardenID)
		if err != nil {
			report.Errors = append(report.Errors, types.ScopeError{GardenID: g.GardenID, Error: err.Error()})
			continue
		}
		events, err := s.water.Since(g.GardenID, since)
		if err != nil {
			report.Errors = append(report.Errors, types.ScopeError{GardenID: g.GardenID, Error: err.Error()})
			continue
		}
		samples, err := s.soil.Since(g.GardenID, since)
		if err != nil {
			report.Errors = append(report.Errors, types.ScopeError{GardenID: g.GardenID, Error: err.Error()})
			continue
		}

		var batch []entities.Insight
		soilTypes := []string{g.SoilType}
		for _, z := range zones {
			st := z.SoilType
			if st == "" {
				st = g.SoilType
			}
			soilTypes = append(soilTypes, st)
			batch = append(batch, irrigation.AnalyzePatterns(irrigation.AnalysisInput{
				Scope:     fmt.Sprintf("zone:%d", z.ZoneID),
				Events:    zoneEvents(events, z.ZoneID),
				SoilTypes: []string{st},
			})...)
		}
		batch = append(batch, irrigation.AnalyzePatterns(irrigation.AnalysisInput{
			Scope:     fmt.Sprintf("garden:%d", g.GardenID),
			Events:    events,
			Samples:   samples,
			SoilTypes: soilTypes,
		})...)

		sort.SliceStable(batch, func(i, j int) bool {
			if batch[i].RuleID != batch[j].RuleID {
				return batch[i].RuleID < batch[j].RuleID
			}
			return batch[i].Scope < batch[j].Scope
		})
		s.attachArticles(batch)
		report.Insights = append(report.Insights, batch...)
	}
	return report, nil
}

func zoneEvents(events []entities.IrrigationEvent, zoneID uint) []entities.IrrigationEvent {
	var out []entities.IrrigationEvent
	for _, e := range events {
		if e.ZoneID != nil && *e.ZoneID == zoneID {
			out = append(out, e)
		}
	}
	return out
}

// profileForSample resolves the plant profile for one sample: the linked
// planting when present, otherwise the garden's most water-demanding planting,
// otherwise Default.
func (s *AdvisorSvc) profileForSample(smp entities.SoilSample, plantings []entities.Planting) reference.Profile {
	if smp.PlantingID != nil {
		for _, pl := range plantings {
			if pl.PlantingID == *smp.PlantingID {
				return s.table.Lookup(pl.PlantName)
			}
		}
	}
	return s.mostDemanding(plantings)
}

// mostDemanding picks the thirstiest profile among the plantings: lowest
// watering interval, then highest volume, then plant name for determinism.
func (s *AdvisorSvc) mostDemanding(plantings []entities.Planting) reference.Profile {
	best := s.table.Lookup("")
	bestName := ""
	found := false
	for _, pl := range plantings {
		p := s.table.Lookup(pl.PlantName)
		if !found {
			best, bestName, found = p, pl.PlantName, true
			continue
		}
		switch {
		case p.WateringFrequencyDays < best.WateringFrequencyDays:
			best, bestName = p, pl.PlantName
		case p.WateringFrequencyDays == best.WateringFrequencyDays && p.WateringVolumeLPerSqFt > best.WateringVolumeLPerSqFt:
			best, bestName = p, pl.PlantName
		case p.WateringFrequencyDays == best.WateringFrequencyDays && p.WateringVolumeLPerSqFt == best.WateringVolumeLPerSqFt && pl.PlantName < bestName:
			best, bestName = p, pl.PlantName
		}
	}
	return best
}

func (s *AdvisorSvc) latestMoisture(gardenID uint, now time.Time) *float64 {
	samples, err := s.soil.Since(gardenID, now.AddDate(0, 0, -defaultWindowDays))
	if err != nil {
		return nil
	}
	var latest *entities.SoilSample
	for i := range samples {
		if samples[i].MoisturePct == nil {
			continue
		}
		if latest == nil || samples[i].DateCollected.After(latest.DateCollected) {
			latest = &samples[i]
		}
	}
	if latest == nil {
		return nil
	}
	return latest.MoisturePct
}

func (s *AdvisorSvc) attachArticles(insights []entities.Insight) {
	if s.kb == nil {
		return
	}
	for i := range insights {
		refs, err := s.kb.Refs(kbQueryFor(insights[i].RuleID), 3)
		if err != nil || len(refs) == 0 {
			continue
		}
		insights[i].RelatedArticles = refs
	}
}

func kbQueryFor(ruleID string) string {
	switch ruleID {
	case irrigation.RuleShortInterval:
		return "deep watering frequency shallow roots"
	case irrigation.RuleLongInterval:
		return "watering interval drought stress"
	case irrigation.RuleShortRuns:
		return "watering duration soak root zone"
	case irrigation.RuleSoilConflict:
		return "sandy clay soil drainage watering"
	case irrigation.RuleNoResponse:
		return "soil moisture runoff compaction emitters"
	}
	return "garden watering"
}
