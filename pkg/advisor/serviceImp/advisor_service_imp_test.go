package serviceImp

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garden/entities"
	"garden/pkg/agronomy"
	"garden/pkg/irrigation"
	"garden/pkg/reference"
)

// In-memory repositories with per-garden fault injection so partial-failure
// behavior can be exercised without a database.

type fakeGardenRepo struct {
	gardens      []entities.Garden
	zones        map[uint][]entities.Zone
	plantings    map[uint][]entities.Planting
	failZones    map[uint]error
	failPlanting map[uint]error
}

func (r *fakeGardenRepo) Create(*entities.Garden) error { return errors.New("not used") }
func (r *fakeGardenRepo) FindByID(uint, string) (*entities.Garden, error) {
	return nil, errors.New("not used")
}
func (r *fakeGardenRepo) ListByUser(uid string) ([]entities.Garden, error) {
	var out []entities.Garden
	for _, g := range r.gardens {
		if g.UserID == uid {
			out = append(out, g)
		}
	}
	return out, nil
}
func (r *fakeGardenRepo) CreateZone(*entities.Zone) error { return errors.New("not used") }
func (r *fakeGardenRepo) ZonesByGarden(gardenID uint) ([]entities.Zone, error) {
	if err := r.failZones[gardenID]; err != nil {
		return nil, err
	}
	return r.zones[gardenID], nil
}
func (r *fakeGardenRepo) CreatePlanting(*entities.Planting) error { return errors.New("not used") }
func (r *fakeGardenRepo) PlantingsByGarden(gardenID uint) ([]entities.Planting, error) {
	if err := r.failPlanting[gardenID]; err != nil {
		return nil, err
	}
	return r.plantings[gardenID], nil
}

type fakeSoilRepo struct {
	samples map[uint][]entities.SoilSample
	fail    map[uint]error
}

func (r *fakeSoilRepo) Create(*entities.SoilSample) error { return errors.New("not used") }
func (r *fakeSoilRepo) ByGarden(gardenID uint) ([]entities.SoilSample, error) {
	if err := r.fail[gardenID]; err != nil {
		return nil, err
	}
	return r.samples[gardenID], nil
}
func (r *fakeSoilRepo) Since(gardenID uint, since time.Time) ([]entities.SoilSample, error) {
	if err := r.fail[gardenID]; err != nil {
		return nil, err
	}
	var out []entities.SoilSample
	for _, s := range r.samples[gardenID] {
		if !s.DateCollected.Before(since) {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeWaterRepo struct {
	events map[uint][]entities.IrrigationEvent
	fail   map[uint]error
}

func (r *fakeWaterRepo) Create(*entities.IrrigationEvent) error { return errors.New("not used") }
func (r *fakeWaterRepo) ByGarden(gardenID uint) ([]entities.IrrigationEvent, error) {
	if err := r.fail[gardenID]; err != nil {
		return nil, err
	}
	return r.events[gardenID], nil
}
func (r *fakeWaterRepo) Since(gardenID uint, since time.Time) ([]entities.IrrigationEvent, error) {
	if err := r.fail[gardenID]; err != nil {
		return nil, err
	}
	var out []entities.IrrigationEvent
	for _, e := range r.events[gardenID] {
		if !e.WateredAt.Before(since) {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeKB struct{ refs []entities.ArticleRef }

func (k *fakeKB) Refs(query string, n int) ([]entities.ArticleRef, error) { return k.refs, nil }

var advisorNow = time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)

func newFixture() (*fakeGardenRepo, *fakeSoilRepo, *fakeWaterRepo) {
	gr := &fakeGardenRepo{
		gardens: []entities.Garden{
			{GardenID: 1, UserID: "u1", Name: "Front Bed", SoilType: "loam", SizeSqFt: 100},
			{GardenID: 2, UserID: "u1", Name: "Back Bed", SoilType: "sandy", SizeSqFt: 50},
			{GardenID: 9, UserID: "other", Name: "Not Mine"},
		},
		zones:        map[uint][]entities.Zone{},
		plantings:    map[uint][]entities.Planting{},
		failZones:    map[uint]error{},
		failPlanting: map[uint]error{},
	}
	sr := &fakeSoilRepo{samples: map[uint][]entities.SoilSample{}, fail: map[uint]error{}}
	wr := &fakeWaterRepo{events: map[uint][]entities.IrrigationEvent{}, fail: map[uint]error{}}
	return gr, sr, wr
}

func newSvc(gr *fakeGardenRepo, sr *fakeSoilRepo, wr *fakeWaterRepo) *AdvisorSvc {
	return New(reference.NewTable(), gr, sr, wr, nil)
}

func TestSoilReportScopesToUser(t *testing.T) {
	gr, sr, wr := newFixture()
	sr.samples[9] = []entities.SoilSample{{SampleID: 99, GardenID: 9, PH: 6.4}}

	report, err := newSvc(gr, sr, wr).SoilReport("u1", advisorNow)
	require.NoError(t, err)
	require.Len(t, report.Gardens, 2)
	assert.Equal(t, uint(1), report.Gardens[0].GardenID)
	assert.Equal(t, uint(2), report.Gardens[1].GardenID)
	assert.Empty(t, report.Errors)
}

func TestSoilReportResolvesProfilePerSample(t *testing.T) {
	gr, sr, wr := newFixture()
	plantingID := uint(11)
	gr.plantings[1] = []entities.Planting{
		{PlantingID: 11, GardenID: 1, PlantName: "Blueberry"},
		{PlantingID: 12, GardenID: 1, PlantName: "Tomato"},
	}
	sr.samples[1] = []entities.SoilSample{
		{SampleID: 1, GardenID: 1, PlantingID: &plantingID, PH: 6.4},
		{SampleID: 2, GardenID: 1, PH: 6.4},
	}

	report, err := newSvc(gr, sr, wr).SoilReport("u1", advisorNow)
	require.NoError(t, err)
	samples := report.Gardens[0].Samples
	require.Len(t, samples, 2)

	// First sample is linked to the blueberry planting: its acidic range makes
	// pH 6.4 read as high.
	assert.Equal(t, "Blueberry", samples[0].PlantName)
	assert.Equal(t, agronomy.StatusHigh, samples[0].Recommendations[0].Status)

	// The unlinked sample falls back to the most demanding planting.
	assert.Equal(t, agronomy.StatusOptimal, samples[1].Recommendations[0].Status)
}

func TestSoilReportIsolatesBadSamples(t *testing.T) {
	gr, sr, wr := newFixture()
	sr.samples[1] = []entities.SoilSample{
		{SampleID: 1, GardenID: 1, PH: 16}, // out of domain
		{SampleID: 2, GardenID: 1, PH: 6.4},
	}

	report, err := newSvc(gr, sr, wr).SoilReport("u1", advisorNow)
	require.NoError(t, err)

	require.Len(t, report.Errors, 1)
	assert.Equal(t, uint(1), report.Errors[0].GardenID)
	assert.Contains(t, report.Errors[0].Error, "sample 1")

	// The good sample in the same garden still evaluated.
	require.Len(t, report.Gardens[0].Samples, 1)
	assert.Equal(t, uint(2), report.Gardens[0].Samples[0].Sample.SampleID)
}

func TestSoilReportIsolatesGardenFailures(t *testing.T) {
	gr, sr, wr := newFixture()
	sr.fail[1] = errors.New("disk gone")
	sr.samples[2] = []entities.SoilSample{{SampleID: 3, GardenID: 2, PH: 6.4}}

	report, err := newSvc(gr, sr, wr).SoilReport("u1", advisorNow)
	require.NoError(t, err)

	require.Len(t, report.Errors, 1)
	assert.Equal(t, uint(1), report.Errors[0].GardenID)

	require.Len(t, report.Gardens, 1)
	assert.Equal(t, uint(2), report.Gardens[0].GardenID)
	assert.Len(t, report.Gardens[0].Samples, 1)
}

func TestIrrigationSummaryAdjustsForSeason(t *testing.T) {
	gr, sr, wr := newFixture()
	gr.plantings[1] = []entities.Planting{{PlantingID: 1, GardenID: 1, PlantName: "Tomato"}}
	wr.events[1] = []entities.IrrigationEvent{{EventID: 1, GardenID: 1, WateredAt: advisorNow.Add(-3 * 24 * time.Hour)}}

	july := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)
	wr.events[1][0].WateredAt = july.Add(-3 * 24 * time.Hour)

	out, err := newSvc(gr, sr, wr).IrrigationSummary("u1", july)
	require.NoError(t, err)
	require.Len(t, out.Gardens, 2)

	rec := out.Gardens[0].Summary.Recommendations[0]
	// Tomato's 3-day cadence stretches to 4 in July, so 3 days ago is on time.
	assert.Equal(t, 4, rec.RecommendedFrequency)
	assert.Equal(t, irrigation.StatusOnSchedule, rec.Status)

	// Garden 2 has no events in the window.
	assert.Equal(t, irrigation.StatusNoData, out.Gardens[1].Summary.Recommendations[0].Status)
}

func TestIrrigationSummaryUsesMostDemandingPlanting(t *testing.T) {
	gr, sr, wr := newFixture()
	gr.plantings[1] = []entities.Planting{
		{PlantingID: 1, GardenID: 1, PlantName: "Carrot"},  // every 4 days
		{PlantingID: 2, GardenID: 1, PlantName: "Lettuce"}, // every 2 days
	}
	wr.events[1] = []entities.IrrigationEvent{{EventID: 1, GardenID: 1, WateredAt: advisorNow.Add(-2 * 24 * time.Hour)}}

	out, err := newSvc(gr, sr, wr).IrrigationSummary("u1", advisorNow)
	require.NoError(t, err)
	rec := out.Gardens[0].Summary.Recommendations[0]
	assert.Equal(t, "Lettuce", rec.PlantName)
	assert.Equal(t, 2, rec.RecommendedFrequency)
}

func TestMostDemandingTieBreaking(t *testing.T) {
	table := reference.NewTable()
	svc := New(table, nil, nil, nil, nil)

	// Pepper and Tomato share the 3-day cadence; Tomato wants more volume.
	got := svc.mostDemanding([]entities.Planting{
		{PlantName: "Pepper"},
		{PlantName: "Tomato"},
	})
	assert.Equal(t, "Tomato", got.Name)

	// Lettuce and Basil tie on cadence and volume: plant name ascending decides.
	got = svc.mostDemanding([]entities.Planting{
		{PlantName: "Lettuce"},
		{PlantName: "Basil"},
	})
	assert.Equal(t, "Basil", got.Name)

	// No plantings at all: the default profile.
	assert.Equal(t, reference.DefaultName, svc.mostDemanding(nil).Name)
}

func TestSystemInsightsZoneAndGardenScopes(t *testing.T) {
	gr, sr, wr := newFixture()
	zoneID := uint(5)
	gr.zones[1] = []entities.Zone{{ZoneID: 5, GardenID: 1, Name: "Drip Row", SoilType: "clay"}}

	// Zone 5 gets daily short runs; the garden-wide history shows the same.
	var events []entities.IrrigationEvent
	for i := 0; i < 5; i++ {
		d := 8
		events = append(events, entities.IrrigationEvent{
			EventID:     uint(i + 1),
			GardenID:    1,
			ZoneID:      &zoneID,
			WateredAt:   advisorNow.Add(-time.Duration(i) * 24 * time.Hour),
			DurationMin: &d,
		})
	}
	wr.events[1] = events

	report, err := newSvc(gr, sr, wr).SystemInsights("u1", advisorNow, 0)
	require.NoError(t, err)
	assert.Equal(t, 30, report.WindowDays)

	// Each rule fires once per scope, ordered rule id then scope.
	var keys [][2]string
	for _, ins := range report.Insights {
		keys = append(keys, [2]string{ins.RuleID, ins.Scope})
	}
	assert.Equal(t, [][2]string{
		{irrigation.RuleShortRuns, "garden:1"},
		{irrigation.RuleShortRuns, "zone:5"},
		{irrigation.RuleShortInterval, "garden:1"},
		{irrigation.RuleShortInterval, "zone:5"},
	}, keys)
}

func TestSystemInsightsSoilConflictAcrossZones(t *testing.T) {
	gr, sr, wr := newFixture()
	// Garden 2 is sandy; a clay zone creates the conflict at garden scope.
	gr.zones[2] = []entities.Zone{{ZoneID: 7, GardenID: 2, Name: "Clay Corner", SoilType: "clay"}}

	report, err := newSvc(gr, sr, wr).SystemInsights("u1", advisorNow, 14)
	require.NoError(t, err)
	assert.Equal(t, 14, report.WindowDays)

	require.Len(t, report.Insights, 1)
	ins := report.Insights[0]
	assert.Equal(t, irrigation.RuleSoilConflict, ins.RuleID)
	assert.Equal(t, "garden:2", ins.Scope)
}

func TestSystemInsightsIsolatesRepoFailures(t *testing.T) {
	gr, sr, wr := newFixture()
	wr.fail[1] = errors.New("timeout")
	gr.zones[2] = []entities.Zone{{ZoneID: 7, GardenID: 2, SoilType: "clay"}}

	report, err := newSvc(gr, sr, wr).SystemInsights("u1", advisorNow, 0)
	require.NoError(t, err)

	require.Len(t, report.Errors, 1)
	assert.Equal(t, uint(1), report.Errors[0].GardenID)
	require.Len(t, report.Insights, 1)
	assert.Equal(t, "garden:2", report.Insights[0].Scope)
}

func TestSystemInsightsAttachesArticles(t *testing.T) {
	gr, sr, wr := newFixture()
	gr.zones[2] = []entities.Zone{{ZoneID: 7, GardenID: 2, SoilType: "clay"}}
	kb := &fakeKB{refs: []entities.ArticleRef{{Title: "Soil texture and watering", URL: "https://example.org/soil"}}}

	svc := New(reference.NewTable(), gr, sr, wr, kb)
	report, err := svc.SystemInsights("u1", advisorNow, 0)
	require.NoError(t, err)

	require.Len(t, report.Insights, 1)
	require.Len(t, report.Insights[0].RelatedArticles, 1)
	assert.Equal(t, "Soil texture and watering", report.Insights[0].RelatedArticles[0].Title)
}

func TestSystemInsightsReproducible(t *testing.T) {
	gr, sr, wr := newFixture()
	zoneID := uint(5)
	gr.zones[1] = []entities.Zone{{ZoneID: 5, GardenID: 1, SoilType: "clay"}}
	var events []entities.IrrigationEvent
	for i := 0; i < 6; i++ {
		events = append(events, entities.IrrigationEvent{
			EventID:   uint(i + 1),
			GardenID:  1,
			ZoneID:    &zoneID,
			WateredAt: advisorNow.Add(-time.Duration(i) * 24 * time.Hour),
		})
	}
	wr.events[1] = events

	svc := newSvc(gr, sr, wr)
	first, err := svc.SystemInsights("u1", advisorNow, 0)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := svc.SystemInsights("u1", advisorNow, 0)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
