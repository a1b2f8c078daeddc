package reference

import (
	"fmt"
	"strings"
)

// Range is a closed optimal interval for a measured soil parameter.
type Range struct {
	Min float64
	Max float64
}

func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

func (r Range) Format(unit string) string {
	if unit == "" {
		return fmt.Sprintf("%.1f - %.1f", r.Min, r.Max)
	}
	return fmt.Sprintf("%.1f - %.1f %s", r.Min, r.Max, unit)
}

// Profile holds the optimal chemistry and watering ranges for one plant type.
type Profile struct {
	Name          string
	PH            Range
	NitrogenPPM   Range
	PhosphorusPPM Range
	PotassiumPPM  Range

	WateringFrequencyDays  int
	WateringVolumeLPerSqFt float64

	Notes string
}

// DefaultName is the profile returned for plants the table does not know.
const DefaultName = "Default"

// builtin covers the common garden plants. Rows can be overridden or extended
// from config files at startup, see LoadFromFiles.
var builtin = []Profile{
	{Name: DefaultName, PH: Range{6.0, 7.0}, NitrogenPPM: Range{20, 40}, PhosphorusPPM: Range{20, 40}, PotassiumPPM: Range{100, 200}, WateringFrequencyDays: 3, WateringVolumeLPerSqFt: 1.5, Notes: "general garden guidance"},
	{Name: "Tomato", PH: Range{6.0, 6.8}, NitrogenPPM: Range{20, 50}, PhosphorusPPM: Range{25, 50}, PotassiumPPM: Range{150, 250}, WateringFrequencyDays: 3, WateringVolumeLPerSqFt: 1.9, Notes: "heavy feeder; deep, even watering prevents blossom end rot"},
	{Name: "Pepper", PH: Range{6.0, 6.8}, NitrogenPPM: Range{20, 40}, PhosphorusPPM: Range{25, 50}, PotassiumPPM: Range{150, 250}, WateringFrequencyDays: 3, WateringVolumeLPerSqFt: 1.5, Notes: "dislikes waterlogged soil"},
	{Name: "Lettuce", PH: Range{6.0, 7.0}, NitrogenPPM: Range{25, 50}, PhosphorusPPM: Range{20, 40}, PotassiumPPM: Range{100, 200}, WateringFrequencyDays: 2, WateringVolumeLPerSqFt: 1.0, Notes: "shallow roots; frequent light watering"},
	{Name: "Carrot", PH: Range{6.0, 6.8}, NitrogenPPM: Range{10, 30}, PhosphorusPPM: Range{25, 50}, PotassiumPPM: Range{150, 250}, WateringFrequencyDays: 4, WateringVolumeLPerSqFt: 1.2, Notes: "excess nitrogen forks the roots"},
	{Name: "Cucumber", PH: Range{6.0, 7.0}, NitrogenPPM: Range{20, 40}, PhosphorusPPM: Range{25, 50}, PotassiumPPM: Range{150, 250}, WateringFrequencyDays: 2, WateringVolumeLPerSqFt: 2.0, Notes: "thirsty during fruit set"},
	{Name: "Squash", PH: Range{6.0, 6.8}, NitrogenPPM: Range{20, 40}, PhosphorusPPM: Range{25, 50}, PotassiumPPM: Range{150, 250}, WateringFrequencyDays: 3, WateringVolumeLPerSqFt: 1.8, Notes: "water at the base to limit powdery mildew"},
	{Name: "Basil", PH: Range{6.0, 7.5}, NitrogenPPM: Range{20, 40}, PhosphorusPPM: Range{20, 40}, PotassiumPPM: Range{100, 200}, WateringFrequencyDays: 2, WateringVolumeLPerSqFt: 1.0, Notes: "keep evenly moist, never soggy"},
	{Name: "Strawberry", PH: Range{5.5, 6.8}, NitrogenPPM: Range{20, 40}, PhosphorusPPM: Range{25, 50}, PotassiumPPM: Range{150, 250}, WateringFrequencyDays: 2, WateringVolumeLPerSqFt: 1.2, Notes: "mulch keeps fruit off wet soil"},
	{Name: "Blueberry", PH: Range{4.5, 5.5}, NitrogenPPM: Range{10, 30}, PhosphorusPPM: Range{10, 30}, PotassiumPPM: Range{60, 150}, WateringFrequencyDays: 3, WateringVolumeLPerSqFt: 1.5, Notes: "needs acidic soil; amend with sulfur, not lime"},
	{Name: "Potato", PH: Range{5.0, 6.0}, NitrogenPPM: Range{20, 40}, PhosphorusPPM: Range{25, 50}, PotassiumPPM: Range{150, 300}, WateringFrequencyDays: 4, WateringVolumeLPerSqFt: 1.5, Notes: "slightly acidic soil discourages scab"},
	{Name: "Bean", PH: Range{6.0, 7.0}, NitrogenPPM: Range{10, 25}, PhosphorusPPM: Range{25, 50}, PotassiumPPM: Range{100, 200}, WateringFrequencyDays: 3, WateringVolumeLPerSqFt: 1.2, Notes: "fixes its own nitrogen; skip nitrogen-heavy feeds"},
	{Name: "Rose", PH: Range{6.0, 7.0}, NitrogenPPM: Range{20, 40}, PhosphorusPPM: Range{25, 50}, PotassiumPPM: Range{150, 250}, WateringFrequencyDays: 4, WateringVolumeLPerSqFt: 2.0, Notes: "deep weekly soak beats frequent sprinkles"},
}

// Table is the read-only profile lookup. Built once at startup.
type Table struct {
	byName map[string]Profile
	def    Profile
}

func NewTable() *Table {
	t := &Table{byName: map[string]Profile{}}
	for _, p := range builtin {
		t.put(p)
	}
	return t
}

func (t *Table) put(p Profile) {
	if normalize(p.Name) == normalize(DefaultName) {
		t.def = p
	}
	t.byName[normalize(p.Name)] = p
}

// Lookup resolves a plant common name to its profile. Unknown names return the
// Default profile; there is no error path.
func (t *Table) Lookup(name string) Profile {
	if p, ok := t.byName[normalize(name)]; ok {
		return p
	}
	return t.def
}

// Known reports whether the name resolves to a specific profile rather than
// falling back to Default.
func (t *Table) Known(name string) bool {
	_, ok := t.byName[normalize(name)]
	return ok
}

func normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}
