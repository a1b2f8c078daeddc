package reference

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadFromFiles builds the profile table from the builtin rows plus optional
// override files. Empty paths are skipped; a missing override file is the
// caller's warning to log, not a fatal condition here.
func LoadFromFiles(profileCSV, profileXLSX string) (*Table, error) {
	t := NewTable()
	if profileCSV != "" {
		if err := t.loadCSV(profileCSV); err != nil {
			return nil, err
		}
	}
	if profileXLSX != "" {
		if err := t.loadXLSX(profileXLSX); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Table) loadCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	head, err := cr.Read()
	if err != nil {
		return err
	}

	norm := func(s string) string {
		s = strings.TrimPrefix(strings.TrimSpace(s), "\ufeff")
		return normalize(s)
	}
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cName := findAny("Plant", "plant_name", "name", "crop")
	cPHLo := findAny("ph_min", "phlow", "ph_low")
	cPHHi := findAny("ph_max", "phhigh", "ph_high")
	cNLo := findAny("n_min", "nitrogen_min", "nmin")
	cNHi := findAny("n_max", "nitrogen_max", "nmax")
	cPLo := findAny("p_min", "phosphorus_min", "pmin")
	cPHi := findAny("p_max", "phosphorus_max", "pmax")
	cKLo := findAny("k_min", "potassium_min", "kmin")
	cKHi := findAny("k_max", "potassium_max", "kmax")
	cFreq := findAny("watering_frequency_days", "frequency", "freq_days")
	cVol := findAny("watering_volume_l_sqft", "volume", "volume_liters_sqft")
	cNote := findAny("Notes", "note", "remark", "tips")

	if cName == -1 || cPHLo == -1 || cPHHi == -1 {
		return fmt.Errorf("profile CSV missing required columns. Found headers: %v\nNeed at least: plant_name, ph_min, ph_max", head)
	}

	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		pf := func(idx int, def float64) float64 {
			if v, err := strconv.ParseFloat(get(idx), 64); err == nil {
				return v
			}
			return def
		}

		name := get(cName)
		if name == "" {
			continue
		}
		base := t.Lookup(name) // start from builtin row or Default
		p := Profile{
			Name:          name,
			PH:            Range{pf(cPHLo, base.PH.Min), pf(cPHHi, base.PH.Max)},
			NitrogenPPM:   Range{pf(cNLo, base.NitrogenPPM.Min), pf(cNHi, base.NitrogenPPM.Max)},
			PhosphorusPPM: Range{pf(cPLo, base.PhosphorusPPM.Min), pf(cPHi, base.PhosphorusPPM.Max)},
			PotassiumPPM:  Range{pf(cKLo, base.PotassiumPPM.Min), pf(cKHi, base.PotassiumPPM.Max)},

			WateringFrequencyDays:  base.WateringFrequencyDays,
			WateringVolumeLPerSqFt: pf(cVol, base.WateringVolumeLPerSqFt),
			Notes:                  get(cNote),
		}
		if v, err := strconv.Atoi(get(cFreq)); err == nil && v > 0 {
			p.WateringFrequencyDays = v
		}
		if p.Notes == "" {
			p.Notes = base.Notes
		}
		t.put(p)
	}
	return nil
}

// loadXLSX reads override rows from the first sheet, same columns as the CSV.
func (t *Table) loadXLSX(path string) error {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return err
	}
	if len(rows) < 2 {
		return nil
	}

	// Reuse the CSV path: serialize the sheet back through csv semantics by
	// mapping headers the same way.
	hmap := map[string]int{}
	for i, h := range rows[0] {
		hmap[normalize(h)] = i
	}
	get := func(rec []string, keys ...string) string {
		for _, k := range keys {
			if idx, ok := hmap[normalize(k)]; ok && idx < len(rec) {
				return strings.TrimSpace(rec[idx])
			}
		}
		return ""
	}

	for _, rec := range rows[1:] {
		name := get(rec, "Plant", "plant_name", "name", "crop")
		if name == "" {
			continue
		}
		base := t.Lookup(name)
		p := base
		p.Name = name
		setF := func(dst *float64, keys ...string) {
			if v, err := strconv.ParseFloat(get(rec, keys...), 64); err == nil {
				*dst = v
			}
		}
		setF(&p.PH.Min, "ph_min")
		setF(&p.PH.Max, "ph_max")
		setF(&p.NitrogenPPM.Min, "n_min", "nitrogen_min")
		setF(&p.NitrogenPPM.Max, "n_max", "nitrogen_max")
		setF(&p.PhosphorusPPM.Min, "p_min", "phosphorus_min")
		setF(&p.PhosphorusPPM.Max, "p_max", "phosphorus_max")
		setF(&p.PotassiumPPM.Min, "k_min", "potassium_min")
		setF(&p.PotassiumPPM.Max, "k_max", "potassium_max")
		setF(&p.WateringVolumeLPerSqFt, "watering_volume_l_sqft", "volume")
		if v, err := strconv.Atoi(get(rec, "watering_frequency_days", "frequency")); err == nil && v > 0 {
			p.WateringFrequencyDays = v
		}
		if n := get(rec, "Notes", "note", "tips"); n != "" {
			p.Notes = n
		}
		t.put(p)
	}
	return nil
}
