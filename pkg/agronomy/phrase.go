package agronomy

import (
	"fmt"
	"strings"

	"garden/pkg/reference"
)

// Phrasing is kept apart from the rule decisions so the numeric layer stays
// exhaustively testable and the English stays editable.

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func plantPhrase(p reference.Profile) string {
	if p.Name == "" || p.Name == reference.DefaultName {
		return "this plant"
	}
	return strings.ToLower(p.Name)
}

func phrase(d decision, p reference.Profile) string {
	switch d.parameter {
	case "pH":
		return phrasePH(d, p)
	case "Nitrogen":
		return phraseNutrient(d, p, "nitrogen", "blood meal")
	case "Phosphorus":
		return phraseNutrient(d, p, "phosphorus", "bone meal")
	case "Potassium":
		return phraseNutrient(d, p, "potassium", "greensand")
	case "OrganicMatter":
		return phraseOrganicMatter(d)
	case "Moisture":
		return phraseMoisture(d)
	}
	return ""
}

func phrasePH(d decision, p reference.Profile) string {
	switch d.side {
	case sideIn:
		return fmt.Sprintf("Soil pH %.1f is in the optimal range for %s. No amendment needed.", d.value, plantPhrase(p))
	case sideBelow:
		msg := fmt.Sprintf("Add %.1f lbs of dolomitic lime per 100 sq ft to raise pH from %.1f toward %.1f.", d.amount, d.value, d.rng.Min)
		if d.status == StatusCritical {
			msg += " Retest two weeks after applying; strongly acidic soil locks out most nutrients."
		}
		return msg
	default:
		msg := fmt.Sprintf("Add %.1f lbs of elemental sulfur per 100 sq ft to lower pH from %.1f toward %.1f.", d.amount, d.value, d.rng.Max)
		if d.status == StatusCritical {
			msg += " Alkaline soil at this level causes iron chlorosis; apply in split doses."
		}
		return msg
	}
}

func phraseNutrient(d decision, p reference.Profile, nutrient, amendment string) string {
	switch d.side {
	case sideIn:
		return fmt.Sprintf("%s level %.0f ppm is in the optimal range for %s.", capitalize(nutrient), d.value, plantPhrase(p))
	case sideBelow:
		msg := fmt.Sprintf("Apply %.1f lbs of %s per 100 sq ft to correct the %.0f ppm %s deficit.", d.amount, amendment, d.deviation, nutrient)
		if d.status == StatusCritical {
			msg += " Work it into the top few inches and water in; the shortfall is severe."
		}
		return msg
	default:
		// Excess: advisory only, no computed amount.
		msg := fmt.Sprintf("%s is above the optimal range; avoid fertilizing with %s-rich amendments until levels drop.", capitalize(nutrient), nutrient)
		if d.status == StatusCritical {
			msg += " Consider a fast-growing cover crop to draw down the surplus."
		}
		return msg
	}
}

func phraseOrganicMatter(d decision) string {
	switch d.side {
	case sideIn:
		return fmt.Sprintf("Organic matter %.1f%% is in the healthy range.", d.value)
	case sideBelow:
		msg := fmt.Sprintf("Work in a %.1f inch layer of finished compost to rebuild organic matter from %.1f%%.", d.amount, d.value)
		if d.status == StatusCritical {
			msg += " Follow with a 2-3 inch mulch layer and plan a cover crop for the off season."
		}
		return msg
	default:
		if d.status == StatusCritical {
			return fmt.Sprintf("Organic matter %.1f%% is far above the band; hold off on compost and manure for the season and check drainage.", d.value)
		}
		return fmt.Sprintf("Organic matter %.1f%% is above the band; skip further compost this season.", d.value)
	}
}

func phraseMoisture(d decision) string {
	switch d.side {
	case sideIn:
		return fmt.Sprintf("Soil moisture %.0f%% is in the healthy range.", d.value)
	case sideBelow:
		if d.status == StatusCritical {
			return fmt.Sprintf("Soil moisture %.0f%% is critically low. Water deeply now and add 2-3 inches of mulch to slow evaporation.", d.value)
		}
		return fmt.Sprintf("Soil moisture %.0f%% is below the healthy range. Increase watering depth and mulch exposed beds.", d.value)
	default:
		if d.status == StatusCritical {
			return fmt.Sprintf("Soil moisture %.0f%% is critically high. Stop irrigation and improve drainage; consider raised beds for this area.", d.value)
		}
		return fmt.Sprintf("Soil moisture %.0f%% is above the healthy range. Pause irrigation until the top inches dry out.", d.value)
	}
}
