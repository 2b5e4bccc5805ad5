package schema

import "fmt"

// categoryTitles maps canonical categories to display titles for tables.
var categoryTitles = map[PolicyCategory]string{
	CategoryEmployment:    "Employment",
	CategoryHousing:       "Housing",
	CategoryEducation:     "Education",
	CategoryWelfare:       "Welfare/Culture",
	CategoryParticipation: "Participation/Rights",
}

// CategoryTitle returns the display title for a category.
func CategoryTitle(cat PolicyCategory) string {
	if title, ok := categoryTitles[cat]; ok {
		return title
	}
	return string(cat)
}

// TierTitle returns the display title for a tier.
func TierTitle(tier Tier) string {
	switch tier {
	case MetroTier:
		return "Metro"
	case BasicTier:
		return "Basic"
	default:
		return string(tier)
	}
}

// ParseTier resolves a user-supplied tier label.
func ParseTier(s string) (Tier, error) {
	switch s {
	case string(MetroTier), "metro":
		return MetroTier, nil
	case string(BasicTier), "basic":
		return BasicTier, nil
	default:
		return "", fmt.Errorf("unknown tier %q (expected metropolitan or municipal)", s)
	}
}
