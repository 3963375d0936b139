// internal/domain/symptom/catalog.go
package symptom

import "sort"

// Category is one screening checklist with its food recommendations.
type Category struct {
	Key      string
	Title    string
	Symptoms []string
	Foods    []string
}

// DefaultCategory is shown when no category is requested.
const DefaultCategory = "breast"

var catalog = map[string]Category{
	"breast": {
		Key:   "breast",
		Title: "Breast Cancer Screening",
		Symptoms: []string{
			"Lump in breast or underarm",
			"Change in breast size or shape",
			"Skin dimpling or puckering",
			"Nipple discharge (not milk)",
			"Redness or flaky skin on breast",
			"Pain in any area of the breast",
			"Swelling of all or part of breast",
			"Nipple turning inward",
		},
		Foods: []string{
			"Broccoli & cruciferous vegetables – May reduce cancer risk",
			"Berries – Rich in antioxidants",
			"Green tea – Contains anti-cancer catechins",
			"Turmeric with black pepper – Anti-inflammatory",
			"Walnuts – Reduce inflammation",
			"Garlic – May help slow tumor growth",
		},
	},
	"pcos": {
		Key:   "pcos",
		Title: "PCOD / PCOS Check",
		Symptoms: []string{
			"Irregular periods",
			"Heavy menstrual bleeding",
			"Excessive hair growth (face/body)",
			"Acne or oily skin",
			"Weight gain around abdomen",
			"Hair thinning or hair loss",
			"Darkening of skin (neck, groin)",
			"Difficulty getting pregnant",
		},
		Foods: []string{
			"Cinnamon tea – Regulates insulin",
			"Spearmint tea – Reduces androgen levels",
			"Leafy greens – Rich in iron & vitamins",
			"Fatty fish – Reduce inflammation",
			"Flaxseeds – Hormone balancing",
			"Sweet potatoes – Low glycemic index",
		},
	},
	"iron": {
		Key:   "iron",
		Title: "Iron Deficiency Screening",
		Symptoms: []string{
			"Extreme fatigue or weakness",
			"Pale skin",
			"Shortness of breath",
			"Dizziness or lightheadedness",
			"Cold hands and feet",
			"Brittle nails",
			"Unusual cravings (ice, dirt)",
			"Frequent headaches",
		},
		Foods: []string{
			"Spinach – Iron rich",
			"Lentils – Plant-based iron",
			"Beetroot juice – Boosts hemoglobin",
			"Pomegranate – Rich in iron",
			"Jaggery – Traditional iron source",
			"Vitamin C fruits – Improve iron absorption",
		},
	},
}

// Lookup returns the category for key.
func Lookup(key string) (Category, bool) {
	c, ok := catalog[key]
	return c, ok
}

// Keys lists the category keys in a stable order.
func Keys() []string {
	keys := make([]string, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
