package cultural

import (
	"Recipe-Hub/domain"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// FilterScope compiles the filter into SQL over recipes LEFT JOIN cultural_tags.
// Each facet that is set adds one AND-ed predicate; unset facets add nothing.
func FilterScope(f domain.CulturalFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		f = normalizeFilter(f)
		if f.IsEmpty() {
			return db
		}
		db = db.Joins("LEFT JOIN cultural_tags ON cultural_tags.recipe_id = recipes.id")

		if f.Religion != "" {
			db = db.Where("cultural_tags.religion = ?", f.Religion)
		}
		if len(f.DietTypes) > 0 {
			db = db.Where("cultural_tags.diet_types && ?", pq.Array(f.DietTypes))
		}
		if len(f.CuisineTypes) > 0 {
			db = db.Where("COALESCE(NULLIF(cultural_tags.cuisine_type, ''), recipes.cuisine_type) IN ?", f.CuisineTypes)
		}
		if f.SpiceLevel != "" {
			db = db.Where("cultural_tags.spice_level = ?", f.SpiceLevel)
		}
		if f.Region != "" {
			db = db.Where("cultural_tags.region ILIKE ?", "%"+f.Region+"%")
		}
		if f.Festival != "" {
			db = db.Where("cultural_tags.festival ILIKE ?", "%"+f.Festival+"%")
		}
		if len(f.AvoidIngredients) > 0 {
			patterns := make([]string, 0, len(f.AvoidIngredients))
			for _, name := range f.AvoidIngredients {
				patterns = append(patterns, "%"+name+"%")
			}
			db = db.Where(
				"NOT EXISTS (SELECT 1 FROM ingredients WHERE ingredients.recipe_id = recipes.id AND ingredients.name ILIKE ANY (?))",
				pq.Array(patterns),
			)
		}
		return db
	}
}

// normalizeFilter trims facets and drops blank list entries.
func normalizeFilter(f domain.CulturalFilter) domain.CulturalFilter {
	f.Religion = strings.TrimSpace(f.Religion)
	f.SpiceLevel = strings.TrimSpace(f.SpiceLevel)
	f.Region = strings.TrimSpace(f.Region)
	f.Festival = strings.TrimSpace(f.Festival)
	f.DietTypes = compact(f.DietTypes)
	f.CuisineTypes = compact(f.CuisineTypes)
	f.AvoidIngredients = compact(f.AvoidIngredients)
	return f
}

func compact(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// PreferenceFilter keeps the dietary facets of a stored preference (diet types, cuisines and
// ingredients to avoid). Religion, spice level, region and festivals only describe taste and
// would empty the recommendation list for most users.
func PreferenceFilter(p domain.CulturalPreference) domain.CulturalFilter {
	return domain.CulturalFilter{
		DietTypes:        p.DietTypes,
		CuisineTypes:     p.CuisineTypes,
		AvoidIngredients: p.AvoidIngredients,
	}
}
