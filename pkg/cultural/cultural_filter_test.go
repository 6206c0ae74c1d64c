package cultural

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/entities"
	"Recipe-Hub/internal/testutil"
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterScopeEmptyFilterAddsNothing(t *testing.T) {
	db := testutil.DryRunDB(t)

	var recipes []*entities.Recipe
	stmt := db.Model(&entities.Recipe{}).Scopes(FilterScope(domain.CulturalFilter{
		Region:    "  ",
		DietTypes: []string{""},
	})).Find(&recipes).Statement

	sql := stmt.SQL.String()
	assert.NotContains(t, sql, "cultural_tags")
	assert.NotContains(t, sql, "WHERE")
	assert.Empty(t, stmt.Vars)
}

func TestFilterScopeCompilesEveryFacet(t *testing.T) {
	db := testutil.DryRunDB(t)

	var recipes []*entities.Recipe
	stmt := db.Model(&entities.Recipe{}).Scopes(FilterScope(domain.CulturalFilter{
		Religion:         "HINDU",
		DietTypes:        []string{"VEGETARIAN", "VEGAN"},
		CuisineTypes:     []string{"INDIAN"},
		SpiceLevel:       "HOT",
		Region:           "Kerala",
		Festival:         "Onam",
		AvoidIngredients: []string{"peanut"},
	})).Find(&recipes).Statement
	sql := stmt.SQL.String()

	assert.Contains(t, sql, "LEFT JOIN cultural_tags ON cultural_tags.recipe_id = recipes.id")
	assert.Contains(t, sql, "cultural_tags.religion = $1")
	assert.Contains(t, sql, "cultural_tags.diet_types && $2")
	assert.Contains(t, sql, "COALESCE(NULLIF(cultural_tags.cuisine_type, ''), recipes.cuisine_type) IN ($3)")
	assert.Contains(t, sql, "cultural_tags.spice_level = $4")
	assert.Contains(t, sql, "cultural_tags.region ILIKE $5")
	assert.Contains(t, sql, "cultural_tags.festival ILIKE $6")
	assert.Contains(t, sql, "NOT EXISTS (SELECT 1 FROM ingredients")

	require.Len(t, stmt.Vars, 7)
	assert.Equal(t, "HINDU", stmt.Vars[0])
	assert.Equal(t, "%Kerala%", stmt.Vars[4])
	assert.Equal(t, "%Onam%", stmt.Vars[5])
}

func TestFilterScopeOnlyPresentFacets(t *testing.T) {
	db := testutil.DryRunDB(t)

	var recipes []*entities.Recipe
	stmt := db.Model(&entities.Recipe{}).Scopes(FilterScope(domain.CulturalFilter{
		SpiceLevel: "MILD",
	})).Find(&recipes).Statement
	sql := stmt.SQL.String()

	assert.Contains(t, sql, "cultural_tags.spice_level = $1")
	assert.NotContains(t, sql, "religion")
	assert.NotContains(t, sql, "ingredients")
	assert.Equal(t, []any{"MILD"}, stmt.Vars)
}

func sampleRecipe() domain.Recipe {
	return domain.Recipe{
		Title:       "Avial",
		CuisineType: "INDIAN",
		Ingredients: []domain.Ingredient{{Name: "Coconut"}, {Name: "Green Beans"}},
		CulturalTag: &domain.CulturalTag{
			DietTypes:  []string{"VEGETARIAN", "GLUTEN_FREE"},
			SpiceLevel: "MILD",
			Religion:   "HINDU",
			Region:     "Kerala",
			Festival:   "Onam Sadya",
		},
	}
}

// matchesFilter mirrors FilterScope over a loaded recipe. The in-memory repository filters
// through it, so any rule change in FilterScope has to be made here too.
func matchesFilter(r domain.Recipe, f domain.CulturalFilter) bool {
	f = normalizeFilter(f)
	if f.IsEmpty() {
		return true
	}
	tag := domain.CulturalTag{}
	if r.CulturalTag != nil {
		tag = *r.CulturalTag
	}

	if f.Religion != "" && tag.Religion != f.Religion {
		return false
	}
	if len(f.DietTypes) > 0 && !slices.ContainsFunc(tag.DietTypes, func(d string) bool {
		return slices.Contains(f.DietTypes, d)
	}) {
		return false
	}
	if len(f.CuisineTypes) > 0 {
		cuisine := tag.CuisineType
		if cuisine == "" {
			cuisine = r.CuisineType
		}
		if !slices.Contains(f.CuisineTypes, cuisine) {
			return false
		}
	}
	if f.SpiceLevel != "" && tag.SpiceLevel != f.SpiceLevel {
		return false
	}
	if f.Region != "" && !containsFold(tag.Region, f.Region) {
		return false
	}
	if f.Festival != "" && !containsFold(tag.Festival, f.Festival) {
		return false
	}
	for _, avoid := range f.AvoidIngredients {
		for _, ing := range r.Ingredients {
			if containsFold(ing.Name, avoid) {
				return false
			}
		}
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func TestMatchesFilter(t *testing.T) {
	r := sampleRecipe()

	tests := []struct {
		name   string
		filter domain.CulturalFilter
		want   bool
	}{
		{"empty filter", domain.CulturalFilter{}, true},
		{"religion", domain.CulturalFilter{Religion: "HINDU"}, true},
		{"other religion", domain.CulturalFilter{Religion: "JAIN"}, false},
		{"any diet type", domain.CulturalFilter{DietTypes: []string{"VEGAN", "GLUTEN_FREE"}}, true},
		{"no diet overlap", domain.CulturalFilter{DietTypes: []string{"VEGAN"}}, false},
		{"cuisine falls back to recipe", domain.CulturalFilter{CuisineTypes: []string{"THAI", "INDIAN"}}, true},
		{"region substring", domain.CulturalFilter{Region: "kera"}, true},
		{"festival substring", domain.CulturalFilter{Festival: "onam"}, true},
		{"avoid ingredient substring", domain.CulturalFilter{AvoidIngredients: []string{"coco"}}, false},
		{"avoid absent ingredient", domain.CulturalFilter{AvoidIngredients: []string{"peanut"}}, true},
		{"facets are conjunctive", domain.CulturalFilter{Religion: "HINDU", SpiceLevel: "HOT"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesFilter(r, tt.filter))
		})
	}
}

func TestMatchesFilterUntaggedRecipe(t *testing.T) {
	r := domain.Recipe{CuisineType: "ITALIAN"}

	assert.True(t, matchesFilter(r, domain.CulturalFilter{CuisineTypes: []string{"ITALIAN"}}))
	assert.False(t, matchesFilter(r, domain.CulturalFilter{DietTypes: []string{"VEGAN"}}))
}

func TestPreferenceFilterKeepsDietaryFacets(t *testing.T) {
	f := PreferenceFilter(domain.CulturalPreference{
		Religion:         "HINDU",
		DietTypes:        []string{"VEGETARIAN"},
		CuisineTypes:     []string{"INDIAN"},
		SpiceLevel:       "HOT",
		Festivals:        []string{"Diwali"},
		AvoidIngredients: []string{"egg"},
	})

	assert.Equal(t, domain.CulturalFilter{
		DietTypes:        []string{"VEGETARIAN"},
		CuisineTypes:     []string{"INDIAN"},
		AvoidIngredients: []string{"egg"},
	}, f)
}

func TestCulturalRepositoryFilters(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	ctx := context.Background()
	repo := NewCulturalRepository(tx)

	chef := testutil.SeedUser(t, ctx, tx, "Chef")
	avial := testutil.SeedRecipe(t, ctx, tx, chef.ID, "Avial", "Coconut", "Beans")
	testutil.SeedCulturalTag(t, ctx, tx, avial.ID, entities.CulturalTag{
		CuisineType: "INDIAN", DietTypes: pq.StringArray{"VEGETARIAN"}, Region: "Kerala",
	})
	satay := testutil.SeedRecipe(t, ctx, tx, chef.ID, "Satay", "Peanut", "Chicken")
	testutil.SeedCulturalTag(t, ctx, tx, satay.ID, entities.CulturalTag{
		CuisineType: "THAI", DietTypes: pq.StringArray{"NON_VEGETARIAN"},
	})
	testutil.SeedRecipe(t, ctx, tx, chef.ID, "Toast", "Bread")

	found, total, err := repo.GetRecipes(ctx, domain.CulturalFilter{DietTypes: []string{"VEGETARIAN"}}, "", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, found, 1)
	assert.Equal(t, avial.ID, found[0].ID)
	assert.Len(t, found[0].Ingredients, 2)

	_, total, err = repo.GetRecipes(ctx, domain.CulturalFilter{AvoidIngredients: []string{"PEANUT"}}, "", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	_, total, err = repo.GetRecipes(ctx, domain.CulturalFilter{}, chef.ID.String(), 0, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
}
