package recipe

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/entities"
	"Recipe-Hub/pkg/user"
	"math"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

func ToCulturalTag(t *entities.CulturalTag) *domain.CulturalTag {
	if t == nil {
		return nil
	}
	return &domain.CulturalTag{
		CuisineType: t.CuisineType,
		DietTypes:   nonNil(t.DietTypes),
		SpiceLevel:  t.SpiceLevel,
		Religion:    t.Religion,
		Region:      t.Region,
		Festival:    t.Festival,
	}
}

func NewCulturalTag(recipeID uuid.UUID, req domain.CulturalTagRequest) *entities.CulturalTag {
	return &entities.CulturalTag{
		ID:          uuid.New(),
		RecipeID:    recipeID,
		CuisineType: req.CuisineType,
		DietTypes:   pq.StringArray(nonNil(req.DietTypes)),
		SpiceLevel:  req.SpiceLevel,
		Religion:    req.Religion,
		Region:      req.Region,
		Festival:    req.Festival,
	}
}

// ToRecipe maps the entity without engagement data; Hydrate fills stats and viewer state.
func ToRecipe(r *entities.Recipe) domain.Recipe {
	out := domain.Recipe{
		ID:              r.ID.String(),
		Author:          user.ToSummary(r.User),
		Title:           r.Title,
		Description:     r.Description,
		ImageURL:        r.ImageURL,
		PrepTimeMinutes: r.PrepTimeMinutes,
		CookTimeMinutes: r.CookTimeMinutes,
		Servings:        r.Servings,
		DifficultyLevel: r.DifficultyLevel,
		CuisineType:     r.CuisineType,
		Steps:           nonNil(r.Steps),
		Tags:            nonNil(r.Tags),
		ViewCount:       r.ViewCount,
		Ingredients:     make([]domain.Ingredient, 0, len(r.Ingredients)),
		CulturalTag:     ToCulturalTag(r.CulturalTag),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if out.Author.ID == "" {
		out.Author.ID = r.UserID.String()
	}
	for _, ing := range r.Ingredients {
		out.Ingredients = append(out.Ingredients, domain.Ingredient{
			ID:       ing.ID.String(),
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}
	return out
}

func ToBrief(r *entities.Recipe) domain.RecipeBrief {
	if r == nil {
		return domain.RecipeBrief{}
	}
	return domain.RecipeBrief{
		ID:              r.ID.String(),
		Title:           r.Title,
		ImageURL:        r.ImageURL,
		PrepTimeMinutes: r.PrepTimeMinutes,
		CookTimeMinutes: r.CookTimeMinutes,
		CuisineType:     r.CuisineType,
	}
}

func ToComment(c *entities.Comment) domain.Comment {
	out := domain.Comment{
		ID:        c.ID.String(),
		RecipeID:  c.RecipeID.String(),
		Author:    user.ToSummary(c.User),
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
	if out.Author.ID == "" {
		out.Author.ID = c.UserID.String()
	}
	return out
}

func applyRequest(r *entities.Recipe, req domain.RecipeRequest) {
	r.Title = req.Title
	r.Description = req.Description
	r.ImageURL = req.ImageURL
	r.PrepTimeMinutes = req.PrepTimeMinutes
	r.CookTimeMinutes = req.CookTimeMinutes
	r.Servings = req.Servings
	r.DifficultyLevel = req.DifficultyLevel
	if r.DifficultyLevel == "" {
		r.DifficultyLevel = domain.DifficultyMedium
	}
	r.CuisineType = req.CuisineType
	r.Steps = pq.StringArray(nonNil(req.Steps))
	r.Tags = pq.StringArray(nonNil(req.Tags))

	r.Ingredients = make([]*entities.Ingredient, 0, len(req.Ingredients))
	for i, ing := range req.Ingredients {
		r.Ingredients = append(r.Ingredients, &entities.Ingredient{
			ID:       uuid.New(),
			RecipeID: r.ID,
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Position: i,
		})
	}
	if req.CulturalTag != nil {
		r.CulturalTag = NewCulturalTag(r.ID, *req.CulturalTag)
	}
}

func RoundRating(v float64) float64 {
	return math.Round(v*100) / 100
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
