package recipe

import (
	"Recipe-Hub/entities"
	"Recipe-Hub/internal/testutil"
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSearchScopeSQL(t *testing.T) {
	db := testutil.DryRunDB(t)

	var recipes []*entities.Recipe
	stmt := db.Model(&entities.Recipe{}).Scopes(SearchScope("  curry ")).Find(&recipes).Statement
	sql := stmt.SQL.String()

	assert.Contains(t, sql, "recipes.title ILIKE $1")
	assert.Contains(t, sql, "unnest(recipes.tags)")
	assert.Equal(t, "%curry%", stmt.Vars[0])

	stmt = db.Model(&entities.Recipe{}).Scopes(SearchScope("")).Find(&recipes).Statement
	assert.NotContains(t, stmt.SQL.String(), "ILIKE")
}

func TestRecipeRepositoryLifecycle(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	ctx := context.Background()
	repo := NewRecipeRepository(tx)

	chef := testutil.SeedUser(t, ctx, tx, "Chef")
	fan := testutil.SeedUser(t, ctx, tx, "Fan")

	recipe := &entities.Recipe{ID: uuid.New(), UserID: chef.ID, Title: "Chana Masala", Servings: 2,
		Ingredients: []*entities.Ingredient{{ID: uuid.New(), Name: "Chickpeas"}, {ID: uuid.New(), Name: "Onion"}},
		CulturalTag: &entities.CulturalTag{ID: uuid.New(), CuisineType: "INDIAN"},
	}
	require.NoError(t, repo.CreateRecipe(ctx, recipe))

	require.NoError(t, repo.CreateLike(ctx, &entities.Like{ID: uuid.New(), UserID: fan.ID, RecipeID: recipe.ID}))
	err := testutil.Savepoint(tx, func(tx *gorm.DB) error {
		return NewRecipeRepository(tx).CreateLike(ctx, &entities.Like{ID: uuid.New(), UserID: fan.ID, RecipeID: recipe.ID})
	})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	require.NoError(t, repo.UpsertRating(ctx, &entities.Rating{UserID: fan.ID, RecipeID: recipe.ID, Value: 2}))
	require.NoError(t, repo.UpsertRating(ctx, &entities.Rating{UserID: fan.ID, RecipeID: recipe.ID, Value: 4}))
	require.NoError(t, repo.BookmarkRecipe(ctx, fan.ID, recipe.ID))
	require.NoError(t, repo.BookmarkRecipe(ctx, fan.ID, recipe.ID))
	require.NoError(t, repo.RecordView(ctx, recipe.ID, nil))
	testutil.SeedComment(t, ctx, tx, fan.ID, recipe.ID, time.Now())
	require.NoError(t, repo.AddRecipeHistory(ctx, fan.ID, recipe.ID))
	plan := &entities.MealPlan{ID: uuid.New(), UserID: fan.ID, Name: "Week", WeekStart: time.Now()}
	require.NoError(t, tx.Create(plan).Error)
	require.NoError(t, tx.Create(&entities.MealPlanItem{ID: uuid.New(), MealPlanID: plan.ID, RecipeID: recipe.ID,
		DayOfWeek: "MONDAY", MealType: "DINNER", Servings: 2}).Error)

	stats, err := repo.GetStats(ctx, []uuid.UUID{recipe.ID})
	require.NoError(t, err)
	assert.Equal(t, Stats{RecipeID: recipe.ID, LikesCount: 1, CommentsCount: 1, RatingsCount: 1, AverageRating: 4}, stats[recipe.ID])

	viewer, err := repo.GetViewerState(ctx, fan.ID.String(), []uuid.UUID{recipe.ID})
	require.NoError(t, err)
	row := viewer[recipe.ID]
	assert.True(t, row.IsLiked)
	assert.True(t, row.IsBookmarked)
	require.NotNil(t, row.MyRating)
	assert.Equal(t, 4, *row.MyRating)

	loaded, err := repo.GetRecipeByID(ctx, recipe.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.ViewCount)
	require.Len(t, loaded.Ingredients, 2)
	assert.Equal(t, "Chickpeas", loaded.Ingredients[0].Name)

	require.NoError(t, repo.DeleteRecipe(ctx, recipe.ID.String()))
	_, err = repo.GetRecipeByID(ctx, recipe.ID.String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	dependents := []interface{}{
		&entities.Ingredient{},
		&entities.Comment{},
		&entities.Like{},
		&entities.Rating{},
		&entities.RecipeBookmark{},
		&entities.RecipeView{},
		&entities.RecipeHistory{},
		&entities.MealPlanItem{},
		&entities.CulturalTag{},
	}
	for _, model := range dependents {
		var leftovers int64
		require.NoError(t, tx.Model(model).Where("recipe_id = ?", recipe.ID).Count(&leftovers).Error)
		assert.Zero(t, leftovers, "%T rows left after delete", model)
	}

	var plans int64
	require.NoError(t, tx.Model(&entities.MealPlan{}).Where("id = ?", plan.ID).Count(&plans).Error)
	assert.Equal(t, int64(1), plans)
}

var recipeDependentTables = []string{
	"ingredients",
	"comments",
	"likes",
	"ratings",
	"recipe_bookmarks",
	"recipe_views",
	"recipe_histories",
	"meal_plan_items",
	"cultural_tags",
}

func TestDeleteRecipeClearsDependentsInOneTransaction(t *testing.T) {
	db, mock := testutil.MockDB(t)
	id := uuid.NewString()

	mock.ExpectBegin()
	for _, table := range recipeDependentTables {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "` + table + `" WHERE recipe_id = $1`)).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "recipes" WHERE id = $1`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, NewRecipeRepository(db).DeleteRecipe(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRecipeMissingRollsBack(t *testing.T) {
	db, mock := testutil.MockDB(t)
	id := uuid.NewString()

	mock.ExpectBegin()
	for _, table := range recipeDependentTables {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "` + table + `" WHERE recipe_id = $1`)).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "recipes" WHERE id = $1`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := NewRecipeRepository(db).DeleteRecipe(context.Background(), id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
