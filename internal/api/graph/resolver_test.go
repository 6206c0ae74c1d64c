package graph

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/internal/api/reqctx"
	"Recipe-Hub/internal/utils/logger"
	"Recipe-Hub/pkg/cultural"
	"Recipe-Hub/pkg/notification"
	"Recipe-Hub/pkg/recipe"
	"Recipe-Hub/pkg/user"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/graph-gophers/graphql-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecipes struct {
	recipe.RecipeService
	recipe   domain.Recipe
	err      error
	created  int
	lastView string
}

func (f *fakeRecipes) GetRecipe(_ context.Context, id, viewerID string, _ bool) (domain.Recipe, error) {
	f.lastView = viewerID
	if f.err != nil {
		return domain.Recipe{}, f.err
	}
	r := f.recipe
	r.ID = id
	return r, nil
}

func (f *fakeRecipes) CreateRecipe(_ context.Context, _ string, req domain.RecipeRequest) (domain.Recipe, error) {
	f.created++
	return domain.Recipe{ID: "new", Title: req.Title}, nil
}

type fakeUsers struct {
	user.UserService
	profile domain.UserProfile
}

func (f *fakeUsers) Me(_ context.Context, userID string) (domain.UserProfile, error) {
	p := f.profile
	p.ID = userID
	return p, nil
}

type fakeCultural struct {
	cultural.CulturalService
}

func (fakeCultural) Festivals(religion string) []domain.Festival {
	return []domain.Festival{{Name: "Diwali", Religion: religion, Region: "India", Month: 11}}
}

func newTestSchema(t *testing.T, s Services) *graphql.Schema {
	t.Helper()
	schema, err := NewSchema(NewResolver(s, logger.NewNop()))
	require.NoError(t, err)
	return schema
}

func asUser(id string) context.Context {
	return reqctx.With(context.Background(), &reqctx.Request{UserID: id, Role: domain.RoleUser})
}

func errorCodes(resp *graphql.Response) []interface{} {
	codes := make([]interface{}, 0, len(resp.Errors))
	for _, e := range resp.Errors {
		codes = append(codes, e.Extensions["code"])
	}
	return codes
}

// Every service is nil here, so reaching one would panic and surface as a
// different error than UNAUTHENTICATED.
func TestAnonymousCallerIsRejectedBeforeServices(t *testing.T) {
	schema := newTestSchema(t, Services{})

	operations := []string{
		`{ me { user { id } } }`,
		`{ myLocations { id } }`,
		`{ isFollowing(userId: "u-2") }`,
		`{ myRecipes { total } }`,
		`{ bookmarkedRecipes { total } }`,
		`{ cookingHistory { total } }`,
		`{ recommendedRecipes { id } }`,
		`{ myCulturalPreference { id } }`,
		`{ onboardingStatus { currentStep } }`,
		`{ mealPlans { id } }`,
		`{ mealPlan(id: "p-1") { id } }`,
		`{ shoppingLists { id } }`,
		`{ dashboardSummary { recipesCount } }`,
		`{ myCourses { id } }`,
		`{ myEnrollments { id } }`,
		`{ myAnalytics(period: WEEK) { period } }`,
		`{ recipeAnalytics(recipeId: "r-1", period: MONTH) { period } }`,
		`mutation { updateProfile(input: {name: "x"}) { id } }`,
		`mutation { followUser(userId: "u-2") }`,
		`mutation { createRecipe(input: {title: "t", ingredients: [{name: "salt"}], steps: ["mix"]}) { id } }`,
		`mutation { deleteRecipe(id: "r-1") }`,
		`mutation { likeRecipe(recipeId: "r-1") { likesCount } }`,
		`mutation { rateRecipe(recipeId: "r-1", value: 5) { averageRating } }`,
		`mutation { addComment(recipeId: "r-1", content: "hi") { id } }`,
		`mutation { bookmarkRecipe(recipeId: "r-1") }`,
		`mutation { markAsCooked(recipeId: "r-1") }`,
		`mutation { setCulturalPreference(input: {dietTypes: ["VEGAN"]}) { id } }`,
		`mutation { completeOnboardingStep(step: PROFILE) { currentStep } }`,
		`mutation { createMealPlan(name: "w", weekStart: "2026-01-05T00:00:00Z") { id } }`,
		`mutation { generateShoppingList(mealPlanId: "p-1") { id } }`,
		`mutation { toggleShoppingListItem(id: "i-1") { isChecked } }`,
		`mutation { createCourse(input: {title: "c"}) { id } }`,
		`mutation { enrollCourse(courseId: "c-1") { id } }`,
		`mutation { completeLesson(courseId: "c-1", lessonId: "l-1") { progress } }`,
		`mutation { createUploadUrl(fileName: "a.jpg", contentType: "image/jpeg", folder: "recipes") { key } }`,
	}

	for _, op := range operations {
		resp := schema.Exec(context.Background(), op, "", nil)
		require.Len(t, resp.Errors, 1, op)
		assert.Equal(t, domain.CodeUnauthenticated, resp.Errors[0].Extensions["code"], op)
	}
}

func TestRecipeQueryMapsFields(t *testing.T) {
	rating := 4
	recipes := &fakeRecipes{recipe: domain.Recipe{
		Author:          domain.UserSummary{ID: "u-1", Name: "Asha"},
		Title:           "Dal",
		Servings:        2,
		DifficultyLevel: domain.DifficultyEasy,
		Steps:           []string{"boil"},
		Ingredients:     []domain.Ingredient{{ID: "i-1", Name: "lentils", Quantity: "200g"}},
		CulturalTag:     &domain.CulturalTag{DietTypes: []string{"VEGAN"}},
		Stats:           domain.RecipeStats{LikesCount: 3, AverageRating: 4.5},
		Viewer:          domain.ViewerState{IsLiked: true, MyRating: &rating},
		CreatedAt:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}}
	schema := newTestSchema(t, Services{Recipes: recipes})

	resp := schema.Exec(asUser("viewer"), `query($id: ID!) {
		recipe(id: $id) {
			id title servings tags imageUrl
			author { name username }
			ingredients { name quantity unit }
			culturalTag { dietTypes spiceLevel }
			likesCount averageRating isLiked myRating
		}
	}`, "", map[string]interface{}{"id": "r-9"})
	require.Empty(t, resp.Errors)
	assert.Equal(t, "viewer", recipes.lastView)

	var data struct {
		Recipe struct {
			ID          string
			Title       string
			Servings    int
			Tags        []string
			ImageURL    *string `json:"imageUrl"`
			Author      struct {
				Name     string
				Username *string
			}
			Ingredients []struct {
				Name     string
				Quantity string
				Unit     *string
			}
			CulturalTag struct {
				DietTypes  []string
				SpiceLevel *string
			}
			LikesCount    int
			AverageRating float64
			IsLiked       bool
			MyRating      *int
		}
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	r := data.Recipe
	assert.Equal(t, "r-9", r.ID)
	assert.Equal(t, "Dal", r.Title)
	assert.Equal(t, 2, r.Servings)
	assert.Equal(t, []string{}, r.Tags)
	assert.Nil(t, r.ImageURL)
	assert.Equal(t, "Asha", r.Author.Name)
	assert.Nil(t, r.Author.Username)
	require.Len(t, r.Ingredients, 1)
	assert.Equal(t, "200g", r.Ingredients[0].Quantity)
	assert.Equal(t, []string{"VEGAN"}, r.CulturalTag.DietTypes)
	assert.Nil(t, r.CulturalTag.SpiceLevel)
	assert.Equal(t, 3, r.LikesCount)
	assert.Equal(t, 4.5, r.AverageRating)
	assert.True(t, r.IsLiked)
	require.NotNil(t, r.MyRating)
	assert.Equal(t, 4, *r.MyRating)
}

func TestDomainErrorsCarryCode(t *testing.T) {
	schema := newTestSchema(t, Services{Recipes: &fakeRecipes{err: domain.ErrRecipeNotFound}})

	resp := schema.Exec(context.Background(), `{ recipe(id: "missing") { id } }`, "", nil)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, domain.ErrRecipeNotFound.Error(), resp.Errors[0].Message)
	assert.Equal(t, []interface{}{domain.CodeNotFound}, errorCodes(resp))
}

func TestInternalErrorsHideCause(t *testing.T) {
	schema := newTestSchema(t, Services{Recipes: &fakeRecipes{err: assert.AnError}})

	resp := schema.Exec(context.Background(), `{ recipe(id: "r-1") { id } }`, "", nil)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, domain.MessageFailedProcessRequest, resp.Errors[0].Message)
	assert.Equal(t, []interface{}{domain.CodeInternal}, errorCodes(resp))
	assert.ErrorIs(t, resp.Errors[0].ResolverError, assert.AnError)
}

func TestInvalidInputNeverReachesService(t *testing.T) {
	recipes := &fakeRecipes{}
	schema := newTestSchema(t, Services{Recipes: recipes})

	resp := schema.Exec(asUser("u-1"),
		`mutation { createRecipe(input: {title: "t", ingredients: [], steps: ["mix"]}) { id } }`, "", nil)
	assert.Equal(t, []interface{}{domain.CodeBadRequest}, errorCodes(resp))
	assert.Zero(t, recipes.created)

	resp = schema.Exec(asUser("u-1"),
		`mutation { createRecipe(input: {title: "Dal", ingredients: [{name: "lentils"}], steps: ["boil"]}) { id title } }`, "", nil)
	require.Empty(t, resp.Errors)
	assert.Equal(t, 1, recipes.created)
	assert.JSONEq(t, `{"createRecipe":{"id":"new","title":"Dal"}}`, string(resp.Data))
}

func TestFestivalsArePublic(t *testing.T) {
	schema := newTestSchema(t, Services{Cultural: fakeCultural{}})

	resp := schema.Exec(context.Background(), `{ festivals(religion: "HINDU") { name religion month } }`, "", nil)
	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"festivals":[{"name":"Diwali","religion":"HINDU","month":11}]}`, string(resp.Data))
}

func TestCommentAddedDeliversOnlyThatRecipe(t *testing.T) {
	broker := notification.NewMemoryBroker()
	defer broker.Close()
	schema := newTestSchema(t, Services{Broker: broker})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stream, err := schema.Subscribe(ctx, `subscription { commentAdded(recipeId: "r-1") { id content author { name } } }`, "", nil)
	require.NoError(t, err)

	require.NoError(t, broker.Publish(ctx, domain.CommentEvent{
		RecipeID: "r-2",
		Comment:  domain.Comment{ID: "other", RecipeID: "r-2"},
	}))
	require.NoError(t, broker.Publish(ctx, domain.CommentEvent{
		RecipeID: "r-1",
		Comment:  domain.Comment{ID: "c-1", RecipeID: "r-1", Content: "lovely", Author: domain.UserSummary{Name: "Ravi"}},
	}))

	select {
	case payload := <-stream:
		resp, ok := payload.(*graphql.Response)
		require.True(t, ok)
		require.Empty(t, resp.Errors)
		assert.JSONEq(t, `{"commentAdded":{"id":"c-1","content":"lovely","author":{"name":"Ravi"}}}`, string(resp.Data))
	case <-time.After(time.Second):
		t.Fatal("no comment delivered")
	}

	cancel()
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-stream:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("stream did not close after cancel")
		}
	}
}

func TestMeUsesCallerIdentity(t *testing.T) {
	users := &fakeUsers{profile: domain.UserProfile{
		User:           domain.User{Name: "Asha", Role: domain.RoleUser, OnboardingStep: domain.OnboardingStepProfile},
		FollowersCount: 7,
	}}
	schema := newTestSchema(t, Services{Users: users})

	resp := schema.Exec(asUser("u-42"), `{ me { user { id name onboardingStep } followersCount } }`, "", nil)
	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"me":{"user":{"id":"u-42","name":"Asha","onboardingStep":"PROFILE"},"followersCount":7}}`, string(resp.Data))
}
