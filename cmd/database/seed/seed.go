// Package seed loads a small demo community. Ids are derived from names, so
// running it twice skips every row the first run inserted.
package seed

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/entities"
	"Recipe-Hub/internal/utils/logger"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var namespace = uuid.MustParse("6f1c9b8e-2d4a-4f0e-9a57-1e3b6c0d8a42")

type group struct {
	name string
	rows []interface{}
}

func id(kind, name string) uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(kind+":"+name))
}

// Run inserts each group in its own transaction. Duplicate rows are skipped.
func Run(ctx context.Context, db *gorm.DB, log *logger.Logger) error {
	log = log.With("component", "seed")
	for _, g := range groups(time.Now().UTC()) {
		inserted, skipped := 0, 0
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for _, row := range g.rows {
				err := tx.Transaction(func(sp *gorm.DB) error {
					return sp.Omit(clause.Associations).Create(row).Error
				})
				switch {
				case err == nil:
					inserted++
				case errors.Is(err, gorm.ErrDuplicatedKey):
					skipped++
					log.Debug("row already seeded", "group", g.name, "row", fmt.Sprintf("%T", row))
				default:
					return fmt.Errorf("seed %s: %w", g.name, err)
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
		log.Info("seed group done", "group", g.name, "inserted", inserted, "skipped", skipped)
	}
	return nil
}

type recipeSeed struct {
	author      string
	title       string
	description string
	cuisine     string
	difficulty  string
	prep, cook  int
	steps       []string
	ingredients [][2]string
	tag         entities.CulturalTag
}

var recipeSeeds = []recipeSeed{
	{
		author:      "asha",
		title:       "Paneer Butter Masala",
		cuisine:     "INDIAN",
		difficulty:  domain.DifficultyMedium,
		description: "Soft paneer in a buttery tomato gravy.",
		prep:        15,
		cook:        30,
		steps:       []string{"Blend tomatoes and cashews", "Simmer with butter and spices", "Add paneer and cream"},
		ingredients: [][2]string{{"paneer", "250g"}, {"tomato", "4"}, {"butter", "2 tbsp"}, {"garam masala", "1 tsp"}, {"cream", "50ml"}},
		tag:         entities.CulturalTag{CuisineType: "INDIAN", DietTypes: pq.StringArray{"VEGETARIAN"}, SpiceLevel: "MEDIUM", Religion: "HINDU", Region: "North India", Festival: "Diwali"},
	},
	{
		author:      "omar",
		title:       "Hyderabadi Chicken Biryani",
		cuisine:     "INDIAN",
		difficulty:  domain.DifficultyHard,
		description: "Layered rice and marinated chicken cooked dum style.",
		prep:        40,
		cook:        60,
		steps:       []string{"Marinate chicken", "Par-boil basmati rice", "Layer and cook on low heat"},
		ingredients: [][2]string{{"chicken", "1kg"}, {"basmati rice", "500g"}, {"yogurt", "200g"}, {"onion", "3"}, {"saffron", "1 pinch"}},
		tag:         entities.CulturalTag{CuisineType: "INDIAN", DietTypes: pq.StringArray{"HALAL", "NON_VEGETARIAN"}, SpiceLevel: "HOT", Religion: "MUSLIM", Region: "Hyderabad", Festival: "Eid al-Fitr"},
	},
	{
		author:      "maria",
		title:       "Margherita Pizza",
		cuisine:     "ITALIAN",
		difficulty:  domain.DifficultyEasy,
		description: "Classic Neapolitan pizza.",
		prep:        90,
		cook:        10,
		steps:       []string{"Knead and proof dough", "Top with sauce and mozzarella", "Bake very hot"},
		ingredients: [][2]string{{"flour", "500g"}, {"tomato", "3"}, {"mozzarella", "200g"}, {"basil", "1 bunch"}},
		tag:         entities.CulturalTag{CuisineType: "ITALIAN", DietTypes: pq.StringArray{"VEGETARIAN"}, SpiceLevel: "MILD", Region: "Naples"},
	},
	{
		author:      "asha",
		title:       "Chickpea Buddha Bowl",
		cuisine:     "MEDITERRANEAN",
		difficulty:  domain.DifficultyEasy,
		description: "Roasted chickpeas, greens and tahini.",
		prep:        10,
		cook:        25,
		steps:       []string{"Roast chickpeas", "Assemble bowl", "Drizzle tahini"},
		ingredients: [][2]string{{"chickpeas", "1 can"}, {"spinach", "100g"}, {"tahini", "2 tbsp"}, {"lemon", "1"}},
		tag:         entities.CulturalTag{CuisineType: "MEDITERRANEAN", DietTypes: pq.StringArray{"VEGAN", "GLUTEN_FREE"}, SpiceLevel: "MILD"},
	},
}

func groups(now time.Time) []group {
	users := []*entities.User{
		seedUser("asha", "Asha Rao", "+15550000001", domain.RoleUser),
		seedUser("omar", "Omar Khan", "+15550000002", domain.RoleUser),
		seedUser("maria", "Maria Rossi", "+15550000003", domain.RoleInstructor),
	}

	var recipes, ingredients, tags []interface{}
	for _, rs := range recipeSeeds {
		recipeID := id("recipe", rs.title)
		recipes = append(recipes, &entities.Recipe{
			ID:              recipeID,
			UserID:          id("user", rs.author),
			Title:           rs.title,
			Description:     rs.description,
			PrepTimeMinutes: rs.prep,
			CookTimeMinutes: rs.cook,
			Servings:        4,
			DifficultyLevel: rs.difficulty,
			CuisineType:     rs.cuisine,
			Steps:           pq.StringArray(rs.steps),
			Tags:            pq.StringArray{},
		})
		for i, ing := range rs.ingredients {
			ingredients = append(ingredients, &entities.Ingredient{
				ID:       id("ingredient", rs.title+"/"+ing[0]),
				RecipeID: recipeID,
				Name:     ing[0],
				Quantity: ing[1],
				Position: i,
			})
		}
		tag := rs.tag
		tag.ID = id("tag", rs.title)
		tag.RecipeID = recipeID
		tags = append(tags, &tag)
	}

	follows := []interface{}{
		seedFollow("asha", "maria"),
		seedFollow("omar", "asha"),
		seedFollow("maria", "asha"),
	}
	likes := []interface{}{
		seedLike("omar", "Paneer Butter Masala", now.Add(-2*time.Hour)),
		seedLike("maria", "Paneer Butter Masala", now.Add(-26*time.Hour)),
		seedLike("asha", "Hyderabadi Chicken Biryani", now.Add(-3*time.Hour)),
		seedLike("asha", "Margherita Pizza", now.Add(-50*time.Hour)),
	}
	comments := []interface{}{
		seedComment("omar", "Paneer Butter Masala", "Made this for Diwali, loved it!", now.Add(-time.Hour)),
		seedComment("asha", "Hyderabadi Chicken Biryani", "The saffron makes all the difference.", now.Add(-5*time.Hour)),
	}

	courseID := id("course", "Spice Basics")
	course := []interface{}{
		&entities.Course{
			ID:           courseID,
			InstructorID: id("user", "maria"),
			Title:        "Spice Basics",
			Description:  "Learn to toast, grind and balance spices.",
			Level:        "BEGINNER",
			CuisineType:  "INDIAN",
			IsPublished:  true,
		},
		&entities.Lesson{ID: id("lesson", "Whole vs ground"), CourseID: courseID, Title: "Whole vs ground", Content: "When to use each.", Position: 1, DurationMinutes: 8},
		&entities.Lesson{ID: id("lesson", "Tempering"), CourseID: courseID, Title: "Tempering", Content: "Blooming spices in hot oil.", Position: 2, DurationMinutes: 12},
	}

	userRows := make([]interface{}, 0, len(users))
	for _, u := range users {
		userRows = append(userRows, u)
	}
	return []group{
		{name: "users", rows: userRows},
		{name: "recipes", rows: recipes},
		{name: "ingredients", rows: ingredients},
		{name: "cultural_tags", rows: tags},
		{name: "follows", rows: follows},
		{name: "likes", rows: likes},
		{name: "comments", rows: comments},
		{name: "courses", rows: course},
	}
}

func seedUser(handle, name, phone, role string) *entities.User {
	username := handle
	return &entities.User{
		ID:             id("user", handle),
		Phone:          phone,
		Name:           name,
		Username:       &username,
		Role:           role,
		IsOnboarded:    true,
		OnboardingStep: domain.OnboardingStepDone,
	}
}

func seedFollow(follower, following string) *entities.Follow {
	return &entities.Follow{
		ID:          id("follow", follower+">"+following),
		FollowerID:  id("user", follower),
		FollowingID: id("user", following),
	}
}

func seedLike(user, recipe string, at time.Time) *entities.Like {
	return &entities.Like{
		ID:        id("like", user+">"+recipe),
		UserID:    id("user", user),
		RecipeID:  id("recipe", recipe),
		CreatedAt: at,
	}
}

func seedComment(user, recipe, content string, at time.Time) *entities.Comment {
	c := &entities.Comment{
		ID:       id("comment", user+">"+recipe),
		UserID:   id("user", user),
		RecipeID: id("recipe", recipe),
		Content:  content,
	}
	c.CreatedAt = at
	c.UpdatedAt = at
	return c
}
