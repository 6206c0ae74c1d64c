package domain

import (
	"errors"
	"time"
)

var (
	ErrCulturalPreferenceNotFound = errors.New("cultural preference not found")
	ErrInvalidOnboardingStep      = errors.New("invalid onboarding step")
)

var (
	CuisineTypes = []string{
		"INDIAN", "ITALIAN", "CHINESE", "MEXICAN", "JAPANESE", "THAI", "FRENCH",
		"MEDITERRANEAN", "MIDDLE_EASTERN", "AMERICAN", "KOREAN", "AFRICAN", "OTHER",
	}
	DietTypes = []string{
		"VEGETARIAN", "NON_VEGETARIAN", "VEGAN", "EGGETARIAN", "JAIN", "HALAL", "KOSHER",
		"GLUTEN_FREE", "DAIRY_FREE",
	}
	Religions   = []string{"HINDU", "MUSLIM", "CHRISTIAN", "SIKH", "JAIN", "BUDDHIST", "JEWISH", "OTHER", "NONE"}
	SpiceLevels = []string{"MILD", "MEDIUM", "HOT", "EXTRA_HOT"}
)

const (
	OnboardingStepProfile     = "PROFILE"
	OnboardingStepPreferences = "PREFERENCES"
	OnboardingStepLocation    = "LOCATION"
	OnboardingStepDone        = "DONE"
)

// OnboardingSteps is the fixed order a new user walks through.
var OnboardingSteps = []string{
	OnboardingStepProfile,
	OnboardingStepPreferences,
	OnboardingStepLocation,
	OnboardingStepDone,
}

type (
	CulturalTagRequest struct {
		CuisineType string   `json:"cuisine_type" validate:"omitempty,max=40"`
		DietTypes   []string `json:"diet_types" validate:"omitempty,dive,max=40"`
		SpiceLevel  string   `json:"spice_level" validate:"omitempty,oneof=MILD MEDIUM HOT EXTRA_HOT"`
		Religion    string   `json:"religion" validate:"omitempty,max=40"`
		Region      string   `json:"region" validate:"omitempty,max=80"`
		Festival    string   `json:"festival" validate:"omitempty,max=80"`
	}

	CulturalTag struct {
		CuisineType string   `json:"cuisine_type"`
		DietTypes   []string `json:"diet_types"`
		SpiceLevel  string   `json:"spice_level,omitempty"`
		Religion    string   `json:"religion,omitempty"`
		Region      string   `json:"region,omitempty"`
		Festival    string   `json:"festival,omitempty"`
	}

	// CulturalFilter facets are conjunctive; zero-valued facets do not narrow the result.
	CulturalFilter struct {
		Religion         string   `json:"religion" validate:"omitempty,max=40"`
		DietTypes        []string `json:"diet_types" validate:"omitempty,dive,max=40"`
		CuisineTypes     []string `json:"cuisine_types" validate:"omitempty,dive,max=40"`
		SpiceLevel       string   `json:"spice_level" validate:"omitempty,oneof=MILD MEDIUM HOT EXTRA_HOT"`
		Region           string   `json:"region" validate:"omitempty,max=80"`
		Festival         string   `json:"festival" validate:"omitempty,max=80"`
		AvoidIngredients []string `json:"avoid_ingredients" validate:"omitempty,dive,max=100"`
	}

	CulturalRecipesRequest struct {
		Filter CulturalFilter `json:"filter"`
		Page
	}

	CulturalPreferenceRequest struct {
		Religion         string   `json:"religion" validate:"omitempty,max=40"`
		DietTypes        []string `json:"diet_types" validate:"omitempty,dive,max=40"`
		CuisineTypes     []string `json:"cuisine_types" validate:"omitempty,dive,max=40"`
		SpiceLevel       string   `json:"spice_level" validate:"omitempty,oneof=MILD MEDIUM HOT EXTRA_HOT"`
		Region           string   `json:"region" validate:"omitempty,max=80"`
		Festivals        []string `json:"festivals" validate:"omitempty,dive,max=80"`
		AvoidIngredients []string `json:"avoid_ingredients" validate:"omitempty,dive,max=100"`
	}

	CulturalPreference struct {
		ID               string    `json:"id"`
		Religion         string    `json:"religion,omitempty"`
		DietTypes        []string  `json:"diet_types"`
		CuisineTypes     []string  `json:"cuisine_types"`
		SpiceLevel       string    `json:"spice_level,omitempty"`
		Region           string    `json:"region,omitempty"`
		Festivals        []string  `json:"festivals"`
		AvoidIngredients []string  `json:"avoid_ingredients"`
		UpdatedAt        time.Time `json:"updated_at"`
	}

	OnboardingStatus struct {
		IsOnboarded    bool     `json:"is_onboarded"`
		CurrentStep    string   `json:"current_step"`
		CompletedSteps []string `json:"completed_steps"`
		RemainingSteps []string `json:"remaining_steps"`
	}

	Festival struct {
		Name     string `json:"name"`
		Religion string `json:"religion"`
		Region   string `json:"region"`
		Month    int    `json:"month"`
	}
)

// IsEmpty reports whether no facet is set.
func (f CulturalFilter) IsEmpty() bool {
	return f.Religion == "" && len(f.DietTypes) == 0 && len(f.CuisineTypes) == 0 &&
		f.SpiceLevel == "" && f.Region == "" && f.Festival == "" && len(f.AvoidIngredients) == 0
}
