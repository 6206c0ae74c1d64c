package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidDateRange       = errors.New("start must be before end")
	ErrAnalyticsRangeTooLarge = errors.New("custom range must not exceed 366 days")
)

// MaxCustomRange bounds a CUSTOM analytics window.
const MaxCustomRange = 366 * 24 * time.Hour

const (
	PeriodWeek   = "WEEK"
	PeriodMonth  = "MONTH"
	PeriodCustom = "CUSTOM"
)

type (
	AnalyticsRequest struct {
		Period string     `json:"period" validate:"required,oneof=WEEK MONTH CUSTOM"`
		Start  *time.Time `json:"start"`
		End    *time.Time `json:"end"`
	}

	MetricCounts struct {
		Views        int `json:"views"`
		Likes        int `json:"likes"`
		Comments     int `json:"comments"`
		NewFollowers int `json:"new_followers"`
	}

	GrowthRates struct {
		Views        float64 `json:"views"`
		Likes        float64 `json:"likes"`
		Comments     float64 `json:"comments"`
		NewFollowers float64 `json:"new_followers"`
	}

	DailyPoint struct {
		Date     time.Time `json:"date"`
		Views    int       `json:"views"`
		Likes    int       `json:"likes"`
		Comments int       `json:"comments"`
	}

	Analytics struct {
		Period   string       `json:"period"`
		Window   DateRange    `json:"window"`
		Current  MetricCounts `json:"current"`
		Previous MetricCounts `json:"previous"`
		Growth   GrowthRates  `json:"growth"`
		Daily    []DailyPoint `json:"daily"`
		RecipeID string       `json:"recipe_id,omitempty"`
	}
)
