package analytics

import (
	"Recipe-Hub/domain"
	"math"
	"time"
)

const (
	weekDays  = 7
	monthDays = 30
)

// Window resolves the requested period into a half-open [Start, End) range.
func Window(req domain.AnalyticsRequest, now time.Time) (domain.DateRange, error) {
	switch req.Period {
	case domain.PeriodWeek, "":
		return domain.DateRange{Start: now.AddDate(0, 0, -weekDays), End: now}, nil
	case domain.PeriodMonth:
		return domain.DateRange{Start: now.AddDate(0, 0, -monthDays), End: now}, nil
	case domain.PeriodCustom:
		if req.Start == nil || req.End == nil || !req.Start.Before(*req.End) {
			return domain.DateRange{}, domain.ErrInvalidDateRange
		}
		if req.End.Sub(*req.Start) > domain.MaxCustomRange {
			return domain.DateRange{}, domain.ErrAnalyticsRangeTooLarge
		}
		return domain.DateRange{Start: *req.Start, End: *req.End}, nil
	default:
		return domain.DateRange{}, domain.ErrInvalidInput
	}
}

// PreviousWindow is the range of equal length that ends where w starts.
func PreviousWindow(w domain.DateRange) domain.DateRange {
	return domain.DateRange{Start: w.Start.Add(-w.End.Sub(w.Start)), End: w.Start}
}

// Growth is the percentage change from previous to current rounded to two decimals.
// A zero previous value reports 100 when anything happened and 0 otherwise.
func Growth(current, previous int) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	g := float64(current-previous) / float64(previous) * 100
	return math.Round(g*100) / 100
}

func GrowthRates(current, previous domain.MetricCounts) domain.GrowthRates {
	return domain.GrowthRates{
		Views:        Growth(current.Views, previous.Views),
		Likes:        Growth(current.Likes, previous.Likes),
		Comments:     Growth(current.Comments, previous.Comments),
		NewFollowers: Growth(current.NewFollowers, previous.NewFollowers),
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DailySeries lays rows onto every UTC day touched by the window; days without activity are zero.
func DailySeries(w domain.DateRange, rows []DailyRow) []domain.DailyPoint {
	byDay := make(map[time.Time]DailyRow, len(rows))
	for _, r := range rows {
		byDay[startOfDay(r.Day)] = r
	}

	var out []domain.DailyPoint
	last := startOfDay(w.End.Add(-time.Nanosecond))
	for day := startOfDay(w.Start); !day.After(last); day = day.AddDate(0, 0, 1) {
		r := byDay[day]
		out = append(out, domain.DailyPoint{Date: day, Views: r.Views, Likes: r.Likes, Comments: r.Comments})
	}
	return out
}
