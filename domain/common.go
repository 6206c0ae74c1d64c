package domain

import (
	"errors"
	"time"
)

const (
	RoleUser       = "user"
	RoleInstructor = "instructor"

	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

const (
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeBadRequest      = "BAD_REQUEST"
	CodeInternal        = "INTERNAL"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageSuccessPing          = "pong"

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrUnauthorized   = errors.New("unauthorized: a valid session is required")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("token not found")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrTokenExpired   = errors.New("token expired")
	ErrInvalidInput   = errors.New("invalid input")
)

type (
	Page struct {
		Offset int `json:"offset" validate:"min=0"`
		Limit  int `json:"limit" validate:"min=0"`
	}

	UserSummary struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Username  string `json:"username,omitempty"`
		AvatarURL string `json:"avatar_url,omitempty"`
	}

	DateRange struct {
		Start time.Time `json:"start"`
		End   time.Time `json:"end"`
	}
)

// Normalize clamps the page to sane bounds.
func (p Page) Normalize() Page {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

// ErrorCode maps a domain error onto the code reported to API clients.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case anyIs(err, ErrUnauthorized, ErrTokenNotFound, ErrTokenInvalid, ErrTokenExpired,
		ErrInvalidOTP, ErrOTPExpired, ErrOTPTooManyAttempts):
		return CodeUnauthenticated
	case anyIs(err, ErrUserNotAllowed, ErrUnauthorizedRecipeAccess, ErrUnauthorizedCommentAccess,
		ErrUnauthorizedCourseAccess, ErrUnauthorizedMealPlanAccess, ErrNotEnrolled):
		return CodeForbidden
	case anyIs(err, ErrUserNotFound, ErrLocationNotFound, ErrRecipeNotFound, ErrCommentNotFound,
		ErrCourseNotFound, ErrLessonNotFound, ErrMealPlanNotFound, ErrMealPlanItemNotFound,
		ErrShoppingListNotFound, ErrShoppingListItemNotFound, ErrCulturalPreferenceNotFound):
		return CodeNotFound
	case anyIs(err, ErrAlreadyLiked, ErrNotLiked, ErrAlreadyFollowing, ErrNotFollowing,
		ErrAlreadyEnrolled, ErrUsernameTaken):
		return CodeConflict
	case anyIs(err, ErrInvalidInput, ErrParseUUID, ErrCannotFollowSelf, ErrInvalidRating,
		ErrInvalidDateRange, ErrAnalyticsRangeTooLarge, ErrInvalidOnboardingStep, ErrEmptyMealPlan,
		ErrCourseHasNoLessons, ErrInvalidContentType, ErrInvalidUploadFolder, ErrInvalidPhone):
		return CodeBadRequest
	default:
		return CodeInternal
	}
}

func anyIs(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
