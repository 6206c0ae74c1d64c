package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrLocationNotFound   = errors.New("location not found")
	ErrCannotFollowSelf   = errors.New("cannot follow yourself")
	ErrAlreadyFollowing   = errors.New("already following this user")
	ErrNotFollowing       = errors.New("not following this user")
	ErrInvalidPhone       = errors.New("invalid phone number")
	ErrInvalidOTP         = errors.New("invalid verification code")
	ErrOTPExpired         = errors.New("verification code expired or not requested")
	ErrOTPTooManyAttempts = errors.New("too many attempts, request a new code")
)

const (
	OTPLength      = 6
	OTPTTL         = 5 * time.Minute
	OTPMaxAttempts = 5
)

type (
	SendOTPRequest struct {
		Phone string `json:"phone" validate:"required,e164"`
	}

	SendOTPResponse struct {
		Phone     string    `json:"phone"`
		ExpiresAt time.Time `json:"expires_at"`
	}

	VerifyOTPRequest struct {
		Phone string `json:"phone" validate:"required,e164"`
		Code  string `json:"code" validate:"required,len=6,numeric"`
	}

	AuthPayload struct {
		Token     string `json:"token"`
		User      User   `json:"user"`
		IsNewUser bool   `json:"is_new_user"`
	}

	User struct {
		ID             string    `json:"id"`
		Phone          string    `json:"phone"`
		Email          string    `json:"email,omitempty"`
		Name           string    `json:"name"`
		Username       string    `json:"username,omitempty"`
		Bio            string    `json:"bio,omitempty"`
		AvatarURL      string    `json:"avatar_url,omitempty"`
		Role           string    `json:"role"`
		IsOnboarded    bool      `json:"is_onboarded"`
		OnboardingStep string    `json:"onboarding_step"`
		CreatedAt      time.Time `json:"created_at"`
	}

	UserProfile struct {
		User
		FollowersCount int  `json:"followers_count"`
		FollowingCount int  `json:"following_count"`
		RecipesCount   int  `json:"recipes_count"`
		IsFollowing    bool `json:"is_following"`
	}

	UpdateProfileRequest struct {
		Name      *string `json:"name" validate:"omitnil,min=1,max=80"`
		Username  *string `json:"username" validate:"omitnil,min=3,max=30,alphanum"`
		Email     *string `json:"email" validate:"omitempty,email"`
		Bio       *string `json:"bio" validate:"omitempty,max=500"`
		AvatarURL *string `json:"avatar_url" validate:"omitempty,url"`
	}

	LocationRequest struct {
		Label     string  `json:"label" validate:"omitempty,max=40"`
		City      string  `json:"city" validate:"required,max=80"`
		State     string  `json:"state" validate:"omitempty,max=80"`
		Country   string  `json:"country" validate:"required,max=80"`
		Latitude  float64 `json:"latitude" validate:"latitude"`
		Longitude float64 `json:"longitude" validate:"longitude"`
		IsPrimary bool    `json:"is_primary"`
	}

	Location struct {
		ID        string    `json:"id"`
		Label     string    `json:"label"`
		City      string    `json:"city"`
		State     string    `json:"state"`
		Country   string    `json:"country"`
		Latitude  float64   `json:"latitude"`
		Longitude float64   `json:"longitude"`
		IsPrimary bool      `json:"is_primary"`
		CreatedAt time.Time `json:"created_at"`
	}
)
