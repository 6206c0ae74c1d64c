package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Phone          string    `gorm:"uniqueIndex;not null" json:"phone"`
	Email          string    `json:"email,omitempty"`
	Name           string    `json:"name"`
	Username       *string   `gorm:"uniqueIndex" json:"username,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	AvatarURL      string    `json:"avatar_url,omitempty"`
	Role           string    `gorm:"default:user" json:"role"`
	IsOnboarded    bool      `json:"is_onboarded"`
	OnboardingStep string    `gorm:"default:PROFILE" json:"onboarding_step"`

	Locations          []*Location         `gorm:"foreignKey:UserID"`
	CulturalPreference *CulturalPreference `gorm:"foreignKey:UserID"`
	Timestamp
}

type Location struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Label     string    `json:"label"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Country   string    `json:"country"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	IsPrimary bool      `json:"is_primary"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type Follow struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FollowerID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_follower_following" json:"follower_id"`
	FollowingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_follower_following;index" json:"following_id"`
	CreatedAt   time.Time `gorm:"type:timestamptz" json:"created_at"`

	Follower  *User `gorm:"foreignKey:FollowerID"`
	Following *User `gorm:"foreignKey:FollowingID"`
}
