package user

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/entities"
)

func ToUser(u *entities.User) domain.User {
	if u == nil {
		return domain.User{}
	}
	out := domain.User{
		ID:             u.ID.String(),
		Phone:          u.Phone,
		Email:          u.Email,
		Name:           u.Name,
		Bio:            u.Bio,
		AvatarURL:      u.AvatarURL,
		Role:           u.Role,
		IsOnboarded:    u.IsOnboarded,
		OnboardingStep: u.OnboardingStep,
		CreatedAt:      u.CreatedAt,
	}
	if u.Username != nil {
		out.Username = *u.Username
	}
	return out
}

// ToSummary is the public card shown next to recipes, comments and chefs.
func ToSummary(u *entities.User) domain.UserSummary {
	if u == nil {
		return domain.UserSummary{}
	}
	out := domain.UserSummary{
		ID:        u.ID.String(),
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
	}
	if u.Username != nil {
		out.Username = *u.Username
	}
	return out
}

func ToSummaries(users []*entities.User) []domain.UserSummary {
	out := make([]domain.UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, ToSummary(u))
	}
	return out
}

func ToLocation(l *entities.Location) domain.Location {
	return domain.Location{
		ID:        l.ID.String(),
		Label:     l.Label,
		City:      l.City,
		State:     l.State,
		Country:   l.Country,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		IsPrimary: l.IsPrimary,
		CreatedAt: l.CreatedAt,
	}
}
