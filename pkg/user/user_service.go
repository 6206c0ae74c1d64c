package user

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/entities"
	"Recipe-Hub/internal/utils"
	"Recipe-Hub/internal/utils/logger"
	"Recipe-Hub/pkg/jwt"
	"Recipe-Hub/pkg/otp"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserService interface {
		SendOTP(ctx context.Context, req domain.SendOTPRequest) (domain.SendOTPResponse, error)
		VerifyOTP(ctx context.Context, req domain.VerifyOTPRequest) (domain.AuthPayload, error)

		Me(ctx context.Context, userID string) (domain.UserProfile, error)
		GetProfile(ctx context.Context, id string, viewerID string) (domain.UserProfile, error)
		UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (domain.User, error)

		AddLocation(ctx context.Context, userID string, req domain.LocationRequest) (domain.Location, error)
		RemoveLocation(ctx context.Context, userID, locationID string) error
		MyLocations(ctx context.Context, userID string) ([]domain.Location, error)

		Follow(ctx context.Context, followerID, followingID string) error
		Unfollow(ctx context.Context, followerID, followingID string) error
		IsFollowing(ctx context.Context, followerID, followingID string) (bool, error)
		Followers(ctx context.Context, userID string, page domain.Page) ([]domain.UserSummary, int64, error)
		Following(ctx context.Context, userID string, page domain.Page) ([]domain.UserSummary, int64, error)
	}

	userService struct {
		userRepository UserRepository
		otpService     otp.OTPService
		jwtService     jwt.JWTService
		log            *logger.Logger
	}
)

func NewUserService(userRepository UserRepository, otpService otp.OTPService, jwtService jwt.JWTService, log *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		otpService:     otpService,
		jwtService:     jwtService,
		log:            log.With("service", "user"),
	}
}

func normalizePhone(phone string) string {
	return strings.TrimSpace(phone)
}

func (s *userService) SendOTP(ctx context.Context, req domain.SendOTPRequest) (domain.SendOTPResponse, error) {
	return s.otpService.Send(ctx, normalizePhone(req.Phone))
}

// VerifyOTP consumes the code and signs the caller in, creating the account on first login.
func (s *userService) VerifyOTP(ctx context.Context, req domain.VerifyOTPRequest) (domain.AuthPayload, error) {
	phone := normalizePhone(req.Phone)
	if err := s.otpService.Verify(ctx, phone, req.Code); err != nil {
		return domain.AuthPayload{}, err
	}

	isNew := false
	u, err := s.userRepository.GetUserByPhone(ctx, phone)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		u = &entities.User{
			ID:             uuid.New(),
			Phone:          phone,
			Role:           domain.RoleUser,
			OnboardingStep: domain.OnboardingStepProfile,
		}
		if err := s.userRepository.CreateUser(ctx, u); err != nil {
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.AuthPayload{}, err
			}
			// lost a race with a concurrent first login
			if u, err = s.userRepository.GetUserByPhone(ctx, phone); err != nil {
				return domain.AuthPayload{}, err
			}
		} else {
			isNew = true
			s.log.Info("user registered", "user_id", u.ID.String())
		}
	} else if err != nil {
		return domain.AuthPayload{}, err
	}

	token, err := s.jwtService.GenerateTokenUser(u.ID.String(), u.Role)
	if err != nil {
		return domain.AuthPayload{}, err
	}
	return domain.AuthPayload{Token: token, User: ToUser(u), IsNewUser: isNew}, nil
}

func (s *userService) getUser(ctx context.Context, id string) (*entities.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}
	u, err := s.userRepository.GetUserByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	return u, err
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserProfile, error) {
	return s.GetProfile(ctx, userID, userID)
}

func (s *userService) GetProfile(ctx context.Context, id string, viewerID string) (domain.UserProfile, error) {
	u, err := s.getUser(ctx, id)
	if err != nil {
		return domain.UserProfile{}, err
	}
	counts, err := s.userRepository.GetProfileCounts(ctx, id)
	if err != nil {
		return domain.UserProfile{}, err
	}

	profile := domain.UserProfile{
		User:           ToUser(u),
		FollowersCount: counts.Followers,
		FollowingCount: counts.Following,
		RecipesCount:   counts.Recipes,
	}
	if viewerID != "" && viewerID != id {
		if profile.IsFollowing, err = s.userRepository.IsFollowing(ctx, viewerID, id); err != nil {
			return domain.UserProfile{}, err
		}
	}
	// other users do not see contact details
	if viewerID != id {
		profile.Phone = ""
		profile.Email = ""
	}
	return profile, nil
}

// trimProfile strips surrounding blanks so that "   " is checked as an empty value.
func trimProfile(req domain.UpdateProfileRequest) domain.UpdateProfileRequest {
	trim := func(v *string) *string {
		if v == nil {
			return nil
		}
		t := strings.TrimSpace(*v)
		return &t
	}
	req.Name = trim(req.Name)
	req.Username = trim(req.Username)
	req.Email = trim(req.Email)
	return req
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (domain.User, error) {
	req = trimProfile(req)
	if err := utils.ValidateStruct(req); err != nil {
		return domain.User{}, err
	}

	u, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Username != nil {
		username := *req.Username
		taken, err := s.userRepository.UsernameTaken(ctx, username, userID)
		if err != nil {
			return domain.User{}, err
		}
		if taken {
			return domain.User{}, domain.ErrUsernameTaken
		}
		u.Username = &username
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Bio != nil {
		u.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		u.AvatarURL = *req.AvatarURL
	}

	if err := s.userRepository.UpdateUser(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.User{}, domain.ErrUsernameTaken
		}
		return domain.User{}, err
	}
	return ToUser(u), nil
}

func (s *userService) AddLocation(ctx context.Context, userID string, req domain.LocationRequest) (domain.Location, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.Location{}, domain.ErrParseUUID
	}
	location := &entities.Location{
		ID:        uuid.New(),
		UserID:    userUUID,
		Label:     req.Label,
		City:      req.City,
		State:     req.State,
		Country:   req.Country,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		IsPrimary: req.IsPrimary,
	}
	if err := s.userRepository.CreateLocation(ctx, location); err != nil {
		return domain.Location{}, err
	}
	return ToLocation(location), nil
}

func (s *userService) RemoveLocation(ctx context.Context, userID, locationID string) error {
	if _, err := uuid.Parse(locationID); err != nil {
		return domain.ErrParseUUID
	}
	n, err := s.userRepository.DeleteLocation(ctx, userID, locationID)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrLocationNotFound
	}
	return nil
}

func (s *userService) MyLocations(ctx context.Context, userID string) ([]domain.Location, error) {
	locations, err := s.userRepository.GetLocations(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Location, 0, len(locations))
	for _, l := range locations {
		out = append(out, ToLocation(l))
	}
	return out, nil
}

func (s *userService) Follow(ctx context.Context, followerID, followingID string) error {
	if followerID == followingID {
		return domain.ErrCannotFollowSelf
	}
	target, err := s.getUser(ctx, followingID)
	if err != nil {
		return err
	}
	followerUUID, err := uuid.Parse(followerID)
	if err != nil {
		return domain.ErrParseUUID
	}

	err = s.userRepository.CreateFollow(ctx, &entities.Follow{
		FollowerID:  followerUUID,
		FollowingID: target.ID,
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrAlreadyFollowing
	}
	return err
}

func (s *userService) Unfollow(ctx context.Context, followerID, followingID string) error {
	if _, err := uuid.Parse(followingID); err != nil {
		return domain.ErrParseUUID
	}
	n, err := s.userRepository.DeleteFollow(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFollowing
	}
	return nil
}

func (s *userService) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	if _, err := uuid.Parse(followingID); err != nil {
		return false, domain.ErrParseUUID
	}
	return s.userRepository.IsFollowing(ctx, followerID, followingID)
}

func (s *userService) Followers(ctx context.Context, userID string, page domain.Page) ([]domain.UserSummary, int64, error) {
	if _, err := s.getUser(ctx, userID); err != nil {
		return nil, 0, err
	}
	page = page.Normalize()
	users, total, err := s.userRepository.GetFollowers(ctx, userID, page.Offset, page.Limit)
	if err != nil {
		return nil, 0, err
	}
	return ToSummaries(users), total, nil
}

func (s *userService) Following(ctx context.Context, userID string, page domain.Page) ([]domain.UserSummary, int64, error) {
	if _, err := s.getUser(ctx, userID); err != nil {
		return nil, 0, err
	}
	page = page.Normalize()
	users, total, err := s.userRepository.GetFollowing(ctx, userID, page.Offset, page.Limit)
	if err != nil {
		return nil, 0, err
	}
	return ToSummaries(users), total, nil
}
