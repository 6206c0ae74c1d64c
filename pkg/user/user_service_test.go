package user

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/entities"
	"Recipe-Hub/internal/utils/logger"
	"Recipe-Hub/pkg/jwt"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	UserRepository
	byPhone  map[string]*entities.User
	byID     map[string]*entities.User
	follows  map[[2]string]bool
	created  int
	profiles ProfileCounts
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byPhone: map[string]*entities.User{},
		byID:    map[string]*entities.User{},
		follows: map[[2]string]bool{},
	}
}

func (f *fakeUserRepo) add(u *entities.User) *entities.User {
	f.byPhone[u.Phone] = u
	f.byID[u.ID.String()] = u
	return u
}

func (f *fakeUserRepo) GetUserByPhone(_ context.Context, phone string) (*entities.User, error) {
	if u, ok := f.byPhone[phone]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) CreateUser(_ context.Context, u *entities.User) error {
	f.created++
	f.add(u)
	return nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, u *entities.User) error {
	f.add(u)
	return nil
}

func (f *fakeUserRepo) UsernameTaken(_ context.Context, username, except string) (bool, error) {
	for id, u := range f.byID {
		if id != except && u.Username != nil && *u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) GetProfileCounts(context.Context, string) (ProfileCounts, error) {
	return f.profiles, nil
}

func (f *fakeUserRepo) CreateFollow(_ context.Context, fl *entities.Follow) error {
	key := [2]string{fl.FollowerID.String(), fl.FollowingID.String()}
	if f.follows[key] {
		return gorm.ErrDuplicatedKey
	}
	f.follows[key] = true
	return nil
}

func (f *fakeUserRepo) DeleteFollow(_ context.Context, a, b string) (int64, error) {
	key := [2]string{a, b}
	if !f.follows[key] {
		return 0, nil
	}
	delete(f.follows, key)
	return 1, nil
}

func (f *fakeUserRepo) IsFollowing(_ context.Context, a, b string) (bool, error) {
	return f.follows[[2]string{a, b}], nil
}

type fakeOTP struct {
	err    error
	phones []string
}

func (f *fakeOTP) Send(_ context.Context, phone string) (domain.SendOTPResponse, error) {
	f.phones = append(f.phones, phone)
	return domain.SendOTPResponse{Phone: phone}, nil
}

func (f *fakeOTP) Verify(context.Context, string, string) error { return f.err }

func newTestService(repo *fakeUserRepo, o *fakeOTP) (UserService, jwt.JWTService) {
	j := jwt.NewJWTServiceWithSecret("secret", time.Hour)
	return NewUserService(repo, o, j, logger.NewNop()), j
}

func TestVerifyOTPCreatesUserOnce(t *testing.T) {
	repo := newFakeUserRepo()
	svc, j := newTestService(repo, &fakeOTP{})
	ctx := context.Background()
	req := domain.VerifyOTPRequest{Phone: "+15551234567", Code: "123456"}

	first, err := svc.VerifyOTP(ctx, req)
	require.NoError(t, err)
	assert.True(t, first.IsNewUser)
	assert.Equal(t, domain.OnboardingStepProfile, first.User.OnboardingStep)

	id, _, err := j.GetUserIDByToken(first.Token)
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, id)

	second, err := svc.VerifyOTP(ctx, req)
	require.NoError(t, err)
	assert.False(t, second.IsNewUser)
	assert.Equal(t, first.User.ID, second.User.ID)
	assert.Equal(t, 1, repo.created)
}

func TestVerifyOTPRejected(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestService(repo, &fakeOTP{err: domain.ErrInvalidOTP})

	_, err := svc.VerifyOTP(context.Background(), domain.VerifyOTPRequest{Phone: "+15551234567", Code: "000000"})
	assert.ErrorIs(t, err, domain.ErrInvalidOTP)
	assert.Zero(t, repo.created)
}

func TestFollowRules(t *testing.T) {
	repo := newFakeUserRepo()
	a := repo.add(&entities.User{ID: uuid.New(), Phone: "a"})
	b := repo.add(&entities.User{ID: uuid.New(), Phone: "b"})
	svc, _ := newTestService(repo, &fakeOTP{})
	ctx := context.Background()

	assert.ErrorIs(t, svc.Follow(ctx, a.ID.String(), a.ID.String()), domain.ErrCannotFollowSelf)
	require.NoError(t, svc.Follow(ctx, a.ID.String(), b.ID.String()))
	assert.ErrorIs(t, svc.Follow(ctx, a.ID.String(), b.ID.String()), domain.ErrAlreadyFollowing)
	assert.ErrorIs(t, svc.Follow(ctx, a.ID.String(), uuid.NewString()), domain.ErrUserNotFound)

	following, err := svc.IsFollowing(ctx, a.ID.String(), b.ID.String())
	require.NoError(t, err)
	assert.True(t, following)

	require.NoError(t, svc.Unfollow(ctx, a.ID.String(), b.ID.String()))
	assert.ErrorIs(t, svc.Unfollow(ctx, a.ID.String(), b.ID.String()), domain.ErrNotFollowing)
}

func TestGetProfileHidesContactDetails(t *testing.T) {
	repo := newFakeUserRepo()
	a := repo.add(&entities.User{ID: uuid.New(), Phone: "+1555000001", Email: "a@x.io", Name: "A"})
	b := repo.add(&entities.User{ID: uuid.New(), Phone: "+1555000002", Name: "B"})
	repo.profiles = ProfileCounts{Followers: 3, Following: 1, Recipes: 7}
	repo.follows[[2]string{b.ID.String(), a.ID.String()}] = true
	svc, _ := newTestService(repo, &fakeOTP{})
	ctx := context.Background()

	other, err := svc.GetProfile(ctx, a.ID.String(), b.ID.String())
	require.NoError(t, err)
	assert.Empty(t, other.Phone)
	assert.Empty(t, other.Email)
	assert.True(t, other.IsFollowing)
	assert.Equal(t, 7, other.RecipesCount)

	me, err := svc.Me(ctx, a.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "+1555000001", me.Phone)
	assert.False(t, me.IsFollowing)
}

func TestUpdateProfileUsernameTaken(t *testing.T) {
	repo := newFakeUserRepo()
	taken := "chef"
	repo.add(&entities.User{ID: uuid.New(), Phone: "a", Username: &taken})
	b := repo.add(&entities.User{ID: uuid.New(), Phone: "b"})
	svc, _ := newTestService(repo, &fakeOTP{})

	_, err := svc.UpdateProfile(context.Background(), b.ID.String(), domain.UpdateProfileRequest{Username: &taken})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	name := "  Bea  "
	free := "bea"
	u, err := svc.UpdateProfile(context.Background(), b.ID.String(), domain.UpdateProfileRequest{Name: &name, Username: &free})
	require.NoError(t, err)
	assert.Equal(t, "Bea", u.Name)
	assert.Equal(t, "bea", u.Username)
}

func TestUpdateProfileRejectsBlankValues(t *testing.T) {
	repo := newFakeUserRepo()
	original := "chef"
	u := repo.add(&entities.User{ID: uuid.New(), Phone: "a", Name: "Chef", Username: &original})
	svc, _ := newTestService(repo, &fakeOTP{})

	blank := func(s string) *string { return &s }
	tests := []struct {
		name string
		req  domain.UpdateProfileRequest
	}{
		{name: "empty username", req: domain.UpdateProfileRequest{Username: blank("")}},
		{name: "whitespace username", req: domain.UpdateProfileRequest{Username: blank("   ")}},
		{name: "short after trim", req: domain.UpdateProfileRequest{Username: blank(" ab ")}},
		{name: "whitespace name", req: domain.UpdateProfileRequest{Name: blank("  ")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateProfile(context.Background(), u.ID.String(), tt.req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	stored, err := repo.GetUserByID(context.Background(), u.ID.String())
	require.NoError(t, err)
	require.NotNil(t, stored.Username)
	assert.Equal(t, "chef", *stored.Username)
	assert.Equal(t, "Chef", stored.Name)
}
