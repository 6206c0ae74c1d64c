package graph

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/internal/api/reqctx"
	"Recipe-Hub/internal/utils"
	"context"

	"github.com/graph-gophers/graphql-go"
)

type (
	updateProfileInput struct {
		Name      *string
		Username  *string
		Email     *string
		Bio       *string
		AvatarURL *string
	}

	locationInput struct {
		Label     *string
		City      string
		State     *string
		Country   string
		Latitude  float64
		Longitude float64
		IsPrimary *bool
	}

	userPageArgs struct {
		UserID graphql.ID
		Offset *int32
		Limit  *int32
	}
)

func (r *Resolver) SendOtp(ctx context.Context, args struct{ Phone string }) (*otpChallengeView, error) {
	req := domain.SendOTPRequest{Phone: args.Phone}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, wrapError(domain.ErrInvalidPhone)
	}
	res, err := r.users.SendOTP(ctx, req)
	if err != nil {
		return nil, wrapError(err)
	}
	return &otpChallengeView{Phone: res.Phone, ExpiresAt: gqlTime(res.ExpiresAt)}, nil
}

func (r *Resolver) VerifyOtp(ctx context.Context, args struct {
	Phone string
	Code  string
}) (*authPayloadView, error) {
	req := domain.VerifyOTPRequest{Phone: args.Phone, Code: args.Code}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, wrapError(err)
	}
	res, err := r.users.VerifyOTP(ctx, req)
	if err != nil {
		return nil, wrapError(err)
	}
	return &authPayloadView{Token: res.Token, User: toUserView(res.User), IsNewUser: res.IsNewUser}, nil
}

func (r *Resolver) Me(ctx context.Context) (*userProfileView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	res, err := r.users.Me(ctx, userID)
	if err != nil {
		return nil, wrapError(err)
	}
	return toUserProfileView(res), nil
}

func (r *Resolver) User(ctx context.Context, args struct{ ID graphql.ID }) (*userProfileView, error) {
	res, err := r.users.GetProfile(ctx, string(args.ID), reqctx.ViewerID(ctx))
	if err != nil {
		return nil, wrapError(err)
	}
	return toUserProfileView(res), nil
}

func (r *Resolver) UpdateProfile(ctx context.Context, args struct{ Input updateProfileInput }) (*userView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	req := domain.UpdateProfileRequest{
		Name:      args.Input.Name,
		Username:  args.Input.Username,
		Email:     args.Input.Email,
		Bio:       args.Input.Bio,
		AvatarURL: args.Input.AvatarURL,
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, wrapError(err)
	}
	res, err := r.users.UpdateProfile(ctx, userID, req)
	if err != nil {
		return nil, wrapError(err)
	}
	return toUserView(res), nil
}

func (r *Resolver) MyLocations(ctx context.Context) ([]*locationView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	res, err := r.users.MyLocations(ctx, userID)
	if err != nil {
		return nil, wrapError(err)
	}
	out := make([]*locationView, 0, len(res))
	for _, l := range res {
		out = append(out, toLocationView(l))
	}
	return out, nil
}

func (r *Resolver) AddLocation(ctx context.Context, args struct{ Input locationInput }) (*locationView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	req := domain.LocationRequest{
		Label:     stringValue(args.Input.Label),
		City:      args.Input.City,
		State:     stringValue(args.Input.State),
		Country:   args.Input.Country,
		Latitude:  args.Input.Latitude,
		Longitude: args.Input.Longitude,
		IsPrimary: args.Input.IsPrimary != nil && *args.Input.IsPrimary,
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, wrapError(err)
	}
	res, err := r.users.AddLocation(ctx, userID, req)
	if err != nil {
		return nil, wrapError(err)
	}
	return toLocationView(res), nil
}

func (r *Resolver) RemoveLocation(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return false, wrapError(err)
	}
	if err := r.users.RemoveLocation(ctx, userID, string(args.ID)); err != nil {
		return false, wrapError(err)
	}
	return true, nil
}

func (r *Resolver) FollowUser(ctx context.Context, args struct{ UserID graphql.ID }) (bool, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return false, wrapError(err)
	}
	if err := r.users.Follow(ctx, userID, string(args.UserID)); err != nil {
		return false, wrapError(err)
	}
	return true, nil
}

func (r *Resolver) UnfollowUser(ctx context.Context, args struct{ UserID graphql.ID }) (bool, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return false, wrapError(err)
	}
	if err := r.users.Unfollow(ctx, userID, string(args.UserID)); err != nil {
		return false, wrapError(err)
	}
	return true, nil
}

func (r *Resolver) IsFollowing(ctx context.Context, args struct{ UserID graphql.ID }) (bool, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return false, wrapError(err)
	}
	following, err := r.users.IsFollowing(ctx, userID, string(args.UserID))
	if err != nil {
		return false, wrapError(err)
	}
	return following, nil
}

func (r *Resolver) Followers(ctx context.Context, args userPageArgs) (*userPageView, error) {
	users, total, err := r.users.Followers(ctx, string(args.UserID), toPage(args.Offset, args.Limit))
	if err != nil {
		return nil, wrapError(err)
	}
	return toUserPageView(users, total), nil
}

func (r *Resolver) Following(ctx context.Context, args userPageArgs) (*userPageView, error) {
	users, total, err := r.users.Following(ctx, string(args.UserID), toPage(args.Offset, args.Limit))
	if err != nil {
		return nil, wrapError(err)
	}
	return toUserPageView(users, total), nil
}
