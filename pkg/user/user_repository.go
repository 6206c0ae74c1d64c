package user

import (
	"Recipe-Hub/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserRepository interface {
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByPhone(ctx context.Context, phone string) (*entities.User, error)
		CreateUser(ctx context.Context, user *entities.User) error
		UpdateUser(ctx context.Context, user *entities.User) error
		UsernameTaken(ctx context.Context, username string, exceptUserID string) (bool, error)
		GetProfileCounts(ctx context.Context, userID string) (ProfileCounts, error)

		CreateLocation(ctx context.Context, location *entities.Location) error
		GetLocations(ctx context.Context, userID string) ([]*entities.Location, error)
		DeleteLocation(ctx context.Context, userID, locationID string) (int64, error)

		CreateFollow(ctx context.Context, follow *entities.Follow) error
		DeleteFollow(ctx context.Context, followerID, followingID string) (int64, error)
		IsFollowing(ctx context.Context, followerID, followingID string) (bool, error)
		GetFollowers(ctx context.Context, userID string, offset, limit int) ([]*entities.User, int64, error)
		GetFollowing(ctx context.Context, userID string, offset, limit int) ([]*entities.User, int64, error)
	}

	ProfileCounts struct {
		Followers int
		Following int
		Recipes   int
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByPhone(ctx context.Context, phone string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) UsernameTaken(ctx context.Context, username string, exceptUserID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("LOWER(username) = LOWER(?) AND id <> ?", username, exceptUserID).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) GetProfileCounts(ctx context.Context, userID string) (ProfileCounts, error) {
	var counts ProfileCounts
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM follows WHERE following_id = @id) AS followers,
			(SELECT COUNT(*) FROM follows WHERE follower_id = @id) AS following,
			(SELECT COUNT(*) FROM recipes WHERE user_id = @id) AS recipes`,
		map[string]interface{}{"id": userID},
	).Scan(&counts).Error
	return counts, err
}

// CreateLocation clears the previous primary location when the new one is primary.
func (r *userRepository) CreateLocation(ctx context.Context, location *entities.Location) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if location.IsPrimary {
			if err := tx.Model(&entities.Location{}).
				Where("user_id = ? AND is_primary", location.UserID).
				Update("is_primary", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(location).Error
	})
}

func (r *userRepository) GetLocations(ctx context.Context, userID string) ([]*entities.Location, error) {
	var locations []*entities.Location
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_primary desc, created_at asc").
		Find(&locations).Error
	return locations, err
}

func (r *userRepository) DeleteLocation(ctx context.Context, userID, locationID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", locationID, userID).
		Delete(&entities.Location{})
	return res.RowsAffected, res.Error
}

func (r *userRepository) CreateFollow(ctx context.Context, follow *entities.Follow) error {
	if follow.ID == uuid.Nil {
		follow.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(follow).Error
}

func (r *userRepository) DeleteFollow(ctx context.Context, followerID, followingID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&entities.Follow{})
	return res.RowsAffected, res.Error
}

func (r *userRepository) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) GetFollowers(ctx context.Context, userID string, offset, limit int) ([]*entities.User, int64, error) {
	return r.followPage(ctx, "follows.follower_id", "follows.following_id = ?", userID, offset, limit)
}

func (r *userRepository) GetFollowing(ctx context.Context, userID string, offset, limit int) ([]*entities.User, int64, error) {
	return r.followPage(ctx, "follows.following_id", "follows.follower_id = ?", userID, offset, limit)
}

func (r *userRepository) followPage(ctx context.Context, joinCol, where, userID string, offset, limit int) ([]*entities.User, int64, error) {
	var users []*entities.User
	var count int64

	base := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Joins("JOIN follows ON users.id = "+joinCol).
		Where(where, userID)

	if err := base.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	if err := base.Session(&gorm.Session{}).
		Order("follows.created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, count, nil
}
