package data

import (
	"context"
	"errors"
	"fmt"

	"cinetalk/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userRepo struct {
	data *Data
	log  *log.Helper
}

// NewUserRepo creates a new user repository
func NewUserRepo(data *Data, logger log.Logger) biz.UserRepo {
	return &userRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *userRepo) CreateUser(ctx context.Context, user *biz.User) error {
	dbUser := userToModel(user)

	if err := r.data.db.WithContext(ctx).Omit(clause.Associations).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return biz.ErrUsernameTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = dbUser.ID
	user.JoinDate = dbUser.JoinDate
	return nil
}

func (r *userRepo) GetUser(ctx context.Context, id uint) (*biz.User, error) {
	var dbUser User
	if err := r.data.db.WithContext(ctx).First(&dbUser, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, biz.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return userToBiz(&dbUser), nil
}

func (r *userRepo) GetUserByUsername(ctx context.Context, username string) (*biz.User, error) {
	var dbUser User
	if err := r.data.db.WithContext(ctx).Where("username = ?", username).First(&dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, biz.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return userToBiz(&dbUser), nil
}

// profileColumns are the columns a profile update may touch; join_date and
// the token balance are never written here.
var profileColumns = []string{
	"username", "email", "first_name", "last_name",
	"profile_picture", "bio", "address", "updated_at",
}

func (r *userRepo) UpdateProfile(ctx context.Context, user *biz.User) error {
	dbUser := userToModel(user)

	return r.data.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&User{ID: user.ID}).Select(profileColumns).Updates(dbUser)
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				return biz.ErrUsernameTaken
			}
			return fmt.Errorf("failed to update profile: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return biz.ErrUserNotFound
		}
		return nil
	})
}

// Helper: Convert biz.User to data.User
func userToModel(u *biz.User) *User {
	return &User{
		ID:             u.ID,
		Username:       u.Username,
		Password:       u.PasswordHash,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		ProfilePicture: u.ProfilePicture,
		Bio:            u.Bio,
		Address:        u.Address,
		JoinDate:       u.JoinDate,
		Token:          u.Token,
	}
}

// Helper: Convert data.User to biz.User
func userToBiz(m *User) *biz.User {
	return &biz.User{
		ID:             m.ID,
		Username:       m.Username,
		PasswordHash:   m.Password,
		Email:          m.Email,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		ProfilePicture: m.ProfilePicture,
		Bio:            m.Bio,
		Address:        m.Address,
		JoinDate:       m.JoinDate,
		Token:          m.Token,
	}
}
