package biz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"golang.org/x/crypto/bcrypt"

	"cinetalk/internal/pkg/authn"
)

// AccountUseCase handles registration, login and profile business logic
type AccountUseCase struct {
	users  UserRepo
	tokens TokenRepo
	media  MediaStore
	log    *log.Helper
}

// NewAccountUseCase creates a new AccountUseCase instance
func NewAccountUseCase(users UserRepo, tokens TokenRepo, media MediaStore, logger log.Logger) *AccountUseCase {
	return &AccountUseCase{
		users:  users,
		tokens: tokens,
		media:  media,
		log:    log.NewHelper(logger),
	}
}

// Signup creates an account and returns a token for it
func (uc *AccountUseCase) Signup(ctx context.Context, req *SignupRequest) (string, error) {
	if _, err := uc.users.GetUserByUsername(ctx, req.Username); err == nil {
		return "", ErrUsernameTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		Username:       req.Username,
		Email:          req.Email,
		PasswordHash:   string(hash),
		ProfilePicture: DefaultProfilePicture,
		JoinDate:       time.Now().UTC(),
		Token:          DefaultTokenBalance,
	}
	if err := uc.users.CreateUser(ctx, user); err != nil {
		return "", err
	}
	uc.log.WithContext(ctx).Infof("user %d registered", user.ID)

	return uc.tokens.Issue(ctx, user)
}

// Login verifies credentials and issues a token
func (uc *AccountUseCase) Login(ctx context.Context, username, password string) (string, error) {
	user, err := uc.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return uc.tokens.Issue(ctx, user)
}

// Logout revokes the caller's token until it would have expired anyway
func (uc *AccountUseCase) Logout(ctx context.Context, id authn.Identity) error {
	if id.TokenID == "" {
		return nil
	}
	if err := uc.tokens.Revoke(ctx, id.TokenID, id.ExpiresAt); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// Authenticate rejects identities whose token was revoked
func (uc *AccountUseCase) Authenticate(ctx context.Context, id authn.Identity) error {
	if id.TokenID == "" {
		return nil
	}
	revoked, err := uc.tokens.IsRevoked(ctx, id.TokenID)
	if err != nil {
		// An unreachable revocation store must not lock every user out.
		uc.log.WithContext(ctx).Warnf("revocation check failed for token %s: %v", id.TokenID, err)
		return nil
	}
	if revoked {
		return ErrTokenRevoked
	}
	return nil
}

// GetProfile retrieves a user's profile
func (uc *AccountUseCase) GetProfile(ctx context.Context, userID uint) (*User, error) {
	return uc.users.GetUser(ctx, userID)
}

// UpdateProfile merges the supplied fields onto the stored profile. Only the
// owner may update a profile.
func (uc *AccountUseCase) UpdateProfile(ctx context.Context, callerID, userID uint, patch *ProfilePatch) (*User, error) {
	user, err := uc.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := guardProfile(callerID, user); err != nil {
		return nil, err
	}

	applyProfilePatch(user, patch)
	if user.Username == "" {
		return nil, ErrUsernameRequired
	}

	previous := user.ProfilePicture
	var stored string
	if patch.Image != nil {
		stored, err = uc.media.Save(ctx, patch.Image)
		if err != nil {
			if errors.Is(err, ErrInvalidImage) {
				return nil, err
			}
			return nil, persistenceFailure(err)
		}
		user.ProfilePicture = stored
	}

	if err := uc.users.UpdateProfile(ctx, user); err != nil {
		if stored != "" {
			if rmErr := uc.media.Remove(ctx, stored); rmErr != nil {
				uc.log.WithContext(ctx).Warnf("failed to remove orphaned image %s: %v", stored, rmErr)
			}
		}
		if errors.Is(err, ErrUsernameTaken) || errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
		return nil, persistenceFailure(err)
	}

	if stored != "" && previous != DefaultProfilePicture {
		if err := uc.media.Remove(ctx, previous); err != nil {
			uc.log.WithContext(ctx).Warnf("failed to remove replaced image %s: %v", previous, err)
		}
	}
	return user, nil
}

func applyProfilePatch(user *User, patch *ProfilePatch) {
	if patch.Username != nil {
		user.Username = strings.TrimSpace(*patch.Username)
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Bio != nil {
		user.Bio = patch.Bio
	}
	if patch.Address != nil {
		user.Address = patch.Address
	}
}
