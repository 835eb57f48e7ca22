package service

import (
	"context"
	"fmt"
	"strings"

	v1 "cinetalk/api/cinetalk/v1"
	"cinetalk/internal/biz"
	"cinetalk/internal/pkg/authn"
	"cinetalk/internal/pkg/validate"
)

// AccountService implements the Account API
type AccountService struct {
	uc *biz.AccountUseCase
}

// NewAccountService creates a new AccountService
func NewAccountService(uc *biz.AccountUseCase) *AccountService {
	return &AccountService{uc: uc}
}

func (s *AccountService) Signup(ctx context.Context, req *v1.SignupRequest) (*v1.SignupReply, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	key, err := s.uc.Signup(ctx, &biz.SignupRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password1,
	})
	if err != nil {
		return nil, err
	}
	return &v1.SignupReply{Key: key}, nil
}

func (s *AccountService) Login(ctx context.Context, req *v1.LoginRequest) (*v1.LoginReply, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	key, err := s.uc.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}
	return &v1.LoginReply{Key: key}, nil
}

func (s *AccountService) Logout(ctx context.Context, _ *v1.LogoutRequest) (*v1.LogoutReply, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.uc.Logout(ctx, id); err != nil {
		return nil, err
	}
	return &v1.LogoutReply{Detail: "Successfully logged out."}, nil
}

func (s *AccountService) UserDetails(ctx context.Context, _ *v1.UserDetailsRequest) (*v1.UserDetailsReply, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.uc.GetProfile(ctx, id.UserID)
	if err != nil {
		return nil, err
	}
	return &v1.UserDetailsReply{
		Pk:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

func (s *AccountService) GetProfile(ctx context.Context, req *v1.GetProfileRequest) (*v1.Profile, error) {
	user, err := s.uc.GetProfile(ctx, req.UserId)
	if err != nil {
		return nil, err
	}
	return profileToReply(user), nil
}

func (s *AccountService) UpdateProfile(ctx context.Context, req *v1.UpdateProfileRequest) (*v1.Profile, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if req.Username != nil {
		trimmed := strings.TrimSpace(*req.Username)
		req.Username = &trimmed
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	patch := &biz.ProfilePatch{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Address:   req.Address,
	}
	if fh := req.ProfilePicture; fh != nil {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open upload: %w", err)
		}
		defer f.Close()
		patch.Image = &biz.Upload{Filename: fh.Filename, Size: fh.Size, Content: f}
	}

	user, err := s.uc.UpdateProfile(ctx, id.UserID, req.UserId, patch)
	if err != nil {
		return nil, err
	}
	return profileToReply(user), nil
}

// Authenticate is called by the auth middleware once the token signature is verified.
func (s *AccountService) Authenticate(ctx context.Context, id authn.Identity) error {
	return s.uc.Authenticate(ctx, id)
}

func profileToReply(u *biz.User) *v1.Profile {
	return &v1.Profile{
		Id:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		ProfilePicture: u.ProfilePicture,
		Bio:            u.Bio,
		Address:        u.Address,
		JoinDate:       u.JoinDate.Format(dateLayout),
		Token:          u.Token,
	}
}
