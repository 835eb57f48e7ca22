package v1

import (
	"context"

	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

const (
	OperationAccountSignup        = "/cinetalk.v1.Account/Signup"
	OperationAccountLogin         = "/cinetalk.v1.Account/Login"
	OperationAccountLogout        = "/cinetalk.v1.Account/Logout"
	OperationAccountUserDetails   = "/cinetalk.v1.Account/UserDetails"
	OperationAccountGetProfile    = "/cinetalk.v1.Account/GetProfile"
	OperationAccountUpdateProfile = "/cinetalk.v1.Account/UpdateProfile"
)

type AccountHTTPServer interface {
	Signup(context.Context, *SignupRequest) (*SignupReply, error)
	Login(context.Context, *LoginRequest) (*LoginReply, error)
	Logout(context.Context, *LogoutRequest) (*LogoutReply, error)
	UserDetails(context.Context, *UserDetailsRequest) (*UserDetailsReply, error)
	GetProfile(context.Context, *GetProfileRequest) (*Profile, error)
	UpdateProfile(context.Context, *UpdateProfileRequest) (*Profile, error)
}

func RegisterAccountHTTPServer(s *khttp.Server, srv AccountHTTPServer) {
	r := s.Route("/api/v1")
	r.POST("/accounts/signup", accountSignupHandler(srv))
	r.POST("/accounts/login", accountLoginHandler(srv))
	r.POST("/accounts/logout", accountLogoutHandler(srv))
	r.GET("/accounts/user", accountUserDetailsHandler(srv))
	r.GET("/profile/{user_id:[0-9]+}", accountGetProfileHandler(srv))
	r.PUT("/profile/{user_id:[0-9]+}", accountUpdateProfileHandler(srv))
}

func accountSignupHandler(srv AccountHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in SignupRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationAccountSignup)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.Signup(ctx, req.(*SignupRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*SignupReply)
		return ctx.Result(200, reply)
	}
}

func accountLoginHandler(srv AccountHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in LoginRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationAccountLogin)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.Login(ctx, req.(*LoginRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*LoginReply)
		return ctx.Result(200, reply)
	}
}

func accountLogoutHandler(srv AccountHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in LogoutRequest
		khttp.SetOperation(ctx, OperationAccountLogout)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.Logout(ctx, req.(*LogoutRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*LogoutReply)
		return ctx.Result(200, reply)
	}
}

func accountUserDetailsHandler(srv AccountHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in UserDetailsRequest
		khttp.SetOperation(ctx, OperationAccountUserDetails)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.UserDetails(ctx, req.(*UserDetailsRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*UserDetailsReply)
		return ctx.Result(200, reply)
	}
}

func accountGetProfileHandler(srv AccountHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in GetProfileRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationAccountGetProfile)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.GetProfile(ctx, req.(*GetProfileRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*Profile)
		return ctx.Result(200, reply)
	}
}

func accountUpdateProfileHandler(srv AccountHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in UpdateProfileRequest
		if err := bindProfileUpdate(ctx, &in); err != nil {
			return err
		}
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationAccountUpdateProfile)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.UpdateProfile(ctx, req.(*UpdateProfileRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*Profile)
		return ctx.Result(200, reply)
	}
}
