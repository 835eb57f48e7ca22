package server

import (
	"context"

	v1 "cinetalk/api/cinetalk/v1"
	"cinetalk/internal/biz"
	"cinetalk/internal/pkg/authn"

	"github.com/go-kratos/kratos/v2/middleware"
	"github.com/go-kratos/kratos/v2/middleware/auth/jwt"
)

// protectedOperations require a valid bearer token.
var protectedOperations = map[string]struct{}{
	v1.OperationAccountLogout:        {},
	v1.OperationAccountUserDetails:   {},
	v1.OperationAccountUpdateProfile: {},
	v1.OperationMovieToggleLike:      {},
	v1.OperationArticleCreateArticle: {},
	v1.OperationArticleUpdateArticle: {},
	v1.OperationArticleDeleteArticle: {},
	v1.OperationArticleCreateComment: {},
	v1.OperationArticleDeleteComment: {},
	v1.OperationArticleCurrentUser:   {},
}

func requiresAuth(_ context.Context, operation string) bool {
	_, ok := protectedOperations[operation]
	return ok
}

// Authenticator decides whether a verified identity may still be used.
type Authenticator interface {
	Authenticate(ctx context.Context, id authn.Identity) error
}

// IdentityMiddleware turns the claims verified by the jwt middleware into an
// authn.Identity on the request context, rejecting revoked tokens.
func IdentityMiddleware(a Authenticator) middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			claims, ok := jwt.FromContext(ctx)
			if !ok {
				return nil, biz.ErrUnauthenticated
			}
			c, ok := claims.(*authn.Claims)
			if !ok {
				return nil, biz.ErrUnauthenticated
			}
			id, ok := authn.IdentityFromClaims(c)
			if !ok {
				return nil, biz.ErrUnauthenticated
			}
			if err := a.Authenticate(ctx, id); err != nil {
				return nil, err
			}
			return handler(authn.NewContext(ctx, id), req)
		}
	}
}
