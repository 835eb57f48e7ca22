package service

import (
	"context"

	"github.com/google/wire"

	"cinetalk/internal/biz"
	"cinetalk/internal/pkg/authn"
)

// ProviderSet is service providers.
var ProviderSet = wire.NewSet(
	NewAccountService,
	NewMovieService,
	NewArticleService,
	NewCompletionService,
)

const dateLayout = "2006-01-02"

// caller returns the authenticated identity placed on ctx by the auth middleware.
func caller(ctx context.Context) (authn.Identity, error) {
	id, ok := authn.FromContext(ctx)
	if !ok {
		return authn.Identity{}, biz.ErrUnauthenticated
	}
	return id, nil
}
