package server

import (
	"net/http"

	v1 "cinetalk/api/cinetalk/v1"
	"cinetalk/internal/conf"
	"cinetalk/internal/pkg/authn"
	"cinetalk/internal/pkg/metrics"
	"cinetalk/internal/service"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/auth/jwt"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/middleware/selector"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewHTTPServer new an HTTP server.
func NewHTTPServer(
	c *conf.Server,
	auth *conf.Auth,
	media *conf.Media,
	accountSvc *service.AccountService,
	movieSvc *service.MovieService,
	articleSvc *service.ArticleService,
	completionSvc *service.CompletionService,
	logger log.Logger,
) *khttp.Server {
	secret := []byte(auth.JwtSecret)
	var opts = []khttp.ServerOption{
		khttp.Middleware(
			recovery.Recovery(),
			logging.Server(logger),
			metrics.Server(),
			selector.Server(
				jwt.Server(
					func(*jwtv5.Token) (interface{}, error) { return secret, nil },
					jwt.WithSigningMethod(jwtv5.SigningMethodHS256),
					jwt.WithClaims(func() jwtv5.Claims { return &authn.Claims{} }),
				),
				IdentityMiddleware(accountSvc),
			).Match(requiresAuth).Build(),
		),
		khttp.ResponseEncoder(encodeResponse),
		khttp.ErrorEncoder(encodeError),
		khttp.NotFoundHandler(http.HandlerFunc(notFound)),
		khttp.MethodNotAllowedHandler(http.HandlerFunc(methodNotAllowed)),
	}
	if c.Http.Network != "" {
		opts = append(opts, khttp.Network(c.Http.Network))
	}
	if c.Http.Addr != "" {
		opts = append(opts, khttp.Address(c.Http.Addr))
	}
	if c.Http.Timeout != nil {
		opts = append(opts, khttp.Timeout(c.Http.Timeout.AsDuration()))
	}
	srv := khttp.NewServer(opts...)

	v1.RegisterAccountHTTPServer(srv, accountSvc)
	v1.RegisterMovieHTTPServer(srv, movieSvc)
	v1.RegisterArticleHTTPServer(srv, articleSvc)
	v1.RegisterCompletionHTTPServer(srv, completionSvc)

	srv.Handle("/metrics", promhttp.Handler())
	if media != nil && media.Root != "" {
		srv.HandlePrefix("/media/", http.StripPrefix("/media/", http.FileServer(http.Dir(media.Root))))
	}
	return srv
}
