package v1

import (
	"context"

	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

const (
	OperationMovieListMovies  = "/cinetalk.v1.Movie/ListMovies"
	OperationMovieGetMovie    = "/cinetalk.v1.Movie/GetMovie"
	OperationMovieFilterGenre = "/cinetalk.v1.Movie/FilterGenre"
	OperationMovieToggleLike  = "/cinetalk.v1.Movie/ToggleLike"
	OperationMovieHealthCheck = "/cinetalk.v1.Movie/HealthCheck"
)

type MovieHTTPServer interface {
	ListMovies(context.Context, *ListMoviesRequest) (*ListMoviesReply, error)
	GetMovie(context.Context, *GetMovieRequest) (*GetMovieReply, error)
	FilterGenre(context.Context, *FilterGenreRequest) (*FilterGenreReply, error)
	ToggleLike(context.Context, *ToggleLikeRequest) (*ToggleLikeReply, error)
	HealthCheck(context.Context, *HealthCheckRequest) (*HealthCheckReply, error)
}

func RegisterMovieHTTPServer(s *khttp.Server, srv MovieHTTPServer) {
	r := s.Route("/api/v1")
	r.GET("/movies", movieListMoviesHandler(srv))
	r.GET("/movies/filter-genre", movieFilterGenreHandler(srv))
	r.GET("/movies/{id:[0-9]+}", movieGetMovieHandler(srv))
	r.POST("/movies/{id:[0-9]+}/like", movieToggleLikeHandler(srv))
	r.GET("/healthz", movieHealthCheckHandler(srv))
}

func movieListMoviesHandler(srv MovieHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in ListMoviesRequest
		khttp.SetOperation(ctx, OperationMovieListMovies)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListMovies(ctx, req.(*ListMoviesRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*ListMoviesReply)
		return ctx.Result(200, reply)
	}
}

func movieFilterGenreHandler(srv MovieHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in FilterGenreRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationMovieFilterGenre)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.FilterGenre(ctx, req.(*FilterGenreRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*FilterGenreReply)
		return ctx.Result(200, reply)
	}
}

func movieGetMovieHandler(srv MovieHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in GetMovieRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationMovieGetMovie)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.GetMovie(ctx, req.(*GetMovieRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*GetMovieReply)
		return ctx.Result(200, reply)
	}
}

func movieToggleLikeHandler(srv MovieHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in ToggleLikeRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationMovieToggleLike)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ToggleLike(ctx, req.(*ToggleLikeRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*ToggleLikeReply)
		return ctx.Result(200, reply)
	}
}

func movieHealthCheckHandler(srv MovieHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in HealthCheckRequest
		khttp.SetOperation(ctx, OperationMovieHealthCheck)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.HealthCheck(ctx, req.(*HealthCheckRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*HealthCheckReply)
		return ctx.Result(200, reply)
	}
}
