package service

import (
	"context"

	v1 "cinetalk/api/cinetalk/v1"
	"cinetalk/internal/biz"
)

// MovieService implements the Movie API
type MovieService struct {
	uc *biz.MovieUseCase
}

// NewMovieService creates a new MovieService
func NewMovieService(uc *biz.MovieUseCase) *MovieService {
	return &MovieService{uc: uc}
}

// ListMovies implements catalog listing
func (s *MovieService) ListMovies(ctx context.Context, _ *v1.ListMoviesRequest) (*v1.ListMoviesReply, error) {
	movies, err := s.uc.ListMovies(ctx)
	if err != nil {
		return nil, err
	}
	reply := &v1.ListMoviesReply{Results: make([]*v1.MovieSummary, 0, len(movies))}
	for _, m := range movies {
		reply.Results = append(reply.Results, movieSummary(m))
	}
	return reply, nil
}

// GetMovie implements movie detail
func (s *MovieService) GetMovie(ctx context.Context, req *v1.GetMovieRequest) (*v1.GetMovieReply, error) {
	movie, err := s.uc.GetMovie(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	detail := &v1.MovieDetail{
		MovieSummary: *movieSummary(movie),
		Genres:       genresToReply(movie.Genres),
	}
	return &v1.GetMovieReply{Movie: detail}, nil
}

// FilterGenre implements genre filtering; an absent genre_id returns the whole catalog
func (s *MovieService) FilterGenre(ctx context.Context, req *v1.FilterGenreRequest) (*v1.FilterGenreReply, error) {
	res, err := s.uc.FilterByGenre(ctx, req.GenreId)
	if err != nil {
		return nil, err
	}
	reply := &v1.FilterGenreReply{
		Movies: make([]*v1.FilteredMovie, 0, len(res.Movies)),
		Genres: genresToReply(res.Genres),
	}
	for _, m := range res.Movies {
		reply.Movies = append(reply.Movies, &v1.FilteredMovie{
			Id:          m.ID,
			Title:       m.Title,
			ReleaseDate: formatDate(m),
			Popularity:  m.Popularity,
			VoteCount:   m.VoteCount,
			VoteAverage: m.VoteAverage,
			Overview:    m.Overview,
			PosterPath:  m.PosterPath,
		})
	}
	return reply, nil
}

// ToggleLike implements the like flip for the caller
func (s *MovieService) ToggleLike(ctx context.Context, req *v1.ToggleLikeRequest) (*v1.ToggleLikeReply, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.uc.ToggleLike(ctx, id.UserID, req.Id)
	if err != nil {
		return nil, err
	}
	return &v1.ToggleLikeReply{Liked: res.Liked, LikeCount: res.LikeCount}, nil
}

// HealthCheck implements health check
func (s *MovieService) HealthCheck(ctx context.Context, req *v1.HealthCheckRequest) (*v1.HealthCheckReply, error) {
	return &v1.HealthCheckReply{
		Status: "ok",
	}, nil
}

// Helper functions

func movieSummary(m *biz.Movie) *v1.MovieSummary {
	return &v1.MovieSummary{
		Id:           m.ID,
		Title:        m.Title,
		Overview:     m.Overview,
		PosterPath:   m.PosterPath,
		BackdropPath: m.BackdropPath,
		VoteAverage:  m.VoteAverage,
		VoteCount:    m.VoteCount,
		ReleaseDate:  formatDate(m),
	}
}

func formatDate(m *biz.Movie) *string {
	if m.ReleaseDate == nil {
		return nil
	}
	s := m.ReleaseDate.Format(dateLayout)
	return &s
}

func genresToReply(genres []*biz.Genre) []*v1.Genre {
	out := make([]*v1.Genre, 0, len(genres))
	for _, g := range genres {
		out = append(out, &v1.Genre{Id: g.ID, Name: g.Name})
	}
	return out
}
