package biz

import (
	"context"
	"sort"

	"github.com/go-kratos/kratos/v2/log"

	"cinetalk/internal/pkg/metrics"
)

// MovieUseCase handles catalog business logic
type MovieUseCase struct {
	repo MovieRepo
	log  *log.Helper
}

// NewMovieUseCase creates a new MovieUseCase instance
func NewMovieUseCase(repo MovieRepo, logger log.Logger) *MovieUseCase {
	return &MovieUseCase{
		repo: repo,
		log:  log.NewHelper(logger),
	}
}

// ListMovies returns the whole catalog in catalog order
func (uc *MovieUseCase) ListMovies(ctx context.Context) ([]*Movie, error) {
	movies, err := uc.repo.ListMovies(ctx)
	if err != nil {
		return nil, err
	}
	SortMovies(movies)
	return movies, nil
}

// GetMovie retrieves a movie with its genres
func (uc *MovieUseCase) GetMovie(ctx context.Context, id int64) (*Movie, error) {
	return uc.repo.GetMovie(ctx, id)
}

// FilterByGenre returns the movies tagged with genreID, or the whole catalog
// when genreID is nil, alongside every genre.
func (uc *MovieUseCase) FilterByGenre(ctx context.Context, genreID *uint) (*GenreFilter, error) {
	var (
		movies []*Movie
		err    error
	)
	if genreID != nil {
		movies, err = uc.repo.ListMoviesByGenre(ctx, *genreID)
	} else {
		movies, err = uc.repo.ListMovies(ctx)
	}
	if err != nil {
		return nil, err
	}
	SortMovies(movies)

	genres, err := uc.repo.ListGenres(ctx)
	if err != nil {
		return nil, err
	}
	return &GenreFilter{Movies: movies, Genres: genres}, nil
}

// ToggleLike flips the user's membership in the movie's liked-by set
func (uc *MovieUseCase) ToggleLike(ctx context.Context, userID uint, movieID int64) (*LikeResult, error) {
	res, err := uc.repo.ToggleLike(ctx, movieID, userID)
	if err != nil {
		return nil, err
	}
	if res.Liked {
		metrics.LikeToggles.WithLabelValues("liked").Inc()
	} else {
		metrics.LikeToggles.WithLabelValues("unliked").Inc()
	}
	return res, nil
}

// ImportCatalog upserts genres and movies from a catalog dump
func (uc *MovieUseCase) ImportCatalog(ctx context.Context, genres []*Genre, movies []*Movie) error {
	if err := uc.repo.ImportCatalog(ctx, genres, movies); err != nil {
		return err
	}
	uc.log.WithContext(ctx).Infof("imported %d genres and %d movies", len(genres), len(movies))
	return nil
}

// SortMovies orders movies by vote average, highest first, then by id.
func SortMovies(movies []*Movie) {
	sort.SliceStable(movies, func(i, j int) bool {
		if movies[i].VoteAverage != movies[j].VoteAverage {
			return movies[i].VoteAverage > movies[j].VoteAverage
		}
		return movies[i].ID < movies[j].ID
	})
}
