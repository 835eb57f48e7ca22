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

type movieRepo struct {
	data *Data
	log  *log.Helper
}

// NewMovieRepo creates a new movie repository
func NewMovieRepo(data *Data, logger log.Logger) biz.MovieRepo {
	return &movieRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *movieRepo) ListMovies(ctx context.Context) ([]*biz.Movie, error) {
	var dbMovies []Movie
	if err := r.data.db.WithContext(ctx).Order("vote_average DESC, tmdb_id").Find(&dbMovies).Error; err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return moviesToBiz(dbMovies), nil
}

func (r *movieRepo) GetMovie(ctx context.Context, id int64) (*biz.Movie, error) {
	var dbMovie Movie
	err := r.data.db.WithContext(ctx).
		Preload("Genres", func(db *gorm.DB) *gorm.DB { return db.Order("genres.id") }).
		First(&dbMovie, "tmdb_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, biz.ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}
	return movieToBiz(&dbMovie), nil
}

func (r *movieRepo) ListMoviesByGenre(ctx context.Context, genreID uint) ([]*biz.Movie, error) {
	var dbMovies []Movie
	err := r.data.db.WithContext(ctx).
		Joins("JOIN movie_genres ON movie_genres.movie_id = movies.tmdb_id").
		Where("movie_genres.genre_id = ?", genreID).
		Order("movies.vote_average DESC, movies.tmdb_id").
		Find(&dbMovies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to filter movies: %w", err)
	}
	return moviesToBiz(dbMovies), nil
}

func (r *movieRepo) ListGenres(ctx context.Context) ([]*biz.Genre, error) {
	var dbGenres []Genre
	if err := r.data.db.WithContext(ctx).Order("id").Find(&dbGenres).Error; err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	genres := make([]*biz.Genre, 0, len(dbGenres))
	for i := range dbGenres {
		genres = append(genres, &biz.Genre{ID: dbGenres[i].ID, Name: dbGenres[i].Name})
	}
	return genres, nil
}

// ToggleLike removes the (movie, user) row when present and inserts it
// otherwise, then recounts the set, all in one transaction.
func (r *movieRepo) ToggleLike(ctx context.Context, movieID int64, userID uint) (*biz.LikeResult, error) {
	res := &biz.LikeResult{}

	err := r.data.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&Movie{}).Where("tmdb_id = ?", movieID).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return biz.ErrMovieNotFound
		}

		del := tx.Where("movie_id = ? AND user_id = ?", movieID, userID).Delete(&MovieLike{})
		if del.Error != nil {
			return del.Error
		}
		if del.RowsAffected == 0 {
			like := &MovieLike{MovieID: movieID, UserID: userID}
			// A concurrent toggle may have inserted the row already.
			if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error; err != nil {
				return err
			}
			res.Liked = true
		}

		return tx.Model(&MovieLike{}).Where("movie_id = ?", movieID).Count(&res.LikeCount).Error
	})
	if err != nil {
		if errors.Is(err, biz.ErrMovieNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}
	return res, nil
}

func (r *movieRepo) ImportCatalog(ctx context.Context, genres []*biz.Genre, movies []*biz.Movie) error {
	return r.data.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(genres) > 0 {
			dbGenres := make([]Genre, 0, len(genres))
			for _, g := range genres {
				dbGenres = append(dbGenres, Genre{ID: g.ID, Name: g.Name})
			}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&dbGenres).Error; err != nil {
				return fmt.Errorf("failed to import genres: %w", err)
			}
		}

		var genreIDs []uint
		if err := tx.Model(&Genre{}).Pluck("id", &genreIDs).Error; err != nil {
			return fmt.Errorf("failed to load genres: %w", err)
		}
		known := make(map[uint]struct{}, len(genreIDs))
		for _, id := range genreIDs {
			known[id] = struct{}{}
		}

		for _, m := range movies {
			dbMovie := movieToModel(m)
			if err := tx.Omit("Genres").Clauses(clause.OnConflict{UpdateAll: true}).Create(dbMovie).Error; err != nil {
				return fmt.Errorf("failed to import movie %d: %w", m.ID, err)
			}

			tags := make([]Genre, 0, len(m.GenreIDs))
			for _, id := range m.GenreIDs {
				if _, ok := known[uint(id)]; !ok {
					r.log.WithContext(ctx).Warnf("movie %d references unknown genre %d, skipping tag", m.ID, id)
					continue
				}
				tags = append(tags, Genre{ID: uint(id)})
			}
			if err := tx.Model(dbMovie).Association("Genres").Replace(tags); err != nil {
				return fmt.Errorf("failed to tag movie %d: %w", m.ID, err)
			}
		}
		return nil
	})
}

// Helper: Convert biz.Movie to data.Movie
func movieToModel(m *biz.Movie) *Movie {
	return &Movie{
		TmdbID:           m.ID,
		OriginalLanguage: m.OriginalLanguage,
		OriginalTitle:    m.OriginalTitle,
		Title:            m.Title,
		Overview:         m.Overview,
		ReleaseDate:      m.ReleaseDate,
		PosterPath:       m.PosterPath,
		BackdropPath:     m.BackdropPath,
		GenreIDs:         m.GenreIDs,
		Adult:            m.Adult,
		Popularity:       m.Popularity,
		VoteAverage:      m.VoteAverage,
		VoteCount:        m.VoteCount,
		Video:            m.Video,
	}
}

// Helper: Convert data.Movie to biz.Movie
func movieToBiz(m *Movie) *biz.Movie {
	movie := &biz.Movie{
		ID:               m.TmdbID,
		OriginalLanguage: m.OriginalLanguage,
		OriginalTitle:    m.OriginalTitle,
		Title:            m.Title,
		Overview:         m.Overview,
		ReleaseDate:      m.ReleaseDate,
		PosterPath:       m.PosterPath,
		BackdropPath:     m.BackdropPath,
		GenreIDs:         m.GenreIDs,
		Adult:            m.Adult,
		Popularity:       m.Popularity,
		VoteAverage:      m.VoteAverage,
		VoteCount:        m.VoteCount,
		Video:            m.Video,
	}
	for i := range m.Genres {
		movie.Genres = append(movie.Genres, &biz.Genre{ID: m.Genres[i].ID, Name: m.Genres[i].Name})
	}
	return movie
}

func moviesToBiz(dbMovies []Movie) []*biz.Movie {
	movies := make([]*biz.Movie, 0, len(dbMovies))
	for i := range dbMovies {
		movies = append(movies, movieToBiz(&dbMovies[i]))
	}
	return movies
}
