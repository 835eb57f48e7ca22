package main

import (
	"fmt"
	"io"
	"time"

	"cinetalk/internal/biz"

	"github.com/goccy/go-json"
)

// catalogFile is a TMDB-style dump: the genre list plus discover results.
type catalogFile struct {
	Genres  []catalogGenre `json:"genres"`
	Results []catalogMovie `json:"results"`
}

type catalogGenre struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type catalogMovie struct {
	ID               int64   `json:"id"`
	OriginalLanguage string  `json:"original_language"`
	OriginalTitle    string  `json:"original_title"`
	Title            string  `json:"title"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	PosterPath       *string `json:"poster_path"`
	BackdropPath     *string `json:"backdrop_path"`
	GenreIDs         []int64 `json:"genre_ids"`
	Adult            bool    `json:"adult"`
	Popularity       float64 `json:"popularity"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Video            bool    `json:"video"`
}

// parseCatalog decodes a dump into domain values. Movies without an id or
// title are rejected; an empty release date is stored as null.
func parseCatalog(r io.Reader) ([]*biz.Genre, []*biz.Movie, error) {
	var f catalogFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, nil, fmt.Errorf("decode catalog: %w", err)
	}

	genres := make([]*biz.Genre, 0, len(f.Genres))
	for _, g := range f.Genres {
		genres = append(genres, &biz.Genre{ID: g.ID, Name: g.Name})
	}

	movies := make([]*biz.Movie, 0, len(f.Results))
	for i, m := range f.Results {
		if m.ID == 0 || m.Title == "" {
			return nil, nil, fmt.Errorf("movie #%d: id and title are required", i)
		}
		movie := &biz.Movie{
			ID:               m.ID,
			OriginalLanguage: m.OriginalLanguage,
			OriginalTitle:    m.OriginalTitle,
			Title:            m.Title,
			Overview:         m.Overview,
			PosterPath:       m.PosterPath,
			BackdropPath:     m.BackdropPath,
			GenreIDs:         m.GenreIDs,
			Adult:            m.Adult,
			Popularity:       m.Popularity,
			VoteAverage:      m.VoteAverage,
			VoteCount:        m.VoteCount,
			Video:            m.Video,
		}
		if movie.GenreIDs == nil {
			movie.GenreIDs = []int64{}
		}
		if m.ReleaseDate != "" {
			d, err := time.Parse("2006-01-02", m.ReleaseDate)
			if err != nil {
				return nil, nil, fmt.Errorf("movie %d: release_date: %w", m.ID, err)
			}
			movie.ReleaseDate = &d
		}
		movies = append(movies, movie)
	}
	return genres, movies, nil
}
