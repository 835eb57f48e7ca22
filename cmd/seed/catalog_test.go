package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalog(t *testing.T) {
	dump := `{
		"genres": [{"id": 28, "name": "Action"}, {"id": 878, "name": "Science Fiction"}],
		"results": [
			{"id": 603, "title": "The Matrix", "original_title": "The Matrix", "original_language": "en",
			 "overview": "Neo", "release_date": "1999-03-31", "poster_path": "/p.jpg", "backdrop_path": null,
			 "genre_ids": [28, 878], "adult": false, "popularity": 85.123, "vote_average": 8.2, "vote_count": 25000},
			{"id": 1, "title": "Undated", "release_date": ""}
		]
	}`

	genres, movies, err := parseCatalog(strings.NewReader(dump))
	require.NoError(t, err)
	require.Len(t, genres, 2)
	assert.Equal(t, "Science Fiction", genres[1].Name)

	require.Len(t, movies, 2)
	matrix := movies[0]
	assert.EqualValues(t, 603, matrix.ID)
	assert.Equal(t, []int64{28, 878}, matrix.GenreIDs)
	require.NotNil(t, matrix.ReleaseDate)
	assert.Equal(t, "1999-03-31", matrix.ReleaseDate.Format("2006-01-02"))
	require.NotNil(t, matrix.PosterPath)
	assert.Nil(t, matrix.BackdropPath)
	assert.InDelta(t, 8.2, matrix.VoteAverage, 0.001)

	assert.Nil(t, movies[1].ReleaseDate)
	assert.Equal(t, []int64{}, movies[1].GenreIDs)
}

func TestParseCatalogRejects(t *testing.T) {
	tests := []struct {
		name string
		dump string
	}{
		{"malformed", `{"results": [`},
		{"missing title", `{"results": [{"id": 5}]}`},
		{"bad date", `{"results": [{"id": 5, "title": "x", "release_date": "31/03/1999"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseCatalog(strings.NewReader(tt.dump))
			assert.Error(t, err)
		})
	}
}
