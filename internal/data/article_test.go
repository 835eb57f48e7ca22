package data

import (
	"errors"
	"testing"

	"cinetalk/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleRepoCRUD(t *testing.T) {
	d := newTestData(t)
	repo := NewArticleRepo(d, log.DefaultLogger)
	alice := seedUser(t, d, "alice")

	empty, err := repo.ListArticles(t.Context())
	require.NoError(t, err)
	assert.Empty(t, empty)

	a := &biz.Article{Title: "Heat", Content: "best shootout", UserID: alice.ID}
	require.NoError(t, repo.CreateArticle(t.Context(), a))
	require.NotZero(t, a.ID)

	got, err := repo.GetArticle(t.Context(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Empty(t, got.Comments)

	got.Content = "still the best shootout"
	require.NoError(t, repo.UpdateArticle(t.Context(), got))

	updated, err := repo.GetArticle(t.Context(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Heat", updated.Title)
	assert.Equal(t, "still the best shootout", updated.Content)

	list, err := repo.ListArticles(t.Context())
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = repo.GetArticle(t.Context(), 999)
	assert.True(t, errors.Is(err, biz.ErrArticleNotFound))
}

func TestArticleRepoDeleteCascadesComments(t *testing.T) {
	d := newTestData(t)
	repo := NewArticleRepo(d, log.DefaultLogger)
	alice := seedUser(t, d, "alice")
	bob := seedUser(t, d, "bob")

	a := &biz.Article{Title: "Heat", Content: "x", UserID: alice.ID}
	require.NoError(t, repo.CreateArticle(t.Context(), a))
	other := &biz.Article{Title: "Ronin", Content: "y", UserID: alice.ID}
	require.NoError(t, repo.CreateArticle(t.Context(), other))

	for _, content := range []string{"one", "two"} {
		require.NoError(t, repo.CreateComment(t.Context(), &biz.Comment{Content: content, ArticleID: a.ID, UserID: bob.ID}))
	}
	require.NoError(t, repo.CreateComment(t.Context(), &biz.Comment{Content: "keep", ArticleID: other.ID, UserID: bob.ID}))

	withComments, err := repo.GetArticle(t.Context(), a.ID)
	require.NoError(t, err)
	require.Len(t, withComments.Comments, 2)
	assert.Equal(t, "bob", withComments.Comments[0].Username)

	require.NoError(t, repo.DeleteArticle(t.Context(), a.ID))

	var orphans int64
	require.NoError(t, d.db.Model(&Comment{}).Where("article_id = ?", a.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)

	kept, err := repo.ListComments(t.Context(), other.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 1)

	assert.True(t, errors.Is(repo.DeleteArticle(t.Context(), a.ID), biz.ErrArticleNotFound))
}

func TestArticleRepoCommentScopedToArticle(t *testing.T) {
	d := newTestData(t)
	repo := NewArticleRepo(d, log.DefaultLogger)
	alice := seedUser(t, d, "alice")

	a := &biz.Article{Title: "A", Content: "x", UserID: alice.ID}
	require.NoError(t, repo.CreateArticle(t.Context(), a))
	b := &biz.Article{Title: "B", Content: "y", UserID: alice.ID}
	require.NoError(t, repo.CreateArticle(t.Context(), b))

	c := &biz.Comment{Content: "on a", ArticleID: a.ID, UserID: alice.ID}
	require.NoError(t, repo.CreateComment(t.Context(), c))

	_, err := repo.GetComment(t.Context(), b.ID, c.ID)
	assert.True(t, errors.Is(err, biz.ErrCommentNotFound))

	got, err := repo.GetComment(t.Context(), a.ID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	require.NoError(t, repo.DeleteComment(t.Context(), c.ID))
	assert.True(t, errors.Is(repo.DeleteComment(t.Context(), c.ID), biz.ErrCommentNotFound))
}
