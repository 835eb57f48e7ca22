package biz

import (
	"context"
	"errors"
	"testing"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newArticleUseCase() (*ArticleUseCase, *MockArticleRepo) {
	repo := new(MockArticleRepo)
	return NewArticleUseCase(repo, log.DefaultLogger), repo
}

func TestListArticlesEmptyIsNotFound(t *testing.T) {
	uc, repo := newArticleUseCase()
	repo.On("ListArticles", mock.Anything).Return([]*Article{}, nil)

	_, err := uc.ListArticles(context.Background())
	assert.True(t, errors.Is(err, ErrArticleNotFound))
}

func TestUpdateArticleByNonOwnerIsForbidden(t *testing.T) {
	uc, repo := newArticleUseCase()
	repo.On("GetArticle", mock.Anything, uint(5)).Return(&Article{ID: 5, UserID: 1, Title: "t"}, nil)

	title := "changed"
	_, err := uc.UpdateArticle(context.Background(), 2, 5, &ArticlePatch{Title: &title})
	assert.True(t, errors.Is(err, ErrArticleForbidden))
	repo.AssertNotCalled(t, "UpdateArticle", mock.Anything, mock.Anything)
}

func TestUpdateArticleMergesSuppliedFields(t *testing.T) {
	uc, repo := newArticleUseCase()
	stored := &Article{ID: 5, UserID: 1, Title: "old title", Content: "body"}
	repo.On("GetArticle", mock.Anything, uint(5)).Return(stored, nil)
	repo.On("UpdateArticle", mock.Anything, mock.MatchedBy(func(a *Article) bool {
		return a.Title == "new title" && a.Content == "body"
	})).Return(nil).Once()

	title := "new title"
	got, err := uc.UpdateArticle(context.Background(), 1, 5, &ArticlePatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "new title", got.Title)
	assert.Equal(t, "body", got.Content)
	repo.AssertExpectations(t)
}

func TestDeleteArticleByNonOwnerIsForbidden(t *testing.T) {
	uc, repo := newArticleUseCase()
	repo.On("GetArticle", mock.Anything, uint(9)).Return(&Article{ID: 9, UserID: 1}, nil)

	err := uc.DeleteArticle(context.Background(), 3, 9)
	assert.True(t, errors.Is(err, ErrArticleForbidden))
	repo.AssertNotCalled(t, "DeleteArticle", mock.Anything, mock.Anything)
}

func TestDeleteArticleByOwner(t *testing.T) {
	uc, repo := newArticleUseCase()
	repo.On("GetArticle", mock.Anything, uint(9)).Return(&Article{ID: 9, UserID: 1}, nil)
	repo.On("DeleteArticle", mock.Anything, uint(9)).Return(nil).Once()

	require.NoError(t, uc.DeleteArticle(context.Background(), 1, 9))
	repo.AssertExpectations(t)
}

func TestCreateCommentUsesCallerAndArticle(t *testing.T) {
	uc, repo := newArticleUseCase()
	repo.On("GetArticle", mock.Anything, uint(5)).Return(&Article{ID: 5, UserID: 9}, nil)
	repo.On("CreateComment", mock.Anything, mock.MatchedBy(func(c *Comment) bool {
		return c.ArticleID == 5 && c.UserID == 1 && c.Content == "nice"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*Comment).ID = 11
	}).Return(nil).Once()
	repo.On("GetComment", mock.Anything, uint(5), uint(11)).
		Return(&Comment{ID: 11, ArticleID: 5, UserID: 1, Username: "A", Content: "nice"}, nil)

	c, err := uc.CreateComment(context.Background(), 1, 5, "nice")
	require.NoError(t, err)
	assert.Equal(t, "A", c.Username)
	assert.Equal(t, uint(5), c.ArticleID)
	repo.AssertExpectations(t)
}

func TestCreateCommentOnMissingArticle(t *testing.T) {
	uc, repo := newArticleUseCase()
	repo.On("GetArticle", mock.Anything, uint(5)).Return(nil, ErrArticleNotFound)

	_, err := uc.CreateComment(context.Background(), 1, 5, "nice")
	assert.True(t, errors.Is(err, ErrArticleNotFound))
}

func TestDeleteCommentByNonOwnerIsForbidden(t *testing.T) {
	uc, repo := newArticleUseCase()
	repo.On("GetComment", mock.Anything, uint(5), uint(11)).Return(&Comment{ID: 11, ArticleID: 5, UserID: 1}, nil)

	err := uc.DeleteComment(context.Background(), 2, 5, 11)
	assert.True(t, errors.Is(err, ErrCommentForbidden))
	repo.AssertNotCalled(t, "DeleteComment", mock.Anything, mock.Anything)
}
