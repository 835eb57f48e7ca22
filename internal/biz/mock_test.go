package biz

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo is a mock of UserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) CreateUser(ctx context.Context, user *User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetUser(ctx context.Context, id uint) (*User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepo) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepo) UpdateProfile(ctx context.Context, user *User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockTokenRepo is a mock of TokenRepo
type MockTokenRepo struct {
	mock.Mock
}

func (m *MockTokenRepo) Issue(ctx context.Context, user *User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockTokenRepo) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	args := m.Called(ctx, tokenID, expiresAt)
	return args.Error(0)
}

func (m *MockTokenRepo) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

// MockMediaStore is a mock of MediaStore
type MockMediaStore struct {
	mock.Mock
}

func (m *MockMediaStore) Save(ctx context.Context, upload *Upload) (string, error) {
	args := m.Called(ctx, upload)
	return args.String(0), args.Error(1)
}

func (m *MockMediaStore) Remove(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

// MockMovieRepo is a mock of MovieRepo
type MockMovieRepo struct {
	mock.Mock
}

func (m *MockMovieRepo) ListMovies(ctx context.Context) ([]*Movie, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*Movie), args.Error(1)
}

func (m *MockMovieRepo) GetMovie(ctx context.Context, id int64) (*Movie, error) {
	args := m.Called(ctx, id)
	if mv, ok := args.Get(0).(*Movie); ok {
		return mv, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMovieRepo) ListMoviesByGenre(ctx context.Context, genreID uint) ([]*Movie, error) {
	args := m.Called(ctx, genreID)
	return args.Get(0).([]*Movie), args.Error(1)
}

func (m *MockMovieRepo) ListGenres(ctx context.Context) ([]*Genre, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*Genre), args.Error(1)
}

func (m *MockMovieRepo) ToggleLike(ctx context.Context, movieID int64, userID uint) (*LikeResult, error) {
	args := m.Called(ctx, movieID, userID)
	if r, ok := args.Get(0).(*LikeResult); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMovieRepo) ImportCatalog(ctx context.Context, genres []*Genre, movies []*Movie) error {
	args := m.Called(ctx, genres, movies)
	return args.Error(0)
}

// MockArticleRepo is a mock of ArticleRepo
type MockArticleRepo struct {
	mock.Mock
}

func (m *MockArticleRepo) ListArticles(ctx context.Context) ([]*Article, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*Article), args.Error(1)
}

func (m *MockArticleRepo) GetArticle(ctx context.Context, id uint) (*Article, error) {
	args := m.Called(ctx, id)
	if a, ok := args.Get(0).(*Article); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockArticleRepo) CreateArticle(ctx context.Context, article *Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepo) UpdateArticle(ctx context.Context, article *Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepo) DeleteArticle(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArticleRepo) ListComments(ctx context.Context, articleID uint) ([]*Comment, error) {
	args := m.Called(ctx, articleID)
	return args.Get(0).([]*Comment), args.Error(1)
}

func (m *MockArticleRepo) GetComment(ctx context.Context, articleID, commentID uint) (*Comment, error) {
	args := m.Called(ctx, articleID, commentID)
	if c, ok := args.Get(0).(*Comment); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockArticleRepo) CreateComment(ctx context.Context, comment *Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockArticleRepo) DeleteComment(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCompletionClient is a mock of CompletionClient
type MockCompletionClient struct {
	mock.Mock
}

func (m *MockCompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockCompletionQuota is a mock of CompletionQuota
type MockCompletionQuota struct {
	mock.Mock
}

func (m *MockCompletionQuota) Allow(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}
