package biz

import (
	"context"
	"io"
	"time"
)

// DefaultTokenBalance is the token balance of a new account.
const DefaultTokenBalance = 100

// DefaultProfilePicture is the image path of an account that never uploaded one.
const DefaultProfilePicture = "images/base.png"

// User domain model
type User struct {
	ID             uint
	Username       string
	PasswordHash   string
	Email          string
	FirstName      string
	LastName       string
	ProfilePicture string
	Bio            *string
	Address        *string
	JoinDate       time.Time
	Token          int
}

// ProfilePatch holds the supplied fields of a profile update; nil means keep.
type ProfilePatch struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
	Bio       *string
	Address   *string
	Image     *Upload
}

// Upload is a file received from a client.
type Upload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// SignupRequest domain model
type SignupRequest struct {
	Username string
	Email    string
	Password string
}

// Genre domain model
type Genre struct {
	ID   uint
	Name string
}

// Movie domain model
type Movie struct {
	ID               int64
	OriginalLanguage string
	OriginalTitle    string
	Title            string
	Overview         string
	ReleaseDate      *time.Time
	PosterPath       *string
	BackdropPath     *string
	GenreIDs         []int64
	Genres           []*Genre
	Adult            bool
	Popularity       float64
	VoteAverage      float64
	VoteCount        int
	Video            bool
}

// LikeResult is the state of a liked-by set after a toggle.
type LikeResult struct {
	Liked     bool
	LikeCount int64
}

// GenreFilter is the result of filtering the catalog by genre.
type GenreFilter struct {
	Movies []*Movie
	Genres []*Genre
}

// Article domain model
type Article struct {
	ID        uint
	Title     string
	Content   string
	UserID    uint
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time
	Comments  []*Comment
}

// ArticlePatch holds the supplied fields of an article update; nil means keep.
type ArticlePatch struct {
	Title   *string
	Content *string
}

// Comment domain model
type Comment struct {
	ID        uint
	Content   string
	ArticleID uint
	UserID    uint
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserRepo defines the repository interface for accounts and profiles
type UserRepo interface {
	CreateUser(ctx context.Context, user *User) error
	GetUser(ctx context.Context, id uint) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	// UpdateProfile writes the mutable profile columns in one transaction.
	UpdateProfile(ctx context.Context, user *User) error
}

// MovieRepo defines the repository interface for the catalog
type MovieRepo interface {
	ListMovies(ctx context.Context) ([]*Movie, error)
	GetMovie(ctx context.Context, id int64) (*Movie, error)
	ListMoviesByGenre(ctx context.Context, genreID uint) ([]*Movie, error)
	ListGenres(ctx context.Context) ([]*Genre, error)
	ToggleLike(ctx context.Context, movieID int64, userID uint) (*LikeResult, error)
	ImportCatalog(ctx context.Context, genres []*Genre, movies []*Movie) error
}

// ArticleRepo defines the repository interface for articles and comments
type ArticleRepo interface {
	ListArticles(ctx context.Context) ([]*Article, error)
	GetArticle(ctx context.Context, id uint) (*Article, error)
	CreateArticle(ctx context.Context, article *Article) error
	UpdateArticle(ctx context.Context, article *Article) error
	// DeleteArticle removes the article together with its comments.
	DeleteArticle(ctx context.Context, id uint) error
	ListComments(ctx context.Context, articleID uint) ([]*Comment, error)
	GetComment(ctx context.Context, articleID, commentID uint) (*Comment, error)
	CreateComment(ctx context.Context, comment *Comment) error
	DeleteComment(ctx context.Context, id uint) error
}

// TokenRepo issues and revokes access tokens
type TokenRepo interface {
	Issue(ctx context.Context, user *User) (string, error)
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// MediaStore persists uploaded images and returns their relative path
type MediaStore interface {
	Save(ctx context.Context, upload *Upload) (string, error)
	Remove(ctx context.Context, path string) error
}

// CompletionClient defines the interface for the text-completion provider
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompletionQuota limits completion calls per client key
type CompletionQuota interface {
	Allow(ctx context.Context, key string) (bool, error)
}
