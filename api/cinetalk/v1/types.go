// Package v1 is the HTTP/JSON contract of the cinetalk API.
package v1

import (
	"mime/multipart"
	"net/http"
	"time"
)

// Account

type SignupRequest struct {
	Username  string `json:"username" validate:"required,max=150"`
	Email     string `json:"email" validate:"omitempty,email,max=254"`
	Password1 string `json:"password1" validate:"required,min=8,max=128"`
	Password2 string `json:"password2" validate:"required,eqfield=Password1"`
}

// SignupReply carries the token of the new account.
type SignupReply struct {
	Key string `json:"key"`
}

func (*SignupReply) HTTPStatus() int { return http.StatusCreated }

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginReply struct {
	Key string `json:"key"`
}

type LogoutRequest struct{}

type LogoutReply struct {
	Detail string `json:"detail"`
}

type UserDetailsRequest struct{}

type UserDetailsReply struct {
	Pk        uint   `json:"pk"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Profile

type GetProfileRequest struct {
	UserId uint `json:"user_id"`
}

// UpdateProfileRequest is a merge-patch: nil fields are left unchanged.
type UpdateProfileRequest struct {
	UserId    uint    `json:"user_id"`
	Username  *string `json:"username" validate:"omitnil,min=1,max=150"`
	Email     *string `json:"email" validate:"omitempty,email,max=254"`
	FirstName *string `json:"first_name" validate:"omitnil,max=150"`
	LastName  *string `json:"last_name" validate:"omitnil,max=150"`
	Bio       *string `json:"bio"`
	Address   *string `json:"address" validate:"omitnil,max=255"`

	// Only set by multipart requests.
	ProfilePicture *multipart.FileHeader `json:"-"`
}

type Profile struct {
	Id             uint    `json:"id"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	ProfilePicture string  `json:"profile_picture"`
	Bio            *string `json:"bio"`
	Address        *string `json:"address"`
	JoinDate       string  `json:"join_date"`
	Token          int     `json:"token"`
}

// Movies

type Genre struct {
	Id   uint   `json:"id"`
	Name string `json:"name"`
}

type ListMoviesRequest struct{}

type MovieSummary struct {
	Id           int64   `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	ReleaseDate  *string `json:"release_date"`
}

type ListMoviesReply struct {
	Results []*MovieSummary `json:"results"`
}

type GetMovieRequest struct {
	Id int64 `json:"id"`
}

type MovieDetail struct {
	MovieSummary
	Genres []*Genre `json:"genres"`
}

type GetMovieReply struct {
	Movie *MovieDetail `json:"movie"`
}

type FilterGenreRequest struct {
	GenreId *uint `json:"genre_id"`
}

type FilteredMovie struct {
	Id          int64   `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate *string `json:"release_date"`
	Popularity  float64 `json:"popularity"`
	VoteCount   int     `json:"vote_count"`
	VoteAverage float64 `json:"vote_average"`
	Overview    string  `json:"overview"`
	PosterPath  *string `json:"poster_path"`
}

type FilterGenreReply struct {
	Movies []*FilteredMovie `json:"movies"`
	Genres []*Genre         `json:"genres"`
}

type ToggleLikeRequest struct {
	Id int64 `json:"id"`
}

type ToggleLikeReply struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

type HealthCheckRequest struct{}

type HealthCheckReply struct {
	Status string `json:"status"`
}

// Articles

type ListArticlesRequest struct{}

type ArticleSummary struct {
	Id        uint      `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Comment struct {
	Id        uint      `json:"id"`
	User      string    `json:"user"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Article   uint      `json:"article"`
}

type Article struct {
	Id        uint       `json:"id"`
	User      string     `json:"user"`
	Comments  []*Comment `json:"comments"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type GetArticleRequest struct {
	Id uint `json:"id"`
}

type CreateArticleRequest struct {
	Title   string `json:"title" validate:"required,max=100"`
	Content string `json:"content" validate:"required"`
}

type CreateArticleReply struct {
	Article
}

func (*CreateArticleReply) HTTPStatus() int { return http.StatusCreated }

type UpdateArticleRequest struct {
	Id      uint    `json:"id"`
	Title   *string `json:"title" validate:"omitnil,min=1,max=100"`
	Content *string `json:"content" validate:"omitnil,min=1"`
}

type DeleteArticleRequest struct {
	Id uint `json:"id"`
}

type ListCommentsRequest struct {
	ArticleId uint `json:"article_id"`
}

type CreateCommentRequest struct {
	ArticleId uint   `json:"article_id"`
	Content   string `json:"content" validate:"required"`
}

type CreateCommentReply struct {
	Comment
}

func (*CreateCommentReply) HTTPStatus() int { return http.StatusCreated }

type DeleteCommentRequest struct {
	ArticleId uint `json:"article_id"`
	CommentId uint `json:"comment_id"`
}

type CurrentUserRequest struct{}

type CurrentUserReply struct {
	Id       uint   `json:"id"`
	Username string `json:"username"`
}

// NoContent is the reply of operations that answer 204 with an empty body.
type NoContent struct{}

func (*NoContent) HTTPStatus() int { return http.StatusNoContent }

// Completion

type SceneLocationRequest struct {
	SceneDescription string `json:"scene_description"`
}

type SceneLocationReply struct {
	Location string `json:"location"`
}
