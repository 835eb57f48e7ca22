package biz

import "github.com/go-kratos/kratos/v2/errors"

// Error reasons reported to clients.
const (
	ReasonUserNotFound          = "USER_NOT_FOUND"
	ReasonMovieNotFound         = "MOVIE_NOT_FOUND"
	ReasonArticleNotFound       = "ARTICLE_NOT_FOUND"
	ReasonCommentNotFound       = "COMMENT_NOT_FOUND"
	ReasonForbidden             = "FORBIDDEN"
	ReasonUnauthenticated       = "UNAUTHENTICATED"
	ReasonInvalidCredentials    = "INVALID_CREDENTIALS"
	ReasonUsernameTaken         = "USERNAME_TAKEN"
	ReasonValidationFailed      = "VALIDATION_FAILED"
	ReasonInvalidImage          = "INVALID_IMAGE"
	ReasonPersistenceFailure    = "PERSISTENCE_FAILURE"
	ReasonSceneRequired         = "SCENE_DESCRIPTION_REQUIRED"
	ReasonUpstreamFailure       = "UPSTREAM_FAILURE"
	ReasonUpstreamUnavailable   = "UPSTREAM_UNAVAILABLE"
	ReasonCompletionRateLimited = "RATE_LIMITED"
)

var (
	ErrUserNotFound    = errors.NotFound(ReasonUserNotFound, "user not found")
	ErrMovieNotFound   = errors.NotFound(ReasonMovieNotFound, "movie not found")
	ErrArticleNotFound = errors.NotFound(ReasonArticleNotFound, "article not found")
	// ErrNoArticles is returned when listing an empty article store.
	ErrNoArticles      = errors.NotFound(ReasonArticleNotFound, "no articles")
	ErrCommentNotFound = errors.NotFound(ReasonCommentNotFound, "comment not found")

	ErrArticleForbidden = errors.Forbidden(ReasonForbidden, "you are not the author of this article")
	ErrCommentForbidden = errors.Forbidden(ReasonForbidden, "you are not the author of this comment")
	ErrProfileForbidden = errors.Forbidden(ReasonForbidden, "you can only edit your own profile")

	ErrUnauthenticated    = errors.Unauthorized(ReasonUnauthenticated, "authentication credentials were not provided")
	ErrTokenRevoked       = errors.Unauthorized(ReasonUnauthenticated, "token has been revoked")
	ErrInvalidCredentials = errors.BadRequest(ReasonInvalidCredentials, "unable to log in with provided credentials")
	ErrUsernameTaken      = errors.BadRequest(ReasonUsernameTaken, "a user with that username already exists")
	ErrUsernameRequired   = errors.BadRequest(ReasonValidationFailed, "username may not be blank")
	ErrInvalidImage       = errors.BadRequest(ReasonInvalidImage, "unsupported or oversized image")

	ErrSceneRequired       = errors.BadRequest(ReasonSceneRequired, "Scene description is required")
	ErrCompletionThrottled = errors.New(429, ReasonCompletionRateLimited, "too many completion requests")
)

// persistenceFailure reports a failed write with its cause in the message.
func persistenceFailure(err error) error {
	return errors.InternalServer(ReasonPersistenceFailure, err.Error()).WithCause(err)
}
