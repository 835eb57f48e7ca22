package biz

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"
)

// ArticleUseCase handles article and comment business logic
type ArticleUseCase struct {
	repo ArticleRepo
	log  *log.Helper
}

// NewArticleUseCase creates a new ArticleUseCase instance
func NewArticleUseCase(repo ArticleRepo, logger log.Logger) *ArticleUseCase {
	return &ArticleUseCase{
		repo: repo,
		log:  log.NewHelper(logger),
	}
}

// ListArticles returns every article without comments. An empty store is
// reported as ErrNoArticles.
func (uc *ArticleUseCase) ListArticles(ctx context.Context) ([]*Article, error) {
	articles, err := uc.repo.ListArticles(ctx)
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, ErrNoArticles
	}
	return articles, nil
}

// GetArticle retrieves an article with its comments
func (uc *ArticleUseCase) GetArticle(ctx context.Context, id uint) (*Article, error) {
	return uc.repo.GetArticle(ctx, id)
}

// CreateArticle stores a new article owned by the caller
func (uc *ArticleUseCase) CreateArticle(ctx context.Context, userID uint, title, content string) (*Article, error) {
	article := &Article{
		Title:   title,
		Content: content,
		UserID:  userID,
	}
	if err := uc.repo.CreateArticle(ctx, article); err != nil {
		return nil, err
	}
	return uc.repo.GetArticle(ctx, article.ID)
}

// UpdateArticle merges the supplied fields onto the article if the caller owns it
func (uc *ArticleUseCase) UpdateArticle(ctx context.Context, userID, id uint, patch *ArticlePatch) (*Article, error) {
	article, err := uc.repo.GetArticle(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := guardArticle(userID, article); err != nil {
		return nil, err
	}

	if patch.Title != nil {
		article.Title = *patch.Title
	}
	if patch.Content != nil {
		article.Content = *patch.Content
	}
	if err := uc.repo.UpdateArticle(ctx, article); err != nil {
		return nil, err
	}
	return uc.repo.GetArticle(ctx, id)
}

// DeleteArticle removes the article and its comments if the caller owns it
func (uc *ArticleUseCase) DeleteArticle(ctx context.Context, userID, id uint) error {
	article, err := uc.repo.GetArticle(ctx, id)
	if err != nil {
		return err
	}
	if err := guardArticle(userID, article); err != nil {
		return err
	}
	if err := uc.repo.DeleteArticle(ctx, id); err != nil {
		return err
	}
	uc.log.WithContext(ctx).Infof("article %d deleted with %d comments", id, len(article.Comments))
	return nil
}

// ListComments returns the comments of an existing article
func (uc *ArticleUseCase) ListComments(ctx context.Context, articleID uint) ([]*Comment, error) {
	if _, err := uc.repo.GetArticle(ctx, articleID); err != nil {
		return nil, err
	}
	return uc.repo.ListComments(ctx, articleID)
}

// CreateComment attaches a comment by the caller to the article
func (uc *ArticleUseCase) CreateComment(ctx context.Context, userID, articleID uint, content string) (*Comment, error) {
	if _, err := uc.repo.GetArticle(ctx, articleID); err != nil {
		return nil, err
	}
	comment := &Comment{
		Content:   content,
		ArticleID: articleID,
		UserID:    userID,
	}
	if err := uc.repo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return uc.repo.GetComment(ctx, articleID, comment.ID)
}

// DeleteComment removes a comment of the article if the caller wrote it
func (uc *ArticleUseCase) DeleteComment(ctx context.Context, userID, articleID, commentID uint) error {
	comment, err := uc.repo.GetComment(ctx, articleID, commentID)
	if err != nil {
		return err
	}
	if err := guardComment(userID, comment); err != nil {
		return err
	}
	return uc.repo.DeleteComment(ctx, commentID)
}
