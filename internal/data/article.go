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

type articleRepo struct {
	data *Data
	log  *log.Helper
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(data *Data, logger log.Logger) biz.ArticleRepo {
	return &articleRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *articleRepo) ListArticles(ctx context.Context) ([]*biz.Article, error) {
	var dbArticles []Article
	if err := r.data.db.WithContext(ctx).Order("id").Find(&dbArticles).Error; err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	articles := make([]*biz.Article, 0, len(dbArticles))
	for i := range dbArticles {
		articles = append(articles, articleToBiz(&dbArticles[i]))
	}
	return articles, nil
}

func (r *articleRepo) GetArticle(ctx context.Context, id uint) (*biz.Article, error) {
	var dbArticle Article
	err := r.data.db.WithContext(ctx).
		Preload("User").
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("comments.id") }).
		Preload("Comments.User").
		First(&dbArticle, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, biz.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return articleToBiz(&dbArticle), nil
}

func (r *articleRepo) CreateArticle(ctx context.Context, article *biz.Article) error {
	dbArticle := &Article{
		Title:   article.Title,
		Content: article.Content,
		UserID:  article.UserID,
	}
	if err := r.data.db.WithContext(ctx).Omit(clause.Associations).Create(dbArticle).Error; err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}
	article.ID = dbArticle.ID
	article.CreatedAt = dbArticle.CreatedAt
	article.UpdatedAt = dbArticle.UpdatedAt
	return nil
}

func (r *articleRepo) UpdateArticle(ctx context.Context, article *biz.Article) error {
	res := r.data.db.WithContext(ctx).
		Model(&Article{ID: article.ID}).
		Select("title", "content", "updated_at").
		Updates(&Article{Title: article.Title, Content: article.Content})
	if res.Error != nil {
		return fmt.Errorf("failed to update article: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return biz.ErrArticleNotFound
	}
	return nil
}

func (r *articleRepo) DeleteArticle(ctx context.Context, id uint) error {
	return r.data.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&Comment{}).Error; err != nil {
			return fmt.Errorf("failed to delete comments: %w", err)
		}
		res := tx.Delete(&Article{}, id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete article: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return biz.ErrArticleNotFound
		}
		return nil
	})
}

func (r *articleRepo) ListComments(ctx context.Context, articleID uint) ([]*biz.Comment, error) {
	var dbComments []Comment
	err := r.data.db.WithContext(ctx).
		Preload("User").
		Where("article_id = ?", articleID).
		Order("id").
		Find(&dbComments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	comments := make([]*biz.Comment, 0, len(dbComments))
	for i := range dbComments {
		comments = append(comments, commentToBiz(&dbComments[i]))
	}
	return comments, nil
}

func (r *articleRepo) GetComment(ctx context.Context, articleID, commentID uint) (*biz.Comment, error) {
	var dbComment Comment
	err := r.data.db.WithContext(ctx).
		Preload("User").
		Where("id = ? AND article_id = ?", commentID, articleID).
		First(&dbComment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, biz.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return commentToBiz(&dbComment), nil
}

func (r *articleRepo) CreateComment(ctx context.Context, comment *biz.Comment) error {
	dbComment := &Comment{
		Content:   comment.Content,
		ArticleID: comment.ArticleID,
		UserID:    comment.UserID,
	}
	if err := r.data.db.WithContext(ctx).Omit(clause.Associations).Create(dbComment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	comment.ID = dbComment.ID
	comment.CreatedAt = dbComment.CreatedAt
	comment.UpdatedAt = dbComment.UpdatedAt
	return nil
}

func (r *articleRepo) DeleteComment(ctx context.Context, id uint) error {
	res := r.data.db.WithContext(ctx).Delete(&Comment{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return biz.ErrCommentNotFound
	}
	return nil
}

// Helper: Convert data.Article to biz.Article
func articleToBiz(m *Article) *biz.Article {
	article := &biz.Article{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		UserID:    m.UserID,
		Username:  m.User.Username,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	for i := range m.Comments {
		article.Comments = append(article.Comments, commentToBiz(&m.Comments[i]))
	}
	return article
}

// Helper: Convert data.Comment to biz.Comment
func commentToBiz(m *Comment) *biz.Comment {
	return &biz.Comment{
		ID:        m.ID,
		Content:   m.Content,
		ArticleID: m.ArticleID,
		UserID:    m.UserID,
		Username:  m.User.Username,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
