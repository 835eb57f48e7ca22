package service

import (
	"context"

	v1 "cinetalk/api/cinetalk/v1"
	"cinetalk/internal/biz"
	"cinetalk/internal/pkg/validate"
)

// ArticleService implements the Article API
type ArticleService struct {
	uc       *biz.ArticleUseCase
	accounts *biz.AccountUseCase
}

// NewArticleService creates a new ArticleService
func NewArticleService(uc *biz.ArticleUseCase, accounts *biz.AccountUseCase) *ArticleService {
	return &ArticleService{uc: uc, accounts: accounts}
}

func (s *ArticleService) ListArticles(ctx context.Context, _ *v1.ListArticlesRequest) ([]*v1.ArticleSummary, error) {
	articles, err := s.uc.ListArticles(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*v1.ArticleSummary, 0, len(articles))
	for _, a := range articles {
		out = append(out, &v1.ArticleSummary{
			Id:        a.ID,
			Title:     a.Title,
			CreatedAt: a.CreatedAt,
			UpdatedAt: a.UpdatedAt,
		})
	}
	return out, nil
}

func (s *ArticleService) GetArticle(ctx context.Context, req *v1.GetArticleRequest) (*v1.Article, error) {
	article, err := s.uc.GetArticle(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return articleToReply(article), nil
}

func (s *ArticleService) CreateArticle(ctx context.Context, req *v1.CreateArticleRequest) (*v1.CreateArticleReply, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	article, err := s.uc.CreateArticle(ctx, id.UserID, req.Title, req.Content)
	if err != nil {
		return nil, err
	}
	return &v1.CreateArticleReply{Article: *articleToReply(article)}, nil
}

func (s *ArticleService) UpdateArticle(ctx context.Context, req *v1.UpdateArticleRequest) (*v1.Article, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	article, err := s.uc.UpdateArticle(ctx, id.UserID, req.Id, &biz.ArticlePatch{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return nil, err
	}
	return articleToReply(article), nil
}

func (s *ArticleService) DeleteArticle(ctx context.Context, req *v1.DeleteArticleRequest) (*v1.NoContent, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.uc.DeleteArticle(ctx, id.UserID, req.Id); err != nil {
		return nil, err
	}
	return &v1.NoContent{}, nil
}

func (s *ArticleService) ListComments(ctx context.Context, req *v1.ListCommentsRequest) ([]*v1.Comment, error) {
	comments, err := s.uc.ListComments(ctx, req.ArticleId)
	if err != nil {
		return nil, err
	}
	return commentsToReply(comments), nil
}

// CreateComment attaches the comment to the article in the path and the caller;
// any article or user sent in the body is ignored.
func (s *ArticleService) CreateComment(ctx context.Context, req *v1.CreateCommentRequest) (*v1.CreateCommentReply, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	comment, err := s.uc.CreateComment(ctx, id.UserID, req.ArticleId, req.Content)
	if err != nil {
		return nil, err
	}
	return &v1.CreateCommentReply{Comment: *commentToReply(comment)}, nil
}

func (s *ArticleService) DeleteComment(ctx context.Context, req *v1.DeleteCommentRequest) (*v1.NoContent, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.uc.DeleteComment(ctx, id.UserID, req.ArticleId, req.CommentId); err != nil {
		return nil, err
	}
	return &v1.NoContent{}, nil
}

func (s *ArticleService) CurrentUser(ctx context.Context, _ *v1.CurrentUserRequest) (*v1.CurrentUserReply, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	// The token may predate a rename; report the stored username.
	user, err := s.accounts.GetProfile(ctx, id.UserID)
	if err != nil {
		return nil, err
	}
	return &v1.CurrentUserReply{Id: user.ID, Username: user.Username}, nil
}

func articleToReply(a *biz.Article) *v1.Article {
	return &v1.Article{
		Id:        a.ID,
		User:      a.Username,
		Comments:  commentsToReply(a.Comments),
		Title:     a.Title,
		Content:   a.Content,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func commentToReply(c *biz.Comment) *v1.Comment {
	return &v1.Comment{
		Id:        c.ID,
		User:      c.Username,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Article:   c.ArticleID,
	}
}

func commentsToReply(comments []*biz.Comment) []*v1.Comment {
	out := make([]*v1.Comment, 0, len(comments))
	for _, c := range comments {
		out = append(out, commentToReply(c))
	}
	return out
}
