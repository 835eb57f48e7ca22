package v1

import (
	"context"

	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

const (
	OperationArticleListArticles  = "/cinetalk.v1.Article/ListArticles"
	OperationArticleGetArticle    = "/cinetalk.v1.Article/GetArticle"
	OperationArticleCreateArticle = "/cinetalk.v1.Article/CreateArticle"
	OperationArticleUpdateArticle = "/cinetalk.v1.Article/UpdateArticle"
	OperationArticleDeleteArticle = "/cinetalk.v1.Article/DeleteArticle"
	OperationArticleListComments  = "/cinetalk.v1.Article/ListComments"
	OperationArticleCreateComment = "/cinetalk.v1.Article/CreateComment"
	OperationArticleDeleteComment = "/cinetalk.v1.Article/DeleteComment"
	OperationArticleCurrentUser   = "/cinetalk.v1.Article/CurrentUser"
)

type ArticleHTTPServer interface {
	ListArticles(context.Context, *ListArticlesRequest) ([]*ArticleSummary, error)
	GetArticle(context.Context, *GetArticleRequest) (*Article, error)
	CreateArticle(context.Context, *CreateArticleRequest) (*CreateArticleReply, error)
	UpdateArticle(context.Context, *UpdateArticleRequest) (*Article, error)
	DeleteArticle(context.Context, *DeleteArticleRequest) (*NoContent, error)
	ListComments(context.Context, *ListCommentsRequest) ([]*Comment, error)
	CreateComment(context.Context, *CreateCommentRequest) (*CreateCommentReply, error)
	DeleteComment(context.Context, *DeleteCommentRequest) (*NoContent, error)
	CurrentUser(context.Context, *CurrentUserRequest) (*CurrentUserReply, error)
}

func RegisterArticleHTTPServer(s *khttp.Server, srv ArticleHTTPServer) {
	r := s.Route("/api/v1")
	r.GET("/articles", articleListArticlesHandler(srv))
	r.POST("/articles", articleCreateArticleHandler(srv))
	r.GET("/articles/{id:[0-9]+}", articleGetArticleHandler(srv))
	r.PUT("/articles/{id:[0-9]+}", articleUpdateArticleHandler(srv))
	r.PATCH("/articles/{id:[0-9]+}", articleUpdateArticleHandler(srv))
	r.DELETE("/articles/{id:[0-9]+}", articleDeleteArticleHandler(srv))
	r.GET("/articles/{article_id:[0-9]+}/comments", articleListCommentsHandler(srv))
	r.POST("/articles/{article_id:[0-9]+}/comments", articleCreateCommentHandler(srv))
	r.DELETE("/articles/{article_id:[0-9]+}/comments/{comment_id:[0-9]+}", articleDeleteCommentHandler(srv))
	r.GET("/current_user", articleCurrentUserHandler(srv))
}

func articleListArticlesHandler(srv ArticleHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in ListArticlesRequest
		khttp.SetOperation(ctx, OperationArticleListArticles)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListArticles(ctx, req.(*ListArticlesRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.([]*ArticleSummary)
		return ctx.Result(200, reply)
	}
}

func articleGetArticleHandler(srv ArticleHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in GetArticleRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationArticleGetArticle)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.GetArticle(ctx, req.(*GetArticleRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*Article)
		return ctx.Result(200, reply)
	}
}

func articleCreateArticleHandler(srv ArticleHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in CreateArticleRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationArticleCreateArticle)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.CreateArticle(ctx, req.(*CreateArticleRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*CreateArticleReply)
		return ctx.Result(200, reply)
	}
}

func articleUpdateArticleHandler(srv ArticleHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in UpdateArticleRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationArticleUpdateArticle)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.UpdateArticle(ctx, req.(*UpdateArticleRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*Article)
		return ctx.Result(200, reply)
	}
}

func articleDeleteArticleHandler(srv ArticleHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in DeleteArticleRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationArticleDeleteArticle)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.DeleteArticle(ctx, req.(*DeleteArticleRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*NoContent)
		return ctx.Result(200, reply)
	}
}

func articleListCommentsHandler(srv ArticleHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in ListCommentsRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationArticleListComments)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListComments(ctx, req.(*ListCommentsRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.([]*Comment)
		return ctx.Result(200, reply)
	}
}

func articleCreateCommentHandler(srv ArticleHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in CreateCommentRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationArticleCreateComment)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.CreateComment(ctx, req.(*CreateCommentRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*CreateCommentReply)
		return ctx.Result(200, reply)
	}
}

func articleDeleteCommentHandler(srv ArticleHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in DeleteCommentRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationArticleDeleteComment)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.DeleteComment(ctx, req.(*DeleteCommentRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*NoContent)
		return ctx.Result(200, reply)
	}
}

func articleCurrentUserHandler(srv ArticleHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in CurrentUserRequest
		khttp.SetOperation(ctx, OperationArticleCurrentUser)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.CurrentUser(ctx, req.(*CurrentUserRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*CurrentUserReply)
		return ctx.Result(200, reply)
	}
}
