package v1

import (
	"context"

	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

const OperationCompletionSceneLocation = "/cinetalk.v1.Completion/SceneLocation"

type CompletionHTTPServer interface {
	SceneLocation(context.Context, *SceneLocationRequest) (*SceneLocationReply, error)
}

func RegisterCompletionHTTPServer(s *khttp.Server, srv CompletionHTTPServer) {
	r := s.Route("/api/v1")
	r.POST("/completion/scene-location", completionSceneLocationHandler(srv))
}

func completionSceneLocationHandler(srv CompletionHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in SceneLocationRequest
		if err := bindSceneLocation(ctx, &in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationCompletionSceneLocation)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.SceneLocation(ctx, req.(*SceneLocationRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*SceneLocationReply)
		return ctx.Result(200, reply)
	}
}
