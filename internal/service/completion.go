package service

import (
	"context"
	"net"
	"strings"

	v1 "cinetalk/api/cinetalk/v1"
	"cinetalk/internal/biz"

	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

// CompletionService implements the Completion API
type CompletionService struct {
	uc *biz.CompletionUseCase
}

// NewCompletionService creates a new CompletionService
func NewCompletionService(uc *biz.CompletionUseCase) *CompletionService {
	return &CompletionService{uc: uc}
}

func (s *CompletionService) SceneLocation(ctx context.Context, req *v1.SceneLocationRequest) (*v1.SceneLocationReply, error) {
	location, err := s.uc.DescribeScene(ctx, clientKey(ctx), req.SceneDescription)
	if err != nil {
		return nil, err
	}
	return &v1.SceneLocationReply{Location: location}, nil
}

// clientKey identifies the caller for quota accounting by client address.
func clientKey(ctx context.Context) string {
	r, ok := khttp.RequestFromServerContext(ctx)
	if !ok {
		return "unknown"
	}
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return "ip:" + strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "ip:" + r.RemoteAddr
	}
	return "ip:" + host
}
