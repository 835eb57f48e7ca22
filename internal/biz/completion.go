package biz

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-kratos/kratos/v2/log"

	"cinetalk/internal/pkg/metrics"
)

const scenePromptTemplate = "Describe the location in the following movie scene: %s"

// CompletionUseCase forwards scene descriptions to the completion provider
type CompletionUseCase struct {
	client CompletionClient
	quota  CompletionQuota
	log    *log.Helper
}

// NewCompletionUseCase creates a new CompletionUseCase instance
func NewCompletionUseCase(client CompletionClient, quota CompletionQuota, logger log.Logger) *CompletionUseCase {
	return &CompletionUseCase{
		client: client,
		quota:  quota,
		log:    log.NewHelper(logger),
	}
}

// DescribeScene asks the provider where the described scene takes place.
// clientKey identifies the caller for quota accounting.
func (uc *CompletionUseCase) DescribeScene(ctx context.Context, clientKey, scene string) (string, error) {
	scene = strings.TrimSpace(scene)
	if scene == "" {
		return "", ErrSceneRequired
	}

	allowed, err := uc.quota.Allow(ctx, clientKey)
	if err != nil {
		// Quota backend trouble should not take the feature down.
		uc.log.WithContext(ctx).Warnf("completion quota check failed for %s: %v", clientKey, err)
	} else if !allowed {
		metrics.CompletionRequests.WithLabelValues("throttled").Inc()
		return "", ErrCompletionThrottled
	}

	text, err := uc.client.Complete(ctx, fmt.Sprintf(scenePromptTemplate, scene))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
