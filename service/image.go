package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_mock_service/latency"
	"github.com/Xushengqwer/blog_mock_service/models/entities"
	"github.com/Xushengqwer/blog_mock_service/repo/memory"
)

// ImageService 定义了图片查询接口。
type ImageService interface {
	// GetImage 不存在时返回 myErrors.ErrImageNotFound。
	GetImage(ctx context.Context, id string) (*entities.Image, error)
}

type imageService struct {
	store   memory.Store
	latency *latency.Simulator
	logger  *zap.Logger
}

func NewImageService(store memory.Store, sim *latency.Simulator, logger *zap.Logger) ImageService {
	return &imageService{store: store, latency: sim, logger: logger}
}

func (s *imageService) GetImage(ctx context.Context, id string) (*entities.Image, error) {
	if err := s.latency.Wait(ctx, latency.GetImage, s.store.PostCount()); err != nil {
		return nil, err
	}
	return s.store.GetImage(id)
}
