package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_mock_service/latency"
	"github.com/Xushengqwer/blog_mock_service/models/entities"
)

// ListPosts 的延迟随帖子总数增长，模拟数据量越大列表越慢。
func (s *postService) ListPosts(ctx context.Context) ([]*entities.Post, error) {
	if err := s.latency.Wait(ctx, latency.ListPosts, s.store.PostCount()); err != nil {
		return nil, err
	}

	posts := s.store.ListPosts()
	s.logger.Debug("帖子列表查询完成", zap.Int("count", len(posts)))
	return posts, nil
}
