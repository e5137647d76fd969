package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_mock_service/latency"
	"github.com/Xushengqwer/blog_mock_service/models/vo"
	"github.com/Xushengqwer/blog_mock_service/repo/memory"
)

// AuthorService 定义了作者相关的查询接口。
type AuthorService interface {
	// ListAuthors 按种子顺序返回全部作者，每位作者附带其帖子 ID 列表。
	ListAuthors(ctx context.Context) ([]*vo.AuthorWithPostIDs, error)

	// GetAuthor 返回作者及其全部帖子 (创建顺序)，不存在时返回 myErrors.ErrAuthorNotFound。
	GetAuthor(ctx context.Context, id string) (*vo.AuthorWithPosts, error)
}

type authorService struct {
	store   memory.Store
	latency *latency.Simulator
	logger  *zap.Logger
}

func NewAuthorService(store memory.Store, sim *latency.Simulator, logger *zap.Logger) AuthorService {
	return &authorService{
		store:   store,
		latency: sim,
		logger:  logger,
	}
}

func (s *authorService) ListAuthors(ctx context.Context) ([]*vo.AuthorWithPostIDs, error) {
	if err := s.latency.Wait(ctx, latency.ListAuthors, s.store.PostCount()); err != nil {
		return nil, err
	}

	authors := s.store.ListAuthors()
	out := make([]*vo.AuthorWithPostIDs, 0, len(authors))
	for _, a := range authors {
		out = append(out, &vo.AuthorWithPostIDs{
			Author:  a,
			PostIDs: s.store.PostIDsByAuthor(a.ID),
		})
	}
	return out, nil
}

func (s *authorService) GetAuthor(ctx context.Context, id string) (*vo.AuthorWithPosts, error) {
	if err := s.latency.Wait(ctx, latency.GetAuthor, s.store.PostCount()); err != nil {
		return nil, err
	}

	author, err := s.store.GetAuthor(id)
	if err != nil {
		return nil, err
	}
	posts, err := s.store.PostsByAuthor(id)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("作者详情查询完成", zap.String("authorID", id), zap.Int("posts", len(posts)))
	return &vo.AuthorWithPosts{Author: *author, Posts: posts}, nil
}
