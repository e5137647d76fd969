package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_mock_service/fixtures"
	"github.com/Xushengqwer/blog_mock_service/latency"
	"github.com/Xushengqwer/blog_mock_service/models/dto"
	"github.com/Xushengqwer/blog_mock_service/models/entities"
	"github.com/Xushengqwer/blog_mock_service/mq/producer"
	"github.com/Xushengqwer/blog_mock_service/myErrors"
	"github.com/Xushengqwer/blog_mock_service/repo/memory"
)

// PostService 定义了帖子相关的接口。每个方法在读写存储之前都会先经过模拟延迟。
type PostService interface {
	// CreatePost 创建帖子。
	// - 作者不存在时返回 myErrors.ErrAuthorNotFound，存储不变。
	// - 成功后异步发送帖子创建事件 (如果配置了 Kafka)。
	CreatePost(ctx context.Context, req *dto.CreatePostRequest) (*entities.Post, error)

	// GetPost 获取单个帖子，不存在时返回 myErrors.ErrPostNotFound。
	GetPost(ctx context.Context, id string) (*entities.Post, error)

	// ListPosts 返回全部帖子，按创建时间倒序。
	ListPosts(ctx context.Context) ([]*entities.Post, error)
}

type postService struct {
	store     memory.Store
	latency   *latency.Simulator
	generator *fixtures.Generator
	publisher producer.PostEventPublisher // 可为 nil
	now       func() time.Time
	logger    *zap.Logger
}

// NewPostService 是 postService 的构造函数，publisher 可以为 nil。
func NewPostService(
	store memory.Store,
	sim *latency.Simulator,
	generator *fixtures.Generator,
	publisher producer.PostEventPublisher,
	logger *zap.Logger,
) PostService {
	return &postService{
		store:     store,
		latency:   sim,
		generator: generator,
		publisher: publisher,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *postService) CreatePost(ctx context.Context, req *dto.CreatePostRequest) (*entities.Post, error) {
	if err := s.latency.Wait(ctx, latency.CreatePost, s.store.PostCount()); err != nil {
		return nil, err
	}

	post := &entities.Post{
		ID:        s.generator.PostID(req.Title),
		Title:     req.Title,
		AuthorID:  req.AuthorID,
		Content:   req.Content,
		CreatedAt: s.now().UTC(),
		ImageIDs:  []string{},
	}
	if err := s.store.CreatePost(post, nil); err != nil {
		if errors.Is(err, myErrors.ErrAuthorNotFound) {
			s.logger.Info("创建帖子失败: 作者不存在", zap.String("authorID", req.AuthorID))
			return nil, err
		}
		s.logger.Error("创建帖子写入存储失败", zap.String("postID", post.ID), zap.Error(err))
		return nil, fmt.Errorf("创建帖子失败: %w", err)
	}

	s.logger.Info("帖子创建成功",
		zap.String("postID", post.ID),
		zap.String("authorID", post.AuthorID),
		zap.String("title", post.Title),
	)
	producer.PublishAsync(s.publisher, s.logger, producer.SourceAPI, post.Clone())
	return post, nil
}

func (s *postService) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	if err := s.latency.Wait(ctx, latency.GetPost, s.store.PostCount()); err != nil {
		return nil, err
	}
	return s.store.GetPost(id)
}
