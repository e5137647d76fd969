package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_mock_service/config"
	"github.com/Xushengqwer/blog_mock_service/dependencies"
	"github.com/Xushengqwer/blog_mock_service/fixtures"
	"github.com/Xushengqwer/blog_mock_service/latency"
	"github.com/Xushengqwer/blog_mock_service/models/entities"
	"github.com/Xushengqwer/blog_mock_service/mq/producer"
	"github.com/Xushengqwer/blog_mock_service/myErrors"
	"github.com/Xushengqwer/blog_mock_service/repo/memory"
)

// 未配置时使用的默认值
const (
	defaultMaxPosts          = 100
	defaultBackfillMaxWaitMs = 1000
	defaultBackfillSpanHours = 72
	defaultLiveMaxWaitMs     = 10000
)

// Populator 在后台不断生成帖子，直到帖子总数达到上限。
//   - 前 BackfillCount 篇为回填帖子: 等待更短，创建时间分布在过去一段时间内，让列表一开始就有内容。
//   - 之后为实时帖子: 等待 U[0, LiveMaxWait)，创建时间为写入时刻。
//   - 每篇帖子 MinImages~MaxImages 张配图，单张获取失败只记录日志并跳过。
type Populator struct {
	cfg       config.PopulatorConfig
	store     memory.Store
	generator *fixtures.Generator
	images    dependencies.ImageSource
	publisher producer.PostEventPublisher // 可为 nil
	sleep     latency.SleepFunc
	now       func() time.Time
	logger    *zap.Logger
	done      chan struct{}
}

// PopulatorOption 用于替换 Populator 的可注入部分 (测试中使用)。
type PopulatorOption func(*Populator)

// WithPopulatorSleep 替换两篇帖子之间的等待函数。
func WithPopulatorSleep(sleep latency.SleepFunc) PopulatorOption {
	return func(p *Populator) { p.sleep = sleep }
}

// WithPopulatorClock 替换时间来源。
func WithPopulatorClock(now func() time.Time) PopulatorOption {
	return func(p *Populator) { p.now = now }
}

// NewPopulator 创建后台生成器，零值配置项使用默认值。需要调用 Start 或 Run 才会开始生成。
func NewPopulator(
	cfg config.PopulatorConfig,
	store memory.Store,
	generator *fixtures.Generator,
	images dependencies.ImageSource,
	publisher producer.PostEventPublisher,
	logger *zap.Logger,
	opts ...PopulatorOption,
) *Populator {
	if cfg.MaxPosts <= 0 {
		cfg.MaxPosts = defaultMaxPosts
	}
	if cfg.BackfillMaxWaitMs <= 0 {
		cfg.BackfillMaxWaitMs = defaultBackfillMaxWaitMs
	}
	if cfg.BackfillSpanHours <= 0 {
		cfg.BackfillSpanHours = defaultBackfillSpanHours
	}
	if cfg.LiveMaxWaitMs <= 0 {
		cfg.LiveMaxWaitMs = defaultLiveMaxWaitMs
	}
	if cfg.MaxImages < cfg.MinImages {
		cfg.MaxImages = cfg.MinImages
	}

	p := &Populator{
		cfg:       cfg,
		store:     store,
		generator: generator,
		images:    images,
		publisher: publisher,
		sleep:     latency.ContextSleep,
		now:       time.Now,
		logger:    logger,
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start 在新的 goroutine 中运行生成循环。
func (p *Populator) Start(ctx context.Context) {
	go p.Run(ctx)
}

// Done 在生成循环结束 (达到上限或 ctx 取消) 后关闭。
func (p *Populator) Done() <-chan struct{} {
	return p.done
}

// Run 同步执行生成循环，直到帖子总数达到上限或 ctx 被取消。只能调用一次。
func (p *Populator) Run(ctx context.Context) {
	defer close(p.done)

	authors := p.store.ListAuthors()
	if len(authors) == 0 {
		p.logger.Warn("存储中没有作者，后台帖子生成不启动")
		return
	}

	p.logger.Info("后台帖子生成开始",
		zap.Int("maxPosts", p.cfg.MaxPosts),
		zap.Int("backfillCount", p.cfg.BackfillCount),
		zap.Int("existingPosts", p.store.PostCount()),
	)

	created := 0
	for {
		if p.store.PostCount() >= p.cfg.MaxPosts {
			p.logger.Info("帖子数量已达上限，后台帖子生成结束", zap.Int("created", created), zap.Int("maxPosts", p.cfg.MaxPosts))
			return
		}

		backfill := created < p.cfg.BackfillCount
		if err := p.sleep(ctx, p.nextWait(backfill)); err != nil {
			p.logger.Info("后台帖子生成已停止", zap.Int("created", created), zap.Error(err))
			return
		}

		post, err := p.createOne(ctx, authors, backfill)
		switch {
		case err == nil:
			created++
			producer.PublishAsync(p.publisher, p.logger, producer.SourcePopulator, post)
		case errors.Is(err, myErrors.ErrPostCeilingReached):
			p.logger.Info("帖子数量已达上限，后台帖子生成结束", zap.Int("created", created), zap.Int("maxPosts", p.cfg.MaxPosts))
			return
		case ctx.Err() != nil:
			p.logger.Info("后台帖子生成已停止", zap.Int("created", created), zap.Error(ctx.Err()))
			return
		default:
			p.logger.Warn("后台生成帖子失败，继续下一篇", zap.Error(err))
		}
	}
}

func (p *Populator) nextWait(backfill bool) time.Duration {
	if backfill {
		return p.generator.DurationUpTo(time.Duration(p.cfg.BackfillMaxWaitMs) * time.Millisecond)
	}
	return p.generator.DurationUpTo(time.Duration(p.cfg.LiveMaxWaitMs) * time.Millisecond)
}

// createOne 生成并写入一篇帖子。上限在写入时于存储的临界区内再次检查。
func (p *Populator) createOne(ctx context.Context, authors []entities.Author, backfill bool) (*entities.Post, error) {
	n := p.store.PostCount() + 1
	author := p.generator.PickAuthor(authors)
	byAuthor := len(p.store.PostIDsByAuthor(author.ID))

	images := p.fetchImages(ctx, p.generator.IntRange(p.cfg.MinImages, p.cfg.MaxImages))
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	imageIDs := make([]string, 0, len(images))
	for _, img := range images {
		imageIDs = append(imageIDs, img.ID)
	}

	createdAt := p.now().UTC()
	if backfill {
		createdAt = createdAt.Add(-p.generator.DurationUpTo(time.Duration(p.cfg.BackfillSpanHours) * time.Hour))
	}

	title := p.generator.PostTitle(n)
	post := &entities.Post{
		ID:        p.generator.PostID(title),
		Title:     title,
		AuthorID:  author.ID,
		Content:   p.generator.PostContent(n, byAuthor, author.Name),
		CreatedAt: createdAt,
		ImageIDs:  imageIDs,
	}
	if err := p.store.CreatePostBelow(p.cfg.MaxPosts, post, images); err != nil {
		return nil, err
	}

	p.logger.Info(fmt.Sprintf("Created post #%d by %s", n, author.Name),
		zap.String("postID", post.ID),
		zap.Int("images", len(images)),
		zap.Bool("backfill", backfill),
		zap.Time("createdAt", createdAt),
	)
	return post, nil
}

// fetchImages 获取 count 张配图，失败的跳过，不重试。
func (p *Populator) fetchImages(ctx context.Context, count int) []entities.Image {
	images := make([]entities.Image, 0, count)
	for i := 0; i < count; i++ {
		imageURL, alt, err := p.images.RandomImage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return images
			}
			p.logger.Warn("获取配图失败，跳过", zap.Error(err))
			continue
		}
		images = append(images, entities.Image{ID: p.generator.ImageID(), URL: imageURL, Alt: alt})
	}
	return images
}
