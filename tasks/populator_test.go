package tasks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Xushengqwer/blog_mock_service/config"
	"github.com/Xushengqwer/blog_mock_service/fixtures"
	"github.com/Xushengqwer/blog_mock_service/latency"
	"github.com/Xushengqwer/blog_mock_service/models/entities"
	"github.com/Xushengqwer/blog_mock_service/repo/memory"
)

// stubImageSource 每隔 failEvery 次调用失败一次 (failEvery 为 0 时从不失败)。
type stubImageSource struct {
	mu        sync.Mutex
	calls     int
	failEvery int
}

func (s *stubImageSource) RandomImage(ctx context.Context) (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.failEvery > 0 && s.calls%s.failEvery == 0 {
		return "", "", errors.New("dog api unavailable")
	}
	return fmt.Sprintf("https://images.dog.ceo/breeds/pug/%d.jpg", s.calls), "A pug dog", nil
}

func newPopulatorStore(t *testing.T) memory.Store {
	store := memory.NewStore(zaptest.NewLogger(t))
	store.AddAuthors(fixtures.StaticAuthors()...)
	return store
}

func TestPopulator_StopsAtCeiling(t *testing.T) {
	store := newPopulatorStore(t)
	images := &stubImageSource{}
	p := NewPopulator(config.PopulatorConfig{MaxPosts: 7, BackfillCount: 3, MinImages: 1, MaxImages: 3},
		store, fixtures.NewGenerator(config.FixtureConfig{Seed: 1}), images, nil, zaptest.NewLogger(t),
		WithPopulatorSleep(latency.NoDelay),
	)

	p.Run(context.Background())

	select {
	case <-p.Done():
	default:
		t.Fatal("Done not closed after Run returned")
	}
	assert.Equal(t, 7, store.PostCount())

	posts := store.ListPosts()
	titles := map[string]bool{}
	for _, post := range posts {
		titles[post.Title] = true
		assert.GreaterOrEqual(t, len(post.ImageIDs), 1)
		assert.LessOrEqual(t, len(post.ImageIDs), 3)
		assert.True(t, strings.HasPrefix(post.Content, "This is post number "))
		for _, id := range post.ImageIDs {
			img, err := store.GetImage(id)
			require.NoError(t, err)
			assert.Equal(t, "A pug dog", img.Alt)
		}
	}
	for n := 1; n <= 7; n++ {
		assert.True(t, titles[fmt.Sprintf("Post #%d", n)], "missing Post #%d", n)
	}
}

func TestPopulator_FullStoreCreatesNothing(t *testing.T) {
	store := newPopulatorStore(t)
	for i := 0; i < 3; i++ {
		require.NoError(t, store.CreatePost(&entities.Post{ID: fmt.Sprintf("post-%d", i), AuthorID: "author-1"}, nil))
	}
	images := &stubImageSource{}
	p := NewPopulator(config.PopulatorConfig{MaxPosts: 3},
		store, fixtures.NewGenerator(config.FixtureConfig{}), images, nil, zaptest.NewLogger(t),
		WithPopulatorSleep(latency.NoDelay),
	)

	p.Run(context.Background())
	assert.Equal(t, 3, store.PostCount())
	assert.Equal(t, 0, images.calls)
}

func TestPopulator_ImageFailuresAreSkipped(t *testing.T) {
	store := newPopulatorStore(t)
	images := &stubImageSource{failEvery: 2}
	p := NewPopulator(config.PopulatorConfig{MaxPosts: 4, MinImages: 2, MaxImages: 2},
		store, fixtures.NewGenerator(config.FixtureConfig{}), images, nil, zaptest.NewLogger(t),
		WithPopulatorSleep(latency.NoDelay),
	)

	p.Run(context.Background())
	require.Equal(t, 4, store.PostCount())
	// 每篇请求两张图，其中一张失败，不重试
	assert.Equal(t, 8, images.calls)
	for _, post := range store.ListPosts() {
		assert.Len(t, post.ImageIDs, 1)
	}
	assert.Equal(t, 4, store.Stats().Images)
}

func TestPopulator_BackfillDatedInPast(t *testing.T) {
	store := newPopulatorStore(t)
	now := time.Date(2024, 3, 23, 12, 0, 0, 0, time.UTC)
	p := NewPopulator(config.PopulatorConfig{MaxPosts: 6, BackfillCount: 3, BackfillSpanHours: 72},
		store, fixtures.NewGenerator(config.FixtureConfig{Seed: 2}), &stubImageSource{}, nil, zaptest.NewLogger(t),
		WithPopulatorSleep(latency.NoDelay),
		WithPopulatorClock(func() time.Time { return now }),
	)

	p.Run(context.Background())
	require.Equal(t, 6, store.PostCount())

	live := 0
	for _, post := range store.ListPosts() {
		assert.False(t, post.CreatedAt.After(now))
		assert.True(t, post.CreatedAt.After(now.Add(-72*time.Hour)) || post.CreatedAt.Equal(now.Add(-72*time.Hour)))
		if post.CreatedAt.Equal(now) {
			live++
		}
	}
	// 后 3 篇为实时帖子，创建时间等于当前时间 (回填帖子恰好等于 now 的概率可以忽略)
	assert.GreaterOrEqual(t, live, 3)
}

func TestPopulator_StopsOnCancel(t *testing.T) {
	store := newPopulatorStore(t)
	p := NewPopulator(config.PopulatorConfig{MaxPosts: 100},
		store, fixtures.NewGenerator(config.FixtureConfig{}), &stubImageSource{}, nil, zaptest.NewLogger(t),
		WithPopulatorSleep(func(ctx context.Context, _ time.Duration) error {
			<-ctx.Done()
			return ctx.Err()
		}),
	)

	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)
	cancel()

	select {
	case <-p.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("populator did not stop after cancel")
	}
	assert.Equal(t, 0, store.PostCount())
}

type recordingPublisher struct {
	mu      sync.Mutex
	sources []string
}

func (r *recordingPublisher) PublishPostCreated(_ context.Context, source string, _ *entities.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources = append(r.sources, source)
	return nil
}

func (r *recordingPublisher) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sources)
}

func TestPopulator_PublishesEvents(t *testing.T) {
	store := newPopulatorStore(t)
	pub := &recordingPublisher{}
	p := NewPopulator(config.PopulatorConfig{MaxPosts: 3},
		store, fixtures.NewGenerator(config.FixtureConfig{}), &stubImageSource{}, pub, zaptest.NewLogger(t),
		WithPopulatorSleep(latency.NoDelay),
	)

	p.Run(context.Background())
	assert.Eventually(t, func() bool { return pub.count() == 3 }, 2*time.Second, 10*time.Millisecond)
	pub.mu.Lock()
	defer pub.mu.Unlock()
	for _, source := range pub.sources {
		assert.Equal(t, "populator", source)
	}
}
