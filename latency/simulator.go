package latency

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_mock_service/config"
)

// Class 标识一类请求，每类请求有独立的延迟配置。
type Class string

const (
	ListPosts   Class = "list_posts"
	GetPost     Class = "get_post"
	CreatePost  Class = "create_post"
	ListAuthors Class = "list_authors"
	GetAuthor   Class = "get_author"
	GetImage    Class = "get_image"
)

// DefaultProfiles 各请求类别的默认延迟。
var DefaultProfiles = map[Class]config.LatencyProfile{
	ListPosts:   {BaseMs: 1000, PerPostMs: 100, JitterMs: 200},
	GetPost:     {BaseMs: 200, PerPostMs: 50, JitterMs: 200},
	CreatePost:  {BaseMs: 200, PerPostMs: 0, JitterMs: 100},
	ListAuthors: {BaseMs: 500, PerPostMs: 0, JitterMs: 100},
	GetAuthor:   {BaseMs: 300, PerPostMs: 25, JitterMs: 100},
	GetImage:    {BaseMs: 100, PerPostMs: 0, JitterMs: 50},
}

// SleepFunc 挂起当前请求 d 时长。实现应在 ctx 取消时提前返回 ctx.Err()。
type SleepFunc func(ctx context.Context, d time.Duration) error

// ContextSleep 是默认的 SleepFunc。
func ContextSleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NoDelay 立即返回，用于测试或关闭延迟模拟。
func NoDelay(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

// Simulator 根据请求类别和当前帖子总数计算延迟并挂起。
type Simulator struct {
	profiles map[Class]config.LatencyProfile
	sleep    SleepFunc
	random   func() float64
	logger   *zap.Logger
}

// Option 用于覆盖 Simulator 的可注入部分。
type Option func(*Simulator)

// WithSleep 替换挂起函数。
func WithSleep(sleep SleepFunc) Option {
	return func(s *Simulator) { s.sleep = sleep }
}

// WithRandom 替换 [0,1) 随机数来源。
func WithRandom(random func() float64) Option {
	return func(s *Simulator) { s.random = random }
}

// NewSimulator 以 DefaultProfiles 为基础，叠加配置中的同名类别。
// cfg.Enabled 为 false 时使用 NoDelay。
func NewSimulator(cfg config.LatencyConfig, logger *zap.Logger, opts ...Option) *Simulator {
	profiles := make(map[Class]config.LatencyProfile, len(DefaultProfiles))
	for class, p := range DefaultProfiles {
		profiles[class] = p
	}
	for name, p := range cfg.Profiles {
		profiles[Class(name)] = p
	}

	s := &Simulator{
		profiles: profiles,
		sleep:    ContextSleep,
		random:   rand.Float64,
		logger:   logger,
	}
	if !cfg.Enabled {
		s.sleep = NoDelay
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Delay 计算某类请求在当前帖子总数下的延迟: base + perPost*postCount + (U-0.5)*jitter，最小为 0。
func (s *Simulator) Delay(class Class, postCount int) time.Duration {
	p := s.profiles[class]
	avg := float64(p.BaseMs) + float64(p.PerPostMs)*float64(postCount)
	ms := avg + (s.random()-0.5)*float64(p.JitterMs)
	if ms < 0 {
		ms = 0
	}
	return time.Duration(ms * float64(time.Millisecond))
}

// Wait 计算延迟、记录日志并挂起。返回值只在 ctx 被取消时非空。
func (s *Simulator) Wait(ctx context.Context, class Class, postCount int) error {
	d := s.Delay(class, postCount)
	s.logger.Debug("Delaying",
		zap.String("requestID", RequestID(ctx)),
		zap.String("class", string(class)),
		zap.String("delay", formatSeconds(d)),
	)
	return s.sleep(ctx, d)
}

// formatSeconds 以一位小数的秒数展示延迟，例如 "1.2s"。
func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// RequestID 返回 ctx 中 OTel span 的 TraceID，没有有效 span 时返回 "-"。
func RequestID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return "-"
	}
	return sc.TraceID().String()
}
