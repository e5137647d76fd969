package fixtures

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/Xushengqwer/blog_mock_service/config"
	"github.com/Xushengqwer/blog_mock_service/constant"
	"github.com/Xushengqwer/blog_mock_service/models/entities"
)

const (
	PostIDStyleUUID = "uuid"
	PostIDStyleSlug = "slug"

	ModeStatic = "static"
	ModeRandom = "random"
)

// Generator 负责生成作者池、帖子 ID、标题和正文等 mock 数据。
// 内部的 gofakeit.Faker 使用加锁的随机源，可被多个 goroutine 共享。
type Generator struct {
	cfg   config.FixtureConfig
	faker *gofakeit.Faker
}

// NewGenerator 根据配置创建生成器。Seed 为 0 时使用随机种子。
func NewGenerator(cfg config.FixtureConfig) *Generator {
	return &Generator{
		cfg:   cfg,
		faker: gofakeit.New(cfg.Seed),
	}
}

// Authors 按配置返回启动时要写入存储的作者池。
func (g *Generator) Authors() []entities.Author {
	if g.cfg.Mode == ModeRandom {
		n := g.cfg.AuthorCount
		if n <= 0 {
			n = len(staticAuthors)
		}
		return RandomAuthors(g.cfg.Seed, n)
	}
	return StaticAuthors()
}

// PickAuthor 从作者池中均匀随机地选出一位。pool 不能为空。
func (g *Generator) PickAuthor(pool []entities.Author) entities.Author {
	return pool[g.faker.Number(0, len(pool)-1)]
}

// PostID 生成帖子 ID。
func (g *Generator) PostID(title string) string {
	if g.cfg.PostIDStyle == PostIDStyleSlug {
		return fmt.Sprintf("%s%s-%s", constant.PostIDPrefix, Slugify(title), uuid.NewString()[:8])
	}
	return constant.PostIDPrefix + uuid.NewString()
}

func (g *Generator) ImageID() string {
	return constant.ImageIDPrefix + uuid.NewString()
}

// PostTitle 生成后台帖子的标题，n 为全局第几篇。
func (g *Generator) PostTitle(n int) string {
	return fmt.Sprintf("Post #%d", n)
}

// PostContent 生成后台帖子的正文。byAuthor 是写入前该作者已有的帖子数。
func (g *Generator) PostContent(n, byAuthor int, authorName string) string {
	content := fmt.Sprintf("This is post number %d in total, %d by this author (%s)", n, byAuthor, authorName)
	if g.cfg.RichContent {
		content += "\n\n" + g.faker.Paragraph(1, 3, 12, "\n")
	}
	return content
}

// IntRange 返回 [min, max] 内的均匀随机整数。
func (g *Generator) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return g.faker.Number(min, max)
}

// DurationUpTo 返回 [0, max) 内的均匀随机时长，max <= 0 时返回 0。
func (g *Generator) DurationUpTo(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	return time.Duration(g.faker.Float64Range(0, 1) * float64(max))
}

// Slugify 把标题转成 URL 友好的 slug: 只保留小写 ASCII 字母和数字，其余字符合并为单个 '-'。
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
		if b.Len() >= 48 {
			break
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "untitled"
	}
	return slug
}
