package dependencies

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_mock_service/config"
	"github.com/Xushengqwer/blog_mock_service/constant"
)

// ImageSource 为后台生成的帖子提供随机配图。
type ImageSource interface {
	// RandomImage 返回一张随机图片的 URL 和可选的替代文本。
	RandomImage(ctx context.Context) (imageURL string, alt string, err error)
}

// dogAPIResponse 是 dog.ceo 随机图片接口的响应结构。
type dogAPIResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type dogAPISource struct {
	client *http.Client
	apiURL string
	logger *zap.Logger
}

// InitImageSource 根据配置创建图片来源。
// - Enabled: 调用外部随机狗狗图片 API，出站请求带 OTel 追踪。
// - 否则: 使用离线的 gofakeit 生成的图片地址。
func InitImageSource(cfg *config.ImageAPIConfig, logger *zap.Logger) (ImageSource, error) {
	if cfg == nil || !cfg.Enabled {
		logger.Info("外部图片 API 已禁用，使用离线图片地址")
		return NewFakeImageSource(0), nil
	}

	apiURL := cfg.URL
	if apiURL == "" {
		apiURL = constant.DefaultDogImageAPIURL
	}
	if _, err := url.ParseRequestURI(apiURL); err != nil {
		logger.Error("解析图片 API 地址失败", zap.String("url", apiURL), zap.Error(err))
		return nil, fmt.Errorf("解析图片 API 地址 '%s' 失败: %w", apiURL, err)
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	logger.Info("图片 API 客户端初始化成功", zap.String("url", apiURL), zap.Duration("timeout", timeout))
	return &dogAPISource{
		client: NewTracedHTTPClient(timeout),
		apiURL: apiURL,
		logger: logger,
	}, nil
}

// NewTracedHTTPClient 返回使用 otelhttp Transport 的 HTTP 客户端。
func NewTracedHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   timeout,
	}
}

func (d *dogAPISource) RandomImage(ctx context.Context) (string, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.apiURL, nil)
	if err != nil {
		return "", "", fmt.Errorf("构造图片 API 请求失败: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		d.logger.Warn("图片 API 调用失败", zap.String("url", d.apiURL), zap.Error(err))
		return "", "", fmt.Errorf("调用图片 API 失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		d.logger.Warn("图片 API 返回非200状态码",
			zap.Int("状态码", resp.StatusCode),
			zap.String("响应信息", string(body)),
		)
		return "", "", fmt.Errorf("图片 API 返回状态码 %d", resp.StatusCode)
	}

	var payload dogAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", "", fmt.Errorf("解析图片 API 响应失败: %w", err)
	}
	if payload.Message == "" {
		return "", "", fmt.Errorf("图片 API 响应缺少图片地址 (status: %s)", payload.Status)
	}

	return payload.Message, BreedAltText(payload.Message), nil
}

// BreedAltText 从 dog.ceo 图片地址 (.../breeds/<breed>/<file>) 中提取品种生成替代文本。
// 无法识别时返回空字符串。
func BreedAltText(imageURL string) string {
	u, err := url.Parse(imageURL)
	if err != nil {
		return ""
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := 0; i+1 < len(parts); i++ {
		if parts[i] != "breeds" {
			continue
		}
		// 子品种写作 "hound-afghan"，展示为 "afghan hound"
		segs := strings.Split(parts[i+1], "-")
		for l, r := 0, len(segs)-1; l < r; l, r = l+1, r-1 {
			segs[l], segs[r] = segs[r], segs[l]
		}
		return fmt.Sprintf("A %s dog", strings.Join(segs, " "))
	}
	return ""
}

type fakeImageSource struct {
	faker *gofakeit.Faker
}

// NewFakeImageSource 返回不访问网络的图片来源，seed 为 0 时使用随机种子。
func NewFakeImageSource(seed int64) ImageSource {
	return &fakeImageSource{faker: gofakeit.New(seed)}
}

func (f *fakeImageSource) RandomImage(ctx context.Context) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	imageURL := fmt.Sprintf("https://picsum.photos/seed/%s/640/480", f.faker.UUID())
	alt := fmt.Sprintf("A %s %s", f.faker.Adjective(), f.faker.Noun())
	return imageURL, alt, nil
}
