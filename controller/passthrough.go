package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_mock_service/constant"
	"github.com/Xushengqwer/blog_mock_service/models/vo"
)

// PassthroughController 把 /api/dog-image 原样转发到外部随机狗狗图片 API，不做任何模拟。
type PassthroughController struct {
	proxy  *httputil.ReverseProxy
	target *url.URL
	logger *zap.Logger
}

// NewPassthroughController 创建透传控制器。targetURL 为空时使用 dog.ceo 默认地址。
func NewPassthroughController(targetURL string, logger *zap.Logger) (*PassthroughController, error) {
	if targetURL == "" {
		targetURL = constant.DefaultDogImageAPIURL
	}
	target, err := url.Parse(targetURL)
	if err != nil || target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("无效的透传目标地址 '%s': %v", targetURL, err)
	}

	ctrl := &PassthroughController{target: target, logger: logger}
	ctrl.proxy = &httputil.ReverseProxy{
		// 目标是一个完整的 URL，请求路径和查询参数都替换为目标的，不做拼接。
		Director: func(req *http.Request) {
			req.URL.Scheme = target.Scheme
			req.URL.Host = target.Host
			req.URL.Path = target.Path
			req.URL.RawPath = target.RawPath
			req.URL.RawQuery = target.RawQuery
			req.Host = target.Host
			if _, ok := req.Header["User-Agent"]; !ok {
				req.Header.Set("User-Agent", "")
			}
		},
		Transport:    otelhttp.NewTransport(http.DefaultTransport),
		ErrorHandler: ctrl.handleProxyError,
	}
	return ctrl, nil
}

func (ctrl *PassthroughController) handleProxyError(w http.ResponseWriter, r *http.Request, err error) {
	ctrl.logger.Warn("透传请求失败", zap.String("target", ctrl.target.String()), zap.Error(err))
	if r.Context().Err() != nil {
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusBadGateway)
	_ = json.NewEncoder(w).Encode(vo.ErrorResponse{Error: "Upstream request failed"})
}

// GetDogImage 透传随机狗狗图片
// @Summary      随机狗狗图片 (透传)
// @Description  原样转发到外部随机狗狗图片 API，响应状态码、头和正文均不做修改。
// @Tags         passthrough (透传)
// @Produce      json
// @Success      200 {object} map[string]string "上游响应，例如 {\"message\": \"...\", \"status\": \"success\"}"
// @Failure      502 {object} vo.ErrorResponse "上游不可用"
// @Router       /api/dog-image [get]
func (ctrl *PassthroughController) GetDogImage(c *gin.Context) {
	ctrl.proxy.ServeHTTP(c.Writer, c.Request)
}

func (ctrl *PassthroughController) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/dog-image", ctrl.GetDogImage)
}
