package router

import (
	"net/http"

	"github.com/gorilla/handlers"

	appConfig "github.com/Xushengqwer/blog_mock_service/config"
)

// WithCORS 给整个 HTTP handler 包上 CORS，供浏览器前端跨域调用。
// 未配置 AllowedOrigins 时允许任意来源。
func WithCORS(next http.Handler, cfg appConfig.CORSConfig) http.Handler {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.ExposedHeaders([]string{"Location"}),
	)(next)
}
