package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	appConfig "github.com/Xushengqwer/blog_mock_service/config"
	"github.com/Xushengqwer/blog_mock_service/controller"
	"github.com/Xushengqwer/blog_mock_service/fixtures"
	"github.com/Xushengqwer/blog_mock_service/latency"
	"github.com/Xushengqwer/blog_mock_service/repo/memory"
	"github.com/Xushengqwer/blog_mock_service/service"
)

func newTestEngine(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zaptest.NewLogger(t)
	store := memory.NewStore(logger)
	store.AddAuthors(fixtures.StaticAuthors()...)
	sim := latency.NewSimulator(appConfig.LatencyConfig{}, logger)

	passthrough, err := controller.NewPassthroughController("https://dog.ceo/api/breeds/image/random", logger)
	require.NoError(t, err)

	r := gin.New()
	RegisterRoutes(r, Controllers{
		Post:        controller.NewPostController(service.NewPostService(store, sim, fixtures.NewGenerator(appConfig.FixtureConfig{}), nil, logger)),
		Author:      controller.NewAuthorController(service.NewAuthorService(store, sim, logger)),
		Image:       controller.NewImageController(service.NewImageService(store, sim, logger)),
		Passthrough: passthrough,
	})
	return r
}

func TestRoutes_Table(t *testing.T) {
	r := newTestEngine(t)

	assert.Equal(t, []Route{
		{Method: http.MethodGet, Path: "/api/authors"},
		{Method: http.MethodGet, Path: "/api/authors/:id"},
		{Method: http.MethodGet, Path: "/api/dog-image"},
		{Method: http.MethodGet, Path: "/api/images/:id"},
		{Method: http.MethodGet, Path: "/api/posts"},
		{Method: http.MethodPost, Path: "/api/posts"},
		{Method: http.MethodGet, Path: "/api/posts/:id"},
		{Method: http.MethodGet, Path: "/ping"},
		{Method: http.MethodGet, Path: "/swagger/*any"},
	}, Routes(r))
}

func TestPing(t *testing.T) {
	r := newTestEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	r := newTestEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/posts/post-1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWithCORS(t *testing.T) {
	h := WithCORS(newTestEngine(t), appConfig.CORSConfig{AllowedOrigins: []string{"http://localhost:1234"}})

	// 预检请求
	req := httptest.NewRequest(http.MethodOptions, "/api/posts", nil)
	req.Header.Set("Origin", "http://localhost:1234")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:1234", w.Header().Get("Access-Control-Allow-Origin"))

	// 普通请求
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:1234")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:1234", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "pong", w.Body.String())
}
