package router

import (
	"net/http"
	"sort"
	"time"

	"github.com/Xushengqwer/go-common/core"
	commonMiddleware "github.com/Xushengqwer/go-common/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	otelgin "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/blog_mock_service/config"
	"github.com/Xushengqwer/blog_mock_service/constant"
	"github.com/Xushengqwer/blog_mock_service/controller"
)

// Controllers 汇总需要注册到 /api 分组的全部控制器。
type Controllers struct {
	Post        *controller.PostController
	Author      *controller.AuthorController
	Image       *controller.ImageController
	Passthrough *controller.PassthroughController // 可为 nil，此时不注册 /api/dog-image
}

// Route 路由表中的一项。
type Route struct {
	Method string
	Path   string
}

// SetupRouter 仅负责配置 Gin 引擎、中间件和路由注册。
func SetupRouter(logger *core.ZapLogger, cfg *appConfig.MockConfig, ctrls Controllers) *gin.Engine {
	logger.Info("开始设置 Gin 路由...")

	router := gin.New()

	// 1. OTel Middleware (最先，处理追踪上下文和 Span，TraceID 同时用作延迟日志中的请求 ID)
	router.Use(otelgin.Middleware(constant.ServiceName))

	// 2. Panic Recovery
	router.Use(commonMiddleware.ErrorHandlingMiddleware(logger))

	// 3. Request Logger
	if baseLogger := logger.Logger(); baseLogger != nil {
		router.Use(commonMiddleware.RequestLoggerMiddleware(baseLogger))
	} else {
		logger.Warn("无法获取底层的 *zap.Logger，跳过 RequestLoggerMiddleware 注册")
	}

	// 4. Request Timeout，超时后模拟延迟提前结束
	if cfg.ServerConfig.RequestTimeout > 0 {
		requestTimeout := time.Duration(cfg.ServerConfig.RequestTimeout) * time.Second
		router.Use(commonMiddleware.RequestTimeoutMiddleware(logger, requestTimeout))
	}
	logger.Debug("已注册全局中间件")

	RegisterRoutes(router, ctrls)
	logger.Info("Gin 路由器设置完成", zap.Int("routes", len(Routes(router))))
	return router
}

// RegisterRoutes 在 engine 上注册 /api 分组、Swagger UI 和健康检查。
// 与中间件分开，测试可以直接在裸 engine 上使用同一张路由表。
func RegisterRoutes(router *gin.Engine, ctrls Controllers) {
	api := router.Group("/api")
	ctrls.Post.RegisterRoutes(api)
	ctrls.Author.RegisterRoutes(api)
	ctrls.Image.RegisterRoutes(api)
	if ctrls.Passthrough != nil {
		ctrls.Passthrough.RegisterRoutes(api)
	}

	// 访问 /swagger/index.html 即可看到 Swagger UI 界面
	swaggerURL := ginSwagger.URL("/swagger/doc.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, swaggerURL))

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
}

// Routes 返回 engine 上已注册的 (method, path) 路由表，按路径和方法排序。
func Routes(router *gin.Engine) []Route {
	infos := router.Routes()
	out := make([]Route, 0, len(infos))
	for _, info := range infos {
		out = append(out, Route{Method: info.Method, Path: info.Path})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Method < out[j].Method
	})
	return out
}
