package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sharedCore "github.com/Xushengqwer/go-common/core"
	sharedTracing "github.com/Xushengqwer/go-common/core/tracing"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/blog_mock_service/config"
	"github.com/Xushengqwer/blog_mock_service/constant"
	"github.com/Xushengqwer/blog_mock_service/controller"
	"github.com/Xushengqwer/blog_mock_service/dependencies"
	_ "github.com/Xushengqwer/blog_mock_service/docs"
	"github.com/Xushengqwer/blog_mock_service/fixtures"
	"github.com/Xushengqwer/blog_mock_service/latency"
	"github.com/Xushengqwer/blog_mock_service/mq/producer"
	"github.com/Xushengqwer/blog_mock_service/repo/memory"
	"github.com/Xushengqwer/blog_mock_service/router"
	"github.com/Xushengqwer/blog_mock_service/service"
	"github.com/Xushengqwer/blog_mock_service/tasks"
)

// @title           Blog Mock Service API
// @version         1.0
// @description     博客 mock 后端: 内存中的作者、帖子和图片，带模拟延迟和后台帖子生成。

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @schemes http https
func main() {
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "Path to configuration file")
	flag.Parse()

	// 0. .env 中的变量作为环境变量覆盖配置，文件不存在时忽略
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: 未加载 .env 文件: %v", err)
	}

	// 1. 加载配置
	var cfg appConfig.MockConfig
	if err := sharedCore.LoadConfig(configFile, &cfg); err != nil {
		log.Fatalf("FATAL: 加载配置失败 (%s): %v", configFile, err)
	}
	configBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		log.Fatalf("无法序列化配置以进行打印: %v", err)
	}
	log.Printf("✅ 配置加载成功！最终生效的配置如下:\n%s\n", string(configBytes))

	// 2. 初始化 Logger
	logger, loggerErr := sharedCore.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		log.Fatalf("FATAL: 初始化 ZapLogger 失败: %v", loggerErr)
	}
	defer func() {
		if err := logger.Logger().Sync(); err != nil {
			log.Printf("WARN: ZapLogger Sync 失败: %v\n", err)
		}
	}()
	baseLogger := logger.Logger()
	logger.Info("Logger 初始化成功")

	// 3. 初始化 TracerProvider (可选)
	if cfg.TracerConfig.Enabled {
		tracerShutdown, err := sharedTracing.InitTracerProvider(constant.ServiceName, constant.ServiceVersion, cfg.TracerConfig)
		if err != nil {
			logger.Fatal("初始化 TracerProvider 失败", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracerShutdown(ctx); err != nil {
				logger.Error("关闭 TracerProvider 失败", zap.Error(err))
			}
		}()
		logger.Info("分布式追踪已初始化")
	} else {
		logger.Info("分布式追踪已禁用")
	}

	// 4. 内存存储 + 作者种子
	generator := fixtures.NewGenerator(cfg.FixtureConfig)
	store := memory.NewStore(baseLogger)
	store.AddAuthors(generator.Authors()...)
	logger.Info("内存存储初始化完成", zap.Int("authors", store.Stats().Authors), zap.String("fixtureMode", cfg.FixtureConfig.Mode))

	// 5. 外部依赖
	imageSource, err := dependencies.InitImageSource(&cfg.ImageAPIConfig, baseLogger)
	if err != nil {
		logger.Fatal("初始化图片来源失败", zap.Error(err))
	}

	var publisher producer.PostEventPublisher
	var kafkaProducer *producer.KafkaProducer
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer = producer.NewKafkaProducer(cfg.KafkaConfig, baseLogger)
		publisher = kafkaProducer
		logger.Info("Kafka 生产者已初始化", zap.Strings("brokers", cfg.KafkaConfig.Brokers))
	} else {
		logger.Warn("未配置 Kafka brokers，不发送帖子创建事件")
	}

	// 6. 服务层
	simulator := latency.NewSimulator(cfg.LatencyConfig, baseLogger)
	postService := service.NewPostService(store, simulator, generator, publisher, baseLogger)
	authorService := service.NewAuthorService(store, simulator, baseLogger)
	imageService := service.NewImageService(store, simulator, baseLogger)

	// 7. 控制器层
	passthroughController, err := controller.NewPassthroughController(cfg.ImageAPIConfig.URL, baseLogger)
	if err != nil {
		logger.Fatal("初始化透传控制器失败", zap.Error(err))
	}
	ctrls := router.Controllers{
		Post:        controller.NewPostController(postService),
		Author:      controller.NewAuthorController(authorService),
		Image:       controller.NewImageController(imageService),
		Passthrough: passthroughController,
	}

	// 8. 后台任务
	populatorCtx, populatorCancel := context.WithCancel(context.Background())
	defer populatorCancel()
	var populator *tasks.Populator
	if cfg.PopulatorConfig.Enabled {
		populator = tasks.NewPopulator(cfg.PopulatorConfig, store, generator, imageSource, publisher, baseLogger)
		populator.Start(populatorCtx)
	} else {
		logger.Info("后台帖子生成已禁用")
	}

	statsTask, err := tasks.NewStoreStatsTask(store, cfg.StatsCronSpec, baseLogger)
	if err != nil {
		logger.Fatal("初始化存储统计任务失败", zap.Error(err))
	}

	// 9. 路由 + CORS
	ginRouter := router.SetupRouter(logger, &cfg, ctrls)

	// 10. 启动 HTTP 服务器
	serverAddr := fmt.Sprintf(":%s", cfg.ServerConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router.WithCORS(ginRouter, cfg.CORSConfig),
	}
	go func() {
		logger.Info("HTTP 服务器开始监听", zap.String("address", serverAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器启动失败", zap.Error(err))
		}
		logger.Info("HTTP 服务器已停止监听")
	}()

	// 11. 优雅关停
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	logger.Info("收到关停信号，开始优雅退出...", zap.String("signal", receivedSignal.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// a. 停止 HTTP 服务器，正在模拟延迟的请求会等到延迟结束
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("关闭 HTTP 服务器失败", zap.Error(err))
	} else {
		logger.Info("HTTP 服务器已成功关闭")
	}

	// b. 停止后台帖子生成
	populatorCancel()
	if populator != nil {
		select {
		case <-populator.Done():
			logger.Info("后台帖子生成已停止")
		case <-shutdownCtx.Done():
			logger.Error("等待后台帖子生成停止超时", zap.Error(shutdownCtx.Err()))
		}
	}

	// c. 停止定时任务
	select {
	case <-statsTask.Stop().Done():
		logger.Info("存储统计任务已停止")
	case <-shutdownCtx.Done():
		logger.Error("等待定时任务停止超时", zap.Error(shutdownCtx.Err()))
	}

	// d. 关闭 Kafka 生产者，刷新未发送的消息
	if kafkaProducer != nil {
		if err := kafkaProducer.Close(); err != nil {
			logger.Error("关闭 Kafka 生产者失败", zap.Error(err))
		}
	}

	logger.Info("服务已成功关闭")
}
