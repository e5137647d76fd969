package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/blog_mock_service/config"
	"github.com/Xushengqwer/blog_mock_service/dependencies"
)

func main() {
	// --- 0. 解析命令行参数 ---
	var numPosts, concurrency, timeoutSeconds int
	var configFile, addr string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.StringVar(&addr, "addr", "", "mock 服务地址 (默认: http://localhost:<配置中的端口>)")
	flag.IntVar(&numPosts, "n", 20, "要创建的帖子数量")
	flag.IntVar(&concurrency, "c", 5, "并发请求数")
	flag.IntVar(&timeoutSeconds, "timeout", 30, "单个请求的超时秒数 (包含服务端模拟延迟)")
	flag.Parse()

	if numPosts <= 0 {
		fmt.Println("错误: 生成的帖子数量必须大于 0")
		os.Exit(1)
	}

	_ = godotenv.Load()

	absConfigFile, err := filepath.Abs(configFile)
	if err != nil {
		absConfigFile = configFile
	}

	// --- 1. 加载配置 ---
	var cfg appConfig.MockConfig
	if err := core.LoadConfig(absConfigFile, &cfg); err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", absConfigFile, err)
		os.Exit(1)
	}
	if addr == "" {
		addr = fmt.Sprintf("http://localhost:%s", cfg.ServerConfig.Port)
	}
	addr = strings.TrimRight(addr, "/")

	// --- 2. 初始化日志记录器 ---
	logger, loggerErr := core.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		fmt.Printf("初始化 ZapLogger 失败: %v\n", loggerErr)
		os.Exit(1)
	}
	defer func() { _ = logger.Logger().Sync() }()

	// --- 3. 执行数据填充 ---
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := &apiClient{
		baseURL: addr,
		http:    dependencies.NewTracedHTTPClient(time.Duration(timeoutSeconds) * time.Second),
	}

	startTime := time.Now()
	logger.Info("开始执行数据填充...", zap.String("addr", addr), zap.Int("预计数量", numPosts), zap.Int("并发", concurrency))
	succeeded, failed, err := Seed(ctx, client, logger.Logger(), numPosts, concurrency)
	if err != nil {
		logger.Error("数据填充失败", zap.Error(err))
		os.Exit(1)
	}

	fmt.Printf("数据填充完成！成功 %d，失败 %d，耗时: %v\n", succeeded, failed, time.Since(startTime))
}
