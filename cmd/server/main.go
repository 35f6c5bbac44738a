// server 启动 HTTP 服务，暴露定点高斯 CDF 计算接口。
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/betbot/gausscdf/internal/api"
	"github.com/betbot/gausscdf/pkg/logger"
)

func main() {
	// 读取 .env（尽力而为），缺失时退回真实环境变量
	_ = godotenv.Load()

	var (
		listenAddr = flag.String("listen", getenv("GAUSSCDF_LISTEN", ":8080"), "HTTP 监听地址")
		logLevel   = flag.String("log-level", getenv("GAUSSCDF_LOG_LEVEL", "info"), "日志级别")
		logFile    = flag.String("log-file", getenv("GAUSSCDF_LOG_FILE", ""), "日志文件路径（可选）")
	)
	flag.Parse()

	if err := logger.Init(logger.Config{Level: *logLevel, OutputFile: *logFile}); err != nil {
		logger.Logger.Fatalf("初始化日志失败: %v", err)
	}
	log := logger.Logger

	srv := api.New(log)
	httpSrv := &http.Server{
		Addr:              *listenAddr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Infof("gausscdf 服务监听 %s", *listenAddr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorf("http 服务错误: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("收到退出信号，开始优雅关闭")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Errorf("关闭 http 服务失败: %v", err)
	}
	log.Info("已退出")
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
