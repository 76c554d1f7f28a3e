package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // 确保在精简镜像中也能识别时区

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Forfeit-15/INF2003/internal/config"
	"github.com/Forfeit-15/INF2003/internal/handler"
	"github.com/Forfeit-15/INF2003/internal/model"
	"github.com/Forfeit-15/INF2003/internal/repository"
	"github.com/Forfeit-15/INF2003/internal/router"
	"github.com/Forfeit-15/INF2003/internal/service"
	"github.com/Forfeit-15/INF2003/internal/utils"
)

func main() {
	// 加载环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用系统环境变量")
	}

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}

	logger, err := utils.NewLogger(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		log.Fatalf("日志初始化失败: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if cfg.IsProduction() && cfg.UsesDefaultCredentials() {
		logger.Warn("生产环境仍在使用默认数据库密码，请设置 DB_PASSWORD")
	}

	// 进程级 ctx，关闭时停止后台任务
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// 初始化关系型数据库
	db, err := repository.InitDB(cfg)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("获取数据库连接失败", zap.Error(err))
	}
	defer sqlDB.Close()

	// 目录表由导入脚本维护，这里只补齐用户表
	if err := db.AutoMigrate(&model.User{}); err != nil {
		logger.Fatal("用户表迁移失败", zap.Error(err))
	}

	// 初始化文档数据库
	mongoClient, err := repository.InitMongo(ctx, cfg)
	if err != nil {
		logger.Fatal("MongoDB 连接失败", zap.Error(err))
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			logger.Warn("MongoDB 断开失败", zap.Error(err))
		}
	}()

	mdb := mongoClient.Database(cfg.MongoDatabase)
	indexCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	err = repository.EnsureIndexes(indexCtx, mdb, cfg.SearchLogTTLDays)
	cancel()
	if err != nil {
		logger.Fatal("MongoDB 索引创建失败", zap.Error(err))
	}

	// 仓库 -> 服务 -> Handler -> 路由
	repos := repository.NewRepositories(db, mdb)
	svcs := service.NewServices(repos)
	h := handler.NewHandler(svcs, repos)
	r := router.New(ctx, cfg, logger, h)

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	// 在 goroutine 中启动服务器，主 goroutine 等待退出信号
	go func() {
		logger.Info("服务器启动", zap.String("addr", "http://localhost:"+cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("服务器启动失败", zap.Error(err))
		}
	}()

	// 等待中断信号以优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	stop()
	logger.Info("正在关闭服务器...")

	// 5 秒超时上下文用于关闭过程
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("服务器强制关闭", zap.Error(err))
	}

	logger.Info("服务器已退出")
}
