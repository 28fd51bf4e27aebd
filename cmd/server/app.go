/*
 * @Description: 应用装配（依赖注入）与生命周期
 * @Author: 安知鱼
 * @Date: 2025-09-04 10:05:27
 * @LastEditTime: 2025-09-14 22:10:36
 * @LastEditors: 安知鱼
 */
package server

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/anheyu-lite/internal/app/task"
	"github.com/anzhiyu-c/anheyu-lite/internal/infra/persistence/database"
	"github.com/anzhiyu-c/anheyu-lite/internal/infra/persistence/kv"
	"github.com/anzhiyu-c/anheyu-lite/internal/infra/router"
	"github.com/anzhiyu-c/anheyu-lite/internal/infra/storage"
	"github.com/anzhiyu-c/anheyu-lite/internal/pkg/utils"
	"github.com/anzhiyu-c/anheyu-lite/pkg/config"
	auth_handler "github.com/anzhiyu-c/anheyu-lite/pkg/handler/auth"
	blog_handler "github.com/anzhiyu-c/anheyu-lite/pkg/handler/blog"
	category_handler "github.com/anzhiyu-c/anheyu-lite/pkg/handler/category"
	color_handler "github.com/anzhiyu-c/anheyu-lite/pkg/handler/color"
	link_handler "github.com/anzhiyu-c/anheyu-lite/pkg/handler/link"
	upload_handler "github.com/anzhiyu-c/anheyu-lite/pkg/handler/upload"
	utility_handler "github.com/anzhiyu-c/anheyu-lite/pkg/handler/utility"
	auth_service "github.com/anzhiyu-c/anheyu-lite/pkg/service/auth"
	blog_service "github.com/anzhiyu-c/anheyu-lite/pkg/service/blog"
	category_service "github.com/anzhiyu-c/anheyu-lite/pkg/service/category"
	color_service "github.com/anzhiyu-c/anheyu-lite/pkg/service/color"
	link_service "github.com/anzhiyu-c/anheyu-lite/pkg/service/link"
	upload_service "github.com/anzhiyu-c/anheyu-lite/pkg/service/upload"
	"github.com/anzhiyu-c/anheyu-lite/pkg/service/utility"
)

// App 聚合了装配完成的应用组件。
type App struct {
	cfg        *config.Config
	engine     *gin.Engine
	taskBroker *task.Broker
}

// NewApp 构建整个应用：配置 → 基础设施 → 仓库 → 服务 → 处理器 → 路由。
// 返回的 cleanup 负责释放外部连接。
func NewApp() (*App, func(), error) {
	// --- Phase 1: 加载外部配置 ---
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("加载配置失败: %w", err)
	}

	// --- Phase 2: 初始化基础设施 ---
	ctx := context.Background()
	redisClient, err := database.NewRedisClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	store := kv.NewStoreWithFallback(redisClient)

	var cacheSvc utility.CacheService
	if redisClient != nil {
		cacheSvc = utility.NewCacheService(redisClient)
	} else {
		cacheSvc = utility.NewMemoryCacheService()
	}

	uploadProvider, err := storage.NewLocalProvider(cfg.GetString(config.KeyUploadDir))
	if err != nil {
		return nil, nil, err
	}

	// --- Phase 3: 仓库 ---
	blogRepo := kv.NewBlogRepo(store)
	categoryRepo := kv.NewCategoryRepo(store)
	linkRepo := kv.NewLinkRepo(store)
	linkCategoryRepo := kv.NewLinkCategoryRepo(store)
	colorRepo := kv.NewColorRepo(store)

	// --- Phase 4: 服务 ---
	sessionSecret := cfg.GetString(config.KeySessionSecret)
	if sessionSecret == "" {
		sessionSecret, err = utils.GenerateSigningKey(32)
		if err != nil {
			return nil, nil, fmt.Errorf("生成会话签名密钥失败: %w", err)
		}
		log.Println("⚠️  未配置 Auth.SessionSecret，已生成随机密钥（重启后现有会话全部失效）")
	}
	sessionSvc, err := auth_service.NewSessionService(
		sessionSecret,
		cfg.GetString(config.KeyAdminUsername),
		cfg.GetString(config.KeyAdminPassword),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("初始化会话服务失败: %w", err)
	}

	blogSvc := blog_service.NewService(blogRepo, cacheSvc)
	categorySvc := category_service.NewService(categoryRepo)
	linkSvc := link_service.NewService(linkRepo, linkCategoryRepo)
	colorSvc := color_service.NewService(colorRepo)
	uploadSvc := upload_service.NewService(uploadProvider)

	// --- Phase 5: 后台任务 ---
	taskBroker := task.NewBroker(blogRepo, cacheSvc)

	// --- Phase 6: 处理器与路由 ---
	appRouter := router.NewRouter(
		auth_handler.NewHandler(sessionSvc),
		blog_handler.NewHandler(blogSvc),
		category_handler.NewHandler(categorySvc),
		link_handler.NewHandler(linkSvc),
		color_handler.NewHandler(colorSvc),
		upload_handler.NewHandler(uploadSvc),
		utility_handler.NewHandler(store),
		sessionSvc,
		uploadProvider.Dir(),
	)

	// --- Phase 7: 配置 Gin 引擎 ---
	if cfg.GetBool(config.KeyServerDebug) {
		gin.SetMode(gin.DebugMode)
		log.Println("运行模式: Debug (Gin 将打印详细路由日志)")
	} else {
		gin.SetMode(gin.ReleaseMode)
		log.Println("运行模式: Release (Gin 启动日志已禁用)")
	}

	engine := gin.Default()
	if err := engine.SetTrustedProxies([]string{"127.0.0.1", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"}); err != nil {
		return nil, nil, fmt.Errorf("设置信任代理失败: %w", err)
	}
	engine.ForwardedByClientIP = true
	appRouter.Setup(engine)

	app := &App{
		cfg:        cfg,
		engine:     engine,
		taskBroker: taskBroker,
	}

	cleanup := func() {
		if redisClient != nil {
			log.Println("关闭 Redis 连接...")
			redisClient.Close()
		}
	}

	return app, cleanup, nil
}

// Run 注册并启动后台任务，然后启动 HTTP 服务（阻塞）。
func (a *App) Run() error {
	a.taskBroker.RegisterCronJobs()
	a.taskBroker.Start()

	port := a.cfg.GetString(config.KeyServerPort)
	if port == "" {
		port = "8091"
	}
	fmt.Printf("应用程序启动成功，正在监听端口: %s\n", port)

	return a.engine.Run(":" + port)
}

// Stop 停止后台任务调度器。
func (a *App) Stop() {
	if a.taskBroker != nil {
		a.taskBroker.Stop()
		log.Println("任务调度器已停止。")
	}
}

// Engine 暴露 Gin 引擎，供测试使用。
func (a *App) Engine() *gin.Engine {
	return a.engine
}
