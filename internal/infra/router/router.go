/*
 * @Description: 应用路由注册
 * @Author: 安知鱼
 * @Date: 2025-09-04 09:15:33
 * @LastEditTime: 2025-09-13 18:20:41
 * @LastEditors: 安知鱼
 */
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/anheyu-lite/internal/app/middleware"
	auth_handler "github.com/anzhiyu-c/anheyu-lite/pkg/handler/auth"
	blog_handler "github.com/anzhiyu-c/anheyu-lite/pkg/handler/blog"
	category_handler "github.com/anzhiyu-c/anheyu-lite/pkg/handler/category"
	color_handler "github.com/anzhiyu-c/anheyu-lite/pkg/handler/color"
	link_handler "github.com/anzhiyu-c/anheyu-lite/pkg/handler/link"
	upload_handler "github.com/anzhiyu-c/anheyu-lite/pkg/handler/upload"
	utility_handler "github.com/anzhiyu-c/anheyu-lite/pkg/handler/utility"
	"github.com/anzhiyu-c/anheyu-lite/pkg/service/auth"
)

// Router 封装了应用的所有路由和其依赖的处理器。
type Router struct {
	authHandler     *auth_handler.Handler
	blogHandler     *blog_handler.Handler
	categoryHandler *category_handler.Handler
	linkHandler     *link_handler.Handler
	colorHandler    *color_handler.Handler
	uploadHandler   *upload_handler.Handler
	utilityHandler  *utility_handler.Handler
	sessionSvc      auth.SessionService
	uploadDir       string
}

// NewRouter 是 Router 的构造函数，通过依赖注入接收所有处理器。
func NewRouter(
	authHandler *auth_handler.Handler,
	blogHandler *blog_handler.Handler,
	categoryHandler *category_handler.Handler,
	linkHandler *link_handler.Handler,
	colorHandler *color_handler.Handler,
	uploadHandler *upload_handler.Handler,
	utilityHandler *utility_handler.Handler,
	sessionSvc auth.SessionService,
	uploadDir string,
) *Router {
	return &Router{
		authHandler:     authHandler,
		blogHandler:     blogHandler,
		categoryHandler: categoryHandler,
		linkHandler:     linkHandler,
		colorHandler:    colorHandler,
		uploadHandler:   uploadHandler,
		utilityHandler:  utilityHandler,
		sessionSvc:      sessionSvc,
		uploadDir:       uploadDir,
	}
}

// Setup 注册全部路由。
// 文章详情按 slug 访问，点赞/评论走 /blogs/id/:id 前缀，
// 避免与 /blogs/:slug 产生路由冲突。
func (r *Router) Setup(engine *gin.Engine) {
	engine.Use(middleware.Cors())

	// 上传目录的静态服务
	engine.Static("/uploads", r.uploadDir)

	api := engine.Group("/api")
	{
		// --- 前台公开接口 ---
		api.GET("/blogs", r.blogHandler.List)
		api.GET("/blogs/:slug", r.blogHandler.GetBySlug)
		api.POST("/blogs/id/:id/like", r.blogHandler.Like)
		api.POST("/blogs/id/:id/comment", r.blogHandler.AddComment)
		api.GET("/categories", r.categoryHandler.List)
		api.GET("/links", r.linkHandler.ListLinks)
		api.GET("/linkcategory", r.linkHandler.ListCategories)
		api.GET("/colors", r.colorHandler.Get)

		// --- 认证 ---
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", r.authHandler.Login)
			authGroup.POST("/logout", r.authHandler.Logout)
			authGroup.GET("/verify", r.authHandler.Verify)
		}

		// --- 后台管理接口（会话守卫） ---
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuth(r.sessionSvc))
		{
			admin.GET("/blogs", r.blogHandler.ListAll)
			admin.POST("/blogs", r.blogHandler.Create)
			admin.PUT("/blogs/:id", r.blogHandler.Update)
			admin.DELETE("/blogs/:id", r.blogHandler.Delete)

			admin.GET("/categories", r.categoryHandler.List)
			admin.POST("/categories", r.categoryHandler.Create)
			admin.PUT("/categories/:id", r.categoryHandler.Update)
			admin.DELETE("/categories/:id", r.categoryHandler.Delete)

			admin.GET("/links", r.linkHandler.ListLinks)
			admin.POST("/links", r.linkHandler.CreateLink)
			admin.PUT("/links/:id", r.linkHandler.UpdateLink)
			admin.DELETE("/links/:id", r.linkHandler.DeleteLink)

			admin.GET("/linkcategory", r.linkHandler.ListCategories)
			admin.POST("/linkcategory", r.linkHandler.CreateCategory)
			admin.PUT("/linkcategory/:id", r.linkHandler.UpdateCategory)
			admin.DELETE("/linkcategory/:id", r.linkHandler.DeleteCategory)

			admin.GET("/colors", r.colorHandler.Get)
			admin.PUT("/colors", r.colorHandler.Replace)

			admin.POST("/clear-cache", r.utilityHandler.ClearCache)
		}

		// 上传同样只对管理员开放
		api.POST("/upload", middleware.AdminAuth(r.sessionSvc), r.uploadHandler.Upload)
	}
}
