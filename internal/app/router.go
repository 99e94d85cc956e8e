package app

import (
	"quizboard_backend/docs"
	"quizboard_backend/internal/config"
	"quizboard_backend/internal/middleware"

	"quizboard_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录, 有 token 时附带用户信息)
	public := router.Group("/api")
	public.Use(middleware.TryAuthMiddleware(cfg))
	{
		public.GET("/health", c.health.HealthCheck)

		// 解析卡片尺寸上报, 由嵌入文档直接调用
		public.POST("/quiz/resize", c.quiz.Resize)

		// 模板读取与预览着色, 游客可用
		public.GET("/quiz/template", c.template.GetTemplate)
		public.POST("/quiz/template/apply", c.template.ApplyTemplate)
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.POST("/quiz/import", c.quiz.ImportExam)
		authGroup.GET("/quiz/imports", c.quiz.ListImports)
		authGroup.GET("/quiz/imports/:id", c.quiz.GetImport)
		authGroup.PUT("/quiz/template", c.template.SetTemplate)
	}
}
