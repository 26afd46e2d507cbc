package app

import (
	"courseforge_backend/docs"
	"courseforge_backend/internal/config"
	"courseforge_backend/internal/middleware"
	"courseforge_backend/internal/model"
	"courseforge_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)
	a.registerInstructorRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Check)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
		public.GET("/courses", c.catalog.ListPublished)
	}
}

// registerInstructorRoutes mounts the authoring surface. Every route needs a
// valid token AND the instructor role; students and admins get 403.
func (a *App) registerInstructorRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	instructor := router.Group("/api/instructor")
	instructor.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Instructor))
	{
		instructor.GET("/categories", c.category.List)
		instructor.POST("/categories", c.category.Create)
		instructor.GET("/categories/:id", c.category.Get)
		instructor.PUT("/categories/:id", c.category.Update)
		instructor.DELETE("/categories/:id", c.category.Delete)

		instructor.GET("/courses", c.course.List)
		instructor.POST("/courses", c.course.Create)
		instructor.GET("/courses/:id", c.course.Get)
		instructor.PUT("/courses/:id", c.course.Update)
		instructor.DELETE("/courses/:id", c.course.Delete)

		instructor.GET("/courses/:id/modules", c.module.ListForCourse)
		instructor.POST("/courses/:id/modules", c.module.Create)
		instructor.GET("/modules/:id", c.module.Get)
		instructor.PUT("/modules/:id", c.module.Update)
		instructor.DELETE("/modules/:id", c.module.Delete)

		instructor.GET("/modules/:id/sections", c.section.ListForModule)
		instructor.POST("/modules/:id/sections", c.section.Create)
		instructor.GET("/sections/:id", c.section.Get)
		instructor.PUT("/sections/:id", c.section.Update)
		instructor.DELETE("/sections/:id", c.section.Delete)

		instructor.GET("/modules/:id/quiz", c.quiz.GetModuleQuiz)
		instructor.POST("/modules/:id/quiz", c.quiz.UpsertModuleQuiz)
		instructor.DELETE("/modules/:id/quiz", c.quiz.DeleteModuleQuiz)

		instructor.GET("/courses/:id/final-exam", c.quiz.GetFinalExam)
		instructor.POST("/courses/:id/final-exam", c.quiz.UpsertFinalExam)
		instructor.DELETE("/courses/:id/final-exam", c.quiz.DeleteFinalExam)

		instructor.GET("/quizzes/:id/questions", c.question.ListForQuiz)
		instructor.POST("/quizzes/:id/questions", c.question.Create)
		instructor.PUT("/questions/:id", c.question.Update)
		instructor.DELETE("/questions/:id", c.question.Delete)

		instructor.GET("/questions/:id/answers", c.answer.ListForQuestion)
		instructor.POST("/questions/:id/answers", c.answer.Create)
		instructor.PUT("/answers/:id", c.answer.Update)
		instructor.DELETE("/answers/:id", c.answer.Delete)

		instructor.POST("/upload", c.upload.Upload)

		instructor.GET("/statistics", c.course.Statistics)
	}
}
