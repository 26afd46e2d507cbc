package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"courseforge_backend/internal/config"
	"courseforge_backend/internal/controller"
	"courseforge_backend/internal/repository"
	"courseforge_backend/internal/service"
	"courseforge_backend/pkg/database"
	"courseforge_backend/pkg/logger"
	"courseforge_backend/pkg/monitoring"
	"courseforge_backend/pkg/security"
	"courseforge_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user     *repository.UserRepository
	category *repository.CategoryRepository
	course   *repository.CourseRepository
	module   *repository.ModuleRepository
	section  *repository.SectionRepository
	quiz     *repository.QuizRepository
	question *repository.QuestionRepository
	answer   *repository.AnswerRepository
}

type services struct {
	auth     *service.AuthService
	storage  *service.StorageService
	category *service.CategoryService
	course   *service.CourseService
	module   *service.ModuleService
	quiz     *service.QuizService
	catalog  *service.CatalogService
	stats    *service.StatsService
}

type controllers struct {
	auth     *controller.AuthController
	category *controller.CategoryController
	course   *controller.CourseController
	module   *controller.ModuleController
	section  *controller.SectionController
	quiz     *controller.QuizController
	question *controller.QuestionController
	answer   *controller.AnswerController
	upload   *controller.UploadController
	catalog  *controller.CatalogController
	health   *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		category: repository.NewCategoryRepository(db),
		course:   repository.NewCourseRepository(db),
		module:   repository.NewModuleRepository(db),
		section:  repository.NewSectionRepository(db),
		quiz:     repository.NewQuizRepository(db),
		question: repository.NewQuestionRepository(db),
		answer:   repository.NewAnswerRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	owner := service.NewOwnershipService(
		repos.course,
		repos.module,
		repos.section,
		repos.quiz,
		repos.question,
		repos.answer,
	)

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.category = service.NewCategoryService(repos.category)
	s.course = service.NewCourseService(repos.course, repos.category, repos.module, owner, db)
	s.module = service.NewModuleService(repos.module, repos.section, owner, db)
	s.quiz = service.NewQuizService(repos.quiz, repos.question, repos.answer, owner, db)
	s.catalog = service.NewCatalogService(repos.course, rdb)
	s.stats = service.NewStatsService(repos.course)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth),
		category: controller.NewCategoryController(s.category),
		course:   controller.NewCourseController(s.course, s.stats),
		module:   controller.NewModuleController(s.module),
		section:  controller.NewSectionController(s.module),
		quiz:     controller.NewQuizController(s.quiz),
		question: controller.NewQuestionController(s.quiz),
		answer:   controller.NewAnswerController(s.quiz),
		upload:   controller.NewUploadController(s.storage),
		catalog:  controller.NewCatalogController(s.catalog),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			// Redis only backs the catalog cache; run without it.
			logger.Log.Warn("Redis unavailable, catalog caching disabled", zap.Error(err))
			rdb = nil
		}
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("courseforge", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
