package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"courseforge_backend/internal/config"
	"courseforge_backend/internal/middleware"
	"courseforge_backend/internal/model"
	"courseforge_backend/internal/repository"
	"courseforge_backend/internal/service"
	"courseforge_backend/pkg/database"
	"courseforge_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
}

// newTestServer wires the real services and routes against an in-memory
// database, mirroring the production route table.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret-unit-test-secret"
	cfg.JWT.ExpireTime = time.Hour
	cfg.Storage.Type = "local"
	cfg.Storage.LocalPath = t.TempDir()

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	moduleRepo := repository.NewModuleRepository(db)
	sectionRepo := repository.NewSectionRepository(db)
	quizRepo := repository.NewQuizRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)

	owner := service.NewOwnershipService(courseRepo, moduleRepo, sectionRepo, quizRepo, questionRepo, answerRepo)

	authService := service.NewAuthService(userRepo, cfg)
	categoryService := service.NewCategoryService(categoryRepo)
	courseService := service.NewCourseService(courseRepo, categoryRepo, moduleRepo, owner, db)
	moduleService := service.NewModuleService(moduleRepo, sectionRepo, owner, db)
	quizService := service.NewQuizService(quizRepo, questionRepo, answerRepo, owner, db)
	catalogService := service.NewCatalogService(courseRepo, nil)
	statsService := service.NewStatsService(courseRepo)
	storageService := service.NewStorageService(cfg)

	auth := NewAuthController(authService)
	category := NewCategoryController(categoryService)
	course := NewCourseController(courseService, statsService)
	module := NewModuleController(moduleService)
	section := NewSectionController(moduleService)
	quiz := NewQuizController(quizService)
	question := NewQuestionController(quizService)
	answer := NewAnswerController(quizService)
	upload := NewUploadController(storageService)
	catalog := NewCatalogController(catalogService)
	health := NewHealthController(db)

	router := gin.New()

	public := router.Group("/api")
	{
		public.GET("/health", health.Check)
		public.POST("/auth/register", auth.Register)
		public.POST("/auth/login", auth.Login)
		public.GET("/courses", catalog.ListPublished)
	}

	instructor := router.Group("/api/instructor")
	instructor.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Instructor))
	{
		instructor.GET("/categories", category.List)
		instructor.POST("/categories", category.Create)
		instructor.GET("/categories/:id", category.Get)
		instructor.PUT("/categories/:id", category.Update)
		instructor.DELETE("/categories/:id", category.Delete)

		instructor.GET("/courses", course.List)
		instructor.POST("/courses", course.Create)
		instructor.GET("/courses/:id", course.Get)
		instructor.PUT("/courses/:id", course.Update)
		instructor.DELETE("/courses/:id", course.Delete)

		instructor.GET("/courses/:id/modules", module.ListForCourse)
		instructor.POST("/courses/:id/modules", module.Create)
		instructor.GET("/modules/:id", module.Get)
		instructor.PUT("/modules/:id", module.Update)
		instructor.DELETE("/modules/:id", module.Delete)

		instructor.GET("/modules/:id/sections", section.ListForModule)
		instructor.POST("/modules/:id/sections", section.Create)
		instructor.GET("/sections/:id", section.Get)
		instructor.PUT("/sections/:id", section.Update)
		instructor.DELETE("/sections/:id", section.Delete)

		instructor.GET("/modules/:id/quiz", quiz.GetModuleQuiz)
		instructor.POST("/modules/:id/quiz", quiz.UpsertModuleQuiz)
		instructor.DELETE("/modules/:id/quiz", quiz.DeleteModuleQuiz)

		instructor.GET("/courses/:id/final-exam", quiz.GetFinalExam)
		instructor.POST("/courses/:id/final-exam", quiz.UpsertFinalExam)
		instructor.DELETE("/courses/:id/final-exam", quiz.DeleteFinalExam)

		instructor.GET("/quizzes/:id/questions", question.ListForQuiz)
		instructor.POST("/quizzes/:id/questions", question.Create)
		instructor.PUT("/questions/:id", question.Update)
		instructor.DELETE("/questions/:id", question.Delete)

		instructor.GET("/questions/:id/answers", answer.ListForQuestion)
		instructor.POST("/questions/:id/answers", answer.Create)
		instructor.PUT("/answers/:id", answer.Update)
		instructor.DELETE("/answers/:id", answer.Delete)

		instructor.POST("/upload", upload.Upload)

		instructor.GET("/statistics", course.Statistics)
	}

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeData unmarshals the data field of the response envelope.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()

	var envelope struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return envelope.Data
}

func decodeInto(t *testing.T, raw json.RawMessage, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(raw, dst); err != nil {
		t.Fatalf("decode %q: %v", string(raw), err)
	}
}

func registerUser(t *testing.T, router *gin.Engine, email, role string) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":     email,
		"password":  "hunter22",
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"role":      role,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d body %s", email, rec.Code, rec.Body.String())
	}

	data := decodeData(t, rec)
	var token string
	decodeInto(t, data["token"], &token)
	return token
}
