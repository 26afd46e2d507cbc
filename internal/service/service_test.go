package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"courseforge_backend/internal/config"
	"courseforge_backend/internal/model"
	"courseforge_backend/internal/repository"
	"courseforge_backend/pkg/database"
	"courseforge_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	logger.Log = zap.NewNop()
}

func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

type testEnv struct {
	db       *gorm.DB
	auth     *AuthService
	category *CategoryService
	course   *CourseService
	module   *ModuleService
	quiz     *QuizService
	stats    *StatsService
	owner    *OwnershipService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	moduleRepo := repository.NewModuleRepository(db)
	sectionRepo := repository.NewSectionRepository(db)
	quizRepo := repository.NewQuizRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)

	owner := NewOwnershipService(courseRepo, moduleRepo, sectionRepo, quizRepo, questionRepo, answerRepo)

	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret-unit-test-secret"
	cfg.JWT.ExpireTime = time.Hour

	return &testEnv{
		db:       db,
		auth:     NewAuthService(userRepo, cfg),
		category: NewCategoryService(categoryRepo),
		course:   NewCourseService(courseRepo, categoryRepo, moduleRepo, owner, db),
		module:   NewModuleService(moduleRepo, sectionRepo, owner, db),
		quiz:     NewQuizService(quizRepo, questionRepo, answerRepo, owner, db),
		stats:    NewStatsService(courseRepo),
		owner:    owner,
	}
}

func (e *testEnv) createInstructor(t *testing.T, email string) *model.User {
	t.Helper()
	user := &model.User{
		Email:     email,
		Password:  "hunter22",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Role:      model.Instructor,
	}
	if _, err := e.auth.Register(user); err != nil {
		t.Fatalf("create instructor: %v", err)
	}
	return user
}

func (e *testEnv) createCourse(t *testing.T, instructorID uint, title string) *model.Course {
	t.Helper()
	category := &model.Category{
		Name:         "Category for " + title,
		InstructorID: instructorID,
	}
	if err := e.category.Create(category); err != nil {
		t.Fatalf("create category: %v", err)
	}
	course := &model.Course{
		Title:        title,
		Description:  "about " + title,
		CategoryID:   category.ID,
		InstructorID: instructorID,
		Status:       model.StatusDraft,
	}
	if err := e.course.Create(course); err != nil {
		t.Fatalf("create course: %v", err)
	}
	return course
}

func (e *testEnv) createModule(t *testing.T, course *model.Course, title string) *model.CourseModule {
	t.Helper()
	module := &model.CourseModule{Title: title}
	if err := e.module.Create(course.ID, course.InstructorID, module, nil); err != nil {
		t.Fatalf("create module: %v", err)
	}
	return module
}

func (e *testEnv) createSection(t *testing.T, module *model.CourseModule, instructorID uint, title string) *model.Section {
	t.Helper()
	section := &model.Section{
		Title:      title,
		Type:       model.SectionYoutube,
		YoutubeURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	}
	if err := e.module.CreateSection(module.ID, instructorID, section, nil); err != nil {
		t.Fatalf("create section: %v", err)
	}
	return section
}

func (e *testEnv) createModuleQuiz(t *testing.T, module *model.CourseModule, instructorID uint) *model.Quiz {
	t.Helper()
	quiz, err := e.quiz.UpsertModuleQuiz(module.ID, instructorID, QuizInput{Title: "Checkpoint"})
	if err != nil {
		t.Fatalf("create module quiz: %v", err)
	}
	return quiz
}

func (e *testEnv) createQuestion(t *testing.T, quiz *model.Quiz, instructorID uint, text string) *model.Question {
	t.Helper()
	question := &model.Question{Question: text, Type: model.QuestionTrueFalse}
	if err := e.quiz.CreateQuestion(quiz.ID, instructorID, question, nil); err != nil {
		t.Fatalf("create question: %v", err)
	}
	return question
}

func (e *testEnv) createAnswer(t *testing.T, question *model.Question, instructorID uint, text string, correct bool) *model.Answer {
	t.Helper()
	answer := &model.Answer{Answer: text, IsCorrect: correct}
	if err := e.quiz.CreateAnswer(question.ID, instructorID, answer, nil); err != nil {
		t.Fatalf("create answer: %v", err)
	}
	return answer
}

func (e *testEnv) count(t *testing.T, value interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	if err := e.db.Model(value).Where(query, args...).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
