package service

import (
	"testing"

	"courseforge_backend/internal/model"
	"courseforge_backend/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestCreateCourseRejectsForeignCategory(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createInstructor(t, "owner@example.com")
	rival := env.createInstructor(t, "rival@example.com")

	category := &model.Category{Name: "Databases", InstructorID: owner.ID}
	assert.NoError(t, env.category.Create(category))

	course := &model.Course{
		Title:        "Sneaky course",
		CategoryID:   category.ID,
		InstructorID: rival.ID,
	}
	// A category belonging to someone else is as good as nonexistent.
	assert.ErrorIs(t, env.course.Create(course), util.ErrNotFound)
}

func TestGetTreeLoadsFullHierarchy(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createInstructor(t, "owner@example.com")
	course := env.createCourse(t, owner.ID, "Go from scratch")

	first := env.createModule(t, course, "Basics")
	second := env.createModule(t, course, "Concurrency")
	env.createSection(t, first, owner.ID, "Hello world")
	env.createSection(t, first, owner.ID, "Variables")
	quiz := env.createModuleQuiz(t, first, owner.ID)
	question := env.createQuestion(t, quiz, owner.ID, "Go is compiled")
	env.createAnswer(t, question, owner.ID, "True", true)

	_, err := env.quiz.UpsertFinalExam(course.ID, owner.ID, QuizInput{Title: "Final"})
	assert.NoError(t, err)

	tree, err := env.course.GetTree(course.ID, owner.ID)
	assert.NoError(t, err)

	assert.Len(t, tree.Modules, 2)
	assert.Equal(t, first.ID, tree.Modules[0].ID)
	assert.Equal(t, second.ID, tree.Modules[1].ID)
	assert.Len(t, tree.Modules[0].Sections, 2)
	assert.NotNil(t, tree.Modules[0].Quiz)
	assert.Len(t, tree.Modules[0].Quiz.Questions, 1)
	assert.Len(t, tree.Modules[0].Quiz.Questions[0].Answers, 1)
	assert.NotNil(t, tree.FinalExam)
	assert.True(t, tree.FinalExam.IsFinalExam)
}

func TestUpdateCoursePartial(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createInstructor(t, "owner@example.com")
	course := env.createCourse(t, owner.ID, "Go from scratch")

	status := model.StatusPublished
	updated, err := env.course.Update(course.ID, owner.ID, CourseUpdate{Status: &status})
	assert.NoError(t, err)
	assert.Equal(t, model.StatusPublished, updated.Status)
	assert.Equal(t, "Go from scratch", updated.Title)
}

// Deleting a course removes the entire authoring tree: modules, sections,
// module quizzes, the final exam, and every question and answer under them.
func TestDeleteCourseCascadesEverything(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createInstructor(t, "owner@example.com")
	course := env.createCourse(t, owner.ID, "Go from scratch")

	module := env.createModule(t, course, "Basics")
	env.createSection(t, module, owner.ID, "Hello world")
	quiz := env.createModuleQuiz(t, module, owner.ID)
	question := env.createQuestion(t, quiz, owner.ID, "Go is compiled")
	env.createAnswer(t, question, owner.ID, "True", true)

	exam, err := env.quiz.UpsertFinalExam(course.ID, owner.ID, QuizInput{Title: "Final"})
	assert.NoError(t, err)
	examQuestion := env.createQuestion(t, exam, owner.ID, "Final question")
	env.createAnswer(t, examQuestion, owner.ID, "Yes", true)

	assert.NoError(t, env.course.Delete(course.ID, owner.ID))

	assert.EqualValues(t, 0, env.count(t, &model.Course{}, "id = ?", course.ID))
	assert.EqualValues(t, 0, env.count(t, &model.CourseModule{}, "course_id = ?", course.ID))
	assert.EqualValues(t, 0, env.count(t, &model.Section{}, "module_id = ?", module.ID))
	assert.EqualValues(t, 0, env.count(t, &model.Quiz{}, "id IN (?)", []uint{quiz.ID, exam.ID}))
	assert.EqualValues(t, 0, env.count(t, &model.Question{}, "quiz_id IN (?)", []uint{quiz.ID, exam.ID}))
	assert.EqualValues(t, 0, env.count(t, &model.Answer{}, "question_id IN (?)", []uint{question.ID, examQuestion.ID}))
}

func TestDeleteCourseForeignInstructor(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createInstructor(t, "owner@example.com")
	rival := env.createInstructor(t, "rival@example.com")
	course := env.createCourse(t, owner.ID, "Go from scratch")

	assert.ErrorIs(t, env.course.Delete(course.ID, rival.ID), util.ErrPermissionDenied)
	assert.EqualValues(t, 1, env.count(t, &model.Course{}, "id = ?", course.ID))
}

func TestStatisticsCountsByStatus(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createInstructor(t, "owner@example.com")

	env.createCourse(t, owner.ID, "Draft one")
	published := env.createCourse(t, owner.ID, "Published one")
	status := model.StatusPublished
	_, err := env.course.Update(published.ID, owner.ID, CourseUpdate{Status: &status})
	assert.NoError(t, err)

	stats, err := env.stats.ForInstructor(owner.ID)
	assert.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalCourses)
	assert.EqualValues(t, 1, stats.PublishedCourses)
	assert.EqualValues(t, 1, stats.DraftCourses)
}
