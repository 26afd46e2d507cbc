package service

import (
	"testing"

	"courseforge_backend/internal/util"

	"github.com/stretchr/testify/assert"
)

// Every authoring object must trace back to a course owned by the caller.
// A foreign caller gets a permission error at every depth of the chain.
func TestOwnershipDeniesForeignInstructor(t *testing.T) {
	env := newTestEnv(t)

	owner := env.createInstructor(t, "owner@example.com")
	rival := env.createInstructor(t, "rival@example.com")

	course := env.createCourse(t, owner.ID, "Go from scratch")
	module := env.createModule(t, course, "Basics")
	section := env.createSection(t, module, owner.ID, "Hello world")
	quiz := env.createModuleQuiz(t, module, owner.ID)
	question := env.createQuestion(t, quiz, owner.ID, "Go has classes")
	answer := env.createAnswer(t, question, owner.ID, "False", true)

	_, err := env.owner.ResolveCourse(course.ID, rival.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	_, err = env.owner.ResolveModule(module.ID, rival.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	_, err = env.owner.ResolveSection(section.ID, rival.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	_, err = env.owner.ResolveQuiz(quiz.ID, rival.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	_, err = env.owner.ResolveQuestion(question.ID, rival.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	_, err = env.owner.ResolveAnswer(answer.ID, rival.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)
}

func TestOwnershipResolvesOwnObjects(t *testing.T) {
	env := newTestEnv(t)

	owner := env.createInstructor(t, "owner@example.com")
	course := env.createCourse(t, owner.ID, "Go from scratch")
	module := env.createModule(t, course, "Basics")
	quiz := env.createModuleQuiz(t, module, owner.ID)
	question := env.createQuestion(t, quiz, owner.ID, "Go has generics")
	answer := env.createAnswer(t, question, owner.ID, "True", true)

	got, err := env.owner.ResolveAnswer(answer.ID, owner.ID)
	assert.NoError(t, err)
	assert.Equal(t, answer.ID, got.ID)
}

func TestOwnershipResolvesFinalExamThroughCourse(t *testing.T) {
	env := newTestEnv(t)

	owner := env.createInstructor(t, "owner@example.com")
	rival := env.createInstructor(t, "rival@example.com")
	course := env.createCourse(t, owner.ID, "Go from scratch")

	exam, err := env.quiz.UpsertFinalExam(course.ID, owner.ID, QuizInput{Title: "Final"})
	assert.NoError(t, err)

	got, err := env.owner.ResolveQuiz(exam.ID, owner.ID)
	assert.NoError(t, err)
	assert.True(t, got.IsFinalExam)

	_, err = env.owner.ResolveQuiz(exam.ID, rival.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)
}

func TestOwnershipMissingObjectIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createInstructor(t, "owner@example.com")

	_, err := env.owner.ResolveCourse(9999, owner.ID)
	assert.ErrorIs(t, err, util.ErrNotFound)

	_, err = env.owner.ResolveAnswer(9999, owner.ID)
	assert.ErrorIs(t, err, util.ErrNotFound)
}
