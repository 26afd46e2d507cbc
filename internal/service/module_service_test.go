package service

import (
	"testing"

	"courseforge_backend/internal/model"
	"courseforge_backend/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestCreateModuleDefaultsOrderToSiblingCount(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createInstructor(t, "owner@example.com")
	course := env.createCourse(t, owner.ID, "Go from scratch")

	first := env.createModule(t, course, "Basics")
	second := env.createModule(t, course, "Concurrency")
	assert.Equal(t, 0, first.Order)
	assert.Equal(t, 1, second.Order)

	// A caller supplied order wins, duplicates included.
	explicit := 0
	third := &model.CourseModule{Title: "Appendix"}
	assert.NoError(t, env.module.Create(course.ID, owner.ID, third, &explicit))
	assert.Equal(t, 0, third.Order)
}

func TestCreateModuleOnForeignCourse(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createInstructor(t, "owner@example.com")
	rival := env.createInstructor(t, "rival@example.com")
	course := env.createCourse(t, owner.ID, "Go from scratch")

	err := env.module.Create(course.ID, rival.ID, &model.CourseModule{Title: "Hijack"}, nil)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)
}

func TestDeleteModuleCascadesSectionsAndQuiz(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createInstructor(t, "owner@example.com")
	course := env.createCourse(t, owner.ID, "Go from scratch")
	module := env.createModule(t, course, "Basics")
	env.createSection(t, module, owner.ID, "Hello world")
	quiz := env.createModuleQuiz(t, module, owner.ID)
	question := env.createQuestion(t, quiz, owner.ID, "Go is compiled")
	env.createAnswer(t, question, owner.ID, "True", true)

	assert.NoError(t, env.module.Delete(module.ID, owner.ID))

	assert.EqualValues(t, 0, env.count(t, &model.CourseModule{}, "id = ?", module.ID))
	assert.EqualValues(t, 0, env.count(t, &model.Section{}, "module_id = ?", module.ID))
	assert.EqualValues(t, 0, env.count(t, &model.Quiz{}, "module_id = ?", module.ID))
	assert.EqualValues(t, 0, env.count(t, &model.Question{}, "quiz_id = ?", quiz.ID))
	assert.EqualValues(t, 0, env.count(t, &model.Answer{}, "question_id = ?", question.ID))
}

func TestSectionOrderDefaultsAndUpdate(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createInstructor(t, "owner@example.com")
	course := env.createCourse(t, owner.ID, "Go from scratch")
	module := env.createModule(t, course, "Basics")

	first := env.createSection(t, module, owner.ID, "Intro")
	second := env.createSection(t, module, owner.ID, "Setup")
	assert.Equal(t, 0, first.Order)
	assert.Equal(t, 1, second.Order)

	title := "Installation"
	updated, err := env.module.UpdateSection(second.ID, owner.ID, SectionUpdate{Title: &title})
	assert.NoError(t, err)
	assert.Equal(t, "Installation", updated.Title)
	assert.Equal(t, model.SectionYoutube, updated.Type)
}

func TestFileSectionFields(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createInstructor(t, "owner@example.com")
	course := env.createCourse(t, owner.ID, "Go from scratch")
	module := env.createModule(t, course, "Basics")

	section := &model.Section{
		Title:    "Slides",
		Type:     model.SectionFile,
		FileURL:  "/uploads/1693390000000_slides.pdf",
		FileName: "slides.pdf",
		FileType: "pdf",
	}
	assert.NoError(t, env.module.CreateSection(module.ID, owner.ID, section, nil))

	got, err := env.module.GetSection(section.ID, owner.ID)
	assert.NoError(t, err)
	assert.Equal(t, "pdf", got.FileType)
	assert.Empty(t, got.YoutubeURL)
}
