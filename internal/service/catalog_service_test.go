package service

import (
	"context"
	"testing"

	"courseforge_backend/internal/model"
	"courseforge_backend/internal/repository"

	"github.com/stretchr/testify/assert"
)

func publish(t *testing.T, env *testEnv, course *model.Course) {
	t.Helper()
	status := model.StatusPublished
	if _, err := env.course.Update(course.ID, course.InstructorID, CourseUpdate{Status: &status}); err != nil {
		t.Fatalf("publish course: %v", err)
	}
}

func TestCatalogListsOnlyPublished(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createInstructor(t, "owner@example.com")

	env.createCourse(t, owner.ID, "Still a draft")
	published := env.createCourse(t, owner.ID, "Live course")
	publish(t, env, published)

	catalog := NewCatalogService(repository.NewCourseRepository(env.db), nil)

	page, err := catalog.ListPublished(context.Background(), 0, 12, 0)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
	assert.Len(t, page.Courses, 1)
	assert.Equal(t, "Live course", page.Courses[0].Title)
}

func TestCatalogStripsInstructorCredentials(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createInstructor(t, "owner@example.com")
	course := env.createCourse(t, owner.ID, "Live course")
	publish(t, env, course)

	catalog := NewCatalogService(repository.NewCourseRepository(env.db), nil)

	page, err := catalog.ListPublished(context.Background(), 0, 12, 0)
	assert.NoError(t, err)
	instructor := page.Courses[0].Instructor
	if assert.NotNil(t, instructor) {
		assert.Equal(t, "Ada", instructor.FirstName)
		assert.Empty(t, instructor.Password)
		assert.Empty(t, instructor.Email)
	}
}

func TestCatalogFiltersByCategoryAndPaginates(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createInstructor(t, "owner@example.com")

	first := env.createCourse(t, owner.ID, "Course A")
	second := env.createCourse(t, owner.ID, "Course B")
	publish(t, env, first)
	publish(t, env, second)

	catalog := NewCatalogService(repository.NewCourseRepository(env.db), nil)

	page, err := catalog.ListPublished(context.Background(), first.CategoryID, 12, 0)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
	assert.Equal(t, first.ID, page.Courses[0].ID)

	page, err = catalog.ListPublished(context.Background(), 0, 1, 0)
	assert.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)
	assert.Len(t, page.Courses, 1)

	page, err = catalog.ListPublished(context.Background(), 0, 1, 1)
	assert.NoError(t, err)
	assert.Len(t, page.Courses, 1)
}
