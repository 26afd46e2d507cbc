package controller

import (
	"net/http"
	"testing"

	"courseforge_backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRegisterAndLogin(t *testing.T) {
	router := newTestServer(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":     "ada@example.com",
		"password":  "hunter22",
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"role":      "instructor",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	data := decodeData(t, rec)
	var user model.User
	decodeInto(t, data["user"], &user)
	assert.Equal(t, model.Instructor, user.Role)
	assert.NotContains(t, rec.Body.String(), "hunter22")

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "ada@example.com",
		"password": "hunter22",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "token")
}

func TestRegisterDuplicateEmailIsBadRequest(t *testing.T) {
	router := newTestServer(t)
	registerUser(t, router, "ada@example.com", "instructor")

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":     "ada@example.com",
		"password":  "hunter22",
		"firstName": "Ada",
		"lastName":  "Lovelace",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	router := newTestServer(t)

	// Password below the minimum length.
	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":     "ada@example.com",
		"password":  "short",
		"firstName": "Ada",
		"lastName":  "Lovelace",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Not an email address.
	rec = doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":     "not-an-email",
		"password":  "hunter22",
		"firstName": "Ada",
		"lastName":  "Lovelace",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// An unrecognized role is not an error; the account just becomes a student.
func TestRegisterUnknownRoleDefaultsToStudent(t *testing.T) {
	router := newTestServer(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":     "eve@example.com",
		"password":  "hunter22",
		"firstName": "Eve",
		"lastName":  "Adams",
		"role":      "superuser",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	data := decodeData(t, rec)
	var user model.User
	decodeInto(t, data["user"], &user)
	assert.Equal(t, model.Student, user.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	router := newTestServer(t)
	registerUser(t, router, "ada@example.com", "instructor")

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "ada@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInstructorRoutesRequireInstructorRole(t *testing.T) {
	router := newTestServer(t)

	// No token at all.
	rec := doJSON(t, router, http.MethodGet, "/api/instructor/courses", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Garbage token.
	rec = doJSON(t, router, http.MethodGet, "/api/instructor/courses", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A student token authenticates but is not authorized.
	studentToken := registerUser(t, router, "student@example.com", "student")
	rec = doJSON(t, router, http.MethodGet, "/api/instructor/courses", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	instructorToken := registerUser(t, router, "teach@example.com", "instructor")
	rec = doJSON(t, router, http.MethodGet, "/api/instructor/courses", instructorToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
