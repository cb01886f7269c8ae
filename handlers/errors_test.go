package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/studentmanagement/students-api/internal/apperrors"
	"github.com/studentmanagement/students-api/internal/pagination"
	"github.com/studentmanagement/students-api/internal/students"
	"github.com/studentmanagement/students-api/pkg/logger"
)

// brokenStudents fails every call with a store error carrying driver text.
type brokenStudents struct{}

var errDriver = apperrors.WrapStore("find", "students", errors.New("connection refused by 10.0.0.7:27017"))

func (brokenStudents) Create(context.Context, students.Request) (students.Response, error) {
	return students.Response{}, errDriver
}
func (brokenStudents) GetByID(context.Context, string) (students.Response, error) {
	return students.Response{}, errDriver
}
func (brokenStudents) GetAll(context.Context) ([]students.Response, error) { return nil, errDriver }
func (brokenStudents) GetAllWithPagination(context.Context, pagination.Request) (pagination.Page[students.Response], error) {
	return pagination.Page[students.Response]{}, errDriver
}
func (brokenStudents) Update(context.Context, string, students.Request) (students.Response, error) {
	return students.Response{}, errDriver
}
func (brokenStudents) Delete(context.Context, string) error { return errDriver }

func TestStoreFailureIsGeneric500(t *testing.T) {
	var buf bytes.Buffer
	logger.Configure(&buf, false)
	t.Cleanup(func() { logger.Configure(os.Stdout, false) })

	r := gin.New()
	RegisterStudentRoutes(r.Group("/api/v1"), brokenStudents{})

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/students"},
		{http.MethodGet, "/api/v1/students/paginated"},
		{http.MethodGet, "/api/v1/student/x"},
		{http.MethodDelete, "/api/v1/student/x"},
	} {
		w := do(t, r, tc.method, tc.path, nil)
		require.Equal(t, http.StatusInternalServerError, w.Code, tc.path)
		body := decode[ErrorResponse](t, w)
		require.Equal(t, "Internal server error", body.Message)
		require.NotContains(t, w.Body.String(), "10.0.0.7")
	}
	require.Contains(t, buf.String(), "connection refused")
}

func TestPageQueryDefaults(t *testing.T) {
	r := gin.New()
	var got pagination.Request
	r.GET("/p", func(c *gin.Context) {
		var err error
		got, err = pageQuery(c)
		require.NoError(t, err)
	})
	do(t, r, http.MethodGet, "/p", nil)
	require.Equal(t, pagination.DefaultRequest(), got)

	do(t, r, http.MethodGet, "/p?page=3&size=7&sortBy=name&sortDirection=asc", nil)
	require.Equal(t, pagination.Request{Page: 3, Size: 7, SortBy: "name", SortDirection: pagination.Asc}, got)
}
