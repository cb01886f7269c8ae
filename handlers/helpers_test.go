package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/studentmanagement/students-api/internal/courses"
	"github.com/studentmanagement/students-api/internal/models"
	"github.com/studentmanagement/students-api/internal/repository"
	"github.com/studentmanagement/students-api/internal/store"
	"github.com/studentmanagement/students-api/internal/students"
)

func init() { gin.SetMode(gin.TestMode) }

// ticker hands out strictly increasing timestamps, one second apart.
type ticker struct {
	mu sync.Mutex
	t  time.Time
}

func (k *ticker) now() time.Time {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.t = k.t.Add(time.Second)
	return k.t
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	clk := &ticker{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}

	studentRepo := repository.New[models.Student](store.NewMemoryCollection[models.Student]("students"), repository.WithClock(clk.now))
	courseRepo := repository.New[models.Course](store.NewMemoryCollection[models.Course]("courses"), repository.WithClock(clk.now))

	r := gin.New()
	api := r.Group("/api/v1")
	RegisterStudentRoutes(api, students.NewService(studentRepo))
	RegisterCourseRoutes(api, courses.NewService(courseRepo))
	return r
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
