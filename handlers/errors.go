package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/studentmanagement/students-api/internal/apperrors"
	"github.com/studentmanagement/students-api/internal/pagination"
	"github.com/studentmanagement/students-api/pkg/logger"
)

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Message   string    `json:"message"`
	Errors    []string  `json:"errors,omitempty"`
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func writeError(c *gin.Context, status int, msg string, details []string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Message:   msg,
		Errors:    details,
		Status:    status,
		Timestamp: time.Now().UTC(),
	})
}

// respondError maps a service error onto a status code. Anything that is not
// a known client error is logged and hidden behind a generic 500.
func respondError(c *gin.Context, err error) {
	var nf *apperrors.NotFoundError
	var verr *apperrors.ValidationError
	switch {
	case errors.As(err, &nf):
		writeError(c, http.StatusNotFound, nf.Error(), nil)
	case errors.As(err, &verr):
		writeError(c, http.StatusBadRequest, "Validation failed", verr.Messages())
	default:
		logger.Errorf("%s %s failed: %v", c.Request.Method, c.FullPath(), err)
		writeError(c, http.StatusInternalServerError, "Internal server error", nil)
	}
}

func respondBadBody(c *gin.Context, err error) {
	writeError(c, http.StatusBadRequest, "Malformed request body", []string{err.Error()})
}

// storeContext keeps the request's values but not its cancellation, so a
// client that disconnects does not abort a store call already under way.
func storeContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}

// pageQuery reads page, size, sortBy and sortDirection, filling defaults for
// anything absent. Range checks are left to the service.
func pageQuery(c *gin.Context) (pagination.Request, error) {
	req := pagination.DefaultRequest()
	verr := &apperrors.ValidationError{}

	if v, ok := c.GetQuery("page"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			verr.Add("page", "Page number must be an integer")
		}
		req.Page = n
	}
	if v, ok := c.GetQuery("size"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			verr.Add("size", "Page size must be an integer")
		}
		req.Size = n
	}
	if v, ok := c.GetQuery("sortBy"); ok && v != "" {
		req.SortBy = v
	}
	dir, err := pagination.ParseDirection(c.Query("sortDirection"))
	if err != nil {
		verr.Add("sortDirection", "Sort direction must be ASC or DESC")
	}
	req.SortDirection = dir

	if len(verr.Fields) > 0 {
		return req, verr
	}
	return req, nil
}
