package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studentmanagement/students-api/internal/courses"
	"github.com/studentmanagement/students-api/internal/pagination"
)

// CourseService is the behaviour the course routes depend on.
type CourseService interface {
	Create(ctx context.Context, req courses.Request) (courses.Response, error)
	GetByID(ctx context.Context, id string) (courses.Response, error)
	GetAll(ctx context.Context) ([]courses.Response, error)
	GetByLecturer(ctx context.Context, lecturerID string) ([]courses.Response, error)
	GetByName(ctx context.Context, name string) ([]courses.Response, error)
	GetAllWithPagination(ctx context.Context, req pagination.Request) (pagination.Page[courses.Response], error)
	Update(ctx context.Context, id string, req courses.Request) (courses.Response, error)
	Delete(ctx context.Context, id string) error
}

func RegisterCourseRoutes(rg *gin.RouterGroup, svc CourseService) {
	rg.POST("/courses", func(c *gin.Context) {
		var req courses.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadBody(c, err)
			return
		}
		out, err := svc.Create(storeContext(c), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, out)
	})

	rg.GET("/courses/:id", func(c *gin.Context) {
		out, err := svc.GetByID(storeContext(c), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	})

	rg.PUT("/courses/:id", func(c *gin.Context) {
		var req courses.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadBody(c, err)
			return
		}
		out, err := svc.Update(storeContext(c), c.Param("id"), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	})

	rg.DELETE("/courses/:id", func(c *gin.Context) {
		if err := svc.Delete(storeContext(c), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})

	// lecturerId takes precedence over name when both are given
	rg.GET("/courses", func(c *gin.Context) {
		ctx := storeContext(c)
		var (
			list []courses.Response
			err  error
		)
		if v, ok := c.GetQuery("lecturerId"); ok {
			list, err = svc.GetByLecturer(ctx, v)
		} else if v, ok := c.GetQuery("name"); ok {
			list, err = svc.GetByName(ctx, v)
		} else {
			list, err = svc.GetAll(ctx)
		}
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	})

	rg.GET("/courses/paginated", func(c *gin.Context) {
		preq, err := pageQuery(c)
		if err != nil {
			respondError(c, err)
			return
		}
		page, err := svc.GetAllWithPagination(storeContext(c), preq)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	})
}
