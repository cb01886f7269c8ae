package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studentmanagement/students-api/internal/pagination"
	"github.com/studentmanagement/students-api/internal/students"
)

// StudentService is the behaviour the student routes depend on.
type StudentService interface {
	Create(ctx context.Context, req students.Request) (students.Response, error)
	GetByID(ctx context.Context, id string) (students.Response, error)
	GetAll(ctx context.Context) ([]students.Response, error)
	GetAllWithPagination(ctx context.Context, req pagination.Request) (pagination.Page[students.Response], error)
	Update(ctx context.Context, id string, req students.Request) (students.Response, error)
	Delete(ctx context.Context, id string) error
}

func RegisterStudentRoutes(rg *gin.RouterGroup, svc StudentService) {
	rg.POST("/student", func(c *gin.Context) {
		var req students.Request
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

	rg.GET("/student/:id", func(c *gin.Context) {
		out, err := svc.GetByID(storeContext(c), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	})

	rg.PUT("/student/:id", func(c *gin.Context) {
		var req students.Request
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

	rg.DELETE("/student/:id", func(c *gin.Context) {
		if err := svc.Delete(storeContext(c), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})

	rg.GET("/students", func(c *gin.Context) {
		list, err := svc.GetAll(storeContext(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	})

	rg.GET("/students/paginated", func(c *gin.Context) {
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
