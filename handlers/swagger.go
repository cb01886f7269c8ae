package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerHTML))
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>students-api Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "students-api", "version": "v1.0.0" },
  "components": {
    "parameters": {
      "id": { "name": "id", "in": "path", "required": true, "schema": { "type": "string" } },
      "page": { "name": "page", "in": "query", "schema": { "type": "integer", "minimum": 0, "default": 0 } },
      "size": { "name": "size", "in": "query", "schema": { "type": "integer", "minimum": 1, "default": 10 } },
      "sortBy": { "name": "sortBy", "in": "query", "schema": { "type": "string", "default": "createdAt" } },
      "sortDirection": { "name": "sortDirection", "in": "query", "schema": { "type": "string", "enum": ["ASC", "DESC"], "default": "DESC" } }
    },
    "schemas": {
      "StudentRequest": { "type": "object", "required": ["title","name","address","city","course"], "properties": { "title": {"type":"string"}, "name": {"type":"string"}, "address": {"type":"string"}, "city": {"type":"string"}, "course": {"type":"string"} } },
      "Student": { "type": "object", "properties": { "id": {"type":"string"}, "title": {"type":"string"}, "name": {"type":"string"}, "address": {"type":"string"}, "city": {"type":"string"}, "course": {"type":"string"}, "createdAt": {"type":"string","format":"date-time"}, "updatedAt": {"type":"string","format":"date-time"} } },
      "CourseRequest": { "type": "object", "required": ["name","fee","lecturerId","lecturerName"], "properties": { "name": {"type":"string"}, "fee": {"type":"string","example":"150.00"}, "lecturerId": {"type":"string"}, "lecturerName": {"type":"string"} } },
      "Course": { "type": "object", "properties": { "id": {"type":"string"}, "name": {"type":"string"}, "fee": {"type":"string"}, "lecturerId": {"type":"string"}, "lecturerName": {"type":"string"}, "createdAt": {"type":"string","format":"date-time"}, "updatedAt": {"type":"string","format":"date-time"} } },
      "Page": { "type": "object", "properties": { "content": {"type":"array","items":{}}, "currentPage": {"type":"integer"}, "pageSize": {"type":"integer"}, "totalElements": {"type":"integer"}, "totalPages": {"type":"integer"}, "first": {"type":"boolean"}, "last": {"type":"boolean"}, "hasNext": {"type":"boolean"}, "hasPrevious": {"type":"boolean"} } },
      "ErrorResponse": { "type": "object", "properties": { "message": {"type":"string"}, "errors": {"type":"array","items":{"type":"string"}}, "status": {"type":"integer"}, "timestamp": {"type":"string","format":"date-time"} } }
    }
  },
  "paths": {
    "/api/v1/student": {
      "post": { "summary": "Create a student", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/StudentRequest"} } } }, "responses": { "201": { "description": "created" }, "400": { "description": "validation failed" } } }
    },
    "/api/v1/student/{id}": {
      "get": { "summary": "Get a student", "parameters": [{"$ref":"#/components/parameters/id"}], "responses": { "200": { "description": "student" }, "404": { "description": "not found" } } },
      "put": { "summary": "Replace a student", "parameters": [{"$ref":"#/components/parameters/id"}], "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/StudentRequest"} } } }, "responses": { "200": { "description": "updated" }, "400": { "description": "validation failed" }, "404": { "description": "not found" } } },
      "delete": { "summary": "Delete a student", "parameters": [{"$ref":"#/components/parameters/id"}], "responses": { "204": { "description": "deleted" }, "404": { "description": "not found" } } }
    },
    "/api/v1/students": {
      "get": { "summary": "List all students", "responses": { "200": { "description": "students" } } }
    },
    "/api/v1/students/paginated": {
      "get": { "summary": "List one page of students", "parameters": [{"$ref":"#/components/parameters/page"},{"$ref":"#/components/parameters/size"},{"$ref":"#/components/parameters/sortBy"},{"$ref":"#/components/parameters/sortDirection"}], "responses": { "200": { "description": "page envelope" }, "400": { "description": "invalid page request" } } }
    },
    "/api/v1/courses": {
      "post": { "summary": "Create a course", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/CourseRequest"} } } }, "responses": { "201": { "description": "created" }, "400": { "description": "validation failed" } } },
      "get": { "summary": "List courses, optionally by lecturer or name", "parameters": [{"name":"lecturerId","in":"query","schema":{"type":"string"}},{"name":"name","in":"query","schema":{"type":"string"}}], "responses": { "200": { "description": "courses" } } }
    },
    "/api/v1/courses/{id}": {
      "get": { "summary": "Get a course", "parameters": [{"$ref":"#/components/parameters/id"}], "responses": { "200": { "description": "course" }, "404": { "description": "not found" } } },
      "put": { "summary": "Replace a course", "parameters": [{"$ref":"#/components/parameters/id"}], "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/CourseRequest"} } } }, "responses": { "200": { "description": "updated" }, "400": { "description": "validation failed" }, "404": { "description": "not found" } } },
      "delete": { "summary": "Delete a course", "parameters": [{"$ref":"#/components/parameters/id"}], "responses": { "204": { "description": "deleted" }, "404": { "description": "not found" } } }
    },
    "/api/v1/courses/paginated": {
      "get": { "summary": "List one page of courses", "parameters": [{"$ref":"#/components/parameters/page"},{"$ref":"#/components/parameters/size"},{"$ref":"#/components/parameters/sortBy"},{"$ref":"#/components/parameters/sortDirection"}], "responses": { "200": { "description": "page envelope" }, "400": { "description": "invalid page request" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "metrics" } } } }
  }
}`
