package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, swaggerJSON)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>portfolio-api — Swagger</title>
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

// Minimal OpenAPI document describing the portfolio endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "portfolio-api", "version": "v1.0.0" },
  "paths": {
    "/api/health": {
      "get": { "summary": "Service and database health", "responses": { "200": { "description": "health report (healthy or unhealthy)" } } }
    },
    "/api/profile": {
      "get": { "summary": "Fetch the portfolio profile", "responses": { "200": { "description": "profile document" }, "404": { "description": "profile not found" } } },
      "put": {
        "summary": "Partially update the profile",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"name":{"type":"string"},"title":{"type":"string"},"email":{"type":"string"},"location":{"type":"string"},"bio":{"type":"string"},"experience":{"type":"string"},"skills":{"type":"array","items":{"type":"string"}}}}}}},
        "responses": { "200": { "description": "updated profile" }, "404": { "description": "profile not found" } }
      }
    },
    "/api/projects": {
      "post": {
        "summary": "Append a project to the profile",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["name","description"],"properties":{"name":{"type":"string"},"description":{"type":"string"},"technologies":{"type":"array","items":{"type":"string"}}}}}}},
        "responses": { "200": { "description": "created project" }, "404": { "description": "profile not found" } }
      }
    },
    "/api/visitor-count": {
      "get": { "summary": "Increment and return the visitor counter", "responses": { "200": { "description": "current visitor count" } } }
    },
    "/api/contact": {
      "post": {
        "summary": "Submit a contact message",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["name","email","message"],"properties":{"name":{"type":"string"},"email":{"type":"string"},"message":{"type":"string"}}}}}},
        "responses": { "200": { "description": "message stored; email_sent reports notification outcome" }, "500": { "description": "storage failure" } }
      }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } }
  }
}`
