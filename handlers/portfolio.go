package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alexjohnson-dev/portfolio-backend/internal/contact"
	"github.com/alexjohnson-dev/portfolio-backend/internal/database"
	"github.com/alexjohnson-dev/portfolio-backend/internal/profile"
	"github.com/alexjohnson-dev/portfolio-backend/internal/visitor"
	"github.com/alexjohnson-dev/portfolio-backend/pkg/logger"
)

// ContactRequest is the contact-form payload.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// PortfolioHandler holds the service dependencies for the public API.
type PortfolioHandler struct {
	profiles *profile.Service
	visitors *visitor.Service
	contacts *contact.Service
	store    database.Store
}

func NewPortfolioHandler(p *profile.Service, v *visitor.Service, c *contact.Service, store database.Store) *PortfolioHandler {
	return &PortfolioHandler{profiles: p, visitors: v, contacts: c, store: store}
}

// Register routes: the root banner plus the /api surface
func (h *PortfolioHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/", h.Root)
	api := rg.Group("/api")
	api.GET("/health", h.Health)
	api.GET("/profile", h.GetProfile)
	api.PUT("/profile", h.UpdateProfile)
	api.POST("/projects", h.AddProject)
	api.GET("/visitor-count", h.VisitorCount)
	api.POST("/contact", h.SubmitContact)
}

// Root confirms the API is up.
func (h *PortfolioHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Portfolio API is running!"})
}

// Health reports store reachability. Always 200; an unreachable store is
// reflected in the body, not the status code.
func (h *PortfolioHandler) Health(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *PortfolioHandler) GetProfile(c *gin.Context) {
	p, err := h.profiles.Get(c.Request.Context())
	if err != nil {
		if err == profile.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		logger.Errorf("profile lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile lookup failed"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PortfolioHandler) UpdateProfile(c *gin.Context) {
	var upd profile.Update
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.profiles.Update(c.Request.Context(), &upd)
	if err != nil {
		if err == profile.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		logger.Errorf("profile update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "profile": p})
}

func (h *PortfolioHandler) AddProject(c *gin.Context) {
	var in profile.ProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	prj, err := h.profiles.AddProject(c.Request.Context(), &in)
	if err != nil {
		if err == profile.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		logger.Errorf("project append failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "project append failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project added successfully", "project": prj})
}

func (h *PortfolioHandler) VisitorCount(c *gin.Context) {
	count, err := h.visitors.IncrementAndGet(c.Request.Context())
	if err != nil {
		logger.Errorf("visitor count failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "visitor count failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"visitor_count": count})
}

func (h *PortfolioHandler) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, sent, err := h.contacts.Submit(c.Request.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		logger.Errorf("contact message persist failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store contact message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Contact form submitted successfully",
		"id":         id,
		"email_sent": sent,
	})
}
