package delivery

import (
	"errors"
	"net/http"

	"creatortube-backend/internal/admin/usecase"
	authdelivery "creatortube-backend/internal/auth/delivery"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles administrator HTTP requests
type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(adminUsecase usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
	}
}

// Dashboard greets the signed-in administrator
// GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome Admin",
		"user":    user,
	})
}

// ListUsers returns every registered account
// GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminUsecase.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GetUser returns a single account by id
// GET /api/admin/users/:id
func (h *AdminHandler) GetUser(c *gin.Context) {
	user, err := h.adminUsecase.GetUser(c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrTargetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Target user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
