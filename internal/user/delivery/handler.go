package delivery

import (
	"encoding/json"
	"errors"
	"net/http"

	"creatortube-backend/internal/user/usecase"

	"github.com/gin-gonic/gin"
)

// UserHandler handles profile HTTP requests
type UserHandler struct {
	userUsecase usecase.UserUsecase
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// InsertDataRequest carries the array payload appended to previousData
type InsertDataRequest struct {
	Data []json.RawMessage `json:"data" binding:"required"`
}

func respondUserError(c *gin.Context, err error) {
	if errors.Is(err, usecase.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// GetUser returns a user's profile
// GET /api/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userUsecase.GetByID(c.Param("id"))
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":             user.ID,
		"name":           user.Name,
		"channelLink":    user.ChannelLink,
		"email":          user.Email,
		"previousData":   user.PreviousData,
		"oauthConnected": user.OAuth.Valid(),
	})
}

// GetPreviousData returns the user's stored analysis history
// GET /api/users/:id/previous
func (h *UserHandler) GetPreviousData(c *gin.Context) {
	data, err := h.userUsecase.GetPreviousData(c.Param("id"))
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"previousData": data,
		"message":      "Previous user data fetched successfully",
	})
}

// InsertData appends entries to the user's analysis history
// POST /api/users/:id/data
func (h *UserHandler) InsertData(c *gin.Context) {
	var req InsertDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data format"})
		return
	}

	updated, err := h.userUsecase.InsertData(c.Param("id"), req.Data)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Data inserted successfully",
		"previousData": updated,
	})
}

// GetCommentsData returns the per-video auto-reply history
// GET /api/users/:id/comments
func (h *UserHandler) GetCommentsData(c *gin.Context) {
	data, err := h.userUsecase.GetCommentsData(c.Param("id"))
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"commentsData": data,
		"message":      "Comments data fetched successfully",
	})
}
