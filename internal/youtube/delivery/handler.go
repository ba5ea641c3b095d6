package delivery

import (
	"encoding/json"
	"errors"
	"net/http"

	ytdto "creatortube-backend/internal/youtube/dto"
	"creatortube-backend/internal/youtube/usecase"
	ytclient "creatortube-backend/pkg/youtube"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/googleapi"
)

// YouTubeHandler handles the YouTube proxy HTTP requests
type YouTubeHandler struct {
	youtubeUsecase usecase.YouTubeUsecase
}

// NewYouTubeHandler creates a new YouTubeHandler
func NewYouTubeHandler(youtubeUsecase usecase.YouTubeUsecase) *YouTubeHandler {
	return &YouTubeHandler{
		youtubeUsecase: youtubeUsecase,
	}
}

// respondError maps usecase and YouTube API failures onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var apiErr *googleapi.Error
	switch {
	case errors.Is(err, ytclient.ErrInvalidChannelLink),
		errors.Is(err, ytclient.ErrInvalidVideoLink),
		errors.Is(err, usecase.ErrInvalidPreference),
		errors.Is(err, ytclient.ErrNotConfigured):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ytclient.ErrChannelNotFound),
		errors.Is(err, ytclient.ErrVideoNotFound),
		errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ytclient.ErrNotOwnChannel):
		c.JSON(http.StatusForbidden, gin.H{
			"error":        "This channel does not belong to your authenticated account. You can only analyze your own channels.",
			"isOwnChannel": false,
		})
	case errors.Is(err, usecase.ErrNotConnected):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.As(err, &apiErr):
		if apiErr.Code == http.StatusUnauthorized {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "YouTube authentication expired. Please reconnect your account."})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": apiErr.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// GetChannelID extracts the channel identifier from a channel link
// POST /api/youtube/channel-id
func (h *YouTubeHandler) GetChannelID(c *gin.Context) {
	var req ytdto.ChannelLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Channel link is required"})
		return
	}

	channelID, err := h.youtubeUsecase.ExtractChannelID(req.ChannelLink)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"channelId": channelID})
}

// GetChannelData returns a channel's public data, cached per user
// POST /api/youtube/channel-data
func (h *YouTubeHandler) GetChannelData(c *gin.Context) {
	var req ytdto.ChannelIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Channel ID is required"})
		return
	}

	userID := c.GetString("userID")
	payload, cached, err := h.youtubeUsecase.GetChannelData(c.Request.Context(), userID, req.ChannelID)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Channel data fetched successfully"
	if cached {
		message = "Channel data already exists"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     message,
		"channelData": json.RawMessage(payload),
	})
}

// GetVideoID extracts the video identifier from a watch link
// POST /api/youtube/video-id
func (h *YouTubeHandler) GetVideoID(c *gin.Context) {
	var req ytdto.VideoLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Video link is required"})
		return
	}

	videoID, err := h.youtubeUsecase.ExtractVideoID(req.VideoLink)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"videoId": videoID})
}

// GetVideoData returns a video's public data
// POST /api/youtube/video-data
func (h *YouTubeHandler) GetVideoData(c *gin.Context) {
	var req ytdto.VideoIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Video ID is required"})
		return
	}

	video, err := h.youtubeUsecase.GetVideoData(c.Request.Context(), req.VideoID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, video)
}

// AutoReplyComments fetches comments and records the canned replies
// POST /api/youtube/comments?preference=all|likes|recent
func (h *YouTubeHandler) AutoReplyComments(c *gin.Context) {
	var req ytdto.VideoIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Video ID is required"})
		return
	}

	userID := c.GetString("userID")
	preference := c.DefaultQuery("preference", "all")

	replied, err := h.youtubeUsecase.AutoReplyComments(c.Request.Context(), userID, req.VideoID, preference)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Comments fetched and replied successfully",
		"commentsData": replied,
	})
}

// GenerateLLMReply produces a reply suggestion for a single comment
// POST /api/youtube/llm-reply
func (h *YouTubeHandler) GenerateLLMReply(c *gin.Context) {
	var req ytdto.LLMReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	reply, err := h.youtubeUsecase.GenerateReply(c.Request.Context(), req.VideoContext, req.Transcript, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// ListMyChannels returns the connected account's own channels
// GET /api/youtube/channels
func (h *YouTubeHandler) ListMyChannels(c *gin.Context) {
	userID := c.GetString("userID")

	channels, err := h.youtubeUsecase.ListMyChannels(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"channels": channels,
		"message":  "Channels fetched successfully",
	})
}

// AnalyzeChannel returns the enhanced statistics payload for an owned channel
// POST /api/youtube/analyze-channel
func (h *YouTubeHandler) AnalyzeChannel(c *gin.Context) {
	var req ytdto.ChannelLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Channel link is required"})
		return
	}

	userID := c.GetString("userID")
	analysis, err := h.youtubeUsecase.AnalyzeChannel(c.Request.Context(), userID, req.ChannelLink)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    analysis,
		"message": "Your channel analyzed successfully",
	})
}
