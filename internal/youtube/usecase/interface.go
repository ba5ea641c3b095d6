package usecase

import (
	"context"
	"encoding/json"

	authdomain "creatortube-backend/internal/auth/domain"
	ytdto "creatortube-backend/internal/youtube/dto"

	"google.golang.org/api/youtube/v3"
)

// YouTubeUsecase defines the interface for the YouTube proxy use cases
type YouTubeUsecase interface {
	ExtractChannelID(channelLink string) (string, error)
	ExtractVideoID(videoLink string) (string, error)

	// GetChannelData serves the channel payload from the user's cache when
	// present, otherwise fetches it with the API key and caches it.
	GetChannelData(ctx context.Context, userID, channelID string) (json.RawMessage, bool, error)
	GetVideoData(ctx context.Context, videoID string) (*youtube.Video, error)

	// AutoReplyComments fetches a video's comments, produces the canned
	// acknowledgement for each and appends the run to the user's history.
	AutoReplyComments(ctx context.Context, userID, videoID, preference string) ([]authdomain.RepliedComment, error)
	GenerateReply(ctx context.Context, videoContext, transcript, comment string) (string, error)

	// ListMyChannels returns the connected Google account's own channels.
	ListMyChannels(ctx context.Context, userID string) ([]ytdto.ChannelSummary, error)
	// AnalyzeChannel resolves a link to one of the user's own channels and
	// returns the enhanced statistics payload.
	AnalyzeChannel(ctx context.Context, userID, channelLink string) (*ytdto.ChannelAnalysis, error)
}
