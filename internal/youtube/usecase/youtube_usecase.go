package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	authdomain "creatortube-backend/internal/auth/domain"
	"creatortube-backend/internal/auth/repository"
	ytdto "creatortube-backend/internal/youtube/dto"
	"creatortube-backend/pkg/ai"
	ytclient "creatortube-backend/pkg/youtube"

	"golang.org/x/oauth2"
	"google.golang.org/api/youtube/v3"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrNotConnected      = errors.New("YouTube account not connected. Please connect your YouTube account first.")
	ErrInvalidPreference = errors.New("invalid preference value")
)

// youtubeUsecase implements YouTubeUsecase interface
type youtubeUsecase struct {
	userRepo repository.UserRepository
	client   *ytclient.Service
	replier  ai.ReplyService
}

// NewYouTubeUsecase creates a new instance of youtubeUsecase
func NewYouTubeUsecase(userRepo repository.UserRepository, client *ytclient.Service, replier ai.ReplyService) YouTubeUsecase {
	return &youtubeUsecase{
		userRepo: userRepo,
		client:   client,
		replier:  replier,
	}
}

func (u *youtubeUsecase) ExtractChannelID(channelLink string) (string, error) {
	return ytclient.ExtractChannelID(channelLink)
}

func (u *youtubeUsecase) ExtractVideoID(videoLink string) (string, error) {
	return ytclient.ExtractVideoID(videoLink)
}

func (u *youtubeUsecase) GetChannelData(ctx context.Context, userID, channelID string) (json.RawMessage, bool, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, false, err
	}
	if user == nil {
		return nil, false, ErrUserNotFound
	}

	if cached, ok := user.ChannelData[channelID]; ok {
		return cached, true, nil
	}

	channel, err := u.client.GetChannel(ctx, channelID)
	if err != nil {
		return nil, false, err
	}

	payload, err := json.Marshal(channel)
	if err != nil {
		return nil, false, err
	}

	if err := u.userRepo.CacheChannelData(userID, channelID, payload); err != nil {
		return nil, false, err
	}
	return payload, false, nil
}

func (u *youtubeUsecase) GetVideoData(ctx context.Context, videoID string) (*youtube.Video, error) {
	return u.client.GetVideo(ctx, videoID)
}

// commentOrder maps the public preference values onto YouTube API orderings.
func commentOrder(preference string) (string, error) {
	switch preference {
	case "", "all":
		return "", nil
	case "likes":
		return "relevance", nil
	case "recent":
		return "time", nil
	}
	return "", ErrInvalidPreference
}

func (u *youtubeUsecase) AutoReplyComments(ctx context.Context, userID, videoID, preference string) ([]authdomain.RepliedComment, error) {
	order, err := commentOrder(preference)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	threads, err := u.client.GetCommentThreads(ctx, videoID, order)
	if err != nil {
		return nil, err
	}

	replied := make([]authdomain.RepliedComment, 0, len(threads))
	for _, thread := range threads {
		if thread.Snippet == nil || thread.Snippet.TopLevelComment == nil || thread.Snippet.TopLevelComment.Snippet == nil {
			continue
		}
		snippet := thread.Snippet.TopLevelComment.Snippet
		reply := u.replier.ThankYouReply(snippet.AuthorDisplayName)
		// The reply is not posted back to YouTube yet; the run is recorded
		// against the user so usage reporting matches the frontend.
		log.Printf("Replying to comment ID %s: %s", thread.Id, reply)
		replied = append(replied, authdomain.RepliedComment{
			CommentID: thread.Id,
			Author:    snippet.AuthorDisplayName,
			Text:      snippet.TextDisplay,
			ReplyText: reply,
		})
	}

	if err := u.userRepo.AppendCommentLog(userID, authdomain.CommentReplyLog{
		VideoID:      videoID,
		Comments:     replied,
		RepliedCount: len(replied),
	}); err != nil {
		return nil, err
	}

	return replied, nil
}

func (u *youtubeUsecase) GenerateReply(ctx context.Context, videoContext, transcript, comment string) (string, error) {
	return u.replier.GenerateReply(ctx, videoContext, transcript, comment)
}

// tokenPersister saves rotated access tokens so the stored record keeps
// matching what the API client actually uses.
func (u *youtubeUsecase) tokenPersister(userID string) ytclient.TokenUpdateFunc {
	return func(token *oauth2.Token) error {
		expiresIn := int64(time.Until(token.Expiry).Seconds())
		return u.userRepo.UpdateProviderAccessToken(userID, token.AccessToken, time.Now(), expiresIn)
	}
}

func (u *youtubeUsecase) connectedUser(userID string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.OAuth.AccessToken == "" {
		return nil, ErrNotConnected
	}
	return user, nil
}

func (u *youtubeUsecase) ListMyChannels(ctx context.Context, userID string) ([]ytdto.ChannelSummary, error) {
	user, err := u.connectedUser(userID)
	if err != nil {
		return nil, err
	}

	channels, err := u.client.ListMyChannels(ctx, user.OAuth.AccessToken, user.OAuth.RefreshToken, u.tokenPersister(userID))
	if err != nil {
		return nil, err
	}

	summaries := make([]ytdto.ChannelSummary, 0, len(channels))
	for _, ch := range channels {
		summary := ytdto.ChannelSummary{
			ChannelID:  ch.Id,
			ChannelURL: fmt.Sprintf("https://www.youtube.com/channel/%s", ch.Id),
		}
		if ch.Snippet != nil {
			summary.ChannelTitle = ch.Snippet.Title
			summary.ChannelDescription = ch.Snippet.Description
			if ch.Snippet.Thumbnails != nil && ch.Snippet.Thumbnails.Default != nil {
				summary.ChannelThumbnail = ch.Snippet.Thumbnails.Default.Url
			}
		}
		if ch.Statistics != nil {
			summary.SubscriberCount = ch.Statistics.SubscriberCount
			summary.VideoCount = ch.Statistics.VideoCount
			summary.ViewCount = ch.Statistics.ViewCount
		}
		summaries = append(summaries, summary)
	}

	// Backfill the profile's channel link from the first owned channel.
	if user.ChannelLink == "" && len(summaries) > 0 {
		user.ChannelLink = summaries[0].ChannelURL
		if err := u.userRepo.Update(user); err != nil {
			log.Printf("[WARN] failed to backfill channel link for user %s: %v", userID, err)
		}
	}

	return summaries, nil
}

func (u *youtubeUsecase) AnalyzeChannel(ctx context.Context, userID, channelLink string) (*ytdto.ChannelAnalysis, error) {
	user, err := u.connectedUser(userID)
	if err != nil {
		return nil, err
	}

	channel, err := u.client.AnalyzeOwnChannel(ctx, user.OAuth.AccessToken, user.OAuth.RefreshToken, u.tokenPersister(userID), channelLink)
	if err != nil {
		return nil, err
	}

	return buildChannelAnalysis(channel), nil
}

func buildChannelAnalysis(channel *youtube.Channel) *ytdto.ChannelAnalysis {
	analysis := &ytdto.ChannelAnalysis{
		ID:           channel.Id,
		IsOwnChannel: true,
		URLs: ytdto.ChannelURLs{
			Channel: fmt.Sprintf("https://www.youtube.com/channel/%s", channel.Id),
		},
	}

	var publishedAt time.Time
	if channel.Snippet != nil {
		analysis.Title = channel.Snippet.Title
		analysis.Description = channel.Snippet.Description
		analysis.CustomURL = channel.Snippet.CustomUrl
		analysis.PublishedAt = channel.Snippet.PublishedAt
		analysis.Country = channel.Snippet.Country
		analysis.Thumbnails = channel.Snippet.Thumbnails
		if channel.Snippet.CustomUrl != "" {
			analysis.URLs.CustomURL = fmt.Sprintf("https://www.youtube.com/%s", channel.Snippet.CustomUrl)
		}
		publishedAt, _ = time.Parse(time.RFC3339, channel.Snippet.PublishedAt)
	}

	var subs, videos, views uint64
	if channel.Statistics != nil {
		subs = channel.Statistics.SubscriberCount
		videos = channel.Statistics.VideoCount
		views = channel.Statistics.ViewCount
		analysis.Statistics = ytdto.ChannelStatistics{
			SubscriberCount:       subs,
			VideoCount:            videos,
			ViewCount:             views,
			HiddenSubscriberCount: channel.Statistics.HiddenSubscriberCount,
		}
	}

	analysis.Formatted = ytdto.FormattedStatistics{
		SubscriberCountText: ytclient.FormatCount(subs),
		VideoCountText:      ytclient.FormatCount(videos),
		ViewCountText:       ytclient.FormatCount(views),
	}
	if !publishedAt.IsZero() {
		analysis.Formatted.PublishedDate = publishedAt.Format("1/2/2006")
		analysis.Formatted.ChannelAge = ytclient.ChannelAge(publishedAt)
	}

	avgViews := views
	if videos > 0 {
		avgViews = views / videos
	}
	analysis.Analysis = ytdto.ChannelInsights{
		AverageViewsPerVideo: avgViews,
		SubscriberEngagement: ytclient.SubscriberEngagement(subs, views),
		ChannelPerformance:   ytclient.PerformanceNotes(subs, videos, views),
	}
	if !publishedAt.IsZero() {
		analysis.Analysis.ContentFrequency = ytclient.ContentFrequency(publishedAt, videos)
	}

	return analysis
}
