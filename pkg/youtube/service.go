package youtube

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

var (
	ErrNotConfigured   = errors.New("youtube api key is not configured")
	ErrChannelNotFound = errors.New("channel not found")
	ErrVideoNotFound   = errors.New("video not found")
	ErrNotOwnChannel   = errors.New("channel does not belong to the authenticated account")
)

// TokenUpdateFunc is a callback that persists a refreshed OAuth token
type TokenUpdateFunc func(token *oauth2.Token) error

type Service struct {
	clientID     string
	clientSecret string
	apiKey       string
}

type notifyTokenSource struct {
	src      oauth2.TokenSource
	current  *oauth2.Token
	callback TokenUpdateFunc
}

func (s *notifyTokenSource) Token() (*oauth2.Token, error) {
	t, err := s.src.Token()
	if err != nil {
		return nil, err
	}
	if s.callback != nil && s.current.AccessToken != t.AccessToken {
		s.current = t
		if err := s.callback(t); err != nil {
			log.Printf("[WARN] failed to persist refreshed token: %v", err)
		}
	}
	return t, nil
}

func NewService(clientID, clientSecret, apiKey string) *Service {
	return &Service{
		clientID:     clientID,
		clientSecret: clientSecret,
		apiKey:       apiKey,
	}
}

// newAuthorizedService creates a YouTube client backed by the user's OAuth
// tokens. The token source refreshes expired access tokens transparently
// and reports rotations through onTokenRefresh.
func (s *Service) newAuthorizedService(ctx context.Context, accessToken, refreshToken string, onTokenRefresh TokenUpdateFunc) (*youtube.Service, error) {
	token := &oauth2.Token{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
	}

	// Only force refresh if we have a refresh token
	if refreshToken != "" {
		token.Expiry = time.Now()
	}

	config := &oauth2.Config{
		ClientID:     s.clientID,
		ClientSecret: s.clientSecret,
		Endpoint:     google.Endpoint,
	}

	tokenSource := config.TokenSource(ctx, token)

	// Wrap token source to detect refreshes
	wrappedSource := &notifyTokenSource{
		src:      tokenSource,
		current:  token,
		callback: onTokenRefresh,
	}

	client := oauth2.NewClient(ctx, wrappedSource)

	srv, err := youtube.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create YouTube service: %v", err)
	}

	return srv, nil
}

// newKeyService creates a YouTube client for public lookups using the API key.
func (s *Service) newKeyService(ctx context.Context) (*youtube.Service, error) {
	if s.apiKey == "" {
		return nil, ErrNotConfigured
	}
	srv, err := youtube.NewService(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("unable to create YouTube service: %v", err)
	}
	return srv, nil
}

// GetChannel fetches a channel's snippet and statistics by channel ID.
func (s *Service) GetChannel(ctx context.Context, channelID string) (*youtube.Channel, error) {
	srv, err := s.newKeyService(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := srv.Channels.List([]string{"snippet", "statistics"}).Id(channelID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, ErrChannelNotFound
	}
	return resp.Items[0], nil
}

// GetVideo fetches a video's snippet and statistics by video ID.
func (s *Service) GetVideo(ctx context.Context, videoID string) (*youtube.Video, error) {
	srv, err := s.newKeyService(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := srv.Videos.List([]string{"snippet", "statistics"}).Id(videoID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, ErrVideoNotFound
	}
	return resp.Items[0], nil
}

// GetCommentThreads fetches a video's top-level comment threads. order is
// the YouTube API ordering ("time" or "relevance"); empty keeps the
// API default.
func (s *Service) GetCommentThreads(ctx context.Context, videoID, order string) ([]*youtube.CommentThread, error) {
	srv, err := s.newKeyService(ctx)
	if err != nil {
		return nil, err
	}

	call := srv.CommentThreads.List([]string{"snippet"}).VideoId(videoID).Context(ctx)
	if order != "" {
		call = call.Order(order)
	}
	resp, err := call.Do()
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// ListMyChannels fetches the channels owned by the OAuth-authenticated user.
func (s *Service) ListMyChannels(ctx context.Context, accessToken, refreshToken string, onTokenRefresh TokenUpdateFunc) ([]*youtube.Channel, error) {
	srv, err := s.newAuthorizedService(ctx, accessToken, refreshToken, onTokenRefresh)
	if err != nil {
		return nil, err
	}

	resp, err := srv.Channels.List([]string{"snippet", "contentDetails", "statistics"}).Mine(true).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// AnalyzeOwnChannel resolves a channel link, fetches its full data through
// the user's OAuth credential and verifies that the channel belongs to the
// authenticated account.
func (s *Service) AnalyzeOwnChannel(ctx context.Context, accessToken, refreshToken string, onTokenRefresh TokenUpdateFunc, channelLink string) (*youtube.Channel, error) {
	srv, err := s.newAuthorizedService(ctx, accessToken, refreshToken, onTokenRefresh)
	if err != nil {
		return nil, err
	}

	channelID, err := s.resolveChannelID(ctx, srv, channelLink)
	if err != nil {
		return nil, err
	}

	resp, err := srv.Channels.List([]string{"snippet", "statistics", "contentDetails"}).Id(channelID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, ErrChannelNotFound
	}

	// Ownership check: only the user's own channels may be analyzed.
	mine, err := srv.Channels.List([]string{"id"}).Mine(true).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	owned := false
	for _, ch := range mine.Items {
		if ch.Id == channelID {
			owned = true
			break
		}
	}
	if !owned {
		return nil, ErrNotOwnChannel
	}

	return resp.Items[0], nil
}

// resolveChannelID turns any supported channel-link form into a channel ID,
// using the API for usernames, handles and custom URLs.
func (s *Service) resolveChannelID(ctx context.Context, srv *youtube.Service, channelLink string) (string, error) {
	ref, err := ParseChannelRef(channelLink)
	if err != nil {
		return "", err
	}

	switch ref.Kind {
	case RefChannelID:
		return ref.Value, nil

	case RefUsername:
		resp, err := srv.Channels.List([]string{"id"}).ForUsername(ref.Value).Context(ctx).Do()
		if err != nil {
			return "", err
		}
		if len(resp.Items) == 0 {
			return "", ErrChannelNotFound
		}
		return resp.Items[0].Id, nil

	default: // handle or custom URL resolve through search
		resp, err := srv.Search.List([]string{"snippet"}).Q(ref.Value).Type("channel").MaxResults(1).Context(ctx).Do()
		if err != nil {
			return "", err
		}
		if len(resp.Items) == 0 {
			return "", ErrChannelNotFound
		}
		return resp.Items[0].Snippet.ChannelId, nil
	}
}
