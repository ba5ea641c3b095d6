package youtube

import (
	"errors"
	"regexp"
)

var (
	ErrInvalidChannelLink = errors.New("invalid YouTube channel link")
	ErrInvalidVideoLink   = errors.New("invalid YouTube video link")
)

var (
	channelLinkRegex = regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/(?:channel/|c/|user/)?([^/?]+)`)
	videoLinkRegex   = regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/watch\?v=([^&]+)`)

	channelIDRegex = regexp.MustCompile(`channel/([a-zA-Z0-9_-]+)`)
	usernameRegex  = regexp.MustCompile(`user/([a-zA-Z0-9_-]+)`)
	handleRegex    = regexp.MustCompile(`@([a-zA-Z0-9_-]+)`)
	customURLRegex = regexp.MustCompile(`/c/([a-zA-Z0-9_-]+)`)
)

// ExtractChannelID pulls the channel identifier out of a channel URL. It
// returns whatever path segment follows channel/, c/ or user/, matching the
// lookup endpoints' loose contract; AnalyzeOwnChannel does the stricter
// per-form resolution.
func ExtractChannelID(channelLink string) (string, error) {
	match := channelLinkRegex.FindStringSubmatch(channelLink)
	if len(match) < 2 {
		return "", ErrInvalidChannelLink
	}
	return match[1], nil
}

// ExtractVideoID pulls the video identifier out of a watch URL.
func ExtractVideoID(videoLink string) (string, error) {
	match := videoLinkRegex.FindStringSubmatch(videoLink)
	if len(match) < 2 {
		return "", ErrInvalidVideoLink
	}
	return match[1], nil
}

// ChannelRefKind distinguishes the URL forms a channel link can take.
type ChannelRefKind string

const (
	RefChannelID ChannelRefKind = "channel_id"
	RefUsername  ChannelRefKind = "username"
	RefHandle    ChannelRefKind = "handle"
	RefCustomURL ChannelRefKind = "custom_url"
)

// ChannelRef is a parsed channel link. Only RefChannelID resolves without
// an API call.
type ChannelRef struct {
	Kind  ChannelRefKind
	Value string
}

// ParseChannelRef classifies a channel link into one of the four URL forms.
func ParseChannelRef(channelLink string) (ChannelRef, error) {
	if m := channelIDRegex.FindStringSubmatch(channelLink); len(m) == 2 {
		return ChannelRef{Kind: RefChannelID, Value: m[1]}, nil
	}
	if m := usernameRegex.FindStringSubmatch(channelLink); len(m) == 2 {
		return ChannelRef{Kind: RefUsername, Value: m[1]}, nil
	}
	if m := handleRegex.FindStringSubmatch(channelLink); len(m) == 2 {
		return ChannelRef{Kind: RefHandle, Value: m[1]}, nil
	}
	if m := customURLRegex.FindStringSubmatch(channelLink); len(m) == 2 {
		return ChannelRef{Kind: RefCustomURL, Value: m[1]}, nil
	}
	return ChannelRef{}, ErrInvalidChannelLink
}
