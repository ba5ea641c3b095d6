package dto

import "google.golang.org/api/youtube/v3"

type ChannelLinkRequest struct {
	ChannelLink string `json:"channelLink" binding:"required"`
}

type ChannelIDRequest struct {
	ChannelID string `json:"channelId" binding:"required"`
}

type VideoLinkRequest struct {
	VideoLink string `json:"videoLink" binding:"required"`
}

type VideoIDRequest struct {
	VideoID string `json:"videoId" binding:"required"`
}

type LLMReplyRequest struct {
	VideoContext string `json:"videoContext" binding:"required"`
	Transcript   string `json:"transcript" binding:"required"`
	Comment      string `json:"comment" binding:"required"`
}

// ChannelSummary is one owned channel in the connected account.
type ChannelSummary struct {
	ChannelID          string `json:"channelId"`
	ChannelTitle       string `json:"channelTitle"`
	ChannelDescription string `json:"channelDescription"`
	ChannelThumbnail   string `json:"channelThumbnail"`
	ChannelURL         string `json:"channelUrl"`
	SubscriberCount    uint64 `json:"subscriberCount"`
	VideoCount         uint64 `json:"videoCount"`
	ViewCount          uint64 `json:"viewCount"`
}

// ChannelAnalysis is the enhanced payload for an owned channel.
type ChannelAnalysis struct {
	ID           string                     `json:"id"`
	Title        string                     `json:"title"`
	Description  string                     `json:"description"`
	CustomURL    string                     `json:"customUrl,omitempty"`
	PublishedAt  string                     `json:"publishedAt"`
	Country      string                     `json:"country,omitempty"`
	Thumbnails   *youtube.ThumbnailDetails  `json:"thumbnails,omitempty"`
	Statistics   ChannelStatistics          `json:"statistics"`
	Formatted    FormattedStatistics        `json:"formatted"`
	URLs         ChannelURLs                `json:"urls"`
	Analysis     ChannelInsights            `json:"analysis"`
	IsOwnChannel bool                       `json:"isOwnChannel"`
}

type ChannelStatistics struct {
	SubscriberCount       uint64 `json:"subscriberCount"`
	VideoCount            uint64 `json:"videoCount"`
	ViewCount             uint64 `json:"viewCount"`
	HiddenSubscriberCount bool   `json:"hiddenSubscriberCount"`
}

type FormattedStatistics struct {
	SubscriberCountText string `json:"subscriberCountText"`
	VideoCountText      string `json:"videoCountText"`
	ViewCountText       string `json:"viewCountText"`
	PublishedDate       string `json:"publishedDate"`
	ChannelAge          string `json:"channelAge"`
}

type ChannelURLs struct {
	Channel   string `json:"channel"`
	CustomURL string `json:"customUrl,omitempty"`
}

type ChannelInsights struct {
	AverageViewsPerVideo uint64   `json:"averageViewsPerVideo"`
	SubscriberEngagement string   `json:"subscriberEngagement"`
	ChannelPerformance   []string `json:"channelPerformance"`
	ContentFrequency     string   `json:"contentFrequency"`
}
