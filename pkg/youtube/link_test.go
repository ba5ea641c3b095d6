package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractChannelID(t *testing.T) {
	tests := []struct {
		name string
		link string
		want string
	}{
		{"channel id form", "https://www.youtube.com/channel/UCabc123_-x", "UCabc123_-x"},
		{"custom form", "https://youtube.com/c/SomeCreator", "SomeCreator"},
		{"user form", "youtube.com/user/olduser", "olduser"},
		{"bare path segment", "https://www.youtube.com/SomeName", "SomeName"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractChannelID(tt.link)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ExtractChannelID("https://vimeo.com/whatever")
	assert.ErrorIs(t, err, ErrInvalidChannelLink)
}

func TestExtractVideoID(t *testing.T) {
	got, err := ExtractVideoID("https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42")
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", got)

	_, err = ExtractVideoID("https://www.youtube.com/channel/UCabc")
	assert.ErrorIs(t, err, ErrInvalidVideoLink)
}

func TestParseChannelRef(t *testing.T) {
	tests := []struct {
		link string
		want ChannelRef
	}{
		{"https://www.youtube.com/channel/UCabc123", ChannelRef{RefChannelID, "UCabc123"}},
		{"https://www.youtube.com/user/olduser", ChannelRef{RefUsername, "olduser"}},
		{"https://www.youtube.com/@somehandle", ChannelRef{RefHandle, "somehandle"}},
		{"https://www.youtube.com/c/SomeCreator", ChannelRef{RefCustomURL, "SomeCreator"}},
	}
	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			got, err := ParseChannelRef(tt.link)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseChannelRef("https://example.com/nothing")
	assert.ErrorIs(t, err, ErrInvalidChannelLink)
}
