package youtube

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0K"},
		{1500, "1.5K"},
		{2_300_000, "2.3M"},
		{1_200_000_000, "1.2B"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCount(tt.in))
	}
}

func TestChannelAge(t *testing.T) {
	now := time.Now()

	assert.Equal(t, "3 days", ChannelAge(now.AddDate(0, 0, -3)))
	assert.Equal(t, "1 day", ChannelAge(now.AddDate(0, 0, -1)))
	assert.Equal(t, "2 months", ChannelAge(now.AddDate(0, 0, -62)))
	assert.Contains(t, ChannelAge(now.AddDate(-2, -3, 0)), "2 years")
}

func TestSubscriberEngagement(t *testing.T) {
	assert.Equal(t, "No subscribers", SubscriberEngagement(0, 100))
	assert.Equal(t, "Excellent", SubscriberEngagement(10, 2000))
	assert.Equal(t, "Good", SubscriberEngagement(10, 600))
	assert.Equal(t, "Average", SubscriberEngagement(10, 300))
	assert.Equal(t, "Needs Improvement", SubscriberEngagement(10, 100))
}

func TestPerformanceNotes(t *testing.T) {
	notes := PerformanceNotes(50_000, 200, 10_000_000)
	assert.Contains(t, notes, "High view count per video")
	assert.Contains(t, notes, "Good subscriber growth rate")
	assert.Contains(t, notes, "Strong subscriber base")
	assert.Contains(t, notes, "Consistent content creation")

	assert.Equal(t, []string{"Growing channel"}, PerformanceNotes(10, 2, 50))
}

func TestContentFrequency(t *testing.T) {
	now := time.Now()

	assert.Equal(t, "No content frequency data", ContentFrequency(now, 10))
	assert.Equal(t, "No content frequency data", ContentFrequency(now.AddDate(0, 0, -100), 0))
	assert.Equal(t, "2.0 videos per day", ContentFrequency(now.AddDate(0, 0, -10), 20))
	assert.Equal(t, "1.4 videos per week", ContentFrequency(now.AddDate(0, 0, -50), 10))
	assert.Equal(t, "1.5 videos per month", ContentFrequency(now.AddDate(0, 0, -200), 10))
}
