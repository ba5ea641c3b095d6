package youtube

import (
	"fmt"
	"time"
)

// FormatCount renders a large count the way the frontend displays it
// (1.2K, 3.4M, 1.0B).
func FormatCount(n uint64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1_000_000_000)
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	}
	return fmt.Sprintf("%d", n)
}

// ChannelAge renders the time since the channel was created in years and
// months, falling back to days for young channels.
func ChannelAge(publishedAt time.Time) string {
	ageInDays := int(time.Since(publishedAt).Hours() / 24)
	ageInYears := ageInDays / 365
	ageInMonths := (ageInDays % 365) / 30

	if ageInYears > 0 {
		out := fmt.Sprintf("%d year%s", ageInYears, plural(ageInYears))
		if ageInMonths > 0 {
			out += fmt.Sprintf(" %d month%s", ageInMonths, plural(ageInMonths))
		}
		return out
	}
	if ageInMonths > 0 {
		return fmt.Sprintf("%d month%s", ageInMonths, plural(ageInMonths))
	}
	return fmt.Sprintf("%d day%s", ageInDays, plural(ageInDays))
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// SubscriberEngagement rates average views per subscriber.
func SubscriberEngagement(subscribers, views uint64) string {
	if subscribers == 0 {
		return "No subscribers"
	}
	avgViewsPerSub := float64(views) / float64(subscribers)
	switch {
	case avgViewsPerSub > 100:
		return "Excellent"
	case avgViewsPerSub > 50:
		return "Good"
	case avgViewsPerSub > 20:
		return "Average"
	}
	return "Needs Improvement"
}

// PerformanceNotes summarizes channel statistics as display strings.
func PerformanceNotes(subscribers, videos, views uint64) []string {
	var notes []string

	var avgViewsPerVideo, subsPerVideo float64
	if videos > 0 {
		avgViewsPerVideo = float64(views) / float64(videos)
		subsPerVideo = float64(subscribers) / float64(videos)
	}

	if avgViewsPerVideo > 10000 {
		notes = append(notes, "High view count per video")
	}
	if subsPerVideo > 100 {
		notes = append(notes, "Good subscriber growth rate")
	}
	if subscribers > 10000 {
		notes = append(notes, "Strong subscriber base")
	}
	if videos > 100 {
		notes = append(notes, "Consistent content creation")
	}

	if len(notes) == 0 {
		return []string{"Growing channel"}
	}
	return notes
}

// ContentFrequency renders the average upload cadence.
func ContentFrequency(publishedAt time.Time, videoCount uint64) string {
	ageInDays := int(time.Since(publishedAt).Hours() / 24)
	if ageInDays == 0 || videoCount == 0 {
		return "No content frequency data"
	}

	videosPerDay := float64(videoCount) / float64(ageInDays)
	videosPerWeek := videosPerDay * 7
	videosPerMonth := videosPerDay * 30

	switch {
	case videosPerDay >= 1:
		return fmt.Sprintf("%.1f videos per day", videosPerDay)
	case videosPerWeek >= 1:
		return fmt.Sprintf("%.1f videos per week", videosPerWeek)
	}
	return fmt.Sprintf("%.1f videos per month", videosPerMonth)
}
