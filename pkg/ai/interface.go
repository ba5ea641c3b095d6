package ai

import "context"

// ReplyService is the interface for comment-reply generation.
// Implement this interface to add real AI providers later; the default
// implementation is the simulated template generator.
type ReplyService interface {
	// GenerateReply produces a reply to a viewer comment using the video
	// context and transcript supplied by the creator.
	GenerateReply(ctx context.Context, videoContext, transcript, comment string) (string, error)
	// ThankYouReply produces the canned acknowledgement used by the
	// comment auto-reply run.
	ThankYouReply(author string) string
}
