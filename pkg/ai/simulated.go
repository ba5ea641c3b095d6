package ai

import (
	"context"
	"fmt"
)

// SimulatedReplyService generates replies from fixed templates. It stands in
// for a real LLM provider and keeps the endpoint contract stable until one
// is wired in.
type SimulatedReplyService struct{}

// NewSimulatedReplyService creates a new SimulatedReplyService
func NewSimulatedReplyService() *SimulatedReplyService {
	return &SimulatedReplyService{}
}

func (s *SimulatedReplyService) GenerateReply(_ context.Context, videoContext, transcript, comment string) (string, error) {
	return fmt.Sprintf("This is a simulated reply to your comment: %q based on the video context and transcript.", comment), nil
}

func (s *SimulatedReplyService) ThankYouReply(author string) string {
	return fmt.Sprintf("Thank you for your comment, %s!", author)
}
