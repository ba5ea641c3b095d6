package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReplyIsDeterministic(t *testing.T) {
	svc := NewSimulatedReplyService()

	first, err := svc.GenerateReply(context.Background(), "cooking channel", "today we bake bread", "great video!")
	require.NoError(t, err)
	second, err := svc.GenerateReply(context.Background(), "cooking channel", "today we bake bread", "great video!")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, `"great video!"`)
}

func TestThankYouReply(t *testing.T) {
	svc := NewSimulatedReplyService()
	assert.Equal(t, "Thank you for your comment, Alice!", svc.ThankYouReply("Alice"))
}
