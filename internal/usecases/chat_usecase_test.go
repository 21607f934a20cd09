package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"referral-hub.backend/internal/domain/entities"
	domainerrors "referral-hub.backend/internal/domain/errors"
	"referral-hub.backend/internal/usecases"
)

type stubCompletionClient struct {
	reply  string
	err    error
	system string
	user   string
}

func (s *stubCompletionClient) Complete(ctx context.Context, systemPrompt, message string) (string, error) {
	s.system = systemPrompt
	s.user = message
	return s.reply, s.err
}

func chatUser() *entities.User {
	return &entities.User{
		FirstName:      "Maria",
		LastName:       "Silva",
		ReferralCode:   "ABC123",
		TotalReferrals: 8,
		TotalEarnings:  425.0,
	}
}

func TestChatUsecase_Chat_Success(t *testing.T) {
	client := &stubCompletionClient{reply: "Share your link on social media."}
	uc := usecases.NewChatUsecase(client)

	reply, err := uc.Chat(context.Background(), chatUser(), "How do I get more referrals?")
	require.NoError(t, err)
	assert.Equal(t, "Share your link on social media.", reply)
	assert.Equal(t, "How do I get more referrals?", client.user)

	// The system prompt carries the user's live stats.
	assert.Contains(t, client.system, "Maria Silva")
	assert.Contains(t, client.system, "$425.00")
	assert.Contains(t, client.system, "ABC123")
}

func TestChatUsecase_Chat_NoClient(t *testing.T) {
	uc := usecases.NewChatUsecase(nil)

	_, err := uc.Chat(context.Background(), chatUser(), "hello")
	assert.ErrorIs(t, err, domainerrors.ErrExternalService)
}

func TestChatUsecase_Chat_ClientError(t *testing.T) {
	client := &stubCompletionClient{err: errors.New("upstream 500")}
	uc := usecases.NewChatUsecase(client)

	_, err := uc.Chat(context.Background(), chatUser(), "hello")
	assert.ErrorIs(t, err, domainerrors.ErrExternalService)
}
