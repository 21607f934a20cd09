package usecases

import (
	"context"
	"fmt"

	"referral-hub.backend/internal/domain/entities"
	domainerrors "referral-hub.backend/internal/domain/errors"
)

// CompletionClient is the external text-completion service the chat endpoint
// passes through to. The service is opaque: its reply is returned verbatim.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, message string) (string, error)
}

// ChatUsecase builds the user-context prompt and forwards chat messages to
// the completion service. Failures are never fatal to the rest of the
// system; callers surface them as a user-visible message string.
type ChatUsecase struct {
	client CompletionClient
}

// NewChatUsecase creates a new chat usecase. client may be nil when no
// completion service is configured.
func NewChatUsecase(client CompletionClient) *ChatUsecase {
	return &ChatUsecase{client: client}
}

// Chat forwards the message with the user's referral stats as context.
func (u *ChatUsecase) Chat(ctx context.Context, user *entities.User, message string) (string, error) {
	if u.client == nil {
		return "", domainerrors.ErrExternalService
	}

	systemPrompt := fmt.Sprintf(
		"You are a helpful assistant for a referral program.\n"+
			"Current user: %s\n"+
			"User earnings: $%.2f\n"+
			"User referrals: %d\n"+
			"User referral code: %s\n\n"+
			"Help users understand the referral program ($%.0f for new users, "+
			"$%.0f for referrers), share tips to increase referrals, and answer "+
			"account questions. Be concise and actionable.",
		user.FullName(), user.TotalEarnings, user.TotalReferrals, user.ReferralCode,
		NewUserBonusAmount, ReferrerBonusAmount,
	)

	reply, err := u.client.Complete(ctx, systemPrompt, message)
	if err != nil {
		return "", domainerrors.NewError("completion service failed", domainerrors.ErrExternalService)
	}
	return reply, nil
}
