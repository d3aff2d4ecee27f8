package usecase

import (
	"context"

	"rubbishday/internal/domain/skill"
)

// ConversationUsecase answers the fixed conversational turns of the skill
type ConversationUsecase interface {
	// Welcome answers a LaunchRequest.
	Welcome(ctx context.Context) *skill.Response

	// Help answers AMAZON.HelpIntent.
	Help(ctx context.Context) *skill.Response

	// Goodbye answers AMAZON.CancelIntent and AMAZON.StopIntent.
	Goodbye(ctx context.Context) *skill.Response

	// SessionEnded answers a SessionEndedRequest.
	SessionEnded(ctx context.Context, reason string) *skill.Response

	// Apology answers anything that could not be handled.
	Apology(ctx context.Context, cause error) *skill.Response
}
