package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "rubbishday/internal/delivery/context"
	"rubbishday/internal/domain/skill"
	"rubbishday/internal/usecase"

	"go.uber.org/fx"
)

const (
	msgWelcome      = "Hello!  I can help you with what types of rubbish you need to put out.  Just say <break time='0.5s'/>'what's being collected this week'."
	msgGoodbye      = "Goodbye from the rubbish day skill!"
	msgSessionEnded = "Thanks for using rubbish day! Bye!"
	msgApology      = "Sorry, I had trouble doing what you asked. Please try again."
)

type conversationService struct {
	logger *slog.Logger
}

// ConversationServiceParams holds dependencies for ConversationService, injected by Fx.
type ConversationServiceParams struct {
	fx.In

	Logger *slog.Logger
}

// NewConversationService creates the service answering the skill's fixed turns
func NewConversationService(params ConversationServiceParams) usecase.ConversationUsecase {
	return &conversationService{
		logger: params.Logger,
	}
}

func (srv *conversationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *conversationService) Welcome(ctx context.Context) *skill.Response {
	srv.log(ctx).Info("Called skill handler for LaunchRequest")

	return skill.NewResponseBuilder().Speak(msgWelcome).Ask(msgWelcome).Response()
}

func (srv *conversationService) Help(ctx context.Context) *skill.Response {
	srv.log(ctx).Info("Called skill handler for AMAZON.HelpIntent")

	return skill.NewResponseBuilder().Speak(msgWelcome).Ask(msgWelcome).Response()
}

func (srv *conversationService) Goodbye(ctx context.Context) *skill.Response {
	srv.log(ctx).Info("Called skill handler for Cancel or Stop intents")

	return skill.NewResponseBuilder().Speak(msgGoodbye).Response()
}

func (srv *conversationService) SessionEnded(ctx context.Context, reason string) *skill.Response {
	srv.log(ctx).Info("Called skill handler for SessionEndedRequest", slog.String("reason", reason))

	return skill.NewResponseBuilder().Speak(msgSessionEnded).Ask(msgSessionEnded).Response()
}

// Apology logs the cause with its stack trace and asks the customer to try again
func (srv *conversationService) Apology(ctx context.Context, cause error) *skill.Response {
	if cause != nil {
		srv.log(ctx).Error("Unhandled skill error",
			slog.Any("error", cause),
			slog.String("stack", fmt.Sprintf("%+v", cause)),
		)
	}

	return skill.NewResponseBuilder().Speak(msgApology).Ask(msgApology).Response()
}
