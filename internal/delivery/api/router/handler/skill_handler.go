package handler

import (
	"context"
	"log/slog"
	"time"

	"rubbishday/internal/delivery/api/response"
	deliverycontext "rubbishday/internal/delivery/context"
	"rubbishday/internal/domain/entity"
	domainerrors "rubbishday/internal/domain/errors"
	"rubbishday/internal/domain/service"
	"rubbishday/internal/domain/skill"
	"rubbishday/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SkillHandlerParams holds dependencies for SkillHandler, injected by Fx.
type SkillHandlerParams struct {
	fx.In

	CollectionUC   usecase.CollectionUsecase
	ConversationUC usecase.ConversationUsecase
	Verifier       service.RequestVerifier
	Logger         *slog.Logger
}

// SkillHandler is the Alexa custom skill endpoint
type SkillHandler struct {
	collectionUC   usecase.CollectionUsecase
	conversationUC usecase.ConversationUsecase
	verifier       service.RequestVerifier
	now            func() time.Time
	logger         *slog.Logger
}

// NewSkillHandler is the constructor for SkillHandler
func NewSkillHandler(params SkillHandlerParams) *SkillHandler {
	return &SkillHandler{
		collectionUC:   params.CollectionUC,
		conversationUC: params.ConversationUC,
		verifier:       params.Verifier,
		now:            time.Now,
		logger:         params.Logger,
	}
}

// HandleSkillRequest verifies the envelope, routes it to the matching turn and writes the response envelope.
// Anything the turn cannot handle becomes the spoken apology, never an HTTP error.
func (h *SkillHandler) HandleSkillRequest(c echo.Context) error {
	var env skill.RequestEnvelope
	if err := c.Bind(&env); err != nil {
		return domainerrors.ErrInvalidEnvelope.WithDetails(err.Error())
	}

	if err := c.Validate(&env); err != nil {
		return domainerrors.ErrInvalidEnvelope.WithDetails(err.Error())
	}

	if err := h.verifier.VerifyRequest(env.Context.System.Application.ApplicationID, env.Request.Timestamp, h.now()); err != nil {
		return domainerrors.ErrRequestNotVerified.WithDetails(err.Error())
	}

	ctx := c.Request().Context()
	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Debug("Skill request received",
		slog.String("type", env.Request.Type),
		slog.String("intent", env.IntentName()),
		slog.String("alexa_request_id", env.Request.RequestID),
	)

	resp, err := h.dispatch(ctx, &env)
	if err != nil {
		resp = h.conversationUC.Apology(ctx, err)
	}

	return response.Skill(c, resp)
}

func (h *SkillHandler) dispatch(ctx context.Context, env *skill.RequestEnvelope) (*skill.Response, error) {
	switch env.Request.Type {
	case skill.RequestTypeLaunch:
		return h.conversationUC.Welcome(ctx), nil
	case skill.RequestTypeSessionEnded:
		return h.conversationUC.SessionEnded(ctx, env.Request.Reason), nil
	case skill.RequestTypeIntent:
		switch env.IntentName() {
		case skill.IntentReadCollectionCalendar:
			return h.collectionUC.ReadCollectionCalendar(ctx, collectionRequest(env))
		case skill.IntentHelp:
			return h.conversationUC.Help(ctx), nil
		case skill.IntentCancel, skill.IntentStop:
			return h.conversationUC.Goodbye(ctx), nil
		}
	}

	return nil, errors.Errorf("no handler for request type %q intent %q", env.Request.Type, env.IntentName())
}

func collectionRequest(env *skill.RequestEnvelope) *usecase.CollectionRequest {
	system := env.Context.System

	return &usecase.CollectionRequest{
		Device: entity.DeviceCall{
			DeviceID:       system.Device.DeviceID,
			APIEndpoint:    system.APIEndpoint,
			APIAccessToken: system.APIAccessToken,
		},
		ConsentToken: env.ConsentToken(),
	}
}
