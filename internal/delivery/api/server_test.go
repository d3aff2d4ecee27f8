package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rubbishday/config"
	"rubbishday/internal/delivery/api/middleware"
	"rubbishday/internal/delivery/api/response"
	"rubbishday/internal/delivery/api/router"
	"rubbishday/internal/delivery/api/router/handler"
	deliverycontext "rubbishday/internal/delivery/context"
	"rubbishday/internal/domain/entity"
	"rubbishday/internal/domain/service"
	"rubbishday/internal/domain/skill"
	mockService "rubbishday/internal/mocks/service"
	mockUsecase "rubbishday/internal/mocks/usecase"
	"rubbishday/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const collectionEnvelope = `{
	"version": "1.0",
	"session": {"new": true, "sessionId": "amzn1.echo-api.session.1", "application": {"applicationId": "amzn1.ask.skill.test"}},
	"context": {
		"System": {
			"application": {"applicationId": "amzn1.ask.skill.test"},
			"user": {"userId": "amzn1.ask.account.1", "permissions": {"consentToken": "consent-token"}},
			"device": {"deviceId": "amzn1.ask.device.ABC"},
			"apiEndpoint": "https://api.eu.amazonalexa.com",
			"apiAccessToken": "access-token"
		}
	},
	"request": {
		"type": "IntentRequest",
		"requestId": "amzn1.echo-api.request.1",
		"timestamp": "2024-03-06T09:30:00Z",
		"locale": "en-GB",
		"intent": {"name": "ReadCollectionCalender"}
	}
}`

type serverFixtures struct {
	echo           *echo.Echo
	collectionUC   *mockUsecase.MockCollectionUsecase
	conversationUC *mockUsecase.MockConversationUsecase
	verifier       *mockService.MockRequestVerifier
}

func createTestServer(t *testing.T, verifySignature bool) serverFixtures {
	collectionUC := mockUsecase.NewMockCollectionUsecase(t)
	conversationUC := mockUsecase.NewMockConversationUsecase(t)
	verifier := mockService.NewMockRequestVerifier(t)

	cfg := &config.Config{
		Skill: &config.SkillConfig{VerifySignature: verifySignature},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := newEcho(cfg, logger, router.RouterParams{
		SkillHandler: handler.NewSkillHandler(handler.SkillHandlerParams{
			CollectionUC:   collectionUC,
			ConversationUC: conversationUC,
			Verifier:       verifier,
			Logger:         logger,
		}),
		SignatureMiddleware: middleware.NewSignatureMiddleware(middleware.SignatureMiddlewareParams{
			Verifier: verifier,
			Config:   cfg,
			Logger:   logger,
		}),
	})

	return serverFixtures{
		echo:           e,
		collectionUC:   collectionUC,
		conversationUC: conversationUC,
		verifier:       verifier,
	}
}

func postSkill(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/skill", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) skill.ResponseEnvelope {
	t.Helper()

	var env skill.ResponseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body
}

func TestServer_HealthCheck(t *testing.T) {
	fx := createTestServer(t, false)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_CollectionIntent(t *testing.T) {
	fx := createTestServer(t, false)
	timestamp := time.Date(2024, 3, 6, 9, 30, 0, 0, time.UTC)

	fx.verifier.EXPECT().
		VerifyRequest("amzn1.ask.skill.test", mock.MatchedBy(timestamp.Equal), mock.Anything).
		Return(nil)

	want := skill.NewResponseBuilder().
		Speak("The rubbish collection day for High Street is Monday.  The next collection is for Refuse and Recycling.").
		StandardCard("Rubbish Day", "Collection day: Monday.\n\n  Your next collection: Refuse and Recycling.").
		EndSession(true).
		Response()
	fx.collectionUC.EXPECT().
		ReadCollectionCalendar(mock.Anything, &usecase.CollectionRequest{
			Device: entity.DeviceCall{
				DeviceID:       "amzn1.ask.device.ABC",
				APIEndpoint:    "https://api.eu.amazonalexa.com",
				APIAccessToken: "access-token",
			},
			ConsentToken: "consent-token",
		}).
		Return(want, nil)

	rec := postSkill(fx.echo, collectionEnvelope)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "1.0", env.Version)
	require.NotNil(t, env.Response)
	assert.Equal(t, want.OutputSpeech.SSML, env.Response.OutputSpeech.SSML)
	assert.Equal(t, skill.CardTypeStandard, env.Response.Card.Type)
	require.NotNil(t, env.Response.ShouldEndSession)
	assert.True(t, *env.Response.ShouldEndSession)
}

func TestServer_UnclassifiedErrorBecomesApology(t *testing.T) {
	fx := createTestServer(t, false)
	cause := errors.New("address decode failed")
	apology := skill.NewResponseBuilder().Speak("sorry").Ask("sorry").Response()

	fx.verifier.EXPECT().VerifyRequest(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	fx.collectionUC.EXPECT().ReadCollectionCalendar(mock.Anything, mock.Anything).Return(nil, cause)
	fx.conversationUC.EXPECT().Apology(mock.Anything, cause).Return(apology)

	rec := postSkill(fx.echo, collectionEnvelope)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "<speak>sorry</speak>", env.Response.OutputSpeech.SSML)
	require.NotNil(t, env.Response.Reprompt)
}

func TestServer_Dispatch(t *testing.T) {
	turn := skill.NewResponseBuilder().Speak("turn").Response()

	tests := []struct {
		name    string
		request string
		expect  func(fx serverFixtures)
	}{
		{
			name:    "launch",
			request: `{"type": "LaunchRequest", "requestId": "r1", "timestamp": "2024-03-06T09:30:00Z"}`,
			expect: func(fx serverFixtures) {
				fx.conversationUC.EXPECT().Welcome(mock.Anything).Return(turn)
			},
		},
		{
			name:    "help",
			request: `{"type": "IntentRequest", "requestId": "r1", "timestamp": "2024-03-06T09:30:00Z", "intent": {"name": "AMAZON.HelpIntent"}}`,
			expect: func(fx serverFixtures) {
				fx.conversationUC.EXPECT().Help(mock.Anything).Return(turn)
			},
		},
		{
			name:    "cancel",
			request: `{"type": "IntentRequest", "requestId": "r1", "timestamp": "2024-03-06T09:30:00Z", "intent": {"name": "AMAZON.CancelIntent"}}`,
			expect: func(fx serverFixtures) {
				fx.conversationUC.EXPECT().Goodbye(mock.Anything).Return(turn)
			},
		},
		{
			name:    "stop",
			request: `{"type": "IntentRequest", "requestId": "r1", "timestamp": "2024-03-06T09:30:00Z", "intent": {"name": "AMAZON.StopIntent"}}`,
			expect: func(fx serverFixtures) {
				fx.conversationUC.EXPECT().Goodbye(mock.Anything).Return(turn)
			},
		},
		{
			name:    "session ended",
			request: `{"type": "SessionEndedRequest", "requestId": "r1", "timestamp": "2024-03-06T09:30:00Z", "reason": "USER_INITIATED"}`,
			expect: func(fx serverFixtures) {
				fx.conversationUC.EXPECT().SessionEnded(mock.Anything, "USER_INITIATED").Return(turn)
			},
		},
		{
			name:    "unknown intent",
			request: `{"type": "IntentRequest", "requestId": "r1", "timestamp": "2024-03-06T09:30:00Z", "intent": {"name": "AMAZON.FallbackIntent"}}`,
			expect: func(fx serverFixtures) {
				fx.conversationUC.EXPECT().Apology(mock.Anything, mock.Anything).Return(turn)
			},
		},
		{
			name:    "unknown request type",
			request: `{"type": "Display.ElementSelected", "requestId": "r1", "timestamp": "2024-03-06T09:30:00Z"}`,
			expect: func(fx serverFixtures) {
				fx.conversationUC.EXPECT().Apology(mock.Anything, mock.Anything).Return(turn)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestServer(t, false)
			fx.verifier.EXPECT().VerifyRequest(mock.Anything, mock.Anything, mock.Anything).Return(nil)
			tt.expect(fx)

			rec := postSkill(fx.echo, `{"version": "1.0", "request": `+tt.request+`}`)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "<speak>turn</speak>", decodeEnvelope(t, rec).Response.OutputSpeech.SSML)
		})
	}
}

func TestServer_RequestNotVerified(t *testing.T) {
	fx := createTestServer(t, false)

	fx.verifier.EXPECT().
		VerifyRequest(mock.Anything, mock.Anything, mock.Anything).
		Return(errors.WithStack(service.ErrTimestampOutOfBounds))

	rec := postSkill(fx.echo, collectionEnvelope)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "REQUEST_NOT_VERIFIED", body.Error.Code)
	assert.Equal(t, "request timestamp outside tolerance", body.Error.Details)
}

func TestServer_InvalidEnvelope(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `not json`},
		{name: "missing version", body: `{"request": {"type": "LaunchRequest", "requestId": "r1", "timestamp": "2024-03-06T09:30:00Z"}}`},
		{name: "missing request type", body: `{"version": "1.0", "request": {"requestId": "r1", "timestamp": "2024-03-06T09:30:00Z"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestServer(t, false)

			rec := postSkill(fx.echo, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, "INVALID_ENVELOPE", body.Error.Code)
			assert.NotEmpty(t, body.Error.Details)
		})
	}
}

func TestServer_SignatureVerified(t *testing.T) {
	fx := createTestServer(t, true)
	turn := skill.NewResponseBuilder().Speak("turn").Response()

	fx.verifier.EXPECT().
		VerifySignature(mock.Anything, mock.Anything, []byte(collectionEnvelope)).
		Return(nil)
	fx.verifier.EXPECT().VerifyRequest(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	fx.collectionUC.EXPECT().ReadCollectionCalendar(mock.Anything, mock.Anything).Return(turn, nil)

	rec := postSkill(fx.echo, collectionEnvelope)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_SignatureRejected(t *testing.T) {
	fx := createTestServer(t, true)

	fx.verifier.EXPECT().
		VerifySignature(mock.Anything, mock.Anything, mock.Anything).
		Return(errors.WithStack(service.ErrSignatureInvalid))

	rec := postSkill(fx.echo, collectionEnvelope)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "REQUEST_NOT_VERIFIED", decodeError(t, rec).Error.Code)
}
