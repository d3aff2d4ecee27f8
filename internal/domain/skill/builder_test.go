package skill

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseBuilder_SpeakAndAsk(t *testing.T) {
	resp := NewResponseBuilder().
		Speak("Hello").
		Ask("Anything else?").
		Response()

	require.NotNil(t, resp.OutputSpeech)
	assert.Equal(t, "SSML", resp.OutputSpeech.Type)
	assert.Equal(t, "<speak>Hello</speak>", resp.OutputSpeech.SSML)
	assert.Equal(t, "Hello", resp.OutputSpeech.SpokenText())

	require.NotNil(t, resp.Reprompt)
	assert.Equal(t, "<speak>Anything else?</speak>", resp.Reprompt.OutputSpeech.SSML)

	require.NotNil(t, resp.ShouldEndSession)
	assert.False(t, *resp.ShouldEndSession)
}

func TestResponseBuilder_SpeakOnlyLeavesSessionUnset(t *testing.T) {
	resp := NewResponseBuilder().Speak("Bye").Response()

	assert.Nil(t, resp.Reprompt)
	assert.Nil(t, resp.ShouldEndSession)
	assert.Nil(t, resp.Card)
}

func TestResponseBuilder_PermissionsConsentCardJSON(t *testing.T) {
	resp := NewResponseBuilder().
		Speak("Please enable Location permissions in the Amazon Alexa app.").
		PermissionsConsentCard(PermissionDeviceAddress).
		Response()

	body, err := json.Marshal(NewResponseEnvelope(resp))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"version": "1.0",
		"response": {
			"outputSpeech": {"type": "SSML", "ssml": "<speak>Please enable Location permissions in the Amazon Alexa app.</speak>"},
			"card": {"type": "AskForPermissionsConsent", "permissions": ["read::alexa:device:all:address"]}
		}
	}`, string(body))
}

func TestResponseBuilder_StandardCardEndsSession(t *testing.T) {
	resp := NewResponseBuilder().
		StandardCard("Rubbish Day", "Collection day: Monday.").
		EndSession(true).
		Response()

	require.NotNil(t, resp.Card)
	assert.Equal(t, CardTypeStandard, resp.Card.Type)
	assert.Equal(t, "Rubbish Day", resp.Card.Title)
	require.NotNil(t, resp.ShouldEndSession)
	assert.True(t, *resp.ShouldEndSession)
}

func TestRequestEnvelope_Accessors(t *testing.T) {
	raw := `{
		"version": "1.0",
		"context": {"System": {
			"device": {"deviceId": "device-1"},
			"user": {"userId": "user-1", "permissions": {"consentToken": "token-1"}},
			"apiEndpoint": "https://api.eu.amazonalexa.com",
			"apiAccessToken": "access-1"
		}},
		"request": {"type": "IntentRequest", "requestId": "req-1", "timestamp": "2024-05-01T10:00:00Z",
			"intent": {"name": "ReadCollectionCalender"}}
	}`

	var env RequestEnvelope
	require.NoError(t, json.Unmarshal([]byte(raw), &env))

	assert.Equal(t, IntentReadCollectionCalendar, env.IntentName())
	assert.Equal(t, "token-1", env.ConsentToken())
	assert.Equal(t, "device-1", env.Context.System.Device.DeviceID)
	assert.Equal(t, "https://api.eu.amazonalexa.com", env.Context.System.APIEndpoint)

	var bare RequestEnvelope
	assert.Empty(t, bare.IntentName())
	assert.Empty(t, bare.ConsentToken())
}
