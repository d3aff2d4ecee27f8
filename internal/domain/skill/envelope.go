// Package skill models the parts of the Alexa custom skill request and response envelopes this service reads and writes.
package skill

import "time"

// Request types
const (
	RequestTypeLaunch       = "LaunchRequest"
	RequestTypeIntent       = "IntentRequest"
	RequestTypeSessionEnded = "SessionEndedRequest"
)

// Intent names
const (
	IntentReadCollectionCalendar = "ReadCollectionCalender"
	IntentHelp                   = "AMAZON.HelpIntent"
	IntentCancel                 = "AMAZON.CancelIntent"
	IntentStop                   = "AMAZON.StopIntent"
)

// PermissionDeviceAddress is the consent scope for the full device address.
const PermissionDeviceAddress = "read::alexa:device:all:address"

// RequestEnvelope is the body Alexa posts to the skill endpoint
type RequestEnvelope struct {
	Version string  `json:"version" validate:"required"`
	Session Session `json:"session"`
	Context Context `json:"context"`
	Request Request `json:"request"`
}

type Session struct {
	New         bool        `json:"new"`
	SessionID   string      `json:"sessionId"`
	Application Application `json:"application"`
	User        User        `json:"user"`
}

type Context struct {
	System System `json:"System"`
}

type System struct {
	Application    Application `json:"application"`
	User           User        `json:"user"`
	Device         Device      `json:"device"`
	APIEndpoint    string      `json:"apiEndpoint"`
	APIAccessToken string      `json:"apiAccessToken"`
}

type Application struct {
	ApplicationID string `json:"applicationId"`
}

type User struct {
	UserID      string       `json:"userId"`
	Permissions *Permissions `json:"permissions,omitempty"`
}

type Permissions struct {
	ConsentToken string `json:"consentToken"`
}

type Device struct {
	DeviceID string `json:"deviceId"`
}

type Request struct {
	Type      string    `json:"type" validate:"required"`
	RequestID string    `json:"requestId" validate:"required"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
	Locale    string    `json:"locale"`
	Intent    *Intent   `json:"intent,omitempty"`
	Reason    string    `json:"reason,omitempty"`
}

type Intent struct {
	Name string `json:"name"`
}

// IntentName returns the intent name, or "" for requests without an intent.
func (e *RequestEnvelope) IntentName() string {
	if e.Request.Intent == nil {
		return ""
	}

	return e.Request.Intent.Name
}

// ConsentToken returns the device-address consent token, or "" when the customer has not granted it.
func (e *RequestEnvelope) ConsentToken() string {
	if e.Context.System.User.Permissions == nil {
		return ""
	}

	return e.Context.System.User.Permissions.ConsentToken
}

// ResponseEnvelope is the body returned to Alexa
type ResponseEnvelope struct {
	Version           string         `json:"version"`
	SessionAttributes map[string]any `json:"sessionAttributes,omitempty"`
	Response          *Response      `json:"response"`
}

// Response is what Alexa says and shows for one turn
type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Card             *Card         `json:"card,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	ShouldEndSession *bool         `json:"shouldEndSession,omitempty"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	SSML string `json:"ssml"`
}

type Reprompt struct {
	OutputSpeech *OutputSpeech `json:"outputSpeech"`
}

// Card types
const (
	CardTypeStandard                 = "Standard"
	CardTypeAskForPermissionsConsent = "AskForPermissionsConsent"
)

type Card struct {
	Type        string   `json:"type"`
	Title       string   `json:"title,omitempty"`
	Text        string   `json:"text,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}

// NewResponseEnvelope wraps a response in a version 1.0 envelope.
func NewResponseEnvelope(resp *Response) *ResponseEnvelope {
	if resp == nil {
		resp = &Response{}
	}

	return &ResponseEnvelope{
		Version:  "1.0",
		Response: resp,
	}
}
