package skill

import "strings"

const outputSpeechTypeSSML = "SSML"

// ResponseBuilder assembles a Response for one turn.
type ResponseBuilder struct {
	resp Response
}

// NewResponseBuilder returns an empty builder.
func NewResponseBuilder() *ResponseBuilder {
	return &ResponseBuilder{}
}

// Speak sets the output speech. The text may already contain SSML tags.
func (b *ResponseBuilder) Speak(text string) *ResponseBuilder {
	b.resp.OutputSpeech = ssml(text)

	return b
}

// Ask sets the reprompt and keeps the session open.
func (b *ResponseBuilder) Ask(text string) *ResponseBuilder {
	b.resp.Reprompt = &Reprompt{OutputSpeech: ssml(text)}

	return b.EndSession(false)
}

// EndSession sets shouldEndSession explicitly.
func (b *ResponseBuilder) EndSession(end bool) *ResponseBuilder {
	b.resp.ShouldEndSession = &end

	return b
}

// StandardCard attaches a text card to the Alexa app.
func (b *ResponseBuilder) StandardCard(title, text string) *ResponseBuilder {
	b.resp.Card = &Card{
		Type:  CardTypeStandard,
		Title: title,
		Text:  text,
	}

	return b
}

// PermissionsConsentCard attaches a card asking the customer to grant the given permissions.
func (b *ResponseBuilder) PermissionsConsentCard(permissions ...string) *ResponseBuilder {
	b.resp.Card = &Card{
		Type:        CardTypeAskForPermissionsConsent,
		Permissions: permissions,
	}

	return b
}

// Response returns the built response.
func (b *ResponseBuilder) Response() *Response {
	resp := b.resp

	return &resp
}

func ssml(text string) *OutputSpeech {
	if !strings.HasPrefix(text, "<speak>") {
		text = "<speak>" + text + "</speak>"
	}

	return &OutputSpeech{
		Type: outputSpeechTypeSSML,
		SSML: text,
	}
}

// SpokenText strips the <speak> wrapper from an output speech.
func (s *OutputSpeech) SpokenText() string {
	if s == nil {
		return ""
	}

	return strings.TrimSuffix(strings.TrimPrefix(s.SSML, "<speak>"), "</speak>")
}
