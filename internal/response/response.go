// Package response shapes skill output into Alexa response envelopes.
package response

import (
	"strings"

	"star-gazer/internal/domain"
)

const envelopeVersion = "1.0"

type SpeechType string

const (
	SpeechPlainText SpeechType = "PlainText"
	SpeechSSML      SpeechType = "SSML"
)

// Speaker is anything that can be rendered as speech. Callers pass either a
// bare PlainText string or a structured Speech value.
type Speaker interface {
	Speech() Speech
}

// PlainText is the bare-string shape; it always renders as plain text.
type PlainText string

func (p PlainText) Speech() Speech {
	return Speech{Text: string(p), Type: SpeechPlainText}
}

// Speech is the structured shape with an explicit format tag.
type Speech struct {
	Text string
	Type SpeechType
}

func (s Speech) Speech() Speech {
	if s.Type == "" {
		s.Type = SpeechPlainText
	}
	return s
}

type Card struct {
	Title   string
	Content string
}

// Response is the normalized form produced by every emission mode.
type Response struct {
	OutputSpeech     Speech
	Reprompt         *Speech
	Card             *Card
	ShouldEndSession bool
}

// Ask keeps the session open; reprompt is spoken if the user stays silent.
func Ask(speech, reprompt Speaker) Response {
	return AskWithCard(speech, reprompt, "", "")
}

// AskWithCard is Ask with an optional card. reprompt may be nil, and the card
// is only attached when both title and content are set.
func AskWithCard(speech, reprompt Speaker, cardTitle, cardContent string) Response {
	return Response{
		OutputSpeech: normalize(speech),
		Reprompt:     optional(reprompt),
		Card:         newCard(cardTitle, cardContent),
	}
}

// Tell ends the session after speaking.
func Tell(speech Speaker) Response {
	return TellWithCard(speech, "", "")
}

func TellWithCard(speech Speaker, cardTitle, cardContent string) Response {
	return Response{
		OutputSpeech:     normalize(speech),
		Card:             newCard(cardTitle, cardContent),
		ShouldEndSession: true,
	}
}

// Envelope renders r as the JSON document Alexa expects, echoing attributes
// back so they persist into the next turn.
func (r Response) Envelope(attributes map[string]any) domain.ResponseEnvelope {
	body := domain.ResponseBody{
		OutputSpeech:     outputSpeech(r.OutputSpeech),
		ShouldEndSession: r.ShouldEndSession,
	}
	if r.Reprompt != nil {
		body.Reprompt = &domain.Reprompt{OutputSpeech: *outputSpeech(*r.Reprompt)}
	}
	if r.Card != nil {
		body.Card = &domain.Card{Type: "Simple", Title: r.Card.Title, Content: r.Card.Content}
	}
	var attrs map[string]any
	if len(attributes) > 0 {
		attrs = attributes
	}
	return domain.ResponseEnvelope{
		Version:           envelopeVersion,
		SessionAttributes: attrs,
		Response:          body,
	}
}

func normalize(s Speaker) Speech {
	if s == nil {
		return PlainText("").Speech()
	}
	return s.Speech()
}

func optional(s Speaker) *Speech {
	if s == nil {
		return nil
	}
	out := s.Speech()
	return &out
}

func newCard(title, content string) *Card {
	if title == "" || content == "" {
		return nil
	}
	return &Card{Title: title, Content: content}
}

func outputSpeech(s Speech) *domain.OutputSpeech {
	if s.Type == SpeechSSML {
		ssml := strings.TrimSpace(s.Text)
		if !strings.HasPrefix(ssml, "<speak>") {
			ssml = "<speak>" + ssml + "</speak>"
		}
		return &domain.OutputSpeech{Type: string(SpeechSSML), SSML: ssml}
	}
	return &domain.OutputSpeech{Type: string(SpeechPlainText), Text: s.Text}
}
