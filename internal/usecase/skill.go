package usecase

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"strings"

	"star-gazer/internal/domain"
	"star-gazer/internal/response"
)

// ContentStore is the read-only text lookup the skill answers from.
type ContentStore interface {
	Info(name string) (string, bool)
	Myth(name string) (string, bool)
}

// Result is the outcome of one turn: the response to speak and the session
// attributes to carry into the next turn.
type Result struct {
	Response   response.Response
	Attributes map[string]any
}

// SessionEnd describes why Alexa closed a session.
type SessionEnd struct {
	SessionID string
	RequestID string
	Reason    string
	Error     string
}

// Skill answers Star Gazer requests. It holds no per-session state; every
// call is a function of its arguments and the content store.
type Skill struct {
	content ContentStore
}

func NewSkill(content ContentStore) (*Skill, error) {
	if content == nil {
		return nil, errors.New("usecase: content store must not be nil")
	}
	return &Skill{content: content}, nil
}

func (s *Skill) OnSessionStarted(ctx context.Context, sessionID, requestID string) {
	slog.InfoContext(ctx, "session started", "sessionId", sessionID, "requestId", requestID)
}

func (s *Skill) OnLaunch(_ context.Context, attributes map[string]any) Result {
	return Result{
		Response:   response.Ask(response.PlainText(welcomeSpeech), response.PlainText(welcomeReprompt)),
		Attributes: maps.Clone(attributes),
	}
}

// OnSessionEnded only logs. Alexa discards any response to this request.
func (s *Skill) OnSessionEnded(ctx context.Context, end SessionEnd) {
	attrs := []any{"sessionId", end.SessionID, "requestId", end.RequestID, "reason", end.Reason}
	if end.Error != "" {
		attrs = append(attrs, "error", end.Error)
	}
	slog.InfoContext(ctx, "session ended", attrs...)
}

// OnIntent routes intent to its handler. An unregistered intent name yields
// an *Error with ErrorUnknownIntent.
func (s *Skill) OnIntent(_ context.Context, intent domain.Intent, attributes map[string]any) (Result, error) {
	attrs := maps.Clone(attributes)
	if attrs == nil {
		attrs = map[string]any{}
	}

	var r response.Response
	switch intent.Name {
	case domain.IntentConstellations:
		r = s.constellationInfo(intent, attrs)
	case domain.IntentConstellationsMyth:
		r = s.constellationMyth(intent)
	case domain.IntentGetMoreInfo:
		r = s.moreInfo(attrs)
	case domain.IntentStop:
		r = response.Tell(response.PlainText(stopSpeech))
	case domain.IntentCancel:
		r = response.AskWithCard(response.PlainText(cancelSpeech), nil, "", "")
	case domain.IntentHelp:
		help := response.Speech{Text: helpSpeech, Type: response.SpeechPlainText}
		r = response.AskWithCard(help, help, "", "")
	default:
		return Result{}, NewError(ErrorUnknownIntent, string(intent.Name), nil)
	}
	return Result{Response: r, Attributes: attrs}, nil
}

// Fallback is spoken when a request cannot be matched to a handler.
func (s *Skill) Fallback(attributes map[string]any) Result {
	return Result{
		Response:   response.Ask(response.PlainText(fallbackSpeech), response.PlainText(helpSpeech)),
		Attributes: maps.Clone(attributes),
	}
}

// constellationInfo remembers the requested name even when it is empty or
// unknown, so a later "tell me more" refers to the latest request.
func (s *Skill) constellationInfo(intent domain.Intent, attrs map[string]any) response.Response {
	name := constellationSlot(intent)
	attrs[domain.AttrConstellationName] = name

	text, ok := s.content.Info(name)
	if !ok {
		return apology(unknownConstellation)
	}
	return response.AskWithCard(
		response.Speech{Text: text + moreInfoPrompt, Type: response.SpeechPlainText},
		response.Speech{Text: moreInfoPrompt, Type: response.SpeechPlainText},
		name+infoCardSuffix,
		text,
	)
}

func (s *Skill) constellationMyth(intent domain.Intent) response.Response {
	name := constellationSlot(intent)

	text, ok := s.content.Myth(name)
	if !ok {
		return apology(unknownConstellation)
	}
	return response.AskWithCard(
		response.Speech{Text: text + mythFollowUp, Type: response.SpeechPlainText},
		response.Speech{Text: mythReprompt, Type: response.SpeechPlainText},
		name+mythCardSuffix,
		text,
	)
}

// moreInfo tells the myth for the remembered constellation and ends the
// session. Without a remembered name that has a myth, it keeps the session
// open and asks the user to name one.
func (s *Skill) moreInfo(attrs map[string]any) response.Response {
	name, _ := attrs[domain.AttrConstellationName].(string)

	text, ok := s.content.Myth(name)
	if !ok {
		return apology(noPriorConstellation)
	}
	return response.TellWithCard(
		response.Speech{Text: text, Type: response.SpeechPlainText},
		name+mythCardSuffix,
		text,
	)
}

func constellationSlot(intent domain.Intent) string {
	v, _ := intent.SlotValue(domain.SlotConstellation)
	return strings.ToLower(v)
}

func apology(text string) response.Response {
	return response.AskWithCard(response.PlainText(text), response.PlainText(text), "", "")
}
