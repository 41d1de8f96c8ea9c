package handler

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"

	"star-gazer/internal/domain"
	"star-gazer/internal/usecase"
)

// Skill is the capability set the handler composes: lifecycle hooks plus
// intent dispatch.
type Skill interface {
	OnSessionStarted(ctx context.Context, sessionID, requestID string)
	OnLaunch(ctx context.Context, attributes map[string]any) usecase.Result
	OnIntent(ctx context.Context, intent domain.Intent, attributes map[string]any) (usecase.Result, error)
	OnSessionEnded(ctx context.Context, end usecase.SessionEnd)
	Fallback(attributes map[string]any) usecase.Result
}

// TurnRecorder persists an audit record of a completed turn.
type TurnRecorder interface {
	RecordTurn(ctx context.Context, turn domain.Turn, userID string) error
}

type Handler struct {
	skill    Skill
	appID    string
	recorder TurnRecorder
}

type Option func(*Handler)

// WithApplicationID rejects requests addressed to any other skill id.
func WithApplicationID(appID string) Option {
	return func(h *Handler) {
		h.appID = strings.TrimSpace(appID)
	}
}

// WithTurnRecorder enables the turn audit log.
func WithTurnRecorder(r TurnRecorder) Option {
	return func(h *Handler) {
		h.recorder = r
	}
}

func NewHandler(skill Skill, opts ...Option) (*Handler, error) {
	if skill == nil {
		return nil, errors.New("handler: skill must not be nil")
	}
	h := &Handler{skill: skill}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Handle is the Lambda entry point for Alexa requests. SessionEndedRequest
// yields a nil envelope: Alexa does not accept speech once a session closes.
func (h *Handler) Handle(ctx context.Context, env domain.RequestEnvelope) (*domain.ResponseEnvelope, error) {
	logger := slog.Default().With(
		"correlationId", correlationID(ctx),
		"requestId", env.Request.RequestID,
		"sessionId", env.Session.SessionID,
		"requestType", string(env.Request.Type),
	)

	if h.appID != "" && env.ApplicationID() != h.appID {
		logger.WarnContext(ctx, "rejected request for unexpected application", "applicationId", env.ApplicationID())
		return nil, usecase.NewError(usecase.ErrorInvalidApplication, "application_id_mismatch", nil)
	}

	if env.Session.New {
		h.skill.OnSessionStarted(ctx, env.Session.SessionID, env.Request.RequestID)
	}

	attrs := env.Session.Attributes

	switch env.Request.Type {
	case domain.RequestTypeLaunch:
		res := h.skill.OnLaunch(ctx, attrs)
		h.record(ctx, logger, env, "", res)
		return envelope(res), nil

	case domain.RequestTypeIntent:
		intent := env.Request.Intent
		logger = logger.With("intent", string(intent.Name))
		res, err := h.skill.OnIntent(ctx, intent, attrs)
		if err != nil {
			var ucErr *usecase.Error
			if !errors.As(err, &ucErr) || ucErr.Code != usecase.ErrorUnknownIntent {
				logger.ErrorContext(ctx, "intent failed", "err", err)
				return nil, err
			}
			logger.WarnContext(ctx, "no handler for intent", "err", err)
			res = h.skill.Fallback(attrs)
		}
		name, _ := intent.SlotValue(domain.SlotConstellation)
		h.record(ctx, logger, env, strings.ToLower(name), res)
		logger.InfoContext(ctx, "intent handled", "endSession", res.Response.ShouldEndSession)
		return envelope(res), nil

	case domain.RequestTypeSessionEnded:
		end := usecase.SessionEnd{
			SessionID: env.Session.SessionID,
			RequestID: env.Request.RequestID,
			Reason:    env.Request.Reason,
		}
		if env.Request.Error != nil {
			end.Error = env.Request.Error.Type + ": " + env.Request.Error.Message
		}
		h.skill.OnSessionEnded(ctx, end)
		return nil, nil

	default:
		logger.WarnContext(ctx, "unsupported request type")
		return nil, usecase.NewError(usecase.ErrorUnknownRequest, string(env.Request.Type), nil)
	}
}

// record writes the audit entry. Failures are logged and never reach the user.
func (h *Handler) record(ctx context.Context, logger *slog.Logger, env domain.RequestEnvelope, constellation string, res usecase.Result) {
	if h.recorder == nil {
		return
	}
	turn := domain.Turn{
		SessionID:     env.Session.SessionID,
		RequestID:     env.Request.RequestID,
		RequestType:   string(env.Request.Type),
		Intent:        string(env.Request.Intent.Name),
		Constellation: constellation,
		Speech:        res.Response.OutputSpeech.Text,
		EndedSession:  res.Response.ShouldEndSession,
	}
	if err := h.recorder.RecordTurn(ctx, turn, env.Session.User.UserID); err != nil {
		logger.ErrorContext(ctx, "failed to record turn", "err", err)
	}
}

func envelope(res usecase.Result) *domain.ResponseEnvelope {
	out := res.Response.Envelope(res.Attributes)
	return &out
}

func correlationID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return uuid.NewString()
}
