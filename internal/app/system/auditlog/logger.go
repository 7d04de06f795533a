// internal/app/system/auditlog/logger.go

// Package auditlog is the structured side-channel for authentication
// events. Every event goes to zap; events also go to the audit store when
// one is configured. Non-fatal failures, most importantly a failed
// organization linkage during signup, are reported here so they are
// observable even though they never surface to the caller.
package auditlog

import (
	"context"

	"go.uber.org/zap"

	"github.com/harmonyhealth/harmony/internal/app/store/audit"
)

// Sink receives audit events for persistence. *audit.Store implements it;
// tests substitute a recorder.
type Sink interface {
	Insert(ctx context.Context, e audit.Event) error
}

// Mode controls where auth events are written.
// "all" (sink + zap), "db" (sink only), "log" (zap only), "off".
type Mode string

const (
	ModeAll Mode = "all"
	ModeDB  Mode = "db"
	ModeLog Mode = "log"
	ModeOff Mode = "off"
)

// Logger records audit events. A nil *Logger is a no-op so call sites do
// not need nil checks.
type Logger struct {
	sink   Sink
	zapLog *zap.Logger
	mode   Mode
}

// New creates an audit logger. sink may be nil (zap only).
func New(sink Sink, zapLog *zap.Logger, mode Mode) *Logger {
	if mode == "" {
		mode = ModeAll
	}
	return &Logger{sink: sink, zapLog: zapLog, mode: mode}
}

// Log records one event according to the configured mode.
func (l *Logger) Log(ctx context.Context, e audit.Event) {
	if l == nil || l.mode == ModeOff {
		return
	}
	e.Category = audit.CategoryAuth

	if l.mode == ModeAll || l.mode == ModeLog {
		l.logToZap(e)
	}
	if (l.mode == ModeAll || l.mode == ModeDB) && l.sink != nil {
		if err := l.sink.Insert(ctx, e); err != nil {
			l.zapLog.Warn("audit event write failed", zap.Error(err),
				zap.String("event_type", e.EventType))
		}
	}
}

func (l *Logger) logToZap(e audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("event_type", e.EventType),
		zap.Bool("success", e.Success),
	}
	if e.UserID != "" {
		fields = append(fields, zap.String("user_id", e.UserID))
	}
	if e.Email != "" {
		fields = append(fields, zap.String("email", e.Email))
	}
	if e.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", e.FailureReason))
	}
	for k, v := range e.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if e.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

// SignupCompleted records a successful signup.
func (l *Logger) SignupCompleted(ctx context.Context, userID, email string) {
	l.Log(ctx, audit.Event{
		EventType: audit.EventSignupCompleted,
		UserID:    userID,
		Email:     email,
		Success:   true,
	})
}

// SignupConflict records a signup rejected because the email is taken.
func (l *Logger) SignupConflict(ctx context.Context, email string) {
	l.Log(ctx, audit.Event{
		EventType:     audit.EventSignupConflict,
		Email:         email,
		FailureReason: "email already registered",
	})
}

// LoginSuccess records a successful login.
func (l *Logger) LoginSuccess(ctx context.Context, userID, email string) {
	l.Log(ctx, audit.Event{
		EventType: audit.EventLoginSuccess,
		UserID:    userID,
		Email:     email,
		Success:   true,
	})
}

// LoginFailed records a failed login. The reason stays internal; callers
// only ever see the undifferentiated invalid-credentials error.
func (l *Logger) LoginFailed(ctx context.Context, email, reason string) {
	l.Log(ctx, audit.Event{
		EventType:     audit.EventLoginFailed,
		Email:         email,
		FailureReason: reason,
	})
}

// Logout records a logout request. Server-side this is informational only:
// bearer tokens are stateless and remain valid until expiry.
func (l *Logger) Logout(ctx context.Context, userID string) {
	l.Log(ctx, audit.Event{
		EventType: audit.EventLogout,
		UserID:    userID,
		Success:   true,
	})
}

// OrgLinkageFailed records a signup whose organization enrichment failed.
// The signup itself succeeded; this event is the only trace of the partial
// write.
func (l *Logger) OrgLinkageFailed(ctx context.Context, userID, email, orgName, stage string, err error) {
	l.Log(ctx, audit.Event{
		EventType:     audit.EventOrgLinkageFailed,
		UserID:        userID,
		Email:         email,
		FailureReason: err.Error(),
		Details: map[string]string{
			"organization": orgName,
			"stage":        stage,
		},
	})
}
