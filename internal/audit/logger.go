package audit

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type EventType string

const (
	EventRegister       EventType = "register"
	EventRegisterDenied EventType = "register_denied"
	EventLoginSuccess   EventType = "login_success"
	EventLoginFailure   EventType = "login_failure"
	EventTokenRejected  EventType = "token_rejected"
	EventMeetingCreate  EventType = "meeting_create"
	EventMeetingList    EventType = "meeting_list"
)

type Event struct {
	Type    EventType
	Email   string
	UserID  int64
	Details map[string]interface{}
}

// Log emits a structured security audit event. The email of a failed login
// is deliberately not recorded to keep credential probes out of the logs.
func Log(ctx context.Context, event Event) {
	logger := log.With().
		Str("audit", "security").
		Str("event_type", string(event.Type)).
		Time("timestamp", time.Now()).
		Logger()

	if event.Email != "" {
		logger = logger.With().Str("email", event.Email).Logger()
	}
	if event.UserID != 0 {
		logger = logger.With().Int64("user_id", event.UserID).Logger()
	}

	logEvent := logger.Info()
	for k, v := range event.Details {
		logEvent = addField(logEvent, k, v)
	}
	logEvent.Msg("security audit event")
}

func addField(e *zerolog.Event, key string, value interface{}) *zerolog.Event {
	switch v := value.(type) {
	case string:
		return e.Str(key, v)
	case int:
		return e.Int(key, v)
	case int64:
		return e.Int64(key, v)
	case bool:
		return e.Bool(key, v)
	default:
		return e.Interface(key, v)
	}
}
