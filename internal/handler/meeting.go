package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	apperrors "github.com/xautrade/meeting-server-go/internal/errors"
	"github.com/xautrade/meeting-server-go/internal/httputil"
	"github.com/xautrade/meeting-server-go/internal/service"
)

// Start times arrive either with an explicit offset (RFC 3339) or bare;
// the separate timezone field covers the bare form.
var startTimeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05"}

// MeetingHandler's endpoints carry no router of their own: they must only
// ever be registered behind the session-token middleware, so the wiring
// lives with the middleware in cmd/server.
type MeetingHandler struct {
	meetings *service.MeetingService
}

func NewMeetingHandler(meetings *service.MeetingService) *MeetingHandler {
	return &MeetingHandler{meetings: meetings}
}

type createMeetingRequest struct {
	Topic     string `json:"topic"`
	StartTime string `json:"start_time"`
	Timezone  string `json:"timezone"`
}

// POST /create-meeting/
func (h *MeetingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, httputil.Fail(http.StatusBadRequest, "Invalid request body"))
		return
	}

	startTime, err := parseStartTime(req.StartTime)
	if err != nil {
		writeError(w, apperrors.InvalidInput("start_time", "must be an ISO-8601 datetime"))
		return
	}

	log.Info().Str("topic", req.Topic).Str("startTime", req.StartTime).Msg("meeting creation requested")

	meeting, err := h.meetings.Create(r.Context(), req.Topic, startTime, req.Timezone)
	if err != nil {
		writeError(w, err)
		return
	}

	writeEnvelope(w, httputil.OK("Meeting created successfully", map[string]any{
		"id":             meeting.ID,
		"topic":          meeting.Topic,
		"start_time":     meeting.StartTime,
		"timezone":       meeting.Timezone,
		"join_url":       meeting.JoinURL,
		"start_url":      meeting.StartURL,
		"password":       meeting.Password,
		"formatted_info": meeting.FormattedInfo,
	}))
}

// GET /meetings
func (h *MeetingHandler) List(w http.ResponseWriter, r *http.Request) {
	meetings, err := h.meetings.List(r.Context())
	if err != nil {
		// Listing failures answer 404 with the upstream message.
		message := err.Error()
		if appErr, ok := apperrors.AsAppError(err); ok {
			message = appErr.Message
		}
		writeEnvelope(w, httputil.Fail(http.StatusNotFound, message))
		return
	}

	writeEnvelope(w, httputil.OK("Meetings retrieved successfully", map[string]any{
		"meetings": meetings,
	}))
}

func parseStartTime(raw string) (time.Time, error) {
	var firstErr error
	for _, layout := range startTimeLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
