package service

import (
	"context"
	"time"

	"github.com/xautrade/meeting-server-go/internal/audit"
	apperrors "github.com/xautrade/meeting-server-go/internal/errors"
	"github.com/xautrade/meeting-server-go/internal/model"
)

// MeetingGateway is the provider-facing surface of the Zoom client.
type MeetingGateway interface {
	CreateMeeting(ctx context.Context, topic string, startTime time.Time, timezone string) (*model.Meeting, error)
	ListMeetings(ctx context.Context) ([]model.Meeting, error)
}

// MeetingService is a live passthrough to the provider: meetings are never
// stored locally.
type MeetingService struct {
	gateway MeetingGateway
}

func NewMeetingService(gateway MeetingGateway) *MeetingService {
	return &MeetingService{gateway: gateway}
}

func (s *MeetingService) Create(ctx context.Context, topic string, startTime time.Time, timezone string) (*model.Meeting, error) {
	if topic == "" {
		return nil, apperrors.MissingRequired("topic")
	}
	if timezone == "" {
		timezone = "UTC"
	}

	meeting, err := s.gateway.CreateMeeting(ctx, topic, startTime, timezone)
	if err != nil {
		return nil, err
	}

	audit.Log(ctx, audit.Event{Type: audit.EventMeetingCreate, Details: map[string]interface{}{
		"meeting_id": meeting.ID,
	}})
	return meeting, nil
}

func (s *MeetingService) List(ctx context.Context) ([]model.Meeting, error) {
	meetings, err := s.gateway.ListMeetings(ctx)
	if err != nil {
		return nil, err
	}

	audit.Log(ctx, audit.Event{Type: audit.EventMeetingList, Details: map[string]interface{}{
		"count": len(meetings),
	}})
	return meetings, nil
}
