// Package zoom is the gateway to the Zoom server-to-server OAuth API.
// Every operation acquires a provider access token (lazily cached until
// expiry), then runs a synchronous request with no retry: a single upstream
// failure is surfaced immediately.
package zoom

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xautrade/meeting-server-go/internal/config"
	apperrors "github.com/xautrade/meeting-server-go/internal/errors"
	"github.com/xautrade/meeting-server-go/internal/model"
)

const (
	defaultAuthURL = "https://zoom.us/oauth/token"
	defaultBaseURL = "https://api.zoom.us/v2"

	// Refresh the cached access token early so a token that expires
	// mid-operation is never handed out.
	tokenExpiryMargin = time.Minute

	// Start times are sent without a zone suffix; the separate timezone
	// field carries the zone.
	startTimeLayout = "2006-01-02T15:04:05"

	// Sentinel host URL for listing entries whose detail fetch failed.
	hostURLUnavailable = "Details not available"
)

// Config carries the provider credentials. Injected at construction
// time, never read from globals.
type Config struct {
	AccountID    string
	ClientID     string
	ClientSecret string
	UserID       string

	// AuthURL and BaseURL default to the public Zoom endpoints;
	// tests point them at a local server.
	AuthURL string
	BaseURL string
}

type Client struct {
	cfg        Config
	httpClient *http.Client

	// Single-slot access-token cache, refreshed lazily when expired.
	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewClient(cfg Config) *Client {
	if cfg.AuthURL == "" {
		cfg.AuthURL = defaultAuthURL
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.UserID == "" {
		cfg.UserID = "me"
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: config.ZoomHTTPTimeout,
		},
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// token returns a provider access token, exchanging client credentials for a
// fresh one when the cached token is missing or expired.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	form := url.Values{
		"grant_type": {"account_credentials"},
		"account_id": {c.cfg.AccountID},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.AuthURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", apperrors.UpstreamAuth(err)
	}

	credentials := base64.StdEncoding.EncodeToString(
		[]byte(c.cfg.ClientID + ":" + c.cfg.ClientSecret))
	req.Header.Set("Authorization", "Basic "+credentials)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.UpstreamAuth(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Error().
			Int("status", resp.StatusCode).
			Str("body", string(body)).
			Msg("zoom token exchange failed")
		return "", apperrors.UpstreamAuth(fmt.Errorf("token endpoint returned %d", resp.StatusCode))
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", apperrors.UpstreamAuth(err)
	}
	if tok.AccessToken == "" {
		return "", apperrors.UpstreamAuth(fmt.Errorf("token endpoint returned no access_token"))
	}

	c.accessToken = tok.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn)*time.Second - tokenExpiryMargin)

	log.Debug().Time("expiry", c.tokenExpiry).Msg("zoom access token refreshed")
	return c.accessToken, nil
}

type createMeetingPayload struct {
	Topic     string          `json:"topic"`
	Type      int             `json:"type"`
	StartTime string          `json:"start_time"`
	Duration  int             `json:"duration"`
	Timezone  string          `json:"timezone"`
	Settings  meetingSettings `json:"settings"`
}

type meetingSettings struct {
	HostVideo        bool   `json:"host_video"`
	ParticipantVideo bool   `json:"participant_video"`
	MuteUponEntry    bool   `json:"mute_upon_entry"`
	WaitingRoom      bool   `json:"waiting_room"`
	AutoRecording    string `json:"auto_recording"`
}

// CreateMeeting schedules a one-hour meeting and returns it with the derived
// formatted_info block. Any non-201 answer is a hard failure carrying the
// upstream response body as the message.
func (c *Client) CreateMeeting(ctx context.Context, topic string, startTime time.Time, timezone string) (*model.Meeting, error) {
	accessToken, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	payload := createMeetingPayload{
		Topic:     topic,
		Type:      2, // scheduled meeting
		StartTime: startTime.Format(startTimeLayout),
		Duration:  config.MeetingDurationMinutes,
		Timezone:  timezone,
		Settings: meetingSettings{
			HostVideo:        true,
			ParticipantVideo: true,
			MuteUponEntry:    true,
			WaitingRoom:      false,
			AutoRecording:    "cloud",
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, apperrors.Internal("failed to encode meeting payload").WithCause(err)
	}

	endpoint := fmt.Sprintf("%s/users/%s/meetings", c.cfg.BaseURL, url.PathEscape(c.cfg.UserID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.Internal("failed to build meeting request").WithCause(err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	log.Info().
		Str("topic", topic).
		Str("startTime", payload.StartTime).
		Str("timezone", timezone).
		Msg("creating zoom meeting")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.UpstreamRequest("Error creating meeting: " + err.Error()).WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		log.Error().
			Int("status", resp.StatusCode).
			Str("body", string(respBody)).
			Msg("zoom meeting creation failed")
		return nil, apperrors.UpstreamRequest("Error creating meeting: " + string(respBody))
	}

	var meeting model.Meeting
	if err := json.NewDecoder(resp.Body).Decode(&meeting); err != nil {
		return nil, apperrors.UpstreamRequest("Error creating meeting: " + err.Error()).WithCause(err)
	}
	meeting.FormattedInfo = formatInfo(&meeting, meeting.StartURL)

	log.Info().Int64("meetingId", meeting.ID).Msg("zoom meeting created")
	return &meeting, nil
}

// ListMeetings fetches the first page of scheduled meetings and enriches each
// entry with a detail fetch; only the detail endpoint exposes the host start
// URL. A failed detail fetch degrades that entry instead of failing the
// listing.
func (c *Client) ListMeetings(ctx context.Context) ([]model.Meeting, error) {
	accessToken, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/users/%s/meetings?type=scheduled&page_size=%d",
		c.cfg.BaseURL, url.PathEscape(c.cfg.UserID), config.MeetingListPageSize)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.Internal("failed to build listing request").WithCause(err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.UpstreamRequest("Error retrieving meetings: " + err.Error()).WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.UpstreamRequest(listErrorMessage(resp))
	}

	var page struct {
		Meetings []model.Meeting `json:"meetings"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, apperrors.UpstreamRequest("Error retrieving meetings: " + err.Error()).WithCause(err)
	}

	enriched := make([]model.Meeting, 0, len(page.Meetings))
	for _, summary := range page.Meetings {
		detail, err := c.meetingDetail(ctx, accessToken, summary.ID)
		if err != nil {
			log.Warn().
				Err(err).
				Int64("meetingId", summary.ID).
				Msg("meeting detail unavailable, using summary")
			summary.FormattedInfo = formatInfo(&summary, hostURLUnavailable)
			enriched = append(enriched, summary)
			continue
		}
		detail.FormattedInfo = formatInfo(detail, detail.StartURL)
		enriched = append(enriched, *detail)
	}

	log.Info().Int("count", len(enriched)).Msg("zoom meetings retrieved")
	return enriched, nil
}

func (c *Client) meetingDetail(ctx context.Context, accessToken string, meetingID int64) (*model.Meeting, error) {
	endpoint := fmt.Sprintf("%s/meetings/%d", c.cfg.BaseURL, meetingID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("detail endpoint returned %d", resp.StatusCode)
	}

	var meeting model.Meeting
	if err := json.NewDecoder(resp.Body).Decode(&meeting); err != nil {
		return nil, err
	}
	return &meeting, nil
}

func formatInfo(m *model.Meeting, hostURL string) model.FormattedInfo {
	return model.FormattedInfo{
		JoinURL:            m.JoinURL,
		HostURL:            hostURL,
		MeetingID:          m.ID,
		Password:           m.Password,
		FormattedStartTime: m.StartTime,
	}
}

// listErrorMessage extracts the provider's message field, falling back to the
// HTTP status when the body is empty or not JSON.
func listErrorMessage(resp *http.Response) string {
	body, _ := io.ReadAll(resp.Body)
	if len(body) > 0 {
		var upstream struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &upstream); err == nil && upstream.Message != "" {
			return upstream.Message
		}
	}
	return fmt.Sprintf("Failed to retrieve meetings: HTTP error %d", resp.StatusCode)
}
