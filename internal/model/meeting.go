package model

// Meeting is an externally owned resource: fetched from the provider,
// optionally enriched, returned per request, never stored locally.
// The json tags match the provider's wire format so responses decode
// straight into this struct.
type Meeting struct {
	ID        int64  `json:"id"`
	Topic     string `json:"topic"`
	StartTime string `json:"start_time"`
	Timezone  string `json:"timezone"`
	Duration  int    `json:"duration,omitempty"`
	JoinURL   string `json:"join_url"`
	StartURL  string `json:"start_url,omitempty"`
	Password  string `json:"password"`

	FormattedInfo FormattedInfo `json:"formatted_info"`
}

// FormattedInfo maps provider field names to stable local names. The
// provider calls the host URL "start_url"; locally it is "host_url".
type FormattedInfo struct {
	JoinURL            string `json:"join_url"`
	HostURL            string `json:"host_url"`
	MeetingID          int64  `json:"meeting_id"`
	Password           string `json:"password"`
	FormattedStartTime string `json:"formatted_start_time"`
}
