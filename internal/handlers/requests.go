package handlers

// AttemptSubmitRequest represents a request to submit one attempt
type AttemptSubmitRequest struct {
	EventID      string `json:"event_id"`
	CompetitorID int64  `json:"competitor_id"`
	Index        int    `json:"index"`

	// Centis is the attempt time in centiseconds, or the move count for
	// move-based events. Ignored when DNF is set.
	Centis int  `json:"centis"`
	Plus2  bool `json:"plus2,omitempty"`
	DNF    bool `json:"dnf,omitempty"`

	// Time is an optional user-entered time string ("1:23.45", "12.30",
	// bare digits). When present it supersedes Centis.
	Time string `json:"time,omitempty"`

	// FMCSolution is required for FMC attempts
	FMCSolution []string `json:"fmc_solution,omitempty"`

	// MultiSuccess / MultiAttempted are required for multi-blind attempts
	MultiSuccess   *int `json:"multi_success,omitempty"`
	MultiAttempted *int `json:"multi_attempted,omitempty"`
}

// ModerateRequest represents a moderator's decision on a submission
type ModerateRequest struct {
	EventID      string `json:"event_id"`
	CompetitorID int64  `json:"competitor_id"`
	Approve      bool   `json:"approve"`
}

// LoginRequest represents a moderator login
type LoginRequest struct {
	Password string `json:"password"`
}

// CompetitorCreateRequest represents a request to register a competitor
type CompetitorCreateRequest struct {
	Name  string `json:"name"`
	WcaID string `json:"wca_id"`
}

// CompetitorUpdateRequest represents a request to update a competitor
type CompetitorUpdateRequest struct {
	Name  string `json:"name"`
	WcaID string `json:"wca_id"`
}

// SettingsUpdateRequest represents a request to update settings
type SettingsUpdateRequest struct {
	BaseURL string `json:"base_url"`
}

// FederationImportRequest seeds a competitor's record set from official
// federation bests.
type FederationImportRequest struct {
	EventID string `json:"event_id"`

	// SingleCentis / Aggregate seed the ranked record families
	SingleCentis int `json:"single_centis"`
	Aggregate    int `json:"aggregate"`

	// Points / TimeOfBest seed the multi-blind record
	Points     int `json:"points"`
	TimeOfBest int `json:"time_of_best"`
}
