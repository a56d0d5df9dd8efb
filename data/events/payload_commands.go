package events

// Client commands

type IdentifyPayload struct {
	// Token is a signed access token. When absent, UserID may carry a bare
	// user id for trusted internal clients.
	Token  string `json:"token,omitempty"`
	UserID string `json:"user_id,omitempty"`
}

type UpdateLocationPayload struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type LiveStartPayload struct {
	SessionID string   `json:"session_id"`
	Users     []string `json:"users"`
}

type LiveUpdatePayload struct {
	SessionID string  `json:"session_id"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}

type LiveEndPayload struct {
	SessionID string `json:"session_id"`
}
