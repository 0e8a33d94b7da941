// Package api holds the response envelopes shared by every handler.
package api

// ErrorResponse carries a single human-readable error string.
type ErrorResponse struct {
	Error string `json:"error" example:"Room already reserved for this date and timeslot"`
}

type MessageResponse struct {
	Message string `json:"message" example:"reservation cancelled"`
}

type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Service string `json:"service,omitempty" example:"unisphere-api"`
}
