package events

import "time"

const ApplicationSubmittedTopic = "portal.applications.v1"

type ApplicationSubmittedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	ApplicationID string    `json:"application_id"`
	JobID         string    `json:"job_id"`
	JobTitle      string    `json:"job_title"`
	CandidateID   string    `json:"candidate_id"`
	CompanyUserID string    `json:"company_user_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}
