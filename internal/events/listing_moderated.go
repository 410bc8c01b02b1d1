package events

import "time"

const ListingModeratedTopic = "portal.moderation.v1"

// ListingKind distinguishes the moderated entity family.
type ListingKind string

const (
	ListingKindJob    ListingKind = "job"
	ListingKindRental ListingKind = "rental"
)

type ListingModeratedEvent struct {
	EventType   string      `json:"event_type"`
	RequestID   string      `json:"request_id,omitempty"`
	ListingKind ListingKind `json:"listing_kind"`
	ListingID   string      `json:"listing_id"`
	Titulo      string      `json:"titulo"`
	Action      string      `json:"action"`
	NewStatus   string      `json:"new_status,omitempty"`
	OwnerUserID string      `json:"owner_user_id"`
	OccurredAt  time.Time   `json:"occurred_at"`
}
