package moderation

import "fmt"

// Action is the closed set of admin moderation actions on a listing.
type Action string

const (
	ActionApprove   Action = "approve"
	ActionReject    Action = "reject"
	ActionHide      Action = "hide"
	ActionFeature   Action = "feature"
	ActionUnfeature Action = "unfeature"
)

// ParseAction validates the raw action string from a moderation request.
func ParseAction(raw string) (Action, error) {
	switch Action(raw) {
	case ActionApprove, ActionReject, ActionHide, ActionFeature, ActionUnfeature:
		return Action(raw), nil
	}
	return "", fmt.Errorf("unknown moderation action: %q", raw)
}

// Change is the effect of applying an action: exactly one of Status or
// Featured is set. Status changes never touch the featured flag and vice versa.
type Change struct {
	Status   *string
	Featured *bool
}

// Table binds the shared action set to one entity kind's status vocabulary.
// Jobs and rentals share the machine shape but keep distinct enum namespaces.
type Table struct {
	Pending  string
	Active   string
	Inactive string
	Rejected string
	Hidden   string
}

// Apply maps an admin action onto a status write or a featured flip.
func (t Table) Apply(a Action) (Change, error) {
	switch a {
	case ActionApprove:
		return Change{Status: &t.Active}, nil
	case ActionReject:
		return Change{Status: &t.Rejected}, nil
	case ActionHide:
		return Change{Status: &t.Hidden}, nil
	case ActionFeature:
		v := true
		return Change{Featured: &v}, nil
	case ActionUnfeature:
		v := false
		return Change{Featured: &v}, nil
	}
	return Change{}, fmt.Errorf("unknown moderation action: %q", a)
}

// AllowsOwnerStatus reports whether a listing owner may set the given status
// directly. Owners only flip between active and inactive; everything else
// (including self-approval out of pending) goes through an admin.
func (t Table) AllowsOwnerStatus(status string) bool {
	return status == t.Active || status == t.Inactive
}

// IsValid reports whether status belongs to this table's vocabulary.
func (t Table) IsValid(status string) bool {
	switch status {
	case t.Pending, t.Active, t.Inactive, t.Rejected, t.Hidden:
		return true
	}
	return false
}
