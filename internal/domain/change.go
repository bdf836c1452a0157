package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChangeKind is the kind of catalog mutation a change record proposes.
type ChangeKind string

const (
	ChangeKindCreate ChangeKind = "create"
	ChangeKindUpdate ChangeKind = "update"
	ChangeKindDelete ChangeKind = "delete"
)

func (k ChangeKind) String() string { return string(k) }

func (k ChangeKind) IsValid() bool {
	switch k {
	case ChangeKindCreate, ChangeKindUpdate, ChangeKindDelete:
		return true
	}
	return false
}

// ChangeStatus is the lifecycle state of a change record.
// pending is the only non-terminal state: the record moves to approved or
// rejected exactly once and never leaves a terminal state.
type ChangeStatus string

const (
	ChangeStatusPending  ChangeStatus = "pending"
	ChangeStatusApproved ChangeStatus = "approved"
	ChangeStatusRejected ChangeStatus = "rejected"
)

func (s ChangeStatus) String() string { return string(s) }

func (s ChangeStatus) IsValid() bool {
	switch s {
	case ChangeStatusPending, ChangeStatusApproved, ChangeStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the status permits no further transition.
func (s ChangeStatus) IsTerminal() bool {
	return s == ChangeStatusApproved || s == ChangeStatusRejected
}

// Decision is an admin's verdict on a pending change record.
type Decision string

const (
	DecisionApprove Decision = "approved"
	DecisionReject  Decision = "rejected"
)

func (d Decision) IsValid() bool {
	return d == DecisionApprove || d == DecisionReject
}

// Status returns the terminal status the decision transitions to.
func (d Decision) Status() ChangeStatus {
	if d == DecisionApprove {
		return ChangeStatusApproved
	}
	return ChangeStatusRejected
}

// ChangeRecord is a proposed create/update/delete against the catalog,
// awaiting or having received a moderation decision.
//
// TargetID is nil only for creates. Prior is the full entity state frozen at
// proposal time (updates and deletes only) — the review UI diffs Prior against
// Proposed, and it is what the contributor actually saw when editing.
type ChangeRecord struct {
	ID          uuid.UUID    `json:"id"`
	Kind        ChangeKind   `json:"kind"`
	TargetID    *uuid.UUID   `json:"target_id,omitempty"`
	Proposed    *MovieDraft  `json:"proposed,omitempty"`
	Prior       *Movie       `json:"prior,omitempty"`
	SubmittedBy ActorRef     `json:"submitted_by"`
	Status      ChangeStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	ReviewedAt  *time.Time   `json:"reviewed_at,omitempty"`
	ReviewedBy  *ActorRef    `json:"reviewed_by,omitempty"`
	ReviewNote  *string      `json:"review_note,omitempty"`
}

// IsPending reports whether the record still awaits a decision.
func (c *ChangeRecord) IsPending() bool {
	return c.Status == ChangeStatusPending
}

// AuthoredBy reports whether the record was submitted by the given actor.
func (c *ChangeRecord) AuthoredBy(actor Actor) bool {
	return c.SubmittedBy.ID == actor.ID
}

// ReviewMeta is the review metadata written together with a terminal status
// transition. It is persisted in the same conditional update that flips the
// status, so a record can never be terminal without its review fields.
type ReviewMeta struct {
	ReviewedBy ActorRef
	ReviewedAt time.Time
	Note       *string
}
