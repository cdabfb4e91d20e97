// Package domain defines the audit trail records for gate decisions
package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CheckKind names which gate produced a decision
type CheckKind string

const (
	// CheckHumanActor is the human-actor gate
	CheckHumanActor CheckKind = "human_actor"

	// CheckWriteAccess is the write-access resolver
	CheckWriteAccess CheckKind = "write_access"
)

// Outcome is the terminal result of a check
type Outcome string

const (
	// OutcomePass is a silent human-gate success
	OutcomePass Outcome = "pass"

	// OutcomeSkip is an automated actor explicitly permitted
	OutcomeSkip Outcome = "skip"

	// OutcomeReject is a human-gate rejection
	OutcomeReject Outcome = "reject"

	// OutcomeGranted is resolved write access
	OutcomeGranted Outcome = "granted"

	// OutcomeDenied is resolved lack of write access
	OutcomeDenied Outcome = "denied"

	// OutcomeError is a check that could not render a decision
	OutcomeError Outcome = "error"
)

// Decision is one audited gate decision. Detail carries the granting strategy
// or observed account kind; ErrorText the contract message when rejected
type Decision struct {
	ID        uuid.UUID `json:"id"`
	Check     CheckKind `json:"check"`
	Actor     string    `json:"actor"`
	Repo      string    `json:"repo,omitempty"`
	Outcome   Outcome   `json:"outcome"`
	Detail    string    `json:"detail,omitempty"`
	ErrorText string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RecorderPort records decisions and serves recent ones back
type RecorderPort interface {
	// Record persists d best-effort; it never fails the caller's decision
	Record(ctx context.Context, d Decision)

	// Recent returns up to limit decisions, newest first
	Recent(ctx context.Context, limit int) ([]Decision, error)
}

// StorePort abstracts the persistence the recorder needs
type StorePort interface {
	Insert(ctx context.Context, d Decision) error
	Recent(ctx context.Context, limit int) ([]Decision, error)
}
