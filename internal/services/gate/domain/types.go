// Package domain defines the core types for actor gating and write-access resolution
package domain

import (
	"strings"

	perr "gatehouse/internal/platform/errors"
)

// AccountKind classifies the account that triggered a workflow.
// It is derived per invocation from the platform's reported account type
// and never persisted
type AccountKind uint8

const (
	// KindUnknown means the account type could not be determined
	KindUnknown AccountKind = iota

	// KindHuman is a regular user account
	KindHuman

	// KindAutomated is an app/bot identity
	KindAutomated
)

// String implements fmt.Stringer
func (k AccountKind) String() string {
	switch k {
	case KindHuman:
		return "human"
	case KindAutomated:
		return "automated"
	default:
		return "unknown"
	}
}

// KindOfType maps the platform's account type string onto an AccountKind.
// "User" is human and "Bot" is automated; anything else (e.g. "Organization")
// is non-human for gating purposes and kept verbatim for diagnostics
func KindOfType(reported string) AccountKind {
	switch reported {
	case "User":
		return KindHuman
	case "Bot":
		return KindAutomated
	default:
		return KindUnknown
	}
}

// Classification is the outcome of one identity lookup.
// ReportedType carries the platform's verbatim type string for log and
// error text; Kind is the derived routing signal
type Classification struct {
	Login        string
	Kind         AccountKind
	ReportedType string
}

// RepoRef names a repository by owner and name. It is owned by the caller
// and read-only to the gate
type RepoRef struct {
	Owner string
	Name  string
}

// ParseRepoRef splits an owner/name string into a RepoRef
func ParseRepoRef(full string) (RepoRef, error) {
	owner, name, ok := strings.Cut(strings.TrimSpace(full), "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return RepoRef{}, perr.InvalidArgf("invalid repository reference %q (want owner/name)", full)
	}
	return RepoRef{Owner: owner, Name: name}, nil
}

// Validate rejects malformed references before any remote call is made
func (r RepoRef) Validate() error {
	if r.Owner == "" || r.Name == "" || strings.ContainsAny(r.Owner+r.Name, "/ ") {
		return perr.InvalidArgf("invalid repository reference %q/%q", r.Owner, r.Name)
	}
	return nil
}

// String returns owner/name
func (r RepoRef) String() string { return r.Owner + "/" + r.Name }

// AccessDecision is the tri-state outcome of a single access-proof strategy
type AccessDecision uint8

const (
	// DecisionInconclusive means the strategy could not run, e.g. the probe
	// itself was denied
	DecisionInconclusive AccessDecision = iota

	// DecisionDenied means the strategy ran and found no write-level access
	DecisionDenied

	// DecisionGranted means the strategy proved write-level access
	DecisionGranted
)

// String implements fmt.Stringer
func (d AccessDecision) String() string {
	switch d {
	case DecisionGranted:
		return "granted"
	case DecisionDenied:
		return "denied"
	default:
		return "inconclusive"
	}
}

// PermissionLevel is the ordered repository access tier reported by the platform
type PermissionLevel uint8

const (
	// PermNone is no access
	PermNone PermissionLevel = iota

	// PermRead is read-only access
	PermRead

	// PermWrite is push access; "maintain" is write-equivalent
	PermWrite

	// PermAdmin is full administrative access
	PermAdmin
)

// ParsePermissionLevel maps a platform permission string onto the total order.
// Unknown strings map to PermNone
func ParsePermissionLevel(s string) PermissionLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return PermAdmin
	case "write", "maintain", "push":
		return PermWrite
	case "read", "triage", "pull":
		return PermRead
	default:
		return PermNone
	}
}

// String implements fmt.Stringer
func (p PermissionLevel) String() string {
	switch p {
	case PermAdmin:
		return "admin"
	case PermWrite:
		return "write"
	case PermRead:
		return "read"
	default:
		return "none"
	}
}

// CanWrite reports write-eligibility under the total order
func (p PermissionLevel) CanWrite() bool { return p >= PermWrite }

// Resolution is the outcome of one write-access resolution.
// Method names the strategy that granted access, empty when denied
type Resolution struct {
	Allowed bool
	Method  string
	Kind    AccountKind
}
