package domain

import "context"

// PlatformPort abstracts the remote hosting-platform signals the gate
// consumes. Implementations must be safe for concurrent use; every method
// performs exactly one remote lookup and returns an error when the lookup
// itself could not be completed
type PlatformPort interface {
	// UserType returns the platform's verbatim account type string for a login
	UserType(ctx context.Context, login string) (string, error)

	// CollaboratorPermission returns the permission string a login holds on
	// the repository; fails when the login is not a collaborator
	CollaboratorPermission(ctx context.Context, repo RepoRef, login string) (string, error)

	// InstallationContentScope returns the contents scope granted to the app
	// installation on the repository; fails without elevated credentials or
	// when no installation exists
	InstallationContentScope(ctx context.Context, repo RepoRef) (string, error)

	// DefaultBranch returns the repository's default branch name
	DefaultBranch(ctx context.Context, repo RepoRef) (string, error)

	// BranchRef reads the git reference of a branch; fails when inaccessible
	BranchRef(ctx context.Context, repo RepoRef, branch string) (string, error)
}

// ServicePort is the decision surface consumed by orchestration layers
type ServicePort interface {
	// CheckHumanActor enforces that actor is a human account unless
	// allowAutomated permits app identities. The returned error text is part
	// of the external contract
	CheckHumanActor(ctx context.Context, actor string, allowAutomated bool) error

	// CheckWriteAccess reports whether actor holds write-level access to repo
	CheckWriteAccess(ctx context.Context, actor string, repo RepoRef) (bool, error)
}
