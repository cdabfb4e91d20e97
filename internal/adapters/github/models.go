package github

// User is a partial GitHub user document with the fields we use.
// Type is "User" for humans, "Bot" for app identities, "Organization" for orgs
type User struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Type  string `json:"type"`
}

// Repo is a partial GitHub repository document
type Repo struct {
	ID            int64  `json:"id"`
	FullName      string `json:"full_name"`
	Private       bool   `json:"private"`
	DefaultBranch string `json:"default_branch"`
}

// CollaboratorPermission is the response of the collaborator permission endpoint.
// Permission is one of none/read/write/admin; RoleName may refine it
// (e.g. "maintain", which GitHub folds into "write" for the coarse field only
// on some API versions, so we keep both)
type CollaboratorPermission struct {
	Permission string `json:"permission"`
	RoleName   string `json:"role_name"`
	User       *User  `json:"user"`
}

// Installation is a partial app installation document for a repository
type Installation struct {
	ID          int64                   `json:"id"`
	Permissions InstallationPermissions `json:"permissions"`
}

// InstallationPermissions lists the scopes granted to an installation
type InstallationPermissions struct {
	Contents     string `json:"contents"`
	Issues       string `json:"issues"`
	PullRequests string `json:"pull_requests"`
}

// GitRef is a partial git reference document
type GitRef struct {
	Ref string `json:"ref"`
}
