package github

import (
	"context"

	"gatehouse/internal/services/gate/domain"
)

// Platform implements gate/domain.PlatformPort against the GitHub REST v3 API
type Platform struct{ c *Client }

// NewPlatform constructs a Platform using the given GitHub client
func NewPlatform(c *Client) *Platform { return &Platform{c: c} }

// UserType performs GET /users/{login} and returns the account type string
func (p *Platform) UserType(ctx context.Context, login string) (string, error) {
	u, err := p.c.UserByLogin(ctx, login)
	if err != nil {
		return "", err
	}
	return u.Type, nil
}

// CollaboratorPermission performs GET /repos/{owner}/{repo}/collaborators/{login}/permission.
// The role_name field is preferred when present since it carries "maintain"
// which the coarse permission field reports as plain "write"
func (p *Platform) CollaboratorPermission(ctx context.Context, repo domain.RepoRef, login string) (string, error) {
	cp, err := p.c.CollaboratorPermissionLevel(ctx, repo.Owner, repo.Name, login)
	if err != nil {
		return "", err
	}
	if cp.RoleName != "" {
		return cp.RoleName, nil
	}
	return cp.Permission, nil
}

// InstallationContentScope performs GET /repos/{owner}/{repo}/installation
func (p *Platform) InstallationContentScope(ctx context.Context, repo domain.RepoRef) (string, error) {
	inst, err := p.c.RepoInstallation(ctx, repo.Owner, repo.Name)
	if err != nil {
		return "", err
	}
	return inst.Permissions.Contents, nil
}

// DefaultBranch performs GET /repos/{owner}/{repo}
func (p *Platform) DefaultBranch(ctx context.Context, repo domain.RepoRef) (string, error) {
	r, err := p.c.RepoByFullName(ctx, repo.Owner, repo.Name)
	if err != nil {
		return "", err
	}
	return r.DefaultBranch, nil
}

// BranchRef performs GET /repos/{owner}/{repo}/git/ref/heads/{branch}
func (p *Platform) BranchRef(ctx context.Context, repo domain.RepoRef, branch string) (string, error) {
	ref, err := p.c.BranchGitRef(ctx, repo.Owner, repo.Name, branch)
	if err != nil {
		return "", err
	}
	return ref.Ref, nil
}
