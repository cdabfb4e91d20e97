package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// getJSON issues a GET and decodes the 2xx body into T
func getJSON[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	resp, err := c.Do(ctx, http.MethodGet, path)
	if err != nil {
		return out, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("github close body failed")
		}
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, err
	}
	return out, nil
}

// UserByLogin fetches a user by login
func (c *Client) UserByLogin(ctx context.Context, login string) (User, error) {
	return getJSON[User](ctx, c, "/users/"+url.PathEscape(login))
}

// RepoByFullName fetches a repository by owner and name
func (c *Client) RepoByFullName(ctx context.Context, owner, name string) (Repo, error) {
	return getJSON[Repo](ctx, c, fmt.Sprintf("/repos/%s/%s", owner, name))
}

// CollaboratorPermissionLevel fetches the permission level a login holds on a repository.
// Fails with a 404 StatusError when the login is not a collaborator
func (c *Client) CollaboratorPermissionLevel(
	ctx context.Context,
	owner, name, login string,
) (CollaboratorPermission, error) {
	path := fmt.Sprintf("/repos/%s/%s/collaborators/%s/permission", owner, name, url.PathEscape(login))
	return getJSON[CollaboratorPermission](ctx, c, path)
}

// RepoInstallation fetches the app installation record for a repository.
// Requires app (JWT) credentials; a routine token gets 401/403 here
func (c *Client) RepoInstallation(ctx context.Context, owner, name string) (Installation, error) {
	return getJSON[Installation](ctx, c, fmt.Sprintf("/repos/%s/%s/installation", owner, name))
}

// BranchGitRef fetches the git reference for a branch, e.g. refs/heads/main
func (c *Client) BranchGitRef(ctx context.Context, owner, name, branch string) (GitRef, error) {
	path := fmt.Sprintf("/repos/%s/%s/git/ref/heads/%s", owner, name, url.PathEscape(branch))
	return getJSON[GitRef](ctx, c, path)
}
