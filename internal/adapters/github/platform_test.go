package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"gatehouse/internal/services/gate/domain"
)

// ghStub serves canned JSON per path, mirroring the REST v3 shapes
func ghStub(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.EscapedPath()]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

var repoRef = domain.RepoRef{Owner: "octo", Name: "widgets"}

func TestPlatform_UserType(t *testing.T) {
	srv := ghStub(t, map[string]string{
		"/users/human-user":      `{"id": 1, "login": "human-user", "type": "User"}`,
		"/users/claude%5Bbot%5D": `{"id": 2, "login": "claude[bot]", "type": "Bot"}`,
	})
	defer srv.Close()

	p := NewPlatform(NewClient(Options{BaseURL: srv.URL}))

	typ, err := p.UserType(context.Background(), "human-user")
	if err != nil || typ != "User" {
		t.Fatalf("got (%q, %v), want (User, nil)", typ, err)
	}

	// bracketed bot logins must be path-escaped
	typ, err = p.UserType(context.Background(), "claude[bot]")
	if err != nil || typ != "Bot" {
		t.Fatalf("got (%q, %v), want (Bot, nil)", typ, err)
	}

	if _, err = p.UserType(context.Background(), "ghost"); !IsNotFound(err) {
		t.Fatalf("want not-found, got %v", err)
	}
}

func TestPlatform_CollaboratorPermissionPrefersRoleName(t *testing.T) {
	srv := ghStub(t, map[string]string{
		"/repos/octo/widgets/collaborators/maintainer/permission": `{"permission": "write", "role_name": "maintain"}`,
		"/repos/octo/widgets/collaborators/pusher/permission":     `{"permission": "write"}`,
	})
	defer srv.Close()

	p := NewPlatform(NewClient(Options{BaseURL: srv.URL}))

	got, err := p.CollaboratorPermission(context.Background(), repoRef, "maintainer")
	if err != nil || got != "maintain" {
		t.Fatalf("got (%q, %v), want (maintain, nil)", got, err)
	}
	got, err = p.CollaboratorPermission(context.Background(), repoRef, "pusher")
	if err != nil || got != "write" {
		t.Fatalf("got (%q, %v), want (write, nil)", got, err)
	}
}

func TestPlatform_InstallationContentScope(t *testing.T) {
	srv := ghStub(t, map[string]string{
		"/repos/octo/widgets/installation": `{"id": 99, "permissions": {"contents": "write", "issues": "read"}}`,
	})
	defer srv.Close()

	p := NewPlatform(NewClient(Options{BaseURL: srv.URL}))
	got, err := p.InstallationContentScope(context.Background(), repoRef)
	if err != nil || got != "write" {
		t.Fatalf("got (%q, %v), want (write, nil)", got, err)
	}
}

func TestPlatform_DefaultBranchAndRef(t *testing.T) {
	srv := ghStub(t, map[string]string{
		"/repos/octo/widgets":                    `{"id": 5, "full_name": "octo/widgets", "default_branch": "main"}`,
		"/repos/octo/widgets/git/ref/heads/main": `{"ref": "refs/heads/main"}`,
	})
	defer srv.Close()

	p := NewPlatform(NewClient(Options{BaseURL: srv.URL}))

	branch, err := p.DefaultBranch(context.Background(), repoRef)
	if err != nil || branch != "main" {
		t.Fatalf("got (%q, %v), want (main, nil)", branch, err)
	}
	ref, err := p.BranchRef(context.Background(), repoRef, branch)
	if err != nil || ref != "refs/heads/main" {
		t.Fatalf("got (%q, %v), want (refs/heads/main, nil)", ref, err)
	}
}
