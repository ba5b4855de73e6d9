package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Geekoosh/ecs-exec-cli/internal"
)

func TestResolveCredentialsEmptyCodeSkipsRefresh(t *testing.T) {
	ambientCreds := internal.Credentials{AccessKey: "AKIAAMBIENT1", SecretKey: "AmbientSecret1"}

	refreshCalled := false
	creds, err := resolveCredentials("",
		func(code string) (internal.Credentials, error) {
			refreshCalled = true
			return internal.Credentials{AccessKey: "AKIAREFRESHED"}, nil
		},
		func() (internal.Credentials, error) {
			return ambientCreds, nil
		},
	)
	if err != nil {
		t.Fatalf("resolveCredentials failed: %v", err)
	}
	if refreshCalled {
		t.Error("refresh must not be invoked for an empty MFA code")
	}
	if creds != ambientCreds {
		t.Errorf("ambient credentials must be used unchanged, got %+v", creds)
	}
}

func TestResolveCredentialsWithCode(t *testing.T) {
	refreshed := internal.Credentials{AccessKey: "AKIAREFRESHED", SecretKey: "RefreshedSecret"}

	var gotCode string
	creds, err := resolveCredentials("123456",
		func(code string) (internal.Credentials, error) {
			gotCode = code
			return refreshed, nil
		},
		func() (internal.Credentials, error) {
			t.Error("ambient lookup must not run when a code is supplied")
			return internal.Credentials{}, nil
		},
	)
	if err != nil {
		t.Fatalf("resolveCredentials failed: %v", err)
	}
	if gotCode != "123456" {
		t.Errorf("refresh received code %q, want %q", gotCode, "123456")
	}
	if creds != refreshed {
		t.Errorf("refreshed credentials must replace the active set, got %+v", creds)
	}
}

func TestResolveCredentialsRefreshFailure(t *testing.T) {
	_, err := resolveCredentials("000000",
		func(code string) (internal.Credentials, error) {
			return internal.Credentials{}, fmt.Errorf("%w: code rejected", internal.ErrAuth)
		},
		func() (internal.Credentials, error) {
			t.Error("ambient lookup must not mask a failed refresh")
			return internal.Credentials{}, nil
		},
	)
	if !errors.Is(err, internal.ErrAuth) {
		t.Errorf("expected ErrAuth, got %v", err)
	}
}
