package internal

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Launcher spawns child processes with the active credentials injected into
// their environment. Stdio is wired straight to the terminal, so child output
// interleaves with ours.
type Launcher struct {
	Creds Credentials
}

// Launch runs the command and waits for it to exit, returning the child's
// exit code. It refuses to spawn without credentials, and fails with
// ErrLaunch if the child cannot start at all.
func (l *Launcher) Launch(name string, args ...string) (int, error) {
	if !l.Creds.HasKeys() {
		return 0, fmt.Errorf("%w: no active credentials", ErrLaunch)
	}

	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	env := append(os.Environ(),
		"AWS_ACCESS_KEY_ID="+l.Creds.AccessKey,
		"AWS_SECRET_ACCESS_KEY="+l.Creds.SecretKey,
	)
	if l.Creds.SessionToken != "" {
		env = append(env, "AWS_SESSION_TOKEN="+l.Creds.SessionToken)
	}
	cmd.Env = env

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, fmt.Errorf("%w: %s: %v", ErrLaunch, name, err)
}
