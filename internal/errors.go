package internal

import "errors"

// Error categories for the run. Every failure surfaces to the root command,
// is printed once, and terminates the run; match with errors.Is.
var (
	// ErrAuth means the MFA exchange failed: no device registered, the code
	// was rejected, or STS returned no credentials.
	ErrAuth = errors.New("authentication failed")

	// ErrList means a cluster or task query against ECS failed, or produced
	// nothing to select from.
	ErrList = errors.New("listing failed")

	// ErrSelectionAborted means the user cancelled an interactive prompt.
	ErrSelectionAborted = errors.New("selection aborted")

	// ErrNoEligibleContainer means the chosen task has no container running
	// the ECS Exec agent.
	ErrNoEligibleContainer = errors.New("no container with ECS Exec agent")

	// ErrValidationInfra means the exec-checker script could not be fetched
	// or started. The script itself reporting problems is not an error.
	ErrValidationInfra = errors.New("exec checker could not run")

	// ErrLaunch means the final process could not start, or no credentials
	// were available to inject into it.
	ErrLaunch = errors.New("launch failed")
)
