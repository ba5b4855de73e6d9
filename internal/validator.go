package internal

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// CheckerURL is where the amazon-ecs-exec-checker script is fetched from.
// Overridable for tests.
var CheckerURL = "https://raw.githubusercontent.com/aws-containers/amazon-ecs-exec-checker/main/check-ecs-exec.sh"

// CheckExecSupport downloads the ECS Exec checker script and runs it against
// the chosen cluster and task. The script's own findings are diagnostic only;
// its exit code is returned as-is. Only failure to fetch or start the script
// is an error. The downloaded script is removed on every exit path.
func CheckExecSupport(launcher *Launcher, clusterArn, taskArn string) (int, error) {
	script, err := downloadChecker()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidationInfra, err)
	}
	defer os.Remove(script)

	code, err := launcher.Launch(script, clusterArn, taskArn)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidationInfra, err)
	}
	return code, nil
}

func downloadChecker() (string, error) {
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(CheckerURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return "", fmt.Errorf("fetching checker script: status %d", resp.StatusCode)
	}

	f, err := os.CreateTemp("", "check-ecs-exec-*.sh")
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}

	if err := os.Chmod(f.Name(), 0755); err != nil {
		os.Remove(f.Name())
		return "", err
	}

	return f.Name(), nil
}
