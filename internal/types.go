package internal

import (
	"strings"
	"time"
)

// Credentials is the active AWS credential set for this run. It is created
// once (ambient chain or MFA exchange), passed explicitly, and never stored.
type Credentials struct {
	AccessKey    string
	SecretKey    string
	SessionToken string
	Expiration   time.Time
}

// HasKeys reports whether the set can be injected into a child process.
func (c Credentials) HasKeys() bool {
	return c.AccessKey != "" && c.SecretKey != ""
}

// Cluster is an ECS cluster ARN plus its friendly name (trailing ARN segment).
type Cluster struct {
	Arn  string
	Name string
}

// Task is one running task, reduced to what the selection flow needs.
type Task struct {
	Arn            string
	TaskDefinition string
	LaunchType     string
	ExecEnabled    bool
	Containers     []Container
}

// Container is a container within a task. ManagedAgents carries the agent
// names reported by ECS; ECS Exec requires the ExecuteCommandAgent.
type Container struct {
	Name          string
	ManagedAgents []string
}

// FriendlyName returns the trailing path segment of an ARN, used for display.
func FriendlyName(arn string) string {
	parts := strings.Split(arn, "/")
	return parts[len(parts)-1]
}
