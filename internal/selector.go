package internal

import "fmt"

// ExecAgentName is the managed agent a container must run to accept an
// interactive exec session.
const ExecAgentName = "ExecuteCommandAgent"

// ShellOptions are the shells offered for the interactive session.
var ShellOptions = []string{"/bin/bash", "/bin/sh"}

// PromptFunc presents options and returns the chosen index. The index is the
// authoritative selection; display labels are not guaranteed unique.
type PromptFunc func(title string, options []string) (int, error)

// Selector drives the cluster -> task -> container -> shell decision chain.
// Prompt is the interactive choice primitive; tests inject fakes.
type Selector struct {
	Prompt PromptFunc
}

func (s *Selector) prompt(title string, options []string) (int, error) {
	idx, err := s.Prompt(title, options)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSelectionAborted, err)
	}
	return idx, nil
}

// ResolveCluster picks a cluster ARN. A hint that exactly matches a known ARN
// resolves without prompting; failing that, a hint matching a friendly name
// resolves to the first cluster carrying it. ARN match takes precedence over
// friendly-name match. Without a usable hint the friendly names are prompted.
func (s *Selector) ResolveCluster(clusters []Cluster, hint string) (string, error) {
	if len(clusters) == 0 {
		return "", fmt.Errorf("%w: no clusters to select from", ErrList)
	}

	if hint != "" {
		for _, c := range clusters {
			if c.Arn == hint {
				return c.Arn, nil
			}
		}
		for _, c := range clusters {
			if c.Name == hint {
				return c.Arn, nil
			}
		}
	}

	names := make([]string, len(clusters))
	for i, c := range clusters {
		names[i] = c.Name
	}
	idx, err := s.prompt("Select cluster", names)
	if err != nil {
		return "", err
	}
	return clusters[idx].Arn, nil
}

// ResolveTask picks a task, always interactively. Two tasks of the same task
// definition render identical labels, so the chosen index decides.
func (s *Selector) ResolveTask(tasks []Task) (Task, error) {
	labels := make([]string, len(tasks))
	for i, t := range tasks {
		labels[i] = fmt.Sprintf("%s - (%s)", FriendlyName(t.TaskDefinition), t.LaunchType)
	}
	idx, err := s.prompt("Select task", labels)
	if err != nil {
		return Task{}, err
	}
	return tasks[idx], nil
}

// EligibleContainers returns the task's containers running the exec agent.
func EligibleContainers(task Task) []Container {
	eligible := []Container{}
	for _, c := range task.Containers {
		for _, agent := range c.ManagedAgents {
			if agent == ExecAgentName {
				eligible = append(eligible, c)
				break
			}
		}
	}
	return eligible
}

// ResolveContainer picks a container from the task. A single eligible
// container is auto-selected without prompting; zero is a configuration
// fault on the task.
func (s *Selector) ResolveContainer(task Task) (string, error) {
	eligible := EligibleContainers(task)
	switch len(eligible) {
	case 0:
		return "", fmt.Errorf("%w: task %s", ErrNoEligibleContainer, FriendlyName(task.Arn))
	case 1:
		return eligible[0].Name, nil
	}

	names := make([]string, len(eligible))
	for i, c := range eligible {
		names[i] = c.Name
	}
	idx, err := s.prompt("Select container", names)
	if err != nil {
		return "", err
	}
	return eligible[idx].Name, nil
}

// ResolveShell picks the shell to run inside the container.
func (s *Selector) ResolveShell() (string, error) {
	idx, err := s.prompt("Select shell", ShellOptions)
	if err != nil {
		return "", err
	}
	return ShellOptions[idx], nil
}
