package internal

import (
	"errors"
	"fmt"
	"testing"
)

// fakePrompt returns a fixed index and records whether it was called.
func fakePrompt(idx int, called *bool) PromptFunc {
	return func(title string, options []string) (int, error) {
		if called != nil {
			*called = true
		}
		return idx, nil
	}
}

func abortingPrompt(title string, options []string) (int, error) {
	return 0, fmt.Errorf("cancelled")
}

func TestResolveClusterShortCircuit(t *testing.T) {
	clusters := []Cluster{
		{Arn: "arn:aws:ecs:eu-west-1:123:cluster/prod", Name: "prod"},
		{Arn: "arn:aws:ecs:eu-west-1:123:cluster/staging", Name: "staging"},
	}

	tests := []struct {
		name string
		hint string
		want string
	}{
		{"full ARN hint", "arn:aws:ecs:eu-west-1:123:cluster/staging", "arn:aws:ecs:eu-west-1:123:cluster/staging"},
		{"friendly name hint", "prod", "arn:aws:ecs:eu-west-1:123:cluster/prod"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompted := false
			s := &Selector{Prompt: fakePrompt(0, &prompted)}

			got, err := s.ResolveCluster(clusters, tt.hint)
			if err != nil {
				t.Fatalf("ResolveCluster failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveCluster = %q, want %q", got, tt.want)
			}
			if prompted {
				t.Error("prompt invoked despite exact hint match")
			}
		})
	}
}

func TestResolveClusterArnBeforeFriendlyName(t *testing.T) {
	// A hint matching one cluster's full identifier and another cluster's
	// friendly name must resolve as the identifier.
	hint := "arn:aws:ecs:eu-west-1:123:cluster/web"
	clusters := []Cluster{
		{Arn: "arn:aws:ecs:eu-west-1:123:cluster/arn:aws:ecs:eu-west-1:123:cluster/web", Name: hint},
		{Arn: hint, Name: "web"},
	}

	s := &Selector{Prompt: abortingPrompt}
	got, err := s.ResolveCluster(clusters, hint)
	if err != nil {
		t.Fatalf("ResolveCluster failed: %v", err)
	}
	if got != hint {
		t.Errorf("ResolveCluster = %q, want identifier match %q", got, hint)
	}
}

func TestResolveClusterFriendlyNameCollision(t *testing.T) {
	// Two distinct ARNs sharing a trailing segment: first match wins.
	clusters := []Cluster{
		{Arn: "arn:aws:ecs:eu-west-1:123:cluster/app", Name: "app"},
		{Arn: "arn:aws:ecs:us-east-1:456:cluster/app", Name: "app"},
	}

	s := &Selector{Prompt: abortingPrompt}
	got, err := s.ResolveCluster(clusters, "app")
	if err != nil {
		t.Fatalf("ResolveCluster failed: %v", err)
	}
	if got != "arn:aws:ecs:eu-west-1:123:cluster/app" {
		t.Errorf("ResolveCluster = %q, want first positional match", got)
	}
}

func TestResolveClusterPromptsWithoutHint(t *testing.T) {
	clusters := []Cluster{
		{Arn: "arn:aws:ecs:eu-west-1:123:cluster/prod", Name: "prod"},
		{Arn: "arn:aws:ecs:eu-west-1:123:cluster/staging", Name: "staging"},
	}

	prompted := false
	s := &Selector{Prompt: fakePrompt(1, &prompted)}

	got, err := s.ResolveCluster(clusters, "")
	if err != nil {
		t.Fatalf("ResolveCluster failed: %v", err)
	}
	if !prompted {
		t.Error("expected prompt to be invoked")
	}
	if got != clusters[1].Arn {
		t.Errorf("ResolveCluster = %q, want %q", got, clusters[1].Arn)
	}
}

func TestResolveClusterUnknownHintFallsBackToPrompt(t *testing.T) {
	clusters := []Cluster{
		{Arn: "arn:aws:ecs:eu-west-1:123:cluster/prod", Name: "prod"},
	}

	prompted := false
	s := &Selector{Prompt: fakePrompt(0, &prompted)}

	if _, err := s.ResolveCluster(clusters, "nope"); err != nil {
		t.Fatalf("ResolveCluster failed: %v", err)
	}
	if !prompted {
		t.Error("unknown hint should fall back to the prompt")
	}
}

func TestResolveClusterEmptyList(t *testing.T) {
	s := &Selector{Prompt: fakePrompt(0, nil)}
	_, err := s.ResolveCluster(nil, "")
	if !errors.Is(err, ErrList) {
		t.Errorf("expected ErrList, got %v", err)
	}
}

func TestResolveClusterAborted(t *testing.T) {
	clusters := []Cluster{
		{Arn: "arn:aws:ecs:eu-west-1:123:cluster/prod", Name: "prod"},
	}

	s := &Selector{Prompt: abortingPrompt}
	_, err := s.ResolveCluster(clusters, "")
	if !errors.Is(err, ErrSelectionAborted) {
		t.Errorf("expected ErrSelectionAborted, got %v", err)
	}
}

func TestResolveTaskByIndex(t *testing.T) {
	// Two tasks of the same task definition render identical labels; the
	// chosen index must still pick the right task.
	tasks := []Task{
		{Arn: "arn:aws:ecs:eu-west-1:123:task/prod/aaa", TaskDefinition: "arn:aws:ecs:eu-west-1:123:task-definition/web:4", LaunchType: "FARGATE"},
		{Arn: "arn:aws:ecs:eu-west-1:123:task/prod/bbb", TaskDefinition: "arn:aws:ecs:eu-west-1:123:task-definition/web:4", LaunchType: "FARGATE"},
	}

	var gotOptions []string
	s := &Selector{Prompt: func(title string, options []string) (int, error) {
		gotOptions = options
		return 1, nil
	}}

	task, err := s.ResolveTask(tasks)
	if err != nil {
		t.Fatalf("ResolveTask failed: %v", err)
	}
	if task.Arn != tasks[1].Arn {
		t.Errorf("ResolveTask picked %q, want %q", task.Arn, tasks[1].Arn)
	}

	want := "web:4 - (FARGATE)"
	for i, label := range gotOptions {
		if label != want {
			t.Errorf("label[%d] = %q, want %q", i, label, want)
		}
	}
}

func TestEligibleContainers(t *testing.T) {
	tests := []struct {
		name string
		task Task
		want []string
	}{
		{
			name: "agent present",
			task: Task{Containers: []Container{
				{Name: "app", ManagedAgents: []string{ExecAgentName}},
			}},
			want: []string{"app"},
		},
		{
			name: "agent absent",
			task: Task{Containers: []Container{
				{Name: "sidecar", ManagedAgents: []string{"OtherAgent"}},
				{Name: "bare"},
			}},
			want: []string{},
		},
		{
			name: "no containers field",
			task: Task{},
			want: []string{},
		},
		{
			name: "mixed",
			task: Task{Containers: []Container{
				{Name: "app", ManagedAgents: []string{ExecAgentName}},
				{Name: "sidecar"},
				{Name: "worker", ManagedAgents: []string{"OtherAgent", ExecAgentName}},
			}},
			want: []string{"app", "worker"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EligibleContainers(tt.task)
			if len(got) != len(tt.want) {
				t.Fatalf("EligibleContainers returned %d containers, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].Name != tt.want[i] {
					t.Errorf("container[%d] = %q, want %q", i, got[i].Name, tt.want[i])
				}
			}
		})
	}
}

func TestResolveContainerAutoSelect(t *testing.T) {
	task := Task{Containers: []Container{
		{Name: "app", ManagedAgents: []string{ExecAgentName}},
		{Name: "sidecar"},
	}}

	prompted := false
	s := &Selector{Prompt: fakePrompt(0, &prompted)}

	name, err := s.ResolveContainer(task)
	if err != nil {
		t.Fatalf("ResolveContainer failed: %v", err)
	}
	if name != "app" {
		t.Errorf("ResolveContainer = %q, want %q", name, "app")
	}
	if prompted {
		t.Error("single eligible container must auto-select without prompting")
	}
}

func TestResolveContainerNoneEligible(t *testing.T) {
	task := Task{
		Arn:        "arn:aws:ecs:eu-west-1:123:task/prod/aaa",
		Containers: []Container{{Name: "app"}},
	}

	s := &Selector{Prompt: fakePrompt(0, nil)}
	_, err := s.ResolveContainer(task)
	if !errors.Is(err, ErrNoEligibleContainer) {
		t.Errorf("expected ErrNoEligibleContainer, got %v", err)
	}
}

func TestResolveContainerPromptsWhenMultiple(t *testing.T) {
	task := Task{Containers: []Container{
		{Name: "app", ManagedAgents: []string{ExecAgentName}},
		{Name: "worker", ManagedAgents: []string{ExecAgentName}},
	}}

	prompted := false
	s := &Selector{Prompt: fakePrompt(1, &prompted)}

	name, err := s.ResolveContainer(task)
	if err != nil {
		t.Fatalf("ResolveContainer failed: %v", err)
	}
	if !prompted {
		t.Error("expected prompt with two eligible containers")
	}
	if name != "worker" {
		t.Errorf("ResolveContainer = %q, want %q", name, "worker")
	}
}

func TestResolveShell(t *testing.T) {
	s := &Selector{Prompt: fakePrompt(1, nil)}
	shell, err := s.ResolveShell()
	if err != nil {
		t.Fatalf("ResolveShell failed: %v", err)
	}
	if shell != "/bin/sh" {
		t.Errorf("ResolveShell = %q, want %q", shell, "/bin/sh")
	}

	s = &Selector{Prompt: abortingPrompt}
	if _, err := s.ResolveShell(); !errors.Is(err, ErrSelectionAborted) {
		t.Errorf("expected ErrSelectionAborted, got %v", err)
	}
}
