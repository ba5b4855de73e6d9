package internal

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecsTypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
)

// ECSClient wraps the ECS service client for the listing queries this tool
// needs. Both operations are read-only; results are fetched fresh per run.
type ECSClient struct {
	ECS *ecs.Client
}

func NewECSClient(cfg aws.Config) *ECSClient {
	return &ECSClient{ECS: ecs.NewFromConfig(cfg)}
}

// ListClusters returns all clusters in the region. An empty result is valid
// and surfaced as an empty slice; the caller decides whether that is fatal.
func (c *ECSClient) ListClusters(ctx context.Context) ([]Cluster, error) {
	var clusters []Cluster
	var nextToken *string
	for {
		out, err := c.ECS.ListClusters(ctx, &ecs.ListClustersInput{
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: listing clusters: %v", ErrList, err)
		}

		for _, arn := range out.ClusterArns {
			clusters = append(clusters, Cluster{
				Arn:  arn,
				Name: FriendlyName(arn),
			})
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}

	return clusters, nil
}

// ListRunningTasks returns the cluster's running tasks that have ECS Exec
// enabled. Tasks without the flag are dropped; an empty result is valid.
func (c *ECSClient) ListRunningTasks(ctx context.Context, clusterArn string) ([]Task, error) {
	var taskArns []string
	var nextToken *string
	for {
		out, err := c.ECS.ListTasks(ctx, &ecs.ListTasksInput{
			Cluster:       &clusterArn,
			DesiredStatus: ecsTypes.DesiredStatusRunning,
			NextToken:     nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: listing tasks: %v", ErrList, err)
		}
		taskArns = append(taskArns, out.TaskArns...)

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}
	if len(taskArns) == 0 {
		return []Task{}, nil
	}

	tasks := []Task{}
	for _, chunk := range chunkStrings(taskArns, describeTasksMax) {
		descOut, err := c.ECS.DescribeTasks(ctx, &ecs.DescribeTasksInput{
			Cluster: &clusterArn,
			Tasks:   chunk,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: describing tasks: %v", ErrList, err)
		}
		tasks = append(tasks, filterExecTasks(descOut.Tasks)...)
	}

	return tasks, nil
}

// describeTasksMax is the DescribeTasks API limit per call.
const describeTasksMax = 100

func chunkStrings(items []string, size int) [][]string {
	var chunks [][]string
	for len(items) > size {
		chunks = append(chunks, items[:size])
		items = items[size:]
	}
	if len(items) > 0 {
		chunks = append(chunks, items)
	}
	return chunks
}

// filterExecTasks keeps tasks with ECS Exec enabled and flattens them into
// the local Task shape. Absent container lists come through as empty.
func filterExecTasks(tasks []ecsTypes.Task) []Task {
	filtered := []Task{}
	for _, t := range tasks {
		if !t.EnableExecuteCommand {
			continue
		}

		task := Task{
			Arn:            getString(t.TaskArn),
			TaskDefinition: getString(t.TaskDefinitionArn),
			LaunchType:     string(t.LaunchType),
			ExecEnabled:    true,
		}
		for _, ctn := range t.Containers {
			container := Container{Name: getString(ctn.Name)}
			for _, agent := range ctn.ManagedAgents {
				container.ManagedAgents = append(container.ManagedAgents, string(agent.Name))
			}
			task.Containers = append(task.Containers, container)
		}
		filtered = append(filtered, task)
	}
	return filtered
}

func getString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
