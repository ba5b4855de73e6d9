package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Geekoosh/ecs-exec-cli/internal"
	"github.com/Geekoosh/ecs-exec-cli/internal/ui"
	"github.com/spf13/cobra"
)

var (
	useMFA      bool
	clusterHint string
	runChecker  bool
	region      string
	profile     string
)

func printLogo() {
	// Gradient colors (Orange -> Pink)
	// Orange: 255, 153, 0
	// Pink: 255, 0, 128

	ascii := []string{
		`  ███████╗ ██████╗███████╗    ███████╗██╗  ██╗███████╗ ██████╗`,
		`  ██╔════╝██╔════╝██╔════╝    ██╔════╝╚██╗██╔╝██╔════╝██╔════╝`,
		`  █████╗  ██║     ███████╗    █████╗   ╚███╔╝ █████╗  ██║     `,
		`  ██╔══╝  ██║     ╚════██║    ██╔══╝   ██╔██╗ ██╔══╝  ██║     `,
		`  ███████╗╚██████╗███████║    ███████╗██╔╝ ██╗███████╗╚██████╗`,
		`  ╚══════╝ ╚═════╝╚══════╝    ╚══════╝╚═╝  ╚═╝╚══════╝ ╚═════╝`,
	}

	fmt.Println()
	for _, line := range ascii {
		for i, char := range line {
			// Calculate gradient ratio (0.0 to 1.0)
			ratio := float64(i) / float64(len(line))

			r := 255
			g := int(153 * (1 - ratio))
			b := int(128 * ratio)

			fmt.Printf("\x1b[38;2;%d;%d;%dm%c\x1b[0m", r, g, b, char)
		}
		fmt.Println()
	}
	fmt.Println("\x1b[1m  Interactive shell sessions into ECS containers via ECS Exec\x1b[0m")
	fmt.Println()
}

var rootCmd = &cobra.Command{
	Use:   "ecs-exec",
	Short: "Open an interactive shell into a running ECS container",
	Long: `ecs-exec walks you through cluster, task and container selection, then opens
an interactive shell into the chosen container with 'aws ecs execute-command'.
Only tasks with ECS Exec enabled and containers running the exec agent are offered.`,
	Example: `  # Full interactive selection
  ecs-exec

  # Skip the cluster prompt and the exec-checker
  ecs-exec --cluster prod --test=false

  # Use ambient credentials without an MFA exchange
  ecs-exec --mfa=false`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Check for updates on every command (non-blocking)
		internal.CheckForUpdates()
	},
	Run: func(cmd *cobra.Command, args []string) {
		printLogo()
		if err := runSession(); err != nil {
			fmt.Printf("❌ %v\n", err)
			os.Exit(1)
		}
	},
}

// resolveCredentials decides how the run's credential set is obtained: a
// non-empty MFA code goes through the refresher and its result replaces
// whatever was active; an empty code skips the exchange entirely and the
// ambient set is used unchanged.
func resolveCredentials(code string,
	refresh func(code string) (internal.Credentials, error),
	ambient func() (internal.Credentials, error),
) (internal.Credentials, error) {
	if code == "" {
		return ambient()
	}
	return refresh(code)
}

func runSession() error {
	ctx := context.TODO()

	code := ""
	if useMFA {
		code = readMFACode()
	}

	creds, err := resolveCredentials(code,
		func(code string) (internal.Credentials, error) {
			res, err := ui.Spin("Verifying MFA code...", func() (any, error) {
				return internal.RefreshWithMFA(ctx, profile, region, code)
			})
			if err != nil {
				return internal.Credentials{}, err
			}
			refreshed := res.(internal.Credentials)
			fmt.Printf("🔐 Session credentials refreshed, valid until %s\n",
				refreshed.Expiration.Local().Format("2006-01-02 15:04:05"))
			return refreshed, nil
		},
		func() (internal.Credentials, error) {
			return internal.AmbientCredentials(ctx, profile, region)
		},
	)
	if err != nil {
		return err
	}

	cfg, err := internal.AwsConfig(ctx, creds, region)
	if err != nil {
		return err
	}
	ecsClient := internal.NewECSClient(cfg)
	selector := &internal.Selector{Prompt: ui.Select}
	launcher := &internal.Launcher{Creds: creds}

	res, err := ui.Spin("Fetching clusters...", func() (any, error) {
		return ecsClient.ListClusters(ctx)
	})
	if err != nil {
		return err
	}
	clusters := res.([]internal.Cluster)
	if len(clusters) == 0 {
		return fmt.Errorf("no ECS clusters found in this region")
	}

	clusterArn, err := selector.ResolveCluster(clusters, clusterHint)
	if err != nil {
		return err
	}

	res, err = ui.Spin("Fetching running tasks...", func() (any, error) {
		return ecsClient.ListRunningTasks(ctx, clusterArn)
	})
	if err != nil {
		return err
	}
	tasks := res.([]internal.Task)
	if len(tasks) == 0 {
		return fmt.Errorf("no running tasks with ECS Exec enabled in cluster %s", internal.FriendlyName(clusterArn))
	}

	task, err := selector.ResolveTask(tasks)
	if err != nil {
		return err
	}

	if runChecker {
		fmt.Println("🔍 Running amazon-ecs-exec-checker...")
		code, err := internal.CheckExecSupport(launcher, clusterArn, task.Arn)
		if err != nil {
			return err
		}
		if code != 0 {
			fmt.Println("💡 Checker reported issues (see output above), continuing anyway")
		}
	}

	container, err := selector.ResolveContainer(task)
	if err != nil {
		return err
	}

	shell, err := selector.ResolveShell()
	if err != nil {
		return err
	}

	fmt.Printf("✅ Opening %s in container '%s'...\n", shell, container)
	exitCode, err := launcher.Launch("aws",
		"ecs", "execute-command",
		"--cluster", clusterArn,
		"--task", task.Arn,
		"--container", container,
		"--interactive",
		"--command", shell,
	)
	if err != nil {
		return err
	}
	if exitCode != 0 {
		fmt.Printf("💡 Session ended with exit code %d\n", exitCode)
	}
	return nil
}

func init() {
	rootCmd.Flags().BoolVar(&useMFA, "mfa", true, "Refresh session credentials with an MFA code before listing")
	rootCmd.Flags().StringVar(&clusterHint, "cluster", "", "Cluster name or ARN to use without prompting")
	rootCmd.Flags().BoolVar(&runChecker, "test", true, "Run amazon-ecs-exec-checker against the chosen task")
	rootCmd.Flags().StringVar(&region, "region", "", "AWS region (defaults to shared config)")
	rootCmd.Flags().StringVar(&profile, "profile", "", "AWS shared config profile for base credentials")
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
