package main

import "github.com/Geekoosh/ecs-exec-cli/cmd"

func main() {
	cmd.Execute()
}
