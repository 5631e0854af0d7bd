package main

import "github.com/ballclub/team-results/internal/cli"

func main() {
	cli.Execute()
}
