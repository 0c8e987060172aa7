package main

import "github.com/agentic-research/xdgicon/cmd"

func main() {
	cmd.Execute()
}
