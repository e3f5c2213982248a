package main

import "github.com/agentic-research/faceplate/cmd"

func main() {
	cmd.Execute()
}
