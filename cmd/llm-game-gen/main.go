package main

import "llm-game-gen/internal/cli"

func main() {
	cli.Execute()
}
