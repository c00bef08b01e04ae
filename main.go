package main

import "game-library/internal/cli"

func main() {
	cli.Execute()
}
