package main

import "github.com/Checker-Finance/octopus-adapter/cmd/octopus-adapter/cmd"

func main() {
	cmd.Execute()
}
