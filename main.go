package main

import "github.com/hawkarabdulhaq/quakescope/internal/cmd"

func main() {
	cmd.Execute()
}
