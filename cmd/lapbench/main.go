package main

import "github.com/MeKo-Tech/lapbench/cmd/lapbench/cmd"

func main() {
	cmd.Execute()
}
