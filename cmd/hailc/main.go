package main

import "github.com/hail-lang/hail/cmd/hailc/cmd"

func main() {
	cmd.Execute()
}
