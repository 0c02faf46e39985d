package main

import "github.com/campus-events/agenda/internal/cli"

func main() {
	cli.Execute()
}
