package main

import "github.com/graphgauge/graphgauge/cmd/graphgauge/commands"

func main() {
	commands.Execute()
}
