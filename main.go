package main

import "github.com/upkeepops/upkeep/cmd"

func main() {
	cmd.Execute()
}
