package main

import "github.com/UWO-Aero-Design/strategy/cmd"

func main() {
	cmd.Execute()
}
