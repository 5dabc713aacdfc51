// Package main is the entry point for the rescuetime-reporter CLI.
package main

import "github.com/guerrerocarlos/rescuetime-reporter/cmd"

func main() {
	cmd.Execute()
}
