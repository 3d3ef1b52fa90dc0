// Package main is the entry point for the skillcheck CLI.
package main

import (
	"os"

	"github.com/rengarcia/web-quality-skills/cmd/skillcheck/commands"
)

func main() {
	os.Exit(commands.Execute())
}
