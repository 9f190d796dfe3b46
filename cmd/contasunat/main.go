package main

import (
	"os"

	"github.com/jhoicas/contasunat/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
