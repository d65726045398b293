package main

import (
	"os"

	"github.com/quizbuddy/quizbuddy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
