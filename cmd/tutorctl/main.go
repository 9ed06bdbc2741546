package main

import (
	"os"

	"github.com/saulo-duarte/adaptive-tutor/cmd/tutorctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
