package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		log.Debug().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
