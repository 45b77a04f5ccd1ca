package main

import (
	"github.com/rs/zerolog/log"

	"github.com/quilldb/quill/cmd/quill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
