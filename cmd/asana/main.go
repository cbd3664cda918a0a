package main

import (
	"os"

	"github.com/ArtisanCodesmith/node-asana/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
