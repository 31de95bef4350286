package main

import (
	_ "embed"
	"log/slog"
	"os"
	"strings"

	"github.com/jylitalo/tmg/cmd"
)

//go:embed version.txt
var Version string

func main() {
	if err := cmd.NewCommand(os.Stdout, strings.TrimSpace(Version)).Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
