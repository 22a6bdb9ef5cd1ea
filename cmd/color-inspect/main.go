package main

import (
	"os"

	"github.com/ironsheep/color-inspect/internal/cli"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	root := cli.NewRootCmd(cli.BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	})
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
