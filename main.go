package main

import (
	"fmt"
	"os"
)

// Set at build time with -ldflags "-X main.Version=... -X main.BuildTime=...".
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	SetVersion(Version, BuildTime)
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
