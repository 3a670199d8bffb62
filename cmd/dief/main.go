// cmd/dief/main.go
package main

import (
	"github.com/mwiater/dief/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// main starts the dief CLI by delegating to the cobra root command.
func main() {
	cli.SetVersionInfo(version, commit, date)
	cli.Execute()
}
