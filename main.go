package main

import (
	"github.com/drivepipe/drivepipe/cmd"
)

// version is stamped at build time by the release pipeline
var version = "dev"

func main() {
	cmd.SetVersion(version)
	cmd.Execute()
}
