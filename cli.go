//go:build cli

// Entrypoint for the CLI build (`-tags cli`): cobra commands instead of the
// HTTP server. Extension packages hook in via their init functions.
package main

import (
	_ "shopwidget.GO/custom"

	"shopwidget.GO/cmd"
	"shopwidget.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
