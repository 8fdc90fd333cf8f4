package cmd

import (
	"fmt"
	"math/rand"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"shopwidget.GO/config"
	"shopwidget.GO/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the widget HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		config.LoadAppConfig()
		config.InitRedis()

		deps := server.NewDeps(server.Options{})
		e := server.New(deps, server.Options{})

		// ASCII banner on start (random font each run)
		fonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "doom", "larry3d", "puffy", "rectangles"}
		fig := figure.NewFigure("ShopWidget ->", fonts[rand.Intn(len(fonts))], true)
		fig.Print()
		fmt.Println("Pickup-order widget server")

		server.Start(e)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
