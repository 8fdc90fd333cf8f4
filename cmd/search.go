package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shopwidget.GO/search"
)

var searchCmd = &cobra.Command{
	Use:   "search:upc [upc]",
	Short: "Look up ranked store offers for a UPC (debugging)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		hits, err := search.GetService().Search(context.Background(), args[0], nil)
		if err != nil {
			fmt.Printf("Search failed: %v\n", err)
			os.Exit(1)
		}
		ranked := search.Rank(hits)
		if len(ranked) == 0 {
			fmt.Println("No results found")
			return
		}
		for _, c := range ranked {
			dist := "distance unavailable"
			if miles := c.DistanceMiles(); miles != "" {
				dist = miles + " miles"
			}
			fmt.Printf("%-24s %-32s %s\n", c.ID, c.DisplayStore(), dist)
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
