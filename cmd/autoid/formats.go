package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schatt/sixlayer-autoid/export"
)

// formatsCmd lists the export formats
var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the available export formats",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-10s %-8s %s\n", "FORMAT", "EXT", "MIME")
		for _, f := range export.AllFormats() {
			fmt.Printf("%-10s %-8s %s\n", f.String(), f.FileExtension(), f.MimeType())
		}
	},
}
