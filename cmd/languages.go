package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List available languages",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := buildCatalog(cmd)
		if err != nil {
			return err
		}

		for _, lang := range cat.Languages() {
			fmt.Printf("%s  %-12s %-12s %3d lessons\n",
				lang.Flag, lang.Name, lang.Difficulty.DisplayName(), lang.TotalLessons)
		}
		return nil
	},
}
