package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aa89227/skillcat/pkg/presenter"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the catalog and report rejected entries",
	Long: `Load the catalog and print every entry that was excluded, with its path
and rejection cause. With --strict the command fails when any entry was
rejected, for use in CI.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := loadCatalog(cmd.Context())
		if err != nil {
			return err
		}

		rejections := c.Rejections()
		for _, r := range rejections {
			presenter.Warning(r.String())
		}

		presenter.Info(fmt.Sprintf("%d plugins loaded, %d entries rejected", c.Len(), len(rejections)))

		if strict, _ := cmd.Flags().GetBool("strict"); strict {
			return rejections.Err()
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().Bool("strict", false, "Exit nonzero when any entry was rejected")
	rootCmd.AddCommand(validateCmd)
}
