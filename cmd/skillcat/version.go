package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aa89227/skillcat/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		info := version.Get()
		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			out, err := info.JSON()
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		}
		fmt.Println(info.String())
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("json", false, "Print version information as JSON")
	rootCmd.AddCommand(versionCmd)
}
