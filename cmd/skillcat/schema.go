package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aa89227/skillcat/pkg/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema <kind>",
	Short: "Print the JSON Schema for a skillcat file format",
	Long: fmt.Sprintf(`Print the JSON Schema for one of the skillcat file formats, for editor
or CI validation. Supported kinds: %s.`, strings.Join(schema.Kinds(), ", ")),
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		out, err := schema.GenerateJSON(args[0])
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
