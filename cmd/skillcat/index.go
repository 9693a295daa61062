package main

import (
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aa89227/skillcat/pkg/marketplace"
	"github.com/aa89227/skillcat/pkg/presenter"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Derive the marketplace index from the catalog",
	Long: `Build the marketplace index from the loaded catalog and print it. With
--write the index is saved to marketplace.json at the catalog root; with
--check the committed index is compared against the catalog and the command
fails when it is stale.

Examples:
  skillcat index
  skillcat index --write
  skillcat index --check`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := loadCatalog(cmd.Context())
		if err != nil {
			return err
		}

		idx := marketplace.Build(c)

		path, _ := cmd.Flags().GetString("output")
		if path == "" {
			path = filepath.Join(viper.GetString("root"), marketplace.IndexFileName)
		}

		if check, _ := cmd.Flags().GetBool("check"); check {
			committed, err := marketplace.Load(path)
			if err != nil {
				return errors.Wrap(err, "failed to load committed index")
			}
			drift := marketplace.Diff(committed, c)
			for _, line := range drift {
				presenter.Warning(line)
			}
			if len(drift) > 0 {
				return errors.Errorf("marketplace index is stale (%d discrepancies)", len(drift))
			}
			presenter.Success("marketplace index is up to date")
			return nil
		}

		if write, _ := cmd.Flags().GetBool("write"); write {
			if err := marketplace.Save(path, idx); err != nil {
				return err
			}
			presenter.Success(fmt.Sprintf("wrote %s (%d plugins)", path, len(idx.Plugins)))
			return nil
		}

		out, err := idx.JSON()
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	indexCmd.Flags().Bool("write", false, "Write the index to the catalog root")
	indexCmd.Flags().Bool("check", false, "Fail when the committed index is stale")
	indexCmd.Flags().StringP("output", "o", "", "Index file path (defaults to <root>/marketplace.json)")
	rootCmd.AddCommand(indexCmd)
}
