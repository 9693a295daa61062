package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aa89227/skillcat/pkg/presenter"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List plugins in the catalog",
	Long: `List all plugins discovered under the catalog root with their version,
author, and skill count. Use --skills to expand one row per skill.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := loadCatalog(cmd.Context())
		if err != nil {
			return err
		}

		if c.Len() == 0 {
			presenter.Info("No plugins found")
			return nil
		}

		expand, _ := cmd.Flags().GetBool("skills")

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		defer tw.Flush()

		if expand {
			fmt.Fprintln(tw, "PLUGIN\tSKILL\tTAGS\tDESCRIPTION")
			fmt.Fprintln(tw, "------\t-----\t----\t-----------")
			for _, plugin := range c.Plugins() {
				for _, skill := range plugin.Skills() {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
						plugin.Name, skill.Name,
						strings.Join(skill.Meta.Tags, ","),
						truncate(skill.Description, 60))
				}
			}
			return nil
		}

		fmt.Fprintln(tw, "NAME\tVERSION\tAUTHOR\tSKILLS")
		fmt.Fprintln(tw, "----\t-------\t------\t------")
		for _, plugin := range c.Plugins() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n",
				plugin.Name, plugin.Version, plugin.Author, len(plugin.SkillNames()))
		}

		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func init() {
	listCmd.Flags().Bool("skills", false, "Expand one row per skill")
	rootCmd.AddCommand(listCmd)
}
