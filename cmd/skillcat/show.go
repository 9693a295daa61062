package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/aa89227/skillcat/pkg/presenter"
)

var showCmd = &cobra.Command{
	Use:   "show <plugin[/skill]>",
	Short: "Show details of a plugin or skill",
	Long: `Show the metadata of a plugin, or of a single skill when the argument is
given as plugin/skill. Use --content to print the skill's body content.

Examples:
  skillcat show git-operations
  skillcat show git-operations/git-commit-messages
  skillcat show git-operations/git-commit-messages --content`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog(cmd.Context())
		if err != nil {
			return err
		}

		pluginName, skillName := parseTarget(args[0])

		plugin, ok := c.Plugin(pluginName)
		if !ok {
			return errors.Errorf("plugin %q not found in catalog", pluginName)
		}

		if skillName == "" {
			presenter.Section(plugin.Name)
			presenter.Info(fmt.Sprintf("Version:   %s", plugin.Version))
			presenter.Info(fmt.Sprintf("Author:    %s", plugin.Author))
			presenter.Info(fmt.Sprintf("Directory: %s", plugin.Directory))
			presenter.Info(fmt.Sprintf("Skills:    %s", strings.Join(plugin.SkillNames(), ", ")))
			return nil
		}

		skill, ok := plugin.Skill(skillName)
		if !ok {
			return errors.Errorf("skill %q not found in plugin %q", skillName, pluginName)
		}

		if content, _ := cmd.Flags().GetBool("content"); content {
			fmt.Print(skill.Content)
			return nil
		}

		presenter.Section(fmt.Sprintf("%s/%s", plugin.Name, skill.Name))
		presenter.Info(fmt.Sprintf("Description: %s", skill.Description))
		presenter.Info(fmt.Sprintf("License:     %s", skill.License))
		presenter.Info(fmt.Sprintf("Author:      %s", skill.Meta.Author))
		presenter.Info(fmt.Sprintf("Version:     %s", skill.Meta.Version))
		presenter.Info(fmt.Sprintf("Tags:        %s", strings.Join(skill.Meta.Tags, ", ")))
		presenter.Info(fmt.Sprintf("Directory:   %s", skill.Directory))
		return nil
	},
}

// parseTarget splits a "plugin" or "plugin/skill" argument. Only the first
// slash separates plugin from skill.
func parseTarget(arg string) (string, string) {
	parts := strings.SplitN(arg, "/", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func init() {
	showCmd.Flags().Bool("content", false, "Print the skill's body content only")
	rootCmd.AddCommand(showCmd)
}
