package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/novexa/novexa/internal/questions"
	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the available interview roles",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := questions.LoadCatalog()
		if err != nil {
			return fmt.Errorf("load role catalogs: %w", err)
		}

		fmt.Println(headingStyle.Render("Available roles"))
		for _, name := range catalog.Roles() {
			role, _ := catalog.Lookup(name)
			fmt.Printf("  %s%s\n", name, roleSummary(role))

			branches := make([]string, 0, len(role.Branches))
			for b := range role.Branches {
				branches = append(branches, b)
			}
			if len(branches) > 0 {
				sort.Strings(branches)
				fmt.Println(dimStyle.Render("    branches: " + strings.Join(branches, ", ")))
			}
		}
		fmt.Println()
		fmt.Println(dimStyle.Render("Any other role falls back to generic questions plus generated ones."))
		return nil
	},
}

func roleSummary(role questions.Role) string {
	technical := 0
	for _, pool := range role.Technical {
		technical += len(pool)
	}
	for _, branch := range role.Branches {
		for _, pool := range branch.Technical {
			technical += len(pool)
		}
	}

	behavioral := len(role.Behavioral)
	for _, branch := range role.Branches {
		behavioral += len(branch.Behavioral)
	}

	if technical == 0 && behavioral == 0 {
		return ""
	}
	return dimStyle.Render(fmt.Sprintf("  (%d technical, %d behavioral)", technical, behavioral))
}
