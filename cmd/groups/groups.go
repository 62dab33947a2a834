// Package groups administers the account group taxonomy.
package groups

import (
	"fmt"
	"strings"

	"cofrim/cmd/root"
	"cofrim/internal/models"

	"github.com/spf13/cobra"
)

var (
	name      string
	groupName string
)

// Cmd represents the groups command
var Cmd = &cobra.Command{
	Use:   "groups",
	Short: "List and manage account groups and subgroups",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all groups and their subgroups",
	Run: func(cmd *cobra.Command, args []string) {
		st, err := root.OpenStore()
		if err != nil {
			root.Log.Fatalf("Failed to open snapshot: %v", err)
		}
		for _, g := range st.Groups {
			fmt.Printf("%s: %s\n", g.Name, strings.Join(g.Subgroups, ", "))
		}
	},
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an empty group",
	Run: func(cmd *cobra.Command, args []string) {
		st, err := root.OpenStore()
		if err != nil {
			root.Log.Fatalf("Failed to open snapshot: %v", err)
		}

		trimmed := strings.TrimSpace(name)
		if st.FindGroup(trimmed) != nil {
			root.Log.Fatalf("Group %q already exists", trimmed)
		}

		st.Groups = append(st.Groups, models.AccountGroup{Name: trimmed})
		if err := st.Save(); err != nil {
			root.Log.Fatalf("Failed to save snapshot: %v", err)
		}
		root.Log.Infof("Added group %s", trimmed)
	},
}

var addSubCmd = &cobra.Command{
	Use:   "add-sub",
	Short: "Add a subgroup to a group",
	Long: `add-sub appends a subgroup to an existing group. The subgroup name
also becomes a matching keyword of the group, so newly recorded entries
mentioning it are classified automatically.`,
	Run: func(cmd *cobra.Command, args []string) {
		st, err := root.OpenStore()
		if err != nil {
			root.Log.Fatalf("Failed to open snapshot: %v", err)
		}

		g := st.FindGroup(strings.TrimSpace(groupName))
		if g == nil {
			root.Log.Fatalf("No group named %q", groupName)
		}

		sub := strings.TrimSpace(name)
		g.Subgroups = append(g.Subgroups, sub)
		g.Keywords = append(g.Keywords, strings.ToLower(sub))

		if err := st.Save(); err != nil {
			root.Log.Fatalf("Failed to save snapshot: %v", err)
		}
		root.Log.Infof("Added subgroup %s to %s", sub, g.Name)
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm",
	Short: "Remove a group by name",
	Run: func(cmd *cobra.Command, args []string) {
		st, err := root.OpenStore()
		if err != nil {
			root.Log.Fatalf("Failed to open snapshot: %v", err)
		}

		if !st.RemoveGroup(strings.TrimSpace(name)) {
			root.Log.Errorf("No group named %q", name)
			return
		}
		if err := st.Save(); err != nil {
			root.Log.Fatalf("Failed to save snapshot: %v", err)
		}
		root.Log.Infof("Removed group %s", name)
	},
}

func init() {
	addCmd.Flags().StringVarP(&name, "name", "n", "", "Group name")
	_ = addCmd.MarkFlagRequired("name")

	addSubCmd.Flags().StringVarP(&groupName, "group", "g", "", "Group to add the subgroup to")
	addSubCmd.Flags().StringVarP(&name, "name", "n", "", "Subgroup name")
	_ = addSubCmd.MarkFlagRequired("group")
	_ = addSubCmd.MarkFlagRequired("name")

	rmCmd.Flags().StringVarP(&name, "name", "n", "", "Group name")
	_ = rmCmd.MarkFlagRequired("name")

	Cmd.AddCommand(listCmd, addCmd, addSubCmd, rmCmd)
}
