// Package banks administers the bank catalog.
package banks

import (
	"fmt"
	"strings"

	"cofrim/cmd/root"
	"cofrim/internal/models"

	"github.com/spf13/cobra"
)

var (
	name    string
	aliases string
	id      int
)

// Cmd represents the banks command
var Cmd = &cobra.Command{
	Use:   "banks",
	Short: "List and manage the bank catalog",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all banks",
	Run: func(cmd *cobra.Command, args []string) {
		st, err := root.OpenStore()
		if err != nil {
			root.Log.Fatalf("Failed to open snapshot: %v", err)
		}
		for _, b := range st.Banks {
			fmt.Printf("%d - %s (%s)\n", b.ID, b.Name, strings.Join(b.Aliases, ", "))
		}
	},
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a bank",
	Run: func(cmd *cobra.Command, args []string) {
		st, err := root.OpenStore()
		if err != nil {
			root.Log.Fatalf("Failed to open snapshot: %v", err)
		}

		bank := models.Bank{
			ID:   st.NextBankID(),
			Name: strings.TrimSpace(name),
		}
		for _, a := range strings.Split(aliases, ",") {
			if a = strings.TrimSpace(a); a != "" {
				bank.Aliases = append(bank.Aliases, a)
			}
		}

		st.Banks = append(st.Banks, bank)
		if err := st.Save(); err != nil {
			root.Log.Fatalf("Failed to save snapshot: %v", err)
		}
		root.Log.Infof("Added bank %d - %s", bank.ID, bank.Name)
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm",
	Short: "Remove a bank by id",
	Run: func(cmd *cobra.Command, args []string) {
		st, err := root.OpenStore()
		if err != nil {
			root.Log.Fatalf("Failed to open snapshot: %v", err)
		}

		if !st.RemoveBank(id) {
			root.Log.Errorf("No bank with id %d", id)
			return
		}
		if err := st.Save(); err != nil {
			root.Log.Fatalf("Failed to save snapshot: %v", err)
		}
		root.Log.Infof("Removed bank %d", id)
	},
}

func init() {
	addCmd.Flags().StringVarP(&name, "name", "n", "", "Bank name")
	addCmd.Flags().StringVarP(&aliases, "aliases", "a", "", "Comma-separated aliases")
	_ = addCmd.MarkFlagRequired("name")

	rmCmd.Flags().IntVarP(&id, "id", "i", 0, "Bank id")
	_ = rmCmd.MarkFlagRequired("id")

	Cmd.AddCommand(listCmd, addCmd, rmCmd)
}
