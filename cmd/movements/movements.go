// Package movements administers the movement type catalog.
package movements

import (
	"fmt"
	"strings"

	"cofrim/cmd/root"
	"cofrim/internal/models"

	"github.com/spf13/cobra"
)

var (
	direction string
	subtype   string
	keywords  string
	id        int
)

// Cmd represents the movements command
var Cmd = &cobra.Command{
	Use:   "movements",
	Short: "List and manage the movement type catalog",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all movement types",
	Run: func(cmd *cobra.Command, args []string) {
		st, err := root.OpenStore()
		if err != nil {
			root.Log.Fatalf("Failed to open snapshot: %v", err)
		}
		for _, m := range st.Movements {
			fmt.Printf("%d - %s | %s (%s)\n", m.ID, m.Direction, m.Subtype, strings.Join(m.Keywords, ", "))
		}
	},
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a movement type",
	Run: func(cmd *cobra.Command, args []string) {
		dir := models.Direction(strings.ToUpper(strings.TrimSpace(direction)))
		if dir != models.DirectionDebit && dir != models.DirectionCredit {
			root.Log.Fatalf("Direction must be %s or %s", models.DirectionDebit, models.DirectionCredit)
		}

		st, err := root.OpenStore()
		if err != nil {
			root.Log.Fatalf("Failed to open snapshot: %v", err)
		}

		movement := models.MovementType{
			ID:        st.NextMovementID(),
			Direction: dir,
			Subtype:   strings.ToUpper(strings.TrimSpace(subtype)),
		}
		for _, kw := range strings.Split(keywords, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				movement.Keywords = append(movement.Keywords, kw)
			}
		}

		st.Movements = append(st.Movements, movement)
		if err := st.Save(); err != nil {
			root.Log.Fatalf("Failed to save snapshot: %v", err)
		}
		root.Log.Infof("Added movement type %d - %s | %s", movement.ID, movement.Direction, movement.Subtype)
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm",
	Short: "Remove a movement type by id",
	Run: func(cmd *cobra.Command, args []string) {
		st, err := root.OpenStore()
		if err != nil {
			root.Log.Fatalf("Failed to open snapshot: %v", err)
		}

		if !st.RemoveMovement(id) {
			root.Log.Errorf("No movement type with id %d", id)
			return
		}
		if err := st.Save(); err != nil {
			root.Log.Fatalf("Failed to save snapshot: %v", err)
		}
		root.Log.Infof("Removed movement type %d", id)
	},
}

func init() {
	addCmd.Flags().StringVarP(&direction, "direction", "t", "", "DEBITO or CREDITO")
	addCmd.Flags().StringVarP(&subtype, "subtype", "s", "", "Subtype (e.g. PIX)")
	addCmd.Flags().StringVarP(&keywords, "keywords", "k", "", "Comma-separated keywords")
	_ = addCmd.MarkFlagRequired("direction")
	_ = addCmd.MarkFlagRequired("subtype")

	rmCmd.Flags().IntVarP(&id, "id", "i", 0, "Movement type id")
	_ = rmCmd.MarkFlagRequired("id")

	Cmd.AddCommand(listCmd, addCmd, rmCmd)
}
