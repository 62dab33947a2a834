// Package export writes the ledger to a CSV file.
package export

import (
	"os"

	"cofrim/cmd/root"
	"cofrim/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

var output string

// entryRow is the CSV projection of a ledger entry.
type entryRow struct {
	ID          int    `csv:"id"`
	Date        string `csv:"data"`
	Bank        string `csv:"banco"`
	Direction   string `csv:"tipo"`
	Subtype     string `csv:"subtipo"`
	Group       string `csv:"grupo"`
	Subgroup    string `csv:"subgrupo"`
	Amount      string `csv:"valor"`
	Description string `csv:"descricao"`
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger to CSV",
	Run:   exportFunc,
}

func exportFunc(cmd *cobra.Command, args []string) {
	st, err := root.OpenStore()
	if err != nil {
		root.Log.Fatalf("Failed to open snapshot: %v", err)
	}

	rows := make([]entryRow, 0, len(st.Entries))
	for _, e := range st.Entries {
		rows = append(rows, toRow(e))
	}

	f, err := os.Create(output)
	if err != nil {
		root.Log.Fatalf("Failed to create output file: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			root.Log.Warnf("Failed to close output file: %v", err)
		}
	}()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		root.Log.Fatalf("Failed to write CSV: %v", err)
	}

	root.Log.Infof("Exported %d entries to %s", len(rows), output)
}

func toRow(e models.Entry) entryRow {
	return entryRow{
		ID:          e.ID,
		Date:        e.Date.Format(models.DateTimeLayout),
		Bank:        e.Bank,
		Direction:   string(e.Direction),
		Subtype:     e.Subtype,
		Group:       e.Group,
		Subgroup:    e.Subgroup,
		Amount:      e.Amount.StringFixed(2),
		Description: e.Description,
	}
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "lancamentos.csv", "Output CSV file")
}
