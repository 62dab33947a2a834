// Package entries administers recorded ledger entries.
package entries

import (
	"fmt"
	"strings"
	"time"

	"cofrim/cmd/root"
	"cofrim/internal/models"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	id    int
	field string
	value string
)

// Field identifies an editable entry field. Edits go through this tagged
// set so an unknown field name is rejected up front instead of silently
// ignored.
type Field string

const (
	FieldAmount    Field = "valor"
	FieldDate      Field = "data"
	FieldBank      Field = "banco"
	FieldDirection Field = "tipo"
	FieldSubtype   Field = "subtipo"
	FieldGroup     Field = "grupo"
	FieldSubgroup  Field = "subgrupo"
)

// ParseField validates a field name.
func ParseField(s string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FieldAmount, FieldDate, FieldBank, FieldDirection, FieldSubtype, FieldGroup, FieldSubgroup:
		return f, nil
	}
	return "", fmt.Errorf("unknown field %q (valid: valor, data, banco, tipo, subtipo, grupo, subgrupo)", s)
}

// Apply sets the field on the entry, validating the value.
func (f Field) Apply(e *models.Entry, value string) error {
	switch f {
	case FieldAmount:
		d, err := decimal.NewFromString(strings.ReplaceAll(value, ",", "."))
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", value, err)
		}
		e.Amount = models.NewAmount(d)
	case FieldDate:
		t, err := time.Parse(models.DateTimeLayout, value)
		if err != nil {
			return fmt.Errorf("invalid date %q (expected %s): %w", value, models.DateTimeLayout, err)
		}
		e.Date = models.NewDateTime(t)
	case FieldBank:
		e.Bank = value
	case FieldDirection:
		dir := models.Direction(strings.ToUpper(value))
		if dir != models.DirectionDebit && dir != models.DirectionCredit {
			return fmt.Errorf("direction must be %s or %s", models.DirectionDebit, models.DirectionCredit)
		}
		e.Direction = dir
	case FieldSubtype:
		e.Subtype = strings.ToUpper(value)
	case FieldGroup:
		e.Group = value
	case FieldSubgroup:
		e.Subgroup = value
	}
	return nil
}

// Cmd represents the entries command
var Cmd = &cobra.Command{
	Use:   "entries",
	Short: "List and manage ledger entries",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all ledger entries",
	Run: func(cmd *cobra.Command, args []string) {
		st, err := root.OpenStore()
		if err != nil {
			root.Log.Fatalf("Failed to open snapshot: %v", err)
		}

		fmt.Println("ID | Data       | Banco   | Tipo    | Subtipo         | Grupo        | Subgrupo     | Valor")
		fmt.Println(strings.Repeat("-", 96))
		for _, e := range st.Entries {
			fmt.Printf("%2d | %s | %-7s | %-7s | %-15s | %-12s | %-12s | R$ %s\n",
				e.ID,
				e.Date.Format("2006-01-02"),
				orDash(e.Bank),
				orDash(string(e.Direction)),
				orDash(e.Subtype),
				e.Group,
				e.Subgroup,
				e.Amount.StringFixed(2))
		}
	},
}

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Edit one field of an entry",
	Run: func(cmd *cobra.Command, args []string) {
		f, err := ParseField(field)
		if err != nil {
			root.Log.Fatalf("%v", err)
		}

		st, err := root.OpenStore()
		if err != nil {
			root.Log.Fatalf("Failed to open snapshot: %v", err)
		}

		entry := st.FindEntry(id)
		if entry == nil {
			root.Log.Fatalf("No entry with id %d", id)
		}
		if err := f.Apply(entry, value); err != nil {
			root.Log.Fatalf("%v", err)
		}

		if err := st.Save(); err != nil {
			root.Log.Fatalf("Failed to save snapshot: %v", err)
		}
		root.Log.Infof("Updated entry %d: %s", id, f)
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm",
	Short: "Remove an entry by id",
	Run: func(cmd *cobra.Command, args []string) {
		st, err := root.OpenStore()
		if err != nil {
			root.Log.Fatalf("Failed to open snapshot: %v", err)
		}

		if !st.RemoveEntry(id) {
			root.Log.Errorf("No entry with id %d", id)
			return
		}
		if err := st.Save(); err != nil {
			root.Log.Fatalf("Failed to save snapshot: %v", err)
		}
		root.Log.Infof("Removed entry %d", id)
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	setCmd.Flags().IntVarP(&id, "id", "i", 0, "Entry id")
	setCmd.Flags().StringVarP(&field, "field", "f", "", "Field to edit (valor, data, banco, tipo, subtipo, grupo, subgrupo)")
	setCmd.Flags().StringVarP(&value, "value", "v", "", "New value")
	_ = setCmd.MarkFlagRequired("id")
	_ = setCmd.MarkFlagRequired("field")
	_ = setCmd.MarkFlagRequired("value")

	rmCmd.Flags().IntVarP(&id, "id", "i", 0, "Entry id")
	_ = rmCmd.MarkFlagRequired("id")

	Cmd.AddCommand(listCmd, setCmd, rmCmd)
}
