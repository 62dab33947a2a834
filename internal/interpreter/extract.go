package interpreter

import (
	"strings"

	"cofrim/internal/models"
	"cofrim/internal/textutils"
)

// IdentifyBank returns the name of the first bank (catalog order) whose
// name or any alias is a substring of the normalized text. No ranking by
// length or specificity is applied.
func IdentifyBank(normalized string, banks []models.Bank) (string, bool) {
	for _, b := range banks {
		for _, name := range append([]string{b.Name}, b.Aliases...) {
			if strings.Contains(normalized, textutils.Normalize(name)) {
				return b.Name, true
			}
		}
	}
	return "", false
}

// IdentifyMovement returns the direction and subtype of the first movement
// type (catalog order) with a keyword substring match.
func IdentifyMovement(normalized string, movements []models.MovementType) (models.Direction, string, bool) {
	for _, m := range movements {
		for _, kw := range m.Keywords {
			if strings.Contains(normalized, textutils.Normalize(kw)) {
				return m.Direction, m.Subtype, true
			}
		}
	}
	return "", "", false
}
