package interpreter

import (
	"context"

	"cofrim/internal/dateutils"
	"cofrim/internal/models"
	"cofrim/internal/textutils"

	"github.com/sirupsen/logrus"
)

// record extracts a transaction from the message and appends it to the
// ledger. Missing amount or movement type aborts without mutation; an
// unknown bank, an unclassified group or an absent date are silently
// defaulted and the entry is still recorded.
func (i *Interpreter) record(ctx context.Context, normalized, raw string) string {
	amount, ok := textutils.ExtractAmount(normalized)
	if !ok {
		return RespNoAmount
	}

	direction, subtype, ok := IdentifyMovement(normalized, i.store.Movements)
	if !ok {
		return RespNoType
	}

	bank, _ := IdentifyBank(normalized, i.store.Banks)
	cls := i.classifier.Classify(ctx, normalized)
	date := dateutils.ExtractEntryDate(normalized, i.now())

	entry := i.store.AppendEntry(models.Entry{
		Date:        models.NewDateTime(date),
		Bank:        bank,
		Direction:   direction,
		Subtype:     subtype,
		Group:       cls.Group,
		Subgroup:    cls.Subgroup,
		Amount:      models.NewAmount(amount),
		Description: raw,
	})

	if err := i.store.Save(); err != nil {
		// The entry is in memory either way; surface the persistence
		// problem in the log, not to the chat user.
		log.WithError(err).Error("Failed to persist snapshot after recording entry")
	}

	log.WithFields(logrus.Fields{
		"id":        entry.ID,
		"direction": entry.Direction,
		"subtype":   entry.Subtype,
		"group":     entry.Group,
		"subgroup":  entry.Subgroup,
		"amount":    entry.Amount.StringFixed(2),
	}).Info("Recorded ledger entry")

	return RespRecorded
}
