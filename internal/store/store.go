// Package store owns the in-memory collections (banks, movement types,
// account groups, ledger entries) and their snapshot persistence. The
// snapshot is reloaded at startup and rewritten in full after every
// mutation; there is exactly one writer per process.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"cofrim/internal/config"
	"cofrim/internal/models"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Use the centralized logger from config package
var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Store holds all reference catalogs and the ledger. The interpreter only
// reads the catalogs and appends entries; the admin commands mutate freely.
type Store struct {
	path string

	Banks     []models.Bank
	Movements []models.MovementType
	Groups    []models.AccountGroup
	Entries   []models.Entry
}

// New creates a store backed by the given snapshot file.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the snapshot file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the snapshot file into memory. A missing file is not an
// error; the store simply starts empty.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Snapshot file not found: %s", s.path)
			return nil
		}
		return fmt.Errorf("error reading snapshot file: %w", err)
	}

	var snap models.Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("error parsing snapshot file: %w", err)
	}

	s.Banks = snap.Banks
	s.Movements = snap.Movements
	s.Groups = snap.Groups
	s.Entries = snap.Entries

	log.Debugf("Loaded %d banks, %d movement types, %d groups, %d entries from %s",
		len(s.Banks), len(s.Movements), len(s.Groups), len(s.Entries), s.path)
	return nil
}

// Save rewrites the full snapshot file.
func (s *Store) Save() error {
	snap := models.Snapshot{
		Banks:     s.Banks,
		Movements: s.Movements,
		Groups:    s.Groups,
		Entries:   s.Entries,
	}

	data, err := yaml.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("error marshaling snapshot: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating snapshot directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("error writing snapshot file: %w", err)
	}

	log.Debugf("Saved snapshot to %s", s.path)
	return nil
}

// SeedDefaults fills any empty catalog with the default reference data.
// Returns true when something was seeded.
func (s *Store) SeedDefaults() bool {
	seeded := false

	if len(s.Banks) == 0 {
		s.Banks = []models.Bank{
			{ID: 1, Name: "Nubank", Aliases: []string{"nubank", "nu"}},
			{ID: 2, Name: "Itaú", Aliases: []string{"itau"}},
		}
		seeded = true
	}

	if len(s.Movements) == 0 {
		s.Movements = []models.MovementType{
			{ID: 1, Direction: models.DirectionDebit, Subtype: models.SubtypeCreditCard, Keywords: []string{"cartao", "credito"}},
			{ID: 2, Direction: models.DirectionDebit, Subtype: models.SubtypePix, Keywords: []string{"pix"}},
			{ID: 3, Direction: models.DirectionCredit, Subtype: "SALARIO", Keywords: []string{"salario", "recebi", "ganhei"}},
		}
		seeded = true
	}

	if len(s.Groups) == 0 {
		s.Groups = []models.AccountGroup{
			{
				Name:      "Alimentação",
				Subgroups: []string{"supermercado", "restaurante"},
				Keywords:  []string{"mercado", "supermercado", "restaurante"},
			},
			{
				Name:      "Lazer",
				Subgroups: []string{"cinema", "shows"},
				Keywords:  []string{"cinema", "show"},
			},
		}
		seeded = true
	}

	if seeded {
		log.Debug("Seeded default reference catalogs")
	}
	return seeded
}

// NextBankID allocates the next bank id (max existing + 1, or 1 if empty).
func (s *Store) NextBankID() int {
	max := 0
	for _, b := range s.Banks {
		if b.ID > max {
			max = b.ID
		}
	}
	return max + 1
}

// NextMovementID allocates the next movement type id.
func (s *Store) NextMovementID() int {
	max := 0
	for _, m := range s.Movements {
		if m.ID > max {
			max = m.ID
		}
	}
	return max + 1
}

// NextEntryID allocates the next ledger entry id.
func (s *Store) NextEntryID() int {
	max := 0
	for _, e := range s.Entries {
		if e.ID > max {
			max = e.ID
		}
	}
	return max + 1
}

// AppendEntry assigns a fresh id to the entry and appends it to the ledger.
// The caller is responsible for saving the snapshot afterwards.
func (s *Store) AppendEntry(e models.Entry) models.Entry {
	e.ID = s.NextEntryID()
	s.Entries = append(s.Entries, e)
	return e
}

// RemoveBank deletes the bank with the given id. Returns false when no
// bank carries that id.
func (s *Store) RemoveBank(id int) bool {
	for i, b := range s.Banks {
		if b.ID == id {
			s.Banks = append(s.Banks[:i], s.Banks[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveMovement deletes the movement type with the given id.
func (s *Store) RemoveMovement(id int) bool {
	for i, m := range s.Movements {
		if m.ID == id {
			s.Movements = append(s.Movements[:i], s.Movements[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveGroup deletes the account group with the given name.
func (s *Store) RemoveGroup(name string) bool {
	for i, g := range s.Groups {
		if g.Name == name {
			s.Groups = append(s.Groups[:i], s.Groups[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveEntry deletes the ledger entry with the given id.
func (s *Store) RemoveEntry(id int) bool {
	for i, e := range s.Entries {
		if e.ID == id {
			s.Entries = append(s.Entries[:i], s.Entries[i+1:]...)
			return true
		}
	}
	return false
}

// FindGroup returns a pointer to the group with the given name.
func (s *Store) FindGroup(name string) *models.AccountGroup {
	for i := range s.Groups {
		if s.Groups[i].Name == name {
			return &s.Groups[i]
		}
	}
	return nil
}

// FindEntry returns a pointer to the entry with the given id.
func (s *Store) FindEntry(id int) *models.Entry {
	for i := range s.Entries {
		if s.Entries[i].ID == id {
			return &s.Entries[i]
		}
	}
	return nil
}
