// Package contacts holds the in-memory contact collection and the search
// filter applied to it.
package contacts

import (
	"go.uber.org/zap"

	"rhystmorgan/veContacts/internal/models"
	"rhystmorgan/veContacts/internal/storage"
)

// Persister is the durable home of user-added contacts.
type Persister interface {
	Save(contacts []models.Contact)
	Read() ([]models.Contact, error)
	Clear()
}

// Store is the ordered contact collection, newest first. Built-in contacts are
// merged in at load time and never handed to the Persister.
type Store struct {
	persister Persister
	builtin   []models.Contact
	builtinID map[string]bool
	contacts  []models.Contact
	logger    *zap.Logger

	newContact func(models.ContactInput) models.Contact
}

func NewStore(persister Persister, builtin []models.Contact, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	builtinID := make(map[string]bool, len(builtin))
	seed := make([]models.Contact, 0, len(builtin))
	for _, c := range builtin {
		if builtinID[c.ID] {
			continue
		}
		builtinID[c.ID] = true
		seed = append(seed, c)
	}

	return &Store{
		persister:  persister,
		builtin:    seed,
		builtinID:  builtinID,
		contacts:   append([]models.Contact{}, seed...),
		logger:     logger.Named("contacts"),
		newContact: models.NewContact,
	}
}

// Load replaces the collection with the persisted contacts followed by the
// built-in set. A corrupt slot is cleared and treated as empty.
func (s *Store) Load() []models.Contact {
	persisted, err := s.persister.Read()
	if err != nil {
		if storage.IsCorrupt(err) {
			s.logger.Warn("Discarding corrupt contacts slot", zap.Error(err))
			s.persister.Clear()
		} else {
			s.logger.Error("Failed to read contacts", zap.Error(err))
		}
		persisted = nil
	}

	seen := make(map[string]bool, len(persisted)+len(s.builtin))
	merged := make([]models.Contact, 0, len(persisted)+len(s.builtin))
	for _, c := range persisted {
		if c.ID == "" || seen[c.ID] || s.builtinID[c.ID] {
			s.logger.Debug("Skipping persisted contact", zap.String("contact_id", c.ID))
			continue
		}
		seen[c.ID] = true
		merged = append(merged, c)
	}
	merged = append(merged, s.builtin...)

	s.contacts = merged
	s.logger.Info("Loaded contacts",
		zap.Int("persisted", len(merged)-len(s.builtin)),
		zap.Int("builtin", len(s.builtin)))

	return s.All()
}

// Add creates a contact from input, puts it at the front of the collection
// and persists the user-added subset. Input is not validated here.
func (s *Store) Add(input models.ContactInput) models.Contact {
	contact := s.newContact(input)
	for contact.ID == "" || s.hasID(contact.ID) {
		contact.ID = models.NewContact(input).ID
	}

	s.contacts = append([]models.Contact{contact}, s.contacts...)
	s.persister.Save(s.UserAdded())

	s.logger.Info("Added contact", zap.String("contact_id", contact.ID))
	return contact
}

// All returns a copy of the collection.
func (s *Store) All() []models.Contact {
	out := make([]models.Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// UserAdded returns the contacts that are not part of the built-in set.
func (s *Store) UserAdded() []models.Contact {
	out := make([]models.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		if !s.builtinID[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

func (s *Store) IsBuiltin(id string) bool {
	return s.builtinID[id]
}

func (s *Store) Len() int {
	return len(s.contacts)
}

func (s *Store) hasID(id string) bool {
	for _, c := range s.contacts {
		if c.ID == id {
			return true
		}
	}
	return false
}
