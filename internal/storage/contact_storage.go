package storage

import (
	"bytes"
	"encoding/json"

	"go.uber.org/zap"

	"rhystmorgan/veContacts/internal/models"
)

// DefaultContactsKey is the slot name user-added contacts are kept under.
const DefaultContactsKey = "contacts"

// ContactStorage persists an ordered list of contacts into a single slot of a
// Backend as a JSON array. Saving is best-effort: failures are logged and
// dropped, never returned.
type ContactStorage struct {
	backend Backend
	key     string
	logger  *zap.Logger
}

func NewContactStorage(backend Backend, key string, logger *zap.Logger) *ContactStorage {
	if key == "" {
		key = DefaultContactsKey
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactStorage{
		backend: backend,
		key:     key,
		logger:  logger.Named("storage"),
	}
}

func (s *ContactStorage) Key() string {
	return s.key
}

// Save overwrites the slot with contacts.
func (s *ContactStorage) Save(contacts []models.Contact) {
	if contacts == nil {
		contacts = []models.Contact{}
	}

	data, err := json.Marshal(contacts)
	if err != nil {
		s.logger.Error("Failed to save contacts", zap.Error(NewEncodeError(s.key, err)))
		return
	}

	if err := s.backend.Set(s.key, data); err != nil {
		s.logger.Error("Failed to save contacts",
			zap.String("key", s.key),
			zap.Int("count", len(contacts)),
			zap.Error(NewWriteError(s.key, err)))
		return
	}

	s.logger.Debug("Saved contacts", zap.String("key", s.key), zap.Int("count", len(contacts)))
}

// Read returns the stored contacts. It always returns a usable (possibly
// empty) slice; the error is informational. Malformed content yields a
// StorageError of type ErrCorruptData. Well-formed JSON that is not an array
// is treated as an empty list.
func (s *ContactStorage) Read() ([]models.Contact, error) {
	data, ok, err := s.backend.Get(s.key)
	if err != nil {
		return []models.Contact{}, NewReadError(s.key, err)
	}
	if !ok {
		return []models.Contact{}, nil
	}

	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return []models.Contact{}, NewCorruptDataError(s.key, err)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		s.logger.Warn("Ignoring non-array contacts slot", zap.String("key", s.key))
		return []models.Contact{}, nil
	}

	var contacts []models.Contact
	if err := json.Unmarshal(trimmed, &contacts); err != nil {
		return []models.Contact{}, NewCorruptDataError(s.key, err)
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}

	return contacts, nil
}

// Clear removes the slot.
func (s *ContactStorage) Clear() {
	if err := s.backend.Delete(s.key); err != nil {
		s.logger.Error("Failed to clear contacts slot", zap.String("key", s.key), zap.Error(err))
	}
}
