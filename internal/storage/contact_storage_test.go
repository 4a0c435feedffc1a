package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"rhystmorgan/veContacts/internal/models"
)

func sampleContacts() []models.Contact {
	return []models.Contact{
		{ID: "3f1c", Name: "Ann Lee", Email: "ann@example.com"},
		{ID: "9a2b", Name: "Bob Stone", Phone: "+44 20 7946 0000"},
		{ID: "77de", Name: "Cy Twombly", Email: "cy@example.com", Phone: "555"},
	}
}

func TestContactStorageRoundTrip(t *testing.T) {
	for name, backend := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := NewContactStorage(backend, "", nil)
			assert.Equal(t, DefaultContactsKey, s.Key())

			want := sampleContacts()
			s.Save(want)

			got, err := s.Read()
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestContactStorageSaveIsIdempotent(t *testing.T) {
	backend := NewMemoryBackend()
	s := NewContactStorage(backend, "contacts", nil)

	s.Save(sampleContacts())
	first, _, err := backend.Get("contacts")
	require.NoError(t, err)

	s.Save(sampleContacts())
	second, _, err := backend.Get("contacts")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestContactStorageSaveEmptyWritesArray(t *testing.T) {
	backend := NewMemoryBackend()
	s := NewContactStorage(backend, "contacts", nil)

	s.Save(nil)

	data, ok, err := backend.Get("contacts")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", string(data))
}

func TestContactStorageRead(t *testing.T) {
	tests := []struct {
		name        string
		stored      *string
		wantCorrupt bool
		wantLen     int
	}{
		{name: "missing slot", stored: nil},
		{name: "not json", stored: strPtr("not json"), wantCorrupt: true},
		{name: "truncated array", stored: strPtr(`[{"id":"a"`), wantCorrupt: true},
		{name: "object instead of array", stored: strPtr(`{"id":"a","name":"Ann"}`)},
		{name: "string instead of array", stored: strPtr(`"hello"`)},
		{name: "null", stored: strPtr(`null`)},
		{name: "empty array", stored: strPtr(`[]`)},
		{name: "array of non-objects", stored: strPtr(`[1,2,3]`), wantCorrupt: true},
		{name: "valid", stored: strPtr(`[{"id":"a","name":"Ann","email":"a@x"},{"id":"b","name":"Bo"}]`), wantLen: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := NewMemoryBackend()
			if tt.stored != nil {
				require.NoError(t, backend.Set("contacts", []byte(*tt.stored)))
			}
			s := NewContactStorage(backend, "contacts", nil)

			got, err := s.Read()
			require.NotNil(t, got, "Read must always return a usable slice")
			assert.Len(t, got, tt.wantLen)
			if tt.wantCorrupt {
				require.Error(t, err)
				assert.True(t, IsCorrupt(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestContactStorageOptionalFieldsAbsent(t *testing.T) {
	backend := NewMemoryBackend()
	s := NewContactStorage(backend, "contacts", nil)

	s.Save([]models.Contact{{ID: "a", Name: "Ann"}})

	data, _, err := backend.Get("contacts")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a","name":"Ann"}]`, string(data))
}

func TestContactStorageSaveFailureIsSwallowed(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	backend := NewMemoryBackend()
	backend.FailWrites = true
	s := NewContactStorage(backend, "contacts", zap.New(core))

	assert.NotPanics(t, func() { s.Save(sampleContacts()) })

	entries := logs.FilterMessage("Failed to save contacts").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)

	_, ok, err := backend.Get("contacts")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestContactStorageClear(t *testing.T) {
	backend := NewMemoryBackend()
	s := NewContactStorage(backend, "contacts", nil)
	s.Save(sampleContacts())

	s.Clear()

	_, ok, err := backend.Get("contacts")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStorageError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewWriteError("contacts", cause)

	assert.Equal(t, ErrWriteFailed, err.Type)
	assert.Equal(t, "failed to write slot contacts: disk full", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.False(t, IsCorrupt(err))

	corrupt := NewCorruptDataError("contacts", nil)
	assert.Equal(t, "slot contacts holds malformed data", corrupt.Error())
	assert.True(t, IsCorrupt(corrupt))
	assert.False(t, IsCorrupt(nil))
}

func strPtr(s string) *string {
	return &s
}
