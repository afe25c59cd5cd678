package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Canonical additional-metadata keys.
const (
	MetadataKeyWeight       = "weight"
	MetadataKeyCollection   = "collection"
	MetadataKeyDiscriminant = "discriminant"
)

// Field length limits, matching the packed metadata layout.
const (
	MaxNameLen   = 32
	MaxSymbolLen = 10
	MaxURILen    = 200
)

// MetadataField names an editable base field.
type MetadataField string

const (
	MetadataFieldName   MetadataField = "name"
	MetadataFieldSymbol MetadataField = "symbol"
	MetadataFieldURI    MetadataField = "uri"
)

func (f MetadataField) String() string { return string(f) }

func (f MetadataField) IsValid() bool {
	switch f {
	case MetadataFieldName, MetadataFieldSymbol, MetadataFieldURI:
		return true
	}
	return false
}

// MetadataEntry is one additional key/value pair. Order is preserved.
type MetadataEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Metadata is the key/value document attached to an asset.
type Metadata struct {
	Name       string
	Symbol     string
	URI        string
	Additional []MetadataEntry
}

// Get returns the value stored under key.
func (m *Metadata) Get(key string) (string, bool) {
	for _, e := range m.Additional {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// Set inserts or overwrites key.
func (m *Metadata) Set(key, value string) {
	for i := range m.Additional {
		if m.Additional[i].Key == key {
			m.Additional[i].Value = value
			return
		}
	}
	m.Additional = append(m.Additional, MetadataEntry{Key: key, Value: value})
}

// RemoveKey deletes key. An absent key is an error unless idempotent is set.
func (m *Metadata) RemoveKey(key string, idempotent bool) error {
	for i, e := range m.Additional {
		if e.Key == key {
			m.Additional = append(m.Additional[:i:i], m.Additional[i+1:]...)
			return nil
		}
	}
	if idempotent {
		return nil
	}
	return ErrInvalidMetadata
}

// SetField updates one of the base fields.
func (m *Metadata) SetField(field MetadataField, value string) error {
	switch field {
	case MetadataFieldName:
		m.Name = value
	case MetadataFieldSymbol:
		m.Symbol = value
	case MetadataFieldURI:
		m.URI = value
	default:
		return NewValidationError("field", "must be one of name, symbol, uri")
	}
	return nil
}

// Weight parses the weight key. A missing or malformed key is
// ErrInvalidMetadata; a zero weight is ErrInvalidWeight.
func (m *Metadata) Weight() (uint64, error) {
	raw, ok := m.Get(MetadataKeyWeight)
	if !ok {
		return 0, ErrInvalidMetadata
	}
	w, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, ErrInvalidMetadata
	}
	if w == 0 {
		return 0, ErrInvalidWeight
	}
	return w, nil
}

// Collection parses the collection key.
func (m *Metadata) Collection() (uuid.UUID, error) {
	raw, ok := m.Get(MetadataKeyCollection)
	if !ok {
		return uuid.Nil, ErrInvalidMetadata
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrInvalidMetadata
	}
	return id, nil
}

// ValidateCollection checks that the asset belongs to collection.
func (m *Metadata) ValidateCollection(collection uuid.UUID) error {
	id, err := m.Collection()
	if err != nil {
		return err
	}
	if id != collection {
		return ErrInvalidCollection
	}
	return nil
}

// Stamp writes the finalized weight and collection keys.
func (m *Metadata) Stamp(weight uint64, collection uuid.UUID) {
	m.Set(MetadataKeyWeight, strconv.FormatUint(weight, 10))
	m.Set(MetadataKeyCollection, collection.String())
}

// PackedLen is the storage size of the metadata record in bytes.
// The reserve floor of the record grows with it.
func (m *Metadata) PackedLen() int {
	// update authority + mint + TLV header + three length prefixes + vec prefix
	n := 32 + 32 + 4 + 4*3 + 4
	n += len(m.Name) + len(m.Symbol) + len(m.URI)
	for _, e := range m.Additional {
		n += 8 + len(e.Key) + len(e.Value)
	}
	return n
}

// Clone returns a deep copy.
func (m Metadata) Clone() Metadata {
	out := m
	out.Additional = append([]MetadataEntry(nil), m.Additional...)
	return out
}

// Asset is a unique single-unit collectible tracked by the asset ledger.
type Asset struct {
	ID           uuid.UUID
	Discriminant uint64
	Holder       uuid.UUID
	Supply       uint64
	Metadata     Metadata
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HeldBy reports whether caller holds the entire supply of one unit.
func (a *Asset) HeldBy(caller uuid.UUID) bool {
	return a.Supply == 1 && a.Holder == caller
}

// ValidateMetadataInput checks base metadata fields.
func ValidateMetadataInput(prefix, name, symbol, uri string) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(name) == "" {
		errs = append(errs, FieldError{Field: prefix + "name", Message: "required"})
	}
	if len(name) > MaxNameLen {
		errs = append(errs, FieldError{Field: prefix + "name", Message: "max 32 characters"})
	}
	if len(symbol) > MaxSymbolLen {
		errs = append(errs, FieldError{Field: prefix + "symbol", Message: "max 10 characters"})
	}
	if len(uri) > MaxURILen {
		errs = append(errs, FieldError{Field: prefix + "uri", Message: "max 200 characters"})
	}
	return errs
}
