package model

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// scanJSONB decodes a jsonb column value into dest.
func scanJSONB(value any, dest any) error {
	if value == nil {
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.Errorf("unsupported jsonb source type %T", value)
	}

	if len(raw) == 0 {
		return nil
	}

	return errors.Wrap(json.Unmarshal(raw, dest), "failed to decode jsonb column")
}

// AddressSnapshotJSON is the jsonb representation of the delivery address
// frozen into an order at settlement time.
type AddressSnapshotJSON struct {
	Label      string `json:"label"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Value implements driver.Valuer for jsonb storage.
func (a AddressSnapshotJSON) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan implements sql.Scanner for jsonb retrieval.
func (a *AddressSnapshotJSON) Scan(value any) error {
	return scanJSONB(value, a)
}

// CustomizationJSON is a single customization selection stored inside a jsonb
// array on order and cart items.
type CustomizationJSON struct {
	Name           string `json:"name"`
	SurchargeCents int64  `json:"surcharge_cents,omitempty"`
}

// CustomizationsJSON is the jsonb array of customization selections.
type CustomizationsJSON []CustomizationJSON

// Value implements driver.Valuer for jsonb storage.
func (c CustomizationsJSON) Value() (driver.Value, error) {
	if c == nil {
		return json.Marshal([]CustomizationJSON{})
	}

	return json.Marshal(c)
}

// Scan implements sql.Scanner for jsonb retrieval.
func (c *CustomizationsJSON) Scan(value any) error {
	return scanJSONB(value, c)
}

// PaymentMetadataJSON is the jsonb checkout context stored on a payment row.
type PaymentMetadataJSON struct {
	AddressID   uuid.UUID `json:"address_id"`
	PointsToUse int       `json:"points_to_use"`
}

// Value implements driver.Valuer for jsonb storage.
func (m PaymentMetadataJSON) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// Scan implements sql.Scanner for jsonb retrieval.
func (m *PaymentMetadataJSON) Scan(value any) error {
	return scanJSONB(value, m)
}

// StringMapJSON is a jsonb object of string keys and values, used for the
// opaque notification payload.
type StringMapJSON map[string]string

// Value implements driver.Valuer for jsonb storage.
func (m StringMapJSON) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(map[string]string{})
	}

	return json.Marshal(m)
}

// Scan implements sql.Scanner for jsonb retrieval.
func (m *StringMapJSON) Scan(value any) error {
	return scanJSONB(value, m)
}

// StringSliceJSON is a jsonb array of strings, used for review image URLs.
type StringSliceJSON []string

// Value implements driver.Valuer for jsonb storage.
func (s StringSliceJSON) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]string{})
	}

	return json.Marshal(s)
}

// Scan implements sql.Scanner for jsonb retrieval.
func (s *StringSliceJSON) Scan(value any) error {
	return scanJSONB(value, s)
}
