package model

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

// StringList stores an ordered list of strings as a JSONB column.
type StringList []string

// Value implements driver.Valuer. A nil list is stored as an empty array so
// readers never see SQL NULL.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}

	data, err := json.Marshal(l)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal string list")
	}

	return data, nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}

		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.Errorf("unsupported string list source type %T", src)
	}

	if err := json.Unmarshal(data, l); err != nil {
		return errors.Wrap(err, "failed to unmarshal string list")
	}

	return nil
}
