package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// StringList custom type for JSON storage of ordered list fields
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion to []byte failed")
	}

	if len(bytes) == 0 {
		*l = StringList{}
		return nil
	}

	if err := json.Unmarshal(bytes, l); err != nil {
		return fmt.Errorf("failed to decode list column: %w", err)
	}
	if *l == nil {
		*l = StringList{}
	}
	return nil
}
