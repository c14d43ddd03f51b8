package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// IngredientList is a flat list of human-readable ingredient names, stored as
// a JSON array in a text column.
type IngredientList []string

func (l IngredientList) Value() (driver.Value, error) {
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *IngredientList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into IngredientList", src)
	}
}
