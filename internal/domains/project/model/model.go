package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"portfolio/shared/model"
)

const (
	TableName  = "projects"
	EntityName = "project"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldIcon        = "icon"
	FieldItems       = "items"
)

// Icons is the closed set of icon names the frontend can render.
var Icons = []string{"AlertTriangle", "Shield", "FileCode", "Lock", "Server", "Users"}

// StringList is stored as a JSON array column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}

	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("encoding items: %w", err)
	}

	return string(data), nil
}

func (l *StringList) Scan(src any) error {
	var data []byte

	switch value := src.(type) {
	case nil:
		*l = StringList{}

		return nil
	case []byte:
		data = value
	case string:
		data = []byte(value)
	default:
		return fmt.Errorf("unsupported items type %T", src)
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("decoding items: %w", err)
	}

	*l = items

	return nil
}

type Project struct {
	ID          int64      `db:"id"          insert:"-"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Icon        string     `db:"icon"`
	Items       StringList `db:"items"`
	model.Timestamps
}
