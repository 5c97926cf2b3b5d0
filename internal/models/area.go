package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// AreaID is a region identifier. The API serves ids as strings, local
// files may hold plain numbers; both decode to the same value.
type AreaID int

// UnmarshalJSON accepts both 1 and "1"
func (id *AreaID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*id = 0
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid area id %q: %w", s, err)
		}
		*id = AreaID(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid area id %s: %w", data, err)
	}
	*id = AreaID(n)
	return nil
}

// Area is a node of the region tree
type Area struct {
	ID    AreaID `json:"id"`
	Name  string `json:"name"`
	Areas []Area `json:"areas"`
}
