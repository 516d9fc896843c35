package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexInt is an integer that tolerates the loose typing of form-driven
// clients: JSON numbers (including decimals) and numeric strings both
// decode into it, and anything non-numeric decodes to 0.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	s := string(data)
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			*f = 0
			return nil
		}
	}
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		*f = FlexInt(v)
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*f = FlexInt(int(v))
		return nil
	}
	*f = 0
	return nil
}

func (f FlexInt) Int() int {
	return int(f)
}
