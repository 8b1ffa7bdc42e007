package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexID is a record identifier. json-server style backends emit ids either
// as JSON strings or as numbers depending on how the record was created, so
// ids are normalized to strings at the wire boundary.
type FlexID string

func (f FlexID) String() string {
	return string(f)
}

func (f *FlexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

// flexAmount accepts a monetary value written either as a number or as a
// numeric string.
type flexAmount float64

func (f *flexAmount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*f = flexAmount(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = flexAmount(v)
	return nil
}

// Address holds the two free-text address lines used across profiles.
type Address struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
}
