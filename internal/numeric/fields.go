package numeric

import (
	"encoding/json"
	"strconv"
	"strings"
)

// State classifies a raw field value.
type State int

const (
	Blank State = iota
	Invalid
	Valid
)

// Parse reads a raw form value. Non-numeric text and NaN/Inf literals are Invalid.
func Parse(s string) (float64, State) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, Blank
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !Finite(f) {
		return 0, Invalid
	}
	return f, Valid
}

// Fields are the raw values of one calculator form keyed by field key.
type Fields map[string]string

// Float reads a field as a formula term: blank and invalid values read as 0.
func (f Fields) Float(key string) float64 {
	v, st := Parse(f[key])
	if st != Valid {
		return 0
	}
	return v
}

func (f Fields) Text(key string) string {
	return strings.ToLower(strings.TrimSpace(f[key]))
}

// UnmarshalJSON accepts strings, numbers, booleans and null for every field.
func (f *Fields) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Fields, len(raw))
	for k, v := range raw {
		out[k] = RawText(v)
	}
	*f = out
	return nil
}

// RawText turns one JSON scalar into its form text. null becomes blank.
func RawText(msg json.RawMessage) string {
	text := strings.TrimSpace(string(msg))
	if text == "" || text == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(msg, &s); err == nil {
		return s
	}
	return text
}

// Raw is a single form value decoded like a Fields entry.
type Raw string

func (r *Raw) UnmarshalJSON(data []byte) error {
	*r = Raw(RawText(data))
	return nil
}

// FieldSpec describes one input of a calculator.
type FieldSpec struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Unit     string   `json:"unit,omitempty"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

// Quantity is one labelled output of a calculator.
type Quantity struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Unit  string `json:"unit,omitempty"`
	Value Value  `json:"value"`
	Text  string `json:"text,omitempty"`
}
