package constraint

import (
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
)

// AllowedTokens restricts a text element to an enumeration of tokens and/or
// a regular expression that must match the whole value.
type AllowedTokens struct {
	pattern *regexp.Regexp
	Values  []string `json:"values,omitempty"`
	Pattern string   `json:"pattern,omitempty"`
}

// NewAllowedTokens creates a token constraint, compiling pattern if given.
func NewAllowedTokens(values []string, pattern string) (*AllowedTokens, error) {
	c := &AllowedTokens{Values: values, Pattern: pattern}
	if err := c.compile(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *AllowedTokens) compile() error {
	c.pattern = nil
	if c.Pattern == "" {
		return nil
	}
	re, err := regexp.Compile(`^(?:` + c.Pattern + `)$`)
	if err != nil {
		return fmt.Errorf("invalid token pattern %q: %w", c.Pattern, err)
	}
	c.pattern = re
	return nil
}

// Kind implements Constraint
func (c *AllowedTokens) Kind() string {
	return KindAllowedTokens
}

// IsValid implements Constraint
func (c *AllowedTokens) IsValid(value, _ string) bool {
	if len(c.Values) == 0 && c.Pattern == "" {
		return true
	}
	if slices.Contains(c.Values, value) {
		return true
	}
	// an uncompiled pattern (set directly on the struct) admits nothing
	return c.pattern != nil && c.pattern.MatchString(value)
}

// MarshalJSON implements json.Marshaler
func (c AllowedTokens) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string   `json:"type"`
		Values  []string `json:"values,omitempty"`
		Pattern string   `json:"pattern,omitempty"`
	}{KindAllowedTokens, c.Values, c.Pattern})
}

// UnmarshalJSON implements json.Unmarshaler
func (c *AllowedTokens) UnmarshalJSON(data []byte) error {
	var aux struct {
		Values  []string `json:"values"`
		Pattern string   `json:"pattern"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	c.Values = aux.Values
	c.Pattern = aux.Pattern
	return c.compile()
}
