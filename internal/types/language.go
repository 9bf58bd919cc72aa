// Package types provides type definitions for structured data used throughout the job-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Language is the tagged variant a document is resolved to once, before tokenization.
type Language int

const (
	Vietnamese Language = iota // default for empty input
	English
)

// String returns the ISO 639-1 code of the language.
func (l Language) String() string {
	switch l {
	case Vietnamese:
		return "vi"
	case English:
		return "en"
	default:
		return fmt.Sprintf("Language(%d)", int(l))
	}
}

// ParseLanguage converts an ISO 639-1 code ("vi", "en") into a Language.
func ParseLanguage(code string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "vi":
		return Vietnamese, nil
	case "en":
		return English, nil
	default:
		return 0, fmt.Errorf("unknown language code: %q", code)
	}
}

// MarshalJSON encodes the language as its ISO code.
func (l Language) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes an ISO code into a Language.
func (l *Language) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	lang, err := ParseLanguage(s)
	if err != nil {
		return err
	}
	*l = lang
	return nil
}
