// Package backend holds the availability flags of the optional text-processing backends.
//
// A Flags value is built once at process start and passed explicitly to the
// components that need it. Flags are read at call time, so switching a backend
// off degrades later calls without rebuilding anything.
package backend

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
)

// Availability is the state of one optional backend.
type Availability int

const (
	Available Availability = iota
	Unavailable
)

// String returns "available" or "unavailable".
func (a Availability) String() string {
	switch a {
	case Available:
		return "available"
	case Unavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("Availability(%d)", int(a))
	}
}

// ParseAvailability accepts "available"/"unavailable" (case-insensitive).
// The empty string means Available.
func ParseAvailability(s string) (Availability, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "available":
		return Available, nil
	case "unavailable":
		return Unavailable, nil
	default:
		return 0, fmt.Errorf("unknown availability: %q", s)
	}
}

// Name identifies a backend.
type Name string

const (
	TextSimilarity Name = "text_similarity"
	ViSegmenter    Name = "vi_segmenter"
	EnSegmenter    Name = "en_segmenter"
)

// Names lists every known backend.
var Names = []Name{TextSimilarity, ViSegmenter, EnSegmenter}

// Settings is the plain configuration form of Flags.
type Settings struct {
	TextSimilarity Availability
	ViSegmenter    Availability
	EnSegmenter    Availability
}

// Flags reports which backends may be used. The zero value has every backend available.
type Flags struct {
	textSimilarityOff atomic.Bool
	viSegmenterOff    atomic.Bool
	enSegmenterOff    atomic.Bool
}

// New builds Flags from settings.
func New(s Settings) *Flags {
	f := &Flags{}
	f.textSimilarityOff.Store(s.TextSimilarity == Unavailable)
	f.viSegmenterOff.Store(s.ViSegmenter == Unavailable)
	f.enSegmenterOff.Store(s.EnSegmenter == Unavailable)
	return f
}

// AllAvailable returns Flags with every backend available.
func AllAvailable() *Flags {
	return &Flags{}
}

func (f *Flags) flag(n Name) *atomic.Bool {
	switch n {
	case TextSimilarity:
		return &f.textSimilarityOff
	case ViSegmenter:
		return &f.viSegmenterOff
	case EnSegmenter:
		return &f.enSegmenterOff
	default:
		return nil
	}
}

// Enabled reports whether backend n is available. A nil Flags reports every backend available.
func (f *Flags) Enabled(n Name) bool {
	if f == nil {
		return true
	}
	b := f.flag(n)
	if b == nil {
		return false
	}
	return !b.Load()
}

// Set changes the availability of backend n.
func (f *Flags) Set(n Name, a Availability) error {
	b := f.flag(n)
	if b == nil {
		return fmt.Errorf("unknown backend: %q", n)
	}
	b.Store(a == Unavailable)
	return nil
}

// Status maps each backend name to whether it is available.
func (f *Flags) Status() map[Name]bool {
	status := make(map[Name]bool, len(Names))
	for _, n := range Names {
		status[n] = f.Enabled(n)
	}
	return status
}

// MarshalJSON encodes the current status.
func (f *Flags) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Status())
}
