package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlags_ZeroValueAllAvailable(t *testing.T) {
	f := AllAvailable()
	for _, n := range Names {
		assert.True(t, f.Enabled(n), "%s should be available", n)
	}
}

func TestFlags_NilIsAvailable(t *testing.T) {
	var f *Flags
	assert.True(t, f.Enabled(TextSimilarity))
}

func TestFlags_New(t *testing.T) {
	f := New(Settings{TextSimilarity: Unavailable, EnSegmenter: Unavailable})

	assert.False(t, f.Enabled(TextSimilarity))
	assert.True(t, f.Enabled(ViSegmenter))
	assert.False(t, f.Enabled(EnSegmenter))
}

func TestFlags_SetIsObservedImmediately(t *testing.T) {
	f := AllAvailable()
	require.NoError(t, f.Set(ViSegmenter, Unavailable))
	assert.False(t, f.Enabled(ViSegmenter))

	require.NoError(t, f.Set(ViSegmenter, Available))
	assert.True(t, f.Enabled(ViSegmenter))
}

func TestFlags_SetUnknown(t *testing.T) {
	err := AllAvailable().Set("spacy", Unavailable)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown backend")
}

func TestFlags_Status(t *testing.T) {
	f := New(Settings{ViSegmenter: Unavailable})
	assert.Equal(t, map[Name]bool{
		TextSimilarity: true,
		ViSegmenter:    false,
		EnSegmenter:    true,
	}, f.Status())
}

func TestParseAvailability(t *testing.T) {
	tests := []struct {
		in      string
		want    Availability
		wantErr bool
	}{
		{"", Available, false},
		{"available", Available, false},
		{"UNAVAILABLE", Unavailable, false},
		{"maybe", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAvailability(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
