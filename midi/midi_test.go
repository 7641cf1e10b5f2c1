package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2"
)

func TestPitchName(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(midi.Note(60).String(), PitchName(60))
	assert.Equal(midi.Note(61).String(), PitchName(61))
	assert.Equal(midi.Note(60).String()+"+", PitchName(60.5))
	assert.Equal("60.25", PitchName(60.25))
	assert.Equal("128", PitchName(128))
	assert.Equal("-1", PitchName(-1))
}

func TestPitchNames(t *testing.T) {
	names := PitchNames([]float64{60, 64.5})
	assert.Equal(t, []string{PitchName(60), PitchName(64.5)}, names)
	assert.Empty(t, PitchNames(nil))
}
