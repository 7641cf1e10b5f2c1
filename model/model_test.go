package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jsphweid/scoretree/duration"
	"github.com/jsphweid/scoretree/node"
	"github.com/jsphweid/scoretree/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInstrumentType(t *testing.T) {
	it, err := ParseInstrumentType("Violin")
	require.NoError(t, err)
	assert.Equal(t, Violin, it)

	for _, bad := range []string{"not-a-real-type", "violin", ""} {
		_, err := ParseInstrumentType(bad)
		assert.True(t, errors.Is(err, ErrInvalidInstrumentType), bad)
	}
}

func TestRehearsalMarkingLabel(t *testing.T) {
	cases := []struct {
		marking RehearsalMarking
		want    string
	}{
		{RehearsalMarking{Number: 1, Type: Alphabetical}, "A"},
		{RehearsalMarking{Number: 26, Type: Alphabetical}, "Z"},
		{RehearsalMarking{Number: 27, Type: Alphabetical}, "AA"},
		{RehearsalMarking{Number: 3, Type: Numerical}, "3"},
	}
	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			assert.Equal(t, c.want, c.marking.Label())
		})
	}
}

func TestScoreHelpers(t *testing.T) {
	assert := assert.New(t)

	first := node.NewRoot(duration.FromInt(4), duration.Zero)
	first.AddChild(1)
	first.AddChild(1)
	second := node.NewRoot(duration.FromInt(3), duration.FromInt(4))
	second.AddChild(1)

	violin := NewInstruments()
	violin.Set("vn", Violin)
	performers := NewPerformers()
	performers.Set("p1", violin)

	s := &Score{
		Measures: []Measure{
			{Number: 1, Offset: duration.Zero, Duration: duration.FromInt(4)},
			{Number: 2, Offset: duration.FromInt(4), Duration: duration.FromInt(2)},
		},
		Nodes:       []*node.Node{first, second},
		Instruments: performers,
	}

	assert.Equal([]string{"p1"}, s.Performers())
	assert.Equal([]string{"vn"}, util.OrderedKeys(s.InstrumentsOf("p1")))
	assert.Equal(0, s.InstrumentsOf("nobody").Len())
	assert.Len(s.Leaves(), 3)
	assert.Equal(duration.FromInt(7), s.Duration())
}

func TestDiagnosticJSON(t *testing.T) {
	data, err := json.Marshal(Diagnostic{Token: 3, Identifier: "Rest", Reason: NoLeaf})
	require.NoError(t, err)
	assert.JSONEq(t, `{"token": 3, "identifier": "Rest", "reason": "no_leaf"}`, string(data))
	assert.Equal(t, "token 3 (Rest): no_leaf", Diagnostic{Token: 3, Identifier: "Rest", Reason: NoLeaf}.String())
}

func TestInstrumentsJSONKeepsDeclarationOrder(t *testing.T) {
	strings := NewInstruments()
	strings.Set("vn", Violin)
	strings.Set("va", Viola)
	strings.Set("vn", Violin)
	performers := NewPerformers()
	performers.Set("zoe", strings)
	performers.Set("adam", NewInstruments())

	data, err := json.Marshal(performers)
	require.NoError(t, err)
	assert.Equal(t, `{"zoe":{"vn":"Violin","va":"Viola"},"adam":{}}`, string(data))
	assert.Empty(t, (&Score{}).Performers())
	assert.Equal(t, 0, (&Score{}).InstrumentsOf("zoe").Len())
}
