package token

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jsphweid/scoretree/duration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stream = `[
	{"id": "Measure"},
	{"id": "RootNodeDuration", "duration": "3/16"},
	{"id": "LeafNodeDuration", "int": 1, "level": 1},
	{"id": "PerformerID", "str": "p1"},
	{"id": "Pitch", "tokens": [{"id": "Value", "float": 60.5}]},
	{"id": "PerformerDeclaration", "opening": "p1", "tokens": []}
]`

func TestDecodeArray(t *testing.T) {
	tokens, err := Decode(strings.NewReader(stream))
	require.NoError(t, err)
	require.Len(t, tokens, 6)

	assert := assert.New(t)
	assert.Equal(NewMarker(Measure), tokens[0])
	assert.Equal(NewDuration(RootNodeDuration, duration.New(3, 16)), tokens[1])
	assert.Equal(NewInt(LeafNodeDuration, 1, 1), tokens[2])
	assert.Equal(NewString(PerformerID, "p1"), tokens[3])
	assert.Equal(NewContainer(Pitch, "", NewFloat(Value, 60.5)), tokens[4])
	assert.Equal(Container, tokens[5].Kind)
	assert.Equal("p1", tokens[5].Opening)
	assert.Empty(tokens[5].Tokens)
}

func TestDecodeObject(t *testing.T) {
	tokens, err := Decode(strings.NewReader(`{"tokens": [{"id": "Rest"}]}`))
	require.NoError(t, err)
	assert.Equal(t, []Token{NewMarker(Rest)}, tokens)
}

func TestDecodeRejectsBadTokens(t *testing.T) {
	cases := map[string]string{
		"missing id":       `[{"str": "x"}]`,
		"two payloads":     `[{"id": "X", "str": "x", "int": 1}]`,
		"bad duration":     `[{"id": "RootNodeDuration", "duration": "x/y"}]`,
		"not json":         `[{`,
		"payload and list": `[{"id": "X", "float": 1, "tokens": []}]`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestInvalidTokenIsWrapped(t *testing.T) {
	var tok Token
	err := json.Unmarshal([]byte(`{"id": "X", "str": "a", "float": 2}`), &tok)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestMarshalRoundTrip(t *testing.T) {
	in := []Token{
		NewMarker(SlurStart),
		NewInt(InternalNodeDuration, 3, 2),
		NewContainer(DynamicMarking, "", NewString(Value, "pp"), NewMarker(SpannerStart)),
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out []Token
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestString(t *testing.T) {
	assert.Equal(t, "LeafNodeDuration(2@3)", NewInt(LeafNodeDuration, 2, 3).String())
	assert.Equal(t, "Pitch[1]", NewContainer(Pitch, "", NewFloat(Value, 60)).String())
	assert.Equal(t, "container", Container.String())
}

func TestEmptyContainerStaysContainer(t *testing.T) {
	data, err := json.Marshal(NewContainer(RehearsalMarking, ""))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": "RehearsalMarking", "tokens": []}`, string(data))

	var out Token
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, Container, out.Kind)
}
