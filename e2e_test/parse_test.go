//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/scoretree/cmd"
	"github.com/jsphweid/scoretree/duration"
	"github.com/jsphweid/scoretree/model"
	tk "github.com/jsphweid/scoretree/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parseResponse struct {
	ID    string `json:"id"`
	Score struct {
		Title    string            `json:"title"`
		Metadata map[string]string `json:"metadata"`
		Measures []struct {
			Number   int               `json:"number"`
			Offset   duration.Duration `json:"offset"`
			Duration duration.Duration `json:"duration"`
		} `json:"measures"`
		Nodes       []jsonNode                   `json:"nodes"`
		Instruments map[string]map[string]string `json:"instruments"`
	} `json:"score"`
	Errors []string `json:"errors"`
}

type jsonNode struct {
	Duration   duration.Duration `json:"duration"`
	Offset     duration.Duration `json:"offset"`
	Components []map[string]any  `json:"components"`
	Children   []jsonNode        `json:"children"`
}

func createParseReqBody(tokens ...tk.Token) io.Reader {
	data, err := json.Marshal(model.ParseRequestBody{Tokens: tokens})
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func parse(t *testing.T, body io.Reader) parseResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/parse", body)
	w := httptest.NewRecorder()
	cmd.NewRouter().ServeHTTP(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(respBody))

	var res parseResponse
	require.NoError(t, json.Unmarshal(respBody, &res))
	return res
}

func TestStringQuartetBarE2E(t *testing.T) {
	d := duration.FromInt
	res := parse(t, createParseReqBody(
		tk.NewString(tk.Title, "Quartet"),
		tk.NewString(tk.MetadataKey, "composer"),
		tk.NewString(tk.MetadataValue, "anon"),
		tk.NewContainer(tk.PerformerDeclaration, "vn1",
			tk.NewString(tk.InstrumentID, "vn"), tk.NewString(tk.InstrumentType, "Violin")),
		tk.NewContainer(tk.PerformerDeclaration, "vc",
			tk.NewString(tk.InstrumentID, "vc"), tk.NewString(tk.InstrumentType, "Violoncello")),
		tk.NewMarker(tk.Measure),
		tk.NewString(tk.PerformerID, "vn1"),
		tk.NewString(tk.InstrumentID, "vn"),
		tk.NewDuration(tk.RootNodeDuration, d(3)),
		tk.NewInt(tk.InternalNodeDuration, 2, 1),
		tk.NewInt(tk.LeafNodeDuration, 1, 2),
		tk.NewContainer(tk.Pitch, "", tk.NewFloat(tk.Value, 76)),
		tk.NewInt(tk.LeafNodeDuration, 1, 2),
		tk.NewContainer(tk.Pitch, "", tk.NewFloat(tk.Value, 74)),
		tk.NewInt(tk.LeafNodeDuration, 1, 1),
		tk.NewContainer(tk.Pitch, "", tk.NewFloat(tk.Value, 72)),
		tk.NewMarker(tk.DurationNodeStackModeMeasure),
		tk.NewString(tk.PerformerID, "vc"),
		tk.NewString(tk.InstrumentID, "vc"),
		tk.NewDuration(tk.RootNodeDuration, d(3)),
		tk.NewInt(tk.LeafNodeDuration, 1, 1),
		tk.NewContainer(tk.Pitch, "", tk.NewFloat(tk.Value, 48), tk.NewFloat(tk.Value, 55)),
		tk.NewMarker(tk.Measure),
		tk.NewDuration(tk.RootNodeDuration, d(3)),
		tk.NewInt(tk.LeafNodeDuration, 1, 1),
		tk.NewMarker(tk.Rest),
	))

	assert := assert.New(t)
	assert.NotEmpty(res.ID)
	assert.Empty(res.Errors)
	assert.Equal("Quartet", res.Score.Title)
	assert.Equal(map[string]string{"composer": "anon"}, res.Score.Metadata)
	assert.Equal(map[string]map[string]string{
		"vn1": {"vn": "Violin"},
		"vc":  {"vc": "Violoncello"},
	}, res.Score.Instruments)

	require.Len(t, res.Score.Measures, 2)
	assert.Equal(d(3), res.Score.Measures[0].Duration)
	assert.Equal(d(3), res.Score.Measures[1].Offset)

	require.Len(t, res.Score.Nodes, 3)
	violin := res.Score.Nodes[0]
	assert.Equal(d(2), violin.Children[0].Duration)
	assert.Equal(d(1), violin.Children[0].Children[1].Offset)
	assert.Equal(d(2), violin.Children[1].Offset)
	assert.Equal(d(0), res.Score.Nodes[1].Offset)
	assert.Equal(d(3), res.Score.Nodes[2].Offset)

	cello := res.Score.Nodes[1].Children[0].Components[0]
	assert.Equal("pitch", cello["kind"])
	assert.Equal("vc", cello["performer_id"])
	assert.Equal([]any{48.0, 55.0}, cello["pitches"])
}

func TestInvalidInstrumentTypeE2E(t *testing.T) {
	res := parse(t, createParseReqBody(
		tk.NewContainer(tk.PerformerDeclaration, "p1",
			tk.NewString(tk.InstrumentID, "x"), tk.NewString(tk.InstrumentType, "not-a-real-type")),
		tk.NewDuration(tk.RootNodeDuration, duration.FromInt(1)),
		tk.NewInt(tk.LeafNodeDuration, 1, 1),
	))

	assert := assert.New(t)
	assert.Len(res.Errors, 1)
	assert.Empty(res.Score.Instruments)
	assert.Len(res.Score.Nodes, 1)
}
