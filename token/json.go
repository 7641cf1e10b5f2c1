package token

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jsphweid/scoretree/duration"
)

var ErrInvalidToken = errors.New("invalid token")

type jsonToken struct {
	ID       string             `json:"id"`
	Str      *string            `json:"str,omitempty"`
	Int      *int               `json:"int,omitempty"`
	Level    int                `json:"level,omitempty"`
	Float    *float64           `json:"float,omitempty"`
	Duration *duration.Duration `json:"duration,omitempty"`
	Opening  string             `json:"opening,omitempty"`
	Tokens   *[]Token           `json:"tokens,omitempty"`
}

func (t *Token) UnmarshalJSON(data []byte) error {
	var j jsonToken
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	if j.ID == "" {
		return fmt.Errorf("%w: missing id in %s", ErrInvalidToken, data)
	}

	var payloads int
	*t = Token{Identifier: j.ID, Kind: Marker}
	if j.Str != nil {
		payloads++
		t.Kind, t.Str = String, *j.Str
	}
	if j.Int != nil {
		payloads++
		t.Kind, t.Int, t.Level = Int, *j.Int, j.Level
	}
	if j.Float != nil {
		payloads++
		t.Kind, t.Float = Float, *j.Float
	}
	if j.Duration != nil {
		payloads++
		t.Kind, t.Duration = Duration, *j.Duration
	}
	if j.Tokens != nil || j.Opening != "" {
		payloads++
		t.Kind, t.Opening = Container, j.Opening
		if j.Tokens != nil {
			t.Tokens = *j.Tokens
		}
	}
	if payloads > 1 {
		return fmt.Errorf("%w: %s has %d payloads", ErrInvalidToken, j.ID, payloads)
	}
	return nil
}

func (t Token) MarshalJSON() ([]byte, error) {
	j := jsonToken{ID: t.Identifier}
	switch t.Kind {
	case String:
		j.Str = &t.Str
	case Int:
		j.Int, j.Level = &t.Int, t.Level
	case Float:
		j.Float = &t.Float
	case Duration:
		j.Duration = &t.Duration
	case Container:
		j.Opening = t.Opening
		tokens := t.Tokens
		if tokens == nil {
			tokens = []Token{}
		}
		j.Tokens = &tokens
	}
	return json.Marshal(j)
}

// Decode reads a token stream, either a bare JSON array or an object with a
// "tokens" array.
func Decode(r io.Reader) ([]Token, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '[' {
		var tokens []Token
		if err := json.Unmarshal(data, &tokens); err != nil {
			return nil, fmt.Errorf("could not decode token stream: %w", err)
		}
		return tokens, nil
	}

	var body struct {
		Tokens []Token `json:"tokens"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("could not decode token stream: %w", err)
	}
	return body.Tokens, nil
}
