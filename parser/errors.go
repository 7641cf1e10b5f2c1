package parser

import (
	"errors"
	"fmt"

	"github.com/jsphweid/scoretree/token"
)

var (
	ErrMalformedToken = errors.New("malformed token")
	ErrParserReused   = errors.New("parser already used")
)

// MalformedTokenError is fatal: the stream cannot be trusted past Index.
type MalformedTokenError struct {
	Index      int
	Identifier string
	Got        token.Kind
	Detail     string
}

func (e *MalformedTokenError) Error() string {
	return fmt.Sprintf("token %d (%s, %v): %s", e.Index, e.Identifier, e.Got, e.Detail)
}

func (e *MalformedTokenError) Unwrap() error {
	return ErrMalformedToken
}

// InvalidInstrumentTypeError aborts one performer declaration only.
type InvalidInstrumentTypeError struct {
	Index       int
	PerformerID string
	Err         error
}

func (e *InvalidInstrumentTypeError) Error() string {
	return fmt.Sprintf("token %d: performer %q: %v", e.Index, e.PerformerID, e.Err)
}

func (e *InvalidInstrumentTypeError) Unwrap() error {
	return e.Err
}
