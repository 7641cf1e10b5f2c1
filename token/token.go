// Package token defines the token stream produced by the notation tokenizer
// and consumed by the parser.
package token

import (
	"fmt"

	"github.com/jsphweid/scoretree/duration"
)

type Kind int

const (
	Marker Kind = iota
	String
	Int
	Float
	Duration
	Container
)

func (k Kind) String() string {
	switch k {
	case Marker:
		return "marker"
	case String:
		return "string"
	case Int:
		return "int"
	case Float:
		return "float"
	case Duration:
		return "duration"
	case Container:
		return "container"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Identifiers understood by the parser. Anything else is skipped.
const (
	Measure                        = "Measure"
	DurationNodeStackMode          = "DurationNodeStackMode"
	DurationNodeStackModeMeasure   = "DurationNodeStackModeMeasure"
	DurationNodeStackModeIncrement = "DurationNodeStackModeIncrement"
	DurationNodeStackModeDecrement = "DurationNodeStackModeDecrement"
	RootNodeDuration               = "RootNodeDuration"
	InternalNodeDuration           = "InternalNodeDuration"
	LeafNodeDuration               = "LeafNodeDuration"
	PerformerID                    = "PerformerID"
	InstrumentID                   = "InstrumentID"
	InstrumentType                 = "InstrumentType"
	MetadataKey                    = "MetadataKey"
	MetadataValue                  = "MetadataValue"
	Title                          = "Title"
	Rest                           = "Rest"
	SlurStart                      = "SlurStart"
	SlurStop                       = "SlurStop"
	ExtensionStart                 = "ExtensionStart"
	ExtensionStop                  = "ExtensionStop"
	PerformerDeclaration           = "PerformerDeclaration"
	Pitch                          = "Pitch"
	DynamicMarking                 = "DynamicMarking"
	Articulation                   = "Articulation"
	TempoMarking                   = "TempoMarking"
	RehearsalMarking               = "RehearsalMarking"
	SpannerStart                   = "SpannerStart"
	SpannerStop                    = "SpannerStop"
	Value                          = "Value"
	SubdivisionValue               = "SubdivisionValue"
	Type                           = "Type"
)

// Token is either atomic, holding the single payload its Kind names, or a
// Container holding nested tokens.
type Token struct {
	Identifier string
	Kind       Kind

	Str      string
	Int      int
	Level    int // 1-based indentation level, only set on Int tokens
	Float    float64
	Duration duration.Duration

	Opening string
	Tokens  []Token
}

func NewMarker(id string) Token {
	return Token{Identifier: id, Kind: Marker}
}

func NewString(id, value string) Token {
	return Token{Identifier: id, Kind: String, Str: value}
}

func NewInt(id string, value, level int) Token {
	return Token{Identifier: id, Kind: Int, Int: value, Level: level}
}

func NewFloat(id string, value float64) Token {
	return Token{Identifier: id, Kind: Float, Float: value}
}

func NewDuration(id string, value duration.Duration) Token {
	return Token{Identifier: id, Kind: Duration, Duration: value}
}

func NewContainer(id, opening string, tokens ...Token) Token {
	return Token{Identifier: id, Kind: Container, Opening: opening, Tokens: tokens}
}

func (t Token) IsContainer() bool {
	return t.Kind == Container
}

func (t Token) String() string {
	switch t.Kind {
	case String:
		return fmt.Sprintf("%s(%q)", t.Identifier, t.Str)
	case Int:
		return fmt.Sprintf("%s(%d@%d)", t.Identifier, t.Int, t.Level)
	case Float:
		return fmt.Sprintf("%s(%v)", t.Identifier, t.Float)
	case Duration:
		return fmt.Sprintf("%s(%v)", t.Identifier, t.Duration)
	case Container:
		return fmt.Sprintf("%s[%d]", t.Identifier, len(t.Tokens))
	}
	return t.Identifier
}
