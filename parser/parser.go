// Package parser turns a token stream into a score: it rebuilds rhythm
// trees from indentation levels, places each tree in time according to the
// active stack mode, attaches events to leaves and normalizes every tree
// once the stream is consumed.
package parser

import (
	"errors"
	"log/slog"

	"github.com/jsphweid/scoretree/duration"
	"github.com/jsphweid/scoretree/logging"
	"github.com/jsphweid/scoretree/model"
	"github.com/jsphweid/scoretree/node"
	"github.com/jsphweid/scoretree/token"
	"github.com/jsphweid/scoretree/util"
)

// StackMode decides where the next root node starts.
type StackMode int

const (
	// at the start of the current measure
	StackModeMeasure StackMode = iota
	// right after the previous root node
	StackModeIncrement
	// at the start of the node currently open
	StackModeDecrement
)

func StackModeFromSymbol(s string) (StackMode, bool) {
	switch s {
	case "|":
		return StackModeMeasure, true
	case "+":
		return StackModeIncrement, true
	case "-":
		return StackModeDecrement, true
	}
	return StackModeMeasure, false
}

func (m StackMode) String() string {
	switch m {
	case StackModeIncrement:
		return "+"
	case StackModeDecrement:
		return "-"
	}
	return "|"
}

type Option func(*Parser)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// Parser holds the state of one parse. It must not be reused or shared.
type Parser struct {
	logger *slog.Logger
	used   bool
	index  int

	stack       *util.Stack[*node.Node]
	stackMode   StackMode
	currentLeaf *node.Node

	// offset of the start of the current measure
	currentMeasureOffset duration.Duration
	// position within the current measure
	accumInMeasure duration.Duration
	// position since the start of the piece
	accumTotal duration.Duration
	// offset of the most recent root node
	currentNodeOffset duration.Duration
	currentDepth      int

	currentPerformerID  string
	currentInstrumentID string
	metadataKey         string
	hasMetadataKey      bool

	title             string
	metadata          map[string]string
	measures          []model.Measure
	nodes             []*node.Node
	tempoMarkings     []model.TempoMarking
	rehearsalMarkings []model.RehearsalMarking
	instruments       *model.Performers
	diagnostics       []model.Diagnostic
	errs              []error
}

func New(opts ...Option) *Parser {
	p := &Parser{
		logger:            logging.Logger(),
		stack:             util.NewStack[*node.Node](),
		metadata:          make(map[string]string),
		measures:          []model.Measure{},
		nodes:             []*node.Node{},
		tempoMarkings:     []model.TempoMarking{},
		rehearsalMarkings: []model.RehearsalMarking{},
		instruments:       model.NewPerformers(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse builds a score with a fresh Parser.
func Parse(tokens []token.Token, opts ...Option) (*model.Score, error) {
	return New(opts...).Parse(tokens)
}

// Parse consumes tokens once, left to right. Recoverable errors, such as an
// invalid instrument type in a performer declaration, are joined into the
// returned error next to a complete score. A malformed token stops the parse
// and returns a nil score.
func (p *Parser) Parse(tokens []token.Token) (*model.Score, error) {
	if p.used {
		return nil, ErrParserReused
	}
	p.used = true

	for i, t := range tokens {
		p.index = i
		if err := p.manageToken(t); err != nil {
			var malformed *MalformedTokenError
			if errors.As(err, &malformed) {
				p.logger.Error("parse aborted", "error", err)
				return nil, err
			}
			p.logger.Warn("token rejected", "token", i, "identifier", t.Identifier, "error", err)
			p.errs = append(p.errs, err)
		}
	}

	p.setDurationOfLastMeasure()
	p.finalizeNodes()
	p.logger.Debug("parsed score",
		"tokens", len(tokens),
		"nodes", len(p.nodes),
		"measures", len(p.measures),
		"diagnostics", len(p.diagnostics),
	)
	return p.makeScore(), errors.Join(p.errs...)
}

func (p *Parser) manageToken(t token.Token) error {
	switch t.Identifier {
	case token.Measure:
		p.manageMeasure()
	case token.DurationNodeStackModeMeasure:
		p.manageStackMode(StackModeMeasure)
	case token.DurationNodeStackModeIncrement:
		p.manageStackMode(StackModeIncrement)
	case token.DurationNodeStackModeDecrement:
		p.manageStackMode(StackModeDecrement)
	case token.DurationNodeStackMode:
		return p.manageStackModeSymbol(t)
	case token.RootNodeDuration:
		return p.manageRootDuration(t)
	case token.InternalNodeDuration:
		return p.manageNodeDuration(t, true)
	case token.LeafNodeDuration:
		return p.manageNodeDuration(t, false)
	case token.PerformerID:
		return p.manageString(t, &p.currentPerformerID)
	case token.InstrumentID:
		return p.manageString(t, &p.currentInstrumentID)
	case token.Title:
		return p.manageString(t, &p.title)
	case token.MetadataKey:
		return p.manageMetadataKey(t)
	case token.MetadataValue:
		return p.manageMetadataValue(t)
	case token.Rest, token.SlurStart, token.SlurStop, token.ExtensionStart, token.ExtensionStop:
		p.manageEvent(t)
	case token.PerformerDeclaration:
		return p.managePerformerDeclaration(t)
	case token.Pitch:
		return p.managePitch(t)
	case token.DynamicMarking:
		return p.manageDynamicMarking(t)
	case token.Articulation:
		return p.manageArticulation(t)
	case token.TempoMarking:
		return p.manageTempoMarking(t)
	case token.RehearsalMarking:
		return p.manageRehearsalMarking(t)
	default:
		// not modeled yet
	}
	return nil
}

func (p *Parser) skip(t token.Token, reason model.Reason, detail string) {
	p.diagnostics = append(p.diagnostics, model.Diagnostic{
		Token:      p.index,
		Identifier: t.Identifier,
		Reason:     reason,
		Detail:     detail,
	})
	p.logger.Debug("token skipped", "token", p.index, "identifier", t.Identifier, "reason", reason.String())
}

func (p *Parser) malformed(t token.Token, detail string) error {
	return &MalformedTokenError{Index: p.index, Identifier: t.Identifier, Got: t.Kind, Detail: detail}
}

func (p *Parser) expect(t token.Token, kind token.Kind) error {
	if t.Kind != kind {
		return p.malformed(t, "expected "+kind.String()+" payload")
	}
	return nil
}

func (p *Parser) makeScore() *model.Score {
	return &model.Score{
		Title:             p.title,
		Metadata:          p.metadata,
		Measures:          p.measures,
		Nodes:             p.nodes,
		TempoMarkings:     p.tempoMarkings,
		RehearsalMarkings: p.rehearsalMarkings,
		Instruments:       p.instruments,
		Diagnostics:       p.diagnostics,
	}
}
