package parser

import (
	"fmt"

	"github.com/jsphweid/scoretree/component"
	"github.com/jsphweid/scoretree/duration"
	"github.com/jsphweid/scoretree/model"
	"github.com/jsphweid/scoretree/node"
	"github.com/jsphweid/scoretree/token"
)

func (p *Parser) manageMeasure() {
	p.setDurationOfLastMeasure()
	p.measures = append(p.measures, model.Measure{
		Number: len(p.measures) + 1,
		Offset: p.currentMeasureOffset,
	})
	p.accumInMeasure = duration.Zero
	p.stackMode = StackModeMeasure
}

// setDurationOfLastMeasure closes the open measure and moves the start of
// the next one to its end.
func (p *Parser) setDurationOfLastMeasure() {
	if len(p.measures) == 0 {
		return
	}
	last := &p.measures[len(p.measures)-1]
	last.Duration = p.accumInMeasure
	p.currentMeasureOffset = p.currentMeasureOffset.Add(last.Duration)
}

func (p *Parser) manageStackMode(mode StackMode) {
	p.stackMode = mode
	if mode == StackModeMeasure {
		p.accumInMeasure = duration.Zero
	}
}

func (p *Parser) manageStackModeSymbol(t token.Token) error {
	if err := p.expect(t, token.String); err != nil {
		return err
	}
	if mode, ok := StackModeFromSymbol(t.Str); ok {
		p.manageStackMode(mode)
	}
	return nil
}

func (p *Parser) manageRootDuration(t token.Token) error {
	if err := p.expect(t, token.Duration); err != nil {
		return err
	}
	offset := p.offsetForNewRoot(t)
	root := node.NewRoot(t.Duration, offset)
	p.nodes = append(p.nodes, root)
	p.stack.Reset(root)
	p.accumTotal = p.accumTotal.Add(root.Duration())
	p.accumInMeasure = p.accumInMeasure.Add(root.Duration())
	p.currentNodeOffset = offset
	p.currentDepth = 0
	return nil
}

func (p *Parser) offsetForNewRoot(t token.Token) duration.Duration {
	switch p.stackMode {
	case StackModeIncrement:
		return p.accumTotal
	case StackModeDecrement:
		top, ok := p.stack.Top()
		if !ok {
			return duration.Zero
		}
		p.accumTotal = top.Offset()
		p.accumInMeasure = p.accumInMeasure.Sub(top.Duration())
		if p.accumInMeasure.Sign() < 0 {
			p.skip(t, model.NegativeMeasureTime, "position in measure is "+p.accumInMeasure.String())
		}
		return top.Offset()
	}
	p.accumTotal = p.currentMeasureOffset
	return p.currentMeasureOffset
}

// manageNodeDuration attaches a beat-weighted node under the innermost open
// container, first closing as many levels as the indentation went back.
// Internal nodes become the new innermost container.
func (p *Parser) manageNodeDuration(t token.Token, internal bool) error {
	if err := p.expect(t, token.Int); err != nil {
		return err
	}
	if t.Level < 1 {
		return p.malformed(t, fmt.Sprintf("indentation level %d, want >= 1", t.Level))
	}

	depth := t.Level - 1
	if depth < p.currentDepth {
		amount := p.currentDepth - depth
		if popped := p.stack.Pop(amount); popped < amount {
			p.skip(t, model.StackUnderflow, fmt.Sprintf("closed %d of %d levels", popped, amount))
		}
	}

	parent, ok := p.stack.Top()
	if !ok {
		p.skip(t, model.NoOpenContainer, "")
		return nil
	}
	child := parent.AddChild(t.Int)
	if internal {
		p.stack.Push(child)
	} else {
		p.currentLeaf = child
	}
	p.currentDepth = depth
	return nil
}

func (p *Parser) manageString(t token.Token, target *string) error {
	if err := p.expect(t, token.String); err != nil {
		return err
	}
	*target = t.Str
	return nil
}

func (p *Parser) manageMetadataKey(t token.Token) error {
	if err := p.expect(t, token.String); err != nil {
		return err
	}
	p.metadataKey, p.hasMetadataKey = t.Str, true
	return nil
}

func (p *Parser) manageMetadataValue(t token.Token) error {
	if err := p.expect(t, token.String); err != nil {
		return err
	}
	if !p.hasMetadataKey {
		p.skip(t, model.OrphanMetadataValue, t.Str)
		return nil
	}
	p.metadata[p.metadataKey] = t.Str
	p.metadataKey, p.hasMetadataKey = "", false
	return nil
}

// context returns the performer and instrument new components belong to.
// It records why when there is no leaf to decorate or no ids are set.
func (p *Parser) context(t token.Token) (component.Context, bool) {
	switch {
	case p.currentPerformerID == "":
		p.skip(t, model.NoPerformer, "")
	case p.currentInstrumentID == "":
		p.skip(t, model.NoInstrument, "")
	case p.currentLeaf == nil:
		p.skip(t, model.NoLeaf, "")
	default:
		return component.Context{PerformerID: p.currentPerformerID, InstrumentID: p.currentInstrumentID}, true
	}
	return component.Context{}, false
}

func (p *Parser) manageEvent(t token.Token) {
	ctx, ok := p.context(t)
	if !ok {
		return
	}
	var c component.Component
	switch t.Identifier {
	case token.Rest:
		c = component.Rest{Context: ctx}
	case token.SlurStart:
		c = component.SlurStart{Context: ctx}
	case token.SlurStop:
		c = component.SlurStop{Context: ctx}
	case token.ExtensionStart:
		c = component.ExtensionStart{Context: ctx}
	case token.ExtensionStop:
		c = component.ExtensionStop{Context: ctx}
	default:
		return
	}
	p.currentLeaf.AddComponent(c)
}

func (p *Parser) managePerformerDeclaration(t token.Token) error {
	if err := p.expect(t, token.Container); err != nil {
		return err
	}

	performerID := t.Opening
	if performerID == "" {
		for _, nested := range t.Tokens {
			if nested.Identifier == token.PerformerID && nested.Kind == token.String {
				performerID = nested.Str
				break
			}
		}
	}
	if performerID == "" {
		p.skip(t, model.NoPerformer, "declaration without performer id")
		return nil
	}

	instruments := model.NewInstruments()
	var instrumentID string
	var hasInstrumentID bool
	for _, nested := range t.Tokens {
		switch nested.Identifier {
		case token.InstrumentID:
			if err := p.expect(nested, token.String); err != nil {
				return err
			}
			instrumentID, hasInstrumentID = nested.Str, true
		case token.InstrumentType:
			if err := p.expect(nested, token.String); err != nil {
				return err
			}
			instrumentType, err := model.ParseInstrumentType(nested.Str)
			if err != nil {
				return &InvalidInstrumentTypeError{Index: p.index, PerformerID: performerID, Err: err}
			}
			if !hasInstrumentID {
				p.skip(t, model.OrphanInstrumentType, nested.Str)
				continue
			}
			instruments.Set(instrumentID, instrumentType)
		}
	}
	p.instruments.Set(performerID, instruments)
	return nil
}

func (p *Parser) managePitch(t token.Token) error {
	if err := p.expect(t, token.Container); err != nil {
		return err
	}
	var values []float64
	for _, nested := range t.Tokens {
		switch {
		case nested.IsContainer() && nested.Identifier == token.SpannerStart:
			// TODO: glissando component once spanners between pitches are modeled
		case nested.Kind == token.Float:
			values = append(values, nested.Float)
		}
	}
	if ctx, ok := p.context(t); ok {
		p.currentLeaf.AddComponent(component.Pitch{Context: ctx, Values: values})
	}
	return nil
}

func (p *Parser) manageDynamicMarking(t token.Token) error {
	if err := p.expect(t, token.Container); err != nil {
		return err
	}
	ctx, ok := p.context(t)
	if !ok {
		return nil
	}
	for _, nested := range t.Tokens {
		switch nested.Identifier {
		case token.Value:
			if err := p.expect(nested, token.String); err != nil {
				return err
			}
			p.currentLeaf.AddComponent(component.DynamicMarking{Context: ctx, Value: nested.Str})
		case token.SpannerStart:
			p.currentLeaf.AddComponent(component.DynamicMarkingSpannerStart{Context: ctx})
		case token.SpannerStop:
			p.currentLeaf.AddComponent(component.DynamicMarkingSpannerStop{Context: ctx})
		}
	}
	return nil
}

func (p *Parser) manageArticulation(t token.Token) error {
	if err := p.expect(t, token.Container); err != nil {
		return err
	}
	var values []string
	for _, nested := range t.Tokens {
		if nested.Kind == token.String {
			values = append(values, nested.Str)
		}
	}
	if ctx, ok := p.context(t); ok {
		p.currentLeaf.AddComponent(component.Articulation{Context: ctx, Values: values})
	}
	return nil
}

func (p *Parser) manageTempoMarking(t token.Token) error {
	if err := p.expect(t, token.Container); err != nil {
		return err
	}
	marking := model.TempoMarking{Offset: p.currentNodeOffset}
	for _, nested := range t.Tokens {
		switch {
		case nested.Identifier == token.Value && nested.Kind == token.Float:
			marking.Value = nested.Float
		case nested.Identifier == token.Value && nested.Kind == token.Int:
			marking.Value = float64(nested.Int)
		case nested.Identifier == token.SubdivisionValue && nested.Kind == token.Int:
			marking.Subdivision = nested.Int
		}
	}
	p.tempoMarkings = append(p.tempoMarkings, marking)
	return nil
}

func (p *Parser) manageRehearsalMarking(t token.Token) error {
	if err := p.expect(t, token.Container); err != nil {
		return err
	}
	kind := t.Opening
	for _, nested := range t.Tokens {
		if nested.Identifier == token.Type && nested.Kind == token.String {
			kind = nested.Str
		}
	}
	markingType := model.Alphabetical
	if model.RehearsalMarkingType(kind) == model.Numerical {
		markingType = model.Numerical
	}
	p.rehearsalMarkings = append(p.rehearsalMarkings, model.RehearsalMarking{
		Number: len(p.rehearsalMarkings) + 1,
		Type:   markingType,
		Offset: p.currentNodeOffset,
	})
	return nil
}

func (p *Parser) finalizeNodes() {
	for i, root := range p.nodes {
		for _, issue := range root.Normalize() {
			p.diagnostics = append(p.diagnostics, model.Diagnostic{
				Token:      -1,
				Identifier: token.RootNodeDuration,
				Reason:     model.BeatWeight,
				Detail:     fmt.Sprintf("root %d: %v", i, issue),
			})
		}
	}
}
