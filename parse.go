package vcard

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/vcard/attr"
	"github.com/ghettovoice/vcard/internal/constraints"
	"github.com/ghettovoice/vcard/internal/errorutil"
	"github.com/ghettovoice/vcard/internal/grammar"
	"github.com/ghettovoice/vcard/internal/util"
)

const (
	ErrUnbalancedCard   errorutil.Error = "unbalanced BEGIN:VCARD/END:VCARD"
	ErrContentOutside   errorutil.Error = "content outside of a card"
	ErrUnterminatedCard errorutil.Error = "card is not terminated with END:VCARD"
)

// Parse parses the text of a single card.
//
// Every logical line becomes an attribute, in input order. Parameters are attached
// to the attribute before its value is decoded. Empty input gives an empty card.
func Parse[T constraints.Byteseq](s T) (*Card, error) {
	return errtrace.Wrap2(parseLines(grammar.UnfoldLines(s), 0))
}

func parseLines(lines iter.Seq[string], lineNum int) (*Card, error) {
	card := new(Card)
	for line := range lines {
		lineNum++
		a, err := ParseAttr(line)
		if err != nil {
			var se *grammar.SyntaxError
			if !errors.As(err, &se) {
				return nil, errtrace.Wrap(fmt.Errorf("line %d: %w", lineNum, err))
			}
			se.LineNum = lineNum
			return nil, errtrace.Wrap(err)
		}
		card.Attrs = append(card.Attrs, a)
	}
	return card, nil
}

// ParseAttr parses a single unfolded content line into an attribute.
func ParseAttr(line string) (attr.Attribute, error) {
	cl, err := grammar.ScanContentLine(line)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	a := attr.New(cl.Name)
	if cl.Group != "" {
		a.SetGroup(attr.Name(cl.Group))
	}
	var params attr.Params
	for _, rp := range cl.Params {
		p := attr.Param{Name: attr.Name(rp.Name), Values: make([]attr.ParamValue, 0, len(rp.Values))}
		for _, v := range rp.Values {
			p.Values = append(p.Values, attr.ParseParamValue(v))
		}
		params.Append(p)
	}
	a.SetParams(params)
	if err := a.Decode(cl.Value); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return a, nil
}

type cardState string

const (
	stateIdle cardState = "idle"
	stateCard cardState = "card"
)

type cardTrigger string

const (
	triggerBegin cardTrigger = "begin"
	triggerEnd   cardTrigger = "end"
)

func newBoundaryMachine() *stateless.StateMachine {
	sm := stateless.NewStateMachine(stateIdle)
	sm.Configure(stateIdle).Permit(triggerBegin, stateCard)
	sm.Configure(stateCard).Permit(triggerEnd, stateIdle)
	return sm
}

type block struct {
	lines []string
	// offset is the number of logical lines before the block.
	offset int
}

// ParseAll parses a stream holding any number of BEGIN:VCARD ... END:VCARD blocks.
//
// Blocks are parsed concurrently and returned in input order. Nested or unbalanced
// boundaries, content between blocks and an unterminated last block are errors.
// If any block fails to parse, the joined errors of all failed blocks are returned.
func ParseAll[T constraints.Byteseq](s T) ([]*Card, error) {
	blocks, err := splitBlocks(grammar.UnfoldLines(s))
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	cards := make([]*Card, len(blocks))
	errs := make([]error, len(blocks))
	var wg sync.WaitGroup
	for i, b := range blocks {
		wg.Go(func() {
			cards[i], errs[i] = parseLines(slices.Values(b.lines), b.offset)
		})
	}
	wg.Wait()

	if errs = slices.DeleteFunc(errs, func(err error) bool { return err == nil }); len(errs) > 0 {
		return nil, errtrace.Wrap(errorutil.JoinPrefix("parse cards:", errs...))
	}
	return cards, nil
}

func splitBlocks(lines iter.Seq[string]) ([]block, error) {
	var (
		sm      = newBoundaryMachine()
		blocks  []block
		cur     block
		lineNum int
	)
	for line := range lines {
		lineNum++

		var trig cardTrigger
		switch {
		case isBoundary(line, "BEGIN"):
			trig = triggerBegin
		case isBoundary(line, "END"):
			trig = triggerEnd
		}
		if trig != "" {
			if err := sm.Fire(trig); err != nil {
				return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrUnbalancedCard, "line %d: %s", lineNum, line))
			}
		}

		switch {
		case trig == triggerBegin:
			cur = block{offset: lineNum - 1}
			cur.lines = append(cur.lines, line)
		case sm.MustState() == stateCard:
			cur.lines = append(cur.lines, line)
		case trig == triggerEnd:
			cur.lines = append(cur.lines, line)
			blocks = append(blocks, cur)
			cur = block{}
		default:
			return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrContentOutside, "line %d: %s", lineNum, util.Ellipsis(line, 32)))
		}
	}
	if sm.MustState() != stateIdle {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrUnterminatedCard, "line %d", cur.offset+1))
	}
	return blocks, nil
}

func isBoundary(line, name string) bool {
	n, v, ok := strings.Cut(line, ":")
	return ok && util.EqFold(n, name) && util.EqFold(strings.TrimSpace(v), "VCARD")
}
