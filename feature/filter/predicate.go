package filter

import (
	"fmt"
	"slices"
	"strings"

	"msforge/core/msdata"
	"msforge/core/utils"
)

// Decision is the answer a predicate gives from an identity alone.
type Decision int

const (
	// Undecided asks the filter to load the spectrum and call Spectrum.
	Undecided Decision = iota
	Reject
	Accept
)

func decide(ok bool) Decision {
	if ok {
		return Accept
	}
	return Reject
}

// Predicate selects the spectra a List keeps. Predicates may track state across
// calls, so an instance serves a single List.
type Predicate interface {
	// Identity answers from the addressing record when possible.
	Identity(ident msdata.Identity) Decision
	// Spectrum answers for a spectrum loaded without binary data.
	Spectrum(s *msdata.Spectrum) bool
	// Done reports that no later index can be accepted.
	Done() bool
	// String describes the predicate for the processing record.
	String() string
}

// IndexSet keeps spectra by inner index.
type IndexSet struct {
	set  utils.IntSet
	text string
	last int
}

// NewIndexSet parses ranges such as "0-9 20,30-".
func NewIndexSet(ranges string) (*IndexSet, error) {
	set, err := utils.ParseIntRanges(ranges)
	if err != nil {
		return nil, fmt.Errorf("filter: index set: %w", err)
	}
	return &IndexSet{set: set, text: ranges, last: -1}, nil
}

func (p *IndexSet) Identity(ident msdata.Identity) Decision {
	p.last = ident.Index
	return decide(p.set.Contains(ident.Index))
}

func (p *IndexSet) Spectrum(s *msdata.Spectrum) bool { return p.set.Contains(s.Index) }

// Done is true once the largest member has been seen.
func (p *IndexSet) Done() bool { return p.last >= p.set.Max() }

func (p *IndexSet) String() string { return "index " + p.text }

// IDSet keeps spectra whose id is listed.
type IDSet struct {
	ids  map[string]bool
	seen int
}

// NewIDSet keeps spectra with any of ids.
func NewIDSet(ids ...string) *IDSet {
	p := &IDSet{ids: make(map[string]bool, len(ids))}
	for _, id := range ids {
		p.ids[id] = false
	}
	return p
}

func (p *IDSet) Identity(ident msdata.Identity) Decision {
	found, ok := p.ids[ident.ID]
	if ok && !found {
		p.ids[ident.ID] = true
		p.seen++
	}
	return decide(ok)
}

func (p *IDSet) Spectrum(s *msdata.Spectrum) bool {
	_, ok := p.ids[s.ID]
	return ok
}

// Done is true once every listed id has been accepted.
func (p *IDSet) Done() bool { return p.seen == len(p.ids) }

func (p *IDSet) String() string {
	ids := make([]string, 0, len(p.ids))
	for id := range p.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return "id " + strings.Join(ids, ",")
}

// MSLevelSet keeps spectra by ms level, which needs the loaded spectrum.
type MSLevelSet struct {
	set  utils.IntSet
	text string
}

// NewMSLevelSet parses ranges such as "2-".
func NewMSLevelSet(ranges string) (*MSLevelSet, error) {
	set, err := utils.ParseIntRanges(ranges)
	if err != nil {
		return nil, fmt.Errorf("filter: ms level set: %w", err)
	}
	return &MSLevelSet{set: set, text: ranges}, nil
}

func (p *MSLevelSet) Identity(msdata.Identity) Decision { return Undecided }

func (p *MSLevelSet) Spectrum(s *msdata.Spectrum) bool { return p.set.Contains(s.MSLevel()) }

func (p *MSLevelSet) Done() bool { return false }

func (p *MSLevelSet) String() string { return "ms level " + p.text }
