package filter

import (
	"fmt"
	"sort"

	"msforge/core/cv"
	"msforge/core/msdata"
)

// List exposes the spectra of an inner list accepted by a predicate, renumbered
// densely from zero.
type List struct {
	*msdata.SpectrumWrapper
	indexes []int
}

// New scans inner once and keeps the spectra pred accepts. Spectra are only
// loaded, without binary data, when pred cannot decide from the identity.
func New(inner msdata.SpectrumList, pred Predicate) (*List, error) {
	w, err := msdata.NewWrapper(inner)
	if err != nil {
		return nil, err
	}
	l := &List{SpectrumWrapper: w}

	n := inner.Size()
	for i := 0; i < n && !pred.Done(); i++ {
		ident, err := inner.Identity(i)
		if err != nil {
			return nil, fmt.Errorf("filter: %w", err)
		}
		d := pred.Identity(ident)
		if d == Undecided {
			s, err := inner.Element(i, false)
			if err != nil {
				return nil, fmt.Errorf("filter: %w", err)
			}
			d = decide(pred.Spectrum(s))
		}
		if d == Accept {
			l.indexes = append(l.indexes, i)
		}
	}

	var m msdata.ProcessingMethod
	m.Set(cv.MSDataFiltering, "")
	m.SetUserParam("filter", pred.String(), "xsd:string")
	l.AppendProcessingMethod(m)
	return l, nil
}

func (l *List) Size() int { return len(l.indexes) }

// InnerIndex maps index to the position of the same spectrum in the inner list.
func (l *List) InnerIndex(index int) (int, error) {
	if err := msdata.CheckIndex("InnerIndex", index, len(l.indexes)); err != nil {
		return 0, err
	}
	return l.indexes[index], nil
}

func (l *List) Identity(index int) (msdata.Identity, error) {
	if err := msdata.CheckIndex("Identity", index, len(l.indexes)); err != nil {
		return msdata.Identity{}, err
	}
	ident, err := l.Inner().Identity(l.indexes[index])
	if err != nil {
		return msdata.Identity{}, err
	}
	ident.Index = index
	return ident, nil
}

func (l *List) Find(id string) int {
	inner := l.Inner().Find(id)
	i := sort.SearchInts(l.indexes, inner)
	if i < len(l.indexes) && l.indexes[i] == inner {
		return i
	}
	return len(l.indexes)
}

func (l *List) Element(index int, withBinaryData bool) (*msdata.Spectrum, error) {
	if err := msdata.CheckIndex("Element", index, len(l.indexes)); err != nil {
		return nil, err
	}
	s, err := l.Inner().Element(l.indexes[index], withBinaryData)
	if err != nil {
		return nil, err
	}
	s.Index = index
	return s, nil
}
