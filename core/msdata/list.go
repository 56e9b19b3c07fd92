package msdata

import "fmt"

// List is an ordered, lazily realized sequence of spectra or chromatograms
// addressed by dense index.
//
// Implementations must keep Size and the index to Identity mapping stable for
// their whole lifetime. Element with withBinaryData set must return complete
// binary payloads; without it, payloads may be omitted.
type List[T any] interface {
	// Size returns the number of elements.
	Size() int
	// Identity returns the addressing record at index without loading payloads.
	Identity(index int) (Identity, error)
	// Find returns the index of the element with id, or Size() when absent.
	Find(id string) int
	// Element returns the element at index. The caller owns the returned value.
	Element(index int, withBinaryData bool) (T, error)
	// DataProcessing returns the last processing step applied by the list, if any.
	DataProcessing() *DataProcessing
}

// SpectrumList is a List of spectra.
type SpectrumList = List[*Spectrum]

// ChromatogramList is a List of chromatograms.
type ChromatogramList = List[*Chromatogram]

// Record is implemented by the element types lists hold.
type Record[T any] interface {
	comparable
	Identity() Identity
	Empty() bool
	Clone() T
	TextWritable
}

// FindLinear scans the identities of l for id. It returns l.Size() when absent.
func FindLinear[T any](l List[T], id string) int {
	n := l.Size()
	for i := 0; i < n; i++ {
		ident, err := l.Identity(i)
		if err == nil && ident.ID == id {
			return i
		}
	}
	return n
}

// ListSimple is an in-memory list.
type ListSimple[T Record[T]] struct {
	// Elements holds the list content in index order.
	Elements []T
	// DP is the processing step reported by DataProcessing.
	DP *DataProcessing
}

// SpectrumListSimple is an in-memory spectrum list.
type SpectrumListSimple = ListSimple[*Spectrum]

// ChromatogramListSimple is an in-memory chromatogram list.
type ChromatogramListSimple = ListSimple[*Chromatogram]

// NewSpectrumListSimple builds an in-memory list over spectra.
func NewSpectrumListSimple(spectra ...*Spectrum) *SpectrumListSimple {
	return &SpectrumListSimple{Elements: spectra}
}

// NewChromatogramListSimple builds an in-memory list over chromatograms.
func NewChromatogramListSimple(chromatograms ...*Chromatogram) *ChromatogramListSimple {
	return &ChromatogramListSimple{Elements: chromatograms}
}

func (l *ListSimple[T]) Size() int { return len(l.Elements) }

func (l *ListSimple[T]) Identity(index int) (Identity, error) {
	e, err := l.at("Identity", index)
	if err != nil {
		return Identity{}, err
	}
	return e.Identity(), nil
}

func (l *ListSimple[T]) Find(id string) int {
	for i, e := range l.Elements {
		var zero T
		if e != zero && e.Identity().ID == id {
			return i
		}
	}
	return len(l.Elements)
}

// Element returns a clone of the stored element; the payload flag is ignored
// since the data is already in memory.
func (l *ListSimple[T]) Element(index int, withBinaryData bool) (T, error) {
	e, err := l.at("Element", index)
	if err != nil {
		var zero T
		return zero, err
	}
	return e.Clone(), nil
}

func (l *ListSimple[T]) DataProcessing() *DataProcessing { return l.DP }

// Empty reports whether the list holds no elements and no processing record.
func (l *ListSimple[T]) Empty() bool {
	return len(l.Elements) == 0 && emptyRef(l.DP)
}

// WriteText writes the processing record and every non-nil element.
func (l *ListSimple[T]) WriteText(t *TextWriter) {
	if l.DP != nil && !l.DP.Empty() {
		t.nested("dataProcessing", l.DP)
	}
	var zero T
	for _, e := range l.Elements {
		if e != zero {
			e.WriteText(t)
		}
	}
}

func (l *ListSimple[T]) at(op string, index int) (T, error) {
	var zero T
	if err := CheckIndex(op, index, len(l.Elements)); err != nil {
		return zero, err
	}
	e := l.Elements[index]
	if e == zero {
		return zero, fmt.Errorf("msdata: %s(%d): %w", op, index, ErrNilElement)
	}
	return e, nil
}

// Materialize copies every element of l, with full data, into an in-memory list.
func Materialize[T Record[T]](l List[T]) (*ListSimple[T], error) {
	out := &ListSimple[T]{DP: l.DataProcessing()}
	n := l.Size()
	out.Elements = make([]T, 0, n)
	for i := 0; i < n; i++ {
		e, err := l.Element(i, true)
		if err != nil {
			return nil, err
		}
		out.Elements = append(out.Elements, e)
	}
	return out, nil
}
