package msdata

import (
	"fmt"
	"reflect"
)

// DefaultProcessingID names the processing record a wrapper creates when its
// inner list reports none.
const DefaultProcessingID = "msforge_processing"

// Wrapper is the decorator base for lists. It holds one inner list and forwards
// every call to it. Concrete wrappers embed *Wrapper and override only the
// methods whose behavior they change.
//
// The wrapper owns a copy of the inner processing record so appending its own
// step never touches the inner list.
type Wrapper[T any] struct {
	inner List[T]
	dp    *DataProcessing
}

// SpectrumWrapper is the decorator base for spectrum lists.
type SpectrumWrapper = Wrapper[*Spectrum]

// ChromatogramWrapper is the decorator base for chromatogram lists.
type ChromatogramWrapper = Wrapper[*Chromatogram]

// NewWrapper wraps inner. It fails with ErrNilInner when inner is nil.
func NewWrapper[T any](inner List[T]) (*Wrapper[T], error) {
	if inner == nil {
		return nil, fmt.Errorf("msdata: NewWrapper: %w", ErrNilInner)
	}
	dp := inner.DataProcessing().Clone()
	if dp == nil {
		dp = NewDataProcessing(DefaultProcessingID)
	}
	return &Wrapper[T]{inner: inner, dp: dp}, nil
}

// Inner returns the wrapped list.
func (w *Wrapper[T]) Inner() List[T] { return w.inner }

// Base returns the decorator base itself, giving chained code access to the
// inner list and processing record without inspecting concrete types.
func (w *Wrapper[T]) Base() *Wrapper[T] { return w }

func (w *Wrapper[T]) Size() int { return w.inner.Size() }

func (w *Wrapper[T]) Identity(index int) (Identity, error) { return w.inner.Identity(index) }

func (w *Wrapper[T]) Find(id string) int { return w.inner.Find(id) }

// Element forwards to the inner list. A nil element without an error fails
// with ErrNilElement.
func (w *Wrapper[T]) Element(index int, withBinaryData bool) (T, error) {
	e, err := w.inner.Element(index, withBinaryData)
	if err != nil {
		return e, err
	}
	if isNil(e) {
		var zero T
		return zero, fmt.Errorf("msdata: Element(%d): %w", index, ErrNilElement)
	}
	return e, nil
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// DataProcessing returns the wrapper's processing record, which includes the
// inner list's steps followed by any appended by the wrapper.
func (w *Wrapper[T]) DataProcessing() *DataProcessing { return w.dp }

// AppendProcessingMethod records a processing step. Call it only while the
// wrapper is being constructed.
func (w *Wrapper[T]) AppendProcessingMethod(m ProcessingMethod) {
	w.dp.Append(m)
}

// Wrapped is implemented by every list built on Wrapper.
type Wrapped[T any] interface {
	List[T]
	Base() *Wrapper[T]
}

// Chain returns l followed by each inner list reachable through Wrapper bases,
// outermost first.
func Chain[T any](l List[T]) []List[T] {
	var out []List[T]
	for l != nil {
		out = append(out, l)
		w, ok := l.(Wrapped[T])
		if !ok {
			break
		}
		l = w.Base().Inner()
	}
	return out
}
