package threshold

import (
	"errors"
	"fmt"
	"sync"

	"msforge/core/cv"
	"msforge/core/msdata"
	"msforge/core/utils"

	"go.uber.org/zap"
)

var (
	// ErrArrayLength is returned when a binary array of a spectrum does not
	// match the length of its intensity array.
	ErrArrayLength = errors.New("threshold: array length mismatch")
)

// Config holds the thresholding settings read from configuration or flags.
type Config struct {
	Policy      string  `mapstructure:"policy" default:"count"`
	Orientation string  `mapstructure:"orientation" default:"most-intense"`
	Value       float64 `mapstructure:"value" default:"100"`
	// MSLevels restricts thresholding to the listed levels, e.g. "2-". Empty means all.
	MSLevels string `mapstructure:"ms_levels" default:""`
}

// Thresholder parses the policy and orientation names.
func (c Config) Thresholder() (Thresholder, error) {
	p, err := ParsePolicy(c.Policy)
	if err != nil {
		return Thresholder{}, err
	}
	o, err := ParseOrientation(c.Orientation)
	if err != nil {
		return Thresholder{}, err
	}
	return Thresholder{Policy: p, Threshold: c.Value, Orientation: o}, nil
}

// Options converts the MS level filter into list options.
func (c Config) Options() ([]Option, error) {
	if c.MSLevels == "" {
		return nil, nil
	}
	levels, err := utils.ParseIntSet(c.MSLevels)
	if err != nil {
		return nil, fmt.Errorf("threshold: ms_levels: %w", err)
	}
	return []Option{WithMSLevels(levels)}, nil
}

// Option configures a List.
type Option func(*List)

// WithMSLevels limits thresholding to spectra whose ms level matches. Other
// spectra pass through untouched.
func WithMSLevels(match func(int) bool) Option {
	return func(l *List) { l.levels = match }
}

// WithLogger sets the logger used to report spectra that cannot be thresholded.
func WithLogger(logger *zap.Logger) Option {
	return func(l *List) { l.logger = logger }
}

// List removes low (or high) intensity points from the spectra of an inner list.
type List struct {
	*msdata.SpectrumWrapper
	th     Thresholder
	levels func(int) bool
	logger *zap.Logger
	warn   sync.Once
}

// New wraps inner so every spectrum it returns is thresholded by th.
func New(inner msdata.SpectrumList, th Thresholder, opts ...Option) (*List, error) {
	w, err := msdata.NewWrapper(inner)
	if err != nil {
		return nil, err
	}
	l := &List{SpectrumWrapper: w, th: th, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(l)
	}

	var m msdata.ProcessingMethod
	m.Set(cv.MSThresholding, "")
	m.SetUserParam("threshold policy", th.Policy.String(), "xsd:string")
	m.SetUserParam("threshold orientation", th.Orientation.String(), "xsd:string")
	m.SetUserParam("threshold", th.Threshold, "xsd:double")
	l.AppendProcessingMethod(m)
	return l, nil
}

// Element returns the thresholded spectrum at index. Binary data is always
// loaded from the inner list since it is needed to decide which points stay.
func (l *List) Element(index int, withBinaryData bool) (*msdata.Spectrum, error) {
	s, err := l.Inner().Element(index, true)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("threshold: Element(%d): %w", index, msdata.ErrNilElement)
	}
	if l.levels != nil && !l.levels(s.MSLevel()) {
		return s, nil
	}

	intensity := s.IntensityArray()
	if intensity == nil {
		l.warn.Do(func() {
			l.logger.Warn("spectrum has no intensity array, passing through unthresholded",
				zap.String("id", s.ID), zap.Int("index", s.Index))
		})
		return s, nil
	}

	n := len(intensity.Data)
	for i, a := range s.BinaryDataArrays {
		if a != nil && len(a.Data) != n {
			return nil, fmt.Errorf("threshold: spectrum %q: array %d has %d values, intensity has %d: %w",
				s.ID, i, len(a.Data), n, ErrArrayLength)
		}
	}

	keep := l.th.Keep(intensity.Data)
	kept := 0
	for _, k := range keep {
		if k {
			kept++
		}
	}

	for i, a := range s.BinaryDataArrays {
		if a == nil {
			continue
		}
		out := *a
		out.ParamContainer = a.ParamContainer.Clone()
		out.Data = make([]float64, 0, kept)
		for j, v := range a.Data {
			if keep[j] {
				out.Data = append(out.Data, v)
			}
		}
		s.BinaryDataArrays[i] = &out
	}
	s.DefaultArrayLength = kept
	s.DataProcessing = l.DataProcessing()
	return s, nil
}
