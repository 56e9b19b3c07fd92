package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToString renders a parameter value as text.
// Floats use the shortest representation that round-trips, so 0.1 stays "0.1".
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToFloat64 parses a textual value, returning 0 when it is not numeric.
func ToFloat64(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// ToInt parses a textual value, returning 0 when it is not an integer.
// Values written as floats ("2.0") are truncated.
func ToInt(s string) int {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return int(ToFloat64(s))
}

// ToBool handles "1", "true" and "yes" in any case.
func ToBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

// IntSet is a set of integers stored as inclusive ranges.
type IntSet struct {
	spans []intSpan
}

type intSpan struct{ lo, hi int }

// Contains reports whether v falls in any range of the set.
func (s IntSet) Contains(v int) bool {
	for _, sp := range s.spans {
		if v >= sp.lo && v <= sp.hi {
			return true
		}
	}
	return false
}

// Max returns the largest member, math.MaxInt for open ranges and -1 for an
// empty set.
func (s IntSet) Max() int {
	max := -1
	for _, sp := range s.spans {
		if sp.hi > max {
			max = sp.hi
		}
	}
	return max
}

// ParseIntRanges parses a whitespace or comma separated list of integers and
// inclusive ranges ("1 3-5,8-"). An open upper bound matches everything from
// the lower bound up.
func ParseIntRanges(s string) (IntSet, error) {
	var set IntSet
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	for _, f := range fields {
		lo, hi, isRange := strings.Cut(f, "-")
		begin, err := strconv.Atoi(lo)
		if err != nil {
			return IntSet{}, fmt.Errorf("invalid integer set element %q: %w", f, err)
		}
		end := begin
		if isRange {
			if hi == "" {
				end = math.MaxInt
			} else if end, err = strconv.Atoi(hi); err != nil {
				return IntSet{}, fmt.Errorf("invalid integer set element %q: %w", f, err)
			}
		}
		if end < begin {
			return IntSet{}, fmt.Errorf("invalid integer set element %q: descending range", f)
		}
		set.spans = append(set.spans, intSpan{begin, end})
	}
	return set, nil
}

// ParseIntSet is ParseIntRanges returning the membership test only.
func ParseIntSet(s string) (func(int) bool, error) {
	set, err := ParseIntRanges(s)
	if err != nil {
		return nil, err
	}
	return set.Contains, nil
}
