package threshold

import (
	"fmt"
	"math"
	"sort"
)

// Policy selects how the threshold value is interpreted.
type Policy int

const (
	// Count keeps the top (or bottom) round(threshold) points. When the cutoff
	// falls inside a run of equal values the whole run is dropped.
	Count Policy = iota
	// CountAfterTies is Count, but a run straddling the cutoff is kept whole.
	CountAfterTies
	// AbsoluteValue compares each point against the threshold itself.
	AbsoluteValue
	// FractionOfMaximum compares against threshold times the largest value.
	FractionOfMaximum
	// FractionOfTotal compares against threshold times the sum of all values.
	FractionOfTotal
	// FractionOfTotalCutoff keeps the shortest ranked prefix whose running sum
	// reaches threshold times the total, plus any ties of its last point.
	FractionOfTotalCutoff
)

var policyNames = map[Policy]string{
	Count:                 "count",
	CountAfterTies:        "count-after-ties",
	AbsoluteValue:         "absolute",
	FractionOfMaximum:     "fraction-of-max",
	FractionOfTotal:       "fraction-of-total",
	FractionOfTotalCutoff: "fraction-of-total-cutoff",
}

func (p Policy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy parses a name produced by Policy.String.
func ParsePolicy(s string) (Policy, error) {
	for p, name := range policyNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("threshold: unknown policy %q", s)
}

// Orientation selects which end of the ranking is kept.
type Orientation int

const (
	MostIntense Orientation = iota
	LeastIntense
)

func (o Orientation) String() string {
	switch o {
	case MostIntense:
		return "most-intense"
	case LeastIntense:
		return "least-intense"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation parses a name produced by Orientation.String.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "most-intense":
		return MostIntense, nil
	case "least-intense":
		return LeastIntense, nil
	}
	return 0, fmt.Errorf("threshold: unknown orientation %q", s)
}

// Thresholder decides which points of a spectrum survive.
type Thresholder struct {
	Policy      Policy
	Threshold   float64
	Orientation Orientation
}

// Keep returns a mask over values marking the points to keep.
func (t Thresholder) Keep(values []float64) []bool {
	keep := make([]bool, len(values))
	if len(values) == 0 {
		return keep
	}

	switch t.Policy {
	case Count, CountAfterTies:
		t.keepCount(values, keep)
	case AbsoluteValue:
		t.keepAbove(values, keep, t.Threshold)
	case FractionOfMaximum:
		max := values[0]
		for _, v := range values {
			max = math.Max(max, v)
		}
		t.keepAbove(values, keep, t.Threshold*max)
	case FractionOfTotal:
		t.keepAbove(values, keep, t.Threshold*sum(values))
	case FractionOfTotalCutoff:
		t.keepCutoff(values, keep)
	}
	return keep
}

// rank returns the indexes of values ordered from the kept end.
func (t Thresholder) rank(values []float64) []int {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		if t.Orientation == LeastIntense {
			return values[order[i]] < values[order[j]]
		}
		return values[order[i]] > values[order[j]]
	})
	return order
}

func (t Thresholder) keepCount(values []float64, keep []bool) {
	n := int(math.Round(t.Threshold))
	if n <= 0 {
		return
	}
	if n >= len(values) {
		setAll(keep)
		return
	}
	order := t.rank(values)
	cut := values[order[n-1]]
	if t.Policy == CountAfterTies {
		for r, i := range order {
			keep[i] = r < n || values[i] == cut
		}
		return
	}
	straddles := values[order[n]] == cut
	for _, i := range order[:n] {
		keep[i] = !straddles || values[i] != cut
	}
}

func (t Thresholder) keepAbove(values []float64, keep []bool, cutoff float64) {
	for i, v := range values {
		if t.Orientation == LeastIntense {
			keep[i] = v <= cutoff
		} else {
			keep[i] = v >= cutoff
		}
	}
}

func (t Thresholder) keepCutoff(values []float64, keep []bool) {
	total := sum(values)
	if total <= 0 {
		setAll(keep)
		return
	}
	order := t.rank(values)
	running := 0.0
	for r, i := range order {
		keep[i] = true
		running += values[i]
		if running/total >= t.Threshold {
			for _, j := range order[r+1:] {
				if values[j] != values[i] {
					break
				}
				keep[j] = true
			}
			return
		}
	}
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

func setAll(keep []bool) {
	for i := range keep {
		keep[i] = true
	}
}
