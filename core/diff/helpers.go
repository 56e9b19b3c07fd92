package diff

// Entity is implemented by every type the engine can produce residuals for.
type Entity interface {
	Empty() bool
}

// entityPtr is satisfied by *E when *E implements Entity.
type entityPtr[E any] interface {
	*E
	Entity
}

func diffString(a, b string) (string, string) {
	if a == b {
		return "", ""
	}
	return a, b
}

// diffScalar clears both sides to none when a and b are equal.
func diffScalar[T comparable](a, b, none T) (T, T) {
	if a == b {
		return none, none
	}
	return a, b
}

// vectorDiff returns the elements of a missing from b, and those of b missing
// from a, by value equality. Order and duplicates are kept.
func vectorDiff[T comparable](a, b []T) (aB, bA []T) {
	return missing(a, b), missing(b, a)
}

func missing[T comparable](a, b []T) []T {
	var out []T
	for _, x := range a {
		found := false
		for _, y := range b {
			if x == y {
				found = true
				break
			}
		}
		if !found {
			out = append(out, x)
		}
	}
	return out
}

// same reports whether fn finds no difference between a and b.
func same[P Entity](a, b P, cfg *Config, fn func(a, b P, cfg *Config) (P, P)) bool {
	aB, bA := fn(a, b, cfg)
	return aB.Empty() && bA.Empty()
}

// vectorDiffDiff is vectorDiff for composite values: an element of a is kept
// unless some element of b diffs empty against it.
func vectorDiffDiff[E any, P entityPtr[E]](a, b []E, cfg *Config, fn func(a, b P, cfg *Config) (P, P)) (aB, bA []E) {
	only := func(x, y []E) []E {
		var out []E
		for i := range x {
			found := false
			for j := range y {
				if same(P(&x[i]), P(&y[j]), cfg, fn) {
					found = true
					break
				}
			}
			if !found {
				out = append(out, x[i])
			}
		}
		return out
	}
	return only(a, b), only(b, a)
}

// vectorDiffDeep is vectorDiffDiff for collections of shared references.
// Membership dereferences the pointers; a nil entry reads as an empty entity.
func vectorDiffDeep[E any, P entityPtr[E]](a, b []P, cfg *Config, fn func(a, b P, cfg *Config) (P, P)) (aB, bA []P) {
	only := func(x, y []P) []P {
		var out []P
		for _, p := range x {
			found := false
			for _, q := range y {
				if p == q || same(deref[E](p), deref[E](q), cfg, fn) {
					found = true
					break
				}
			}
			if !found {
				out = append(out, p)
			}
		}
		return out
	}
	return only(a, b), only(b, a)
}

func deref[E any, P entityPtr[E]](p P) P {
	if p == nil {
		return P(new(E))
	}
	return p
}

// ptrDiff compares two optional shared references. Both unset is no
// difference; otherwise the unset side reads as an empty entity, and each
// residual collapses back to nil when it is empty.
func ptrDiff[E any, P entityPtr[E]](a, b P, cfg *Config, fn func(a, b P, cfg *Config) (P, P)) (P, P) {
	if a == b {
		return nil, nil
	}
	aB, bA := fn(deref[E](a), deref[E](b), cfg)
	if aB.Empty() {
		aB = nil
	}
	if bA.Empty() {
		bA = nil
	}
	return aB, bA
}
