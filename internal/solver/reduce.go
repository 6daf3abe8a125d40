package solver

import "svw.info/nonogram/internal/domain"

// Filter keeps the candidates compatible with every known cell in facts:
// candidate c survives iff facts[i] is Unknown or equals c[i] at every i.
// The result is a fresh slice; the input is never mutated.
func Filter(cands []domain.Line, facts domain.Line) []domain.Line {
	out := make([]domain.Line, 0, len(cands))
	for _, c := range cands {
		if compatible(c, facts) {
			out = append(out, c)
		}
	}
	return out
}

func compatible(c, facts domain.Line) bool {
	for i, f := range facts {
		if f != domain.Unknown && f != c[i] {
			return false
		}
	}
	return true
}

// Consolidate reduces a candidate set to the cells all candidates agree on;
// disagreements come back as Unknown. An empty set has nothing to agree on
// and yields nil; callers treat that as a contradiction before getting here.
func Consolidate(cands []domain.Line) domain.Line {
	if len(cands) == 0 {
		return nil
	}
	facts := append(domain.Line(nil), cands[0]...)
	for _, c := range cands[1:] {
		for i, state := range c {
			if facts[i] != state {
				facts[i] = domain.Unknown
			}
		}
	}
	return facts
}
