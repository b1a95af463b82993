package sim

// RangeEntry labels the inclusive position range [Min, Max].
type RangeEntry struct {
	Min, Max int
	Text     string
}

// RangeMap describes quantized appendage positions in words.
type RangeMap struct {
	Steps   int
	Entries []RangeEntry
}

// Describe returns the text for position, or "" when no entry covers it.
func (r RangeMap) Describe(position int) string {
	for _, e := range r.Entries {
		if position >= e.Min && position <= e.Max {
			return e.Text
		}
	}
	return ""
}

// DescribeAppendage quantizes a's angle into r.Steps positions and describes it.
func (r RangeMap) DescribeAppendage(a *Appendage) string {
	return r.Describe(a.Position(r.Steps))
}
