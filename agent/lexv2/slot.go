package lexv2

// Resolve returns the best available scalar for a slot: the first resolved
// candidate when the resolver produced any, otherwise the raw user-entered
// value, otherwise absent. Absence is an expected outcome, never an error.
func (s *Slot) Resolve() (string, bool) {
	if s == nil || s.Value == nil {
		return "", false
	}
	if len(s.Value.ResolvedValues) > 0 {
		return s.Value.ResolvedValues[0], true
	}
	if s.Value.OriginalValue != "" {
		return s.Value.OriginalValue, true
	}
	return "", false
}
