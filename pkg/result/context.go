package result

// Context is the recorded snapshot of one operation invocation.
type Context struct {
	InputParams  any
	OutputParams any
	// RawError holds the original panic payload when the operation violated
	// its never-panic contract. Unset everywhere else.
	RawError any
}

// ContextMap accumulates Contexts across a chain, keyed by operation name.
// Operation names are expected to be unique per chain; when the same name
// appears twice (repeated or recursive invocation) the later entry replaces
// the earlier one.
type ContextMap map[string]Context

// Merge returns the union of m and other as a fresh map. Entries of other
// win on key collision. Neither receiver nor argument is mutated.
func (m ContextMap) Merge(other ContextMap) ContextMap {
	if len(m) == 0 && len(other) == 0 {
		return nil
	}

	merged := make(ContextMap, len(m)+len(other))
	for k, c := range m {
		merged[k] = c
	}
	for k, c := range other {
		merged[k] = c
	}
	return merged
}
