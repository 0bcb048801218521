package store

// Override is a partial seed applied over the unwrapped initial state at
// bind time, primarily for test isolation. For record-valued slices the
// override merges shallowly; for everything else it replaces. A key that
// is present with a nil value clears the slice. Overrides are consumed at
// bind time and not retained.
type Override map[string]interface{}

// MergeState applies an override onto a base state and returns the
// effective state. For every key present in override:
//
//   - if both the base slice and the override slice are records
//     (map[string]interface{}), the result is a shallow merge: the
//     override's own keys replace the base's, all other base keys are
//     retained, and nested records are replaced wholesale rather than
//     merged recursively
//   - otherwise the override value replaces the base value entirely
//
// Keys absent from the override keep their base value. The shallow-at-
// depth-1, replace-below asymmetry is the contract, not an accident: an
// override names the fields it owns and takes them over completely.
func MergeState(base State, override Override) State {
	if len(override) == 0 {
		return base.clone()
	}

	merged := base.clone()
	for key, overrideValue := range override {
		baseRecord, baseOK := merged[key].(map[string]interface{})
		overrideRecord, overrideOK := overrideValue.(map[string]interface{})
		if baseOK && overrideOK {
			slice := make(map[string]interface{}, len(baseRecord)+len(overrideRecord))
			for k, v := range baseRecord {
				slice[k] = v
			}
			for k, v := range overrideRecord {
				slice[k] = v
			}
			merged[key] = slice
			continue
		}
		merged[key] = overrideValue
	}
	return merged
}
