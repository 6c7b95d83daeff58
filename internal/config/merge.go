package config

// Merge deep-merges overrides onto defaults and returns a new map. Nested
// plain mappings merge recursively; every other value, sequences included,
// replaces the default outright. Keys present only in defaults pass through
// unchanged. Neither argument is mutated.
func Merge(defaults, overrides map[string]any) map[string]any {
	merged := make(map[string]any, len(defaults)+len(overrides))
	for key, value := range defaults {
		merged[key] = value
	}
	for key, value := range overrides {
		sub, ok := asMapping(value)
		if !ok {
			merged[key] = value
			continue
		}
		base, _ := asMapping(merged[key])
		merged[key] = Merge(base, sub)
	}
	return merged
}

// asMapping normalizes the two map shapes YAML decoders produce.
func asMapping(value any) (map[string]any, bool) {
	switch m := value.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		converted := make(map[string]any, len(m))
		for k, v := range m {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			converted[key] = v
		}
		return converted, true
	default:
		return nil, false
	}
}
