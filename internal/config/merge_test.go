package config

import (
	"reflect"
	"testing"
)

func TestMergeEmptyOverridesReturnsDefaults(t *testing.T) {
	t.Parallel()

	defaults := defaultSettings()
	merged := Merge(defaults, map[string]any{})

	if !reflect.DeepEqual(merged, defaults) {
		t.Fatalf("expected merge with empty overrides to equal defaults\n got: %#v\nwant: %#v", merged, defaults)
	}
}

func TestMergeRecursesIntoNestedMappings(t *testing.T) {
	t.Parallel()

	defaults := map[string]any{
		"search": map[string]any{
			"min_chars":   2,
			"max_results": 8,
		},
	}
	overrides := map[string]any{
		"search": map[string]any{
			"min_chars": 3,
		},
	}

	merged := Merge(defaults, overrides)
	search, ok := merged["search"].(map[string]any)
	if !ok {
		t.Fatalf("expected search to remain a mapping, got %T", merged["search"])
	}
	if search["min_chars"] != 3 {
		t.Errorf("expected min_chars override 3, got %v", search["min_chars"])
	}
	if search["max_results"] != 8 {
		t.Errorf("expected max_results default 8, got %v", search["max_results"])
	}
}

func TestMergeNeverDropsDefaultOnlyKeys(t *testing.T) {
	t.Parallel()

	defaults := map[string]any{
		"shortcuts": map[string]any{
			"open": map[string]any{"key": "/", "meta_key": true},
		},
		"only_default": "kept",
	}
	overrides := map[string]any{
		"shortcuts": map[string]any{
			"open": map[string]any{"key": "k"},
		},
	}

	merged := Merge(defaults, overrides)
	if merged["only_default"] != "kept" {
		t.Errorf("expected default-only key to survive, got %v", merged["only_default"])
	}
	open := merged["shortcuts"].(map[string]any)["open"].(map[string]any)
	if open["meta_key"] != true {
		t.Errorf("expected nested default-only key to survive, got %v", open["meta_key"])
	}
	if open["key"] != "k" {
		t.Errorf("expected nested override to apply, got %v", open["key"])
	}
}

func TestMergeReplacesSequencesWholesale(t *testing.T) {
	t.Parallel()

	defaults := map[string]any{"tags": []any{"a", "b"}}
	overrides := map[string]any{"tags": []any{"c"}}

	merged := Merge(defaults, overrides)
	if !reflect.DeepEqual(merged["tags"], []any{"c"}) {
		t.Fatalf("expected sequence to be replaced, not merged, got %v", merged["tags"])
	}
}

func TestMergeIntroducesOverrideOnlyMappings(t *testing.T) {
	t.Parallel()

	defaults := map[string]any{}
	overrides := map[string]any{
		"feed": map[string]any{"url": "https://example.com/feed.json"},
	}

	merged := Merge(defaults, overrides)
	feed, ok := merged["feed"].(map[string]any)
	if !ok {
		t.Fatalf("expected override-only mapping to appear, got %T", merged["feed"])
	}
	if feed["url"] != "https://example.com/feed.json" {
		t.Errorf("unexpected feed url: %v", feed["url"])
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	defaults := map[string]any{
		"search": map[string]any{"min_chars": 2},
	}
	overrides := map[string]any{
		"search": map[string]any{"min_chars": 5},
	}

	Merge(defaults, overrides)

	if got := defaults["search"].(map[string]any)["min_chars"]; got != 2 {
		t.Errorf("defaults mutated: min_chars became %v", got)
	}
	if got := overrides["search"].(map[string]any)["min_chars"]; got != 5 {
		t.Errorf("overrides mutated: min_chars became %v", got)
	}
}

func TestMergeNormalizesUntypedMappings(t *testing.T) {
	t.Parallel()

	defaults := map[string]any{
		"search": map[string]any{"min_chars": 2, "max_results": 8},
	}
	overrides := map[string]any{
		"search": map[any]any{"min_chars": 4},
	}

	merged := Merge(defaults, overrides)
	search := merged["search"].(map[string]any)
	if search["min_chars"] != 4 {
		t.Errorf("expected min_chars 4, got %v", search["min_chars"])
	}
	if search["max_results"] != 8 {
		t.Errorf("expected max_results default 8, got %v", search["max_results"])
	}
}
