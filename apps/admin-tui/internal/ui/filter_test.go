package ui

import "testing"

func TestFilterItems(t *testing.T) {
	names := []string{"MTN Ghana", "Vodafone", "mtn Uganda", "Orange"}
	byName := func(s string) []string { return []string{s} }

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"case insensitive substring", "MTN", []string{"MTN Ghana", "mtn Uganda"}},
		{"padded query", "  orange ", []string{"Orange"}},
		{"no match", "telkom", []string{}},
		{"blank query keeps all", "   ", names},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFilter("Partner Name")
			f.SetQuery(tt.query)
			got := FilterItems(names, f, byName)
			if len(got) != len(tt.want) {
				t.Fatalf("FilterItems() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("FilterItems()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFilterStatus(t *testing.T) {
	f := NewFilter("Category")
	if f.FormatFilterStatus() != "" {
		t.Error("inactive filter must have empty status")
	}
	f.SetQuery("africa")
	if got, want := f.FormatFilterStatus(), `Category: "africa"`; got != want {
		t.Errorf("FormatFilterStatus() = %q, want %q", got, want)
	}
	f.Clear()
	if f.Active || f.Query != "" {
		t.Error("Clear() must deactivate the filter")
	}
}

func TestFilterMatchAny(t *testing.T) {
	f := NewFilter("Category")
	f.SetQuery("afr")
	if !f.MatchAny("Rest of Africa", "africa") {
		t.Error("expected match on label")
	}
	if f.MatchAny("europe", "Europe") {
		t.Error("unexpected match")
	}
}
