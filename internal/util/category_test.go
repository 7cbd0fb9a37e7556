package util

import "testing"

func TestFormatCategory(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"TRAVEL", "Travel"},
		{"FOOD_AND_DRINK", "Food And Drink"},
		{"PERSONAL_CARE", "Personal Care"},
		{"Other", "Other"},
		{"other", "Other"},
		{"already formatted", "Already formatted"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := FormatCategory(tt.raw); got != tt.want {
			t.Errorf("FormatCategory(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestFormatCategory_Deterministic(t *testing.T) {
	// Same input must always yield the same label; the dashboard relies on
	// this wherever a raw code surfaces.
	first := FormatCategory("GENERAL_MERCHANDISE")
	for i := 0; i < 10; i++ {
		if got := FormatCategory("GENERAL_MERCHANDISE"); got != first {
			t.Fatalf("FormatCategory not deterministic: %q vs %q", got, first)
		}
	}
	if first != "General Merchandise" {
		t.Errorf("FormatCategory(GENERAL_MERCHANDISE) = %q, want %q", first, "General Merchandise")
	}
}

func TestFormatCategory_ConsecutiveUnderscores(t *testing.T) {
	if got := FormatCategory("FOOD__DRINK"); got != "Food  Drink" {
		t.Errorf("FormatCategory(FOOD__DRINK) = %q, want %q", got, "Food  Drink")
	}
}
