package util

import "testing"

func TestParseIntDefault(t *testing.T) {
	if got := ParseIntDefault("42", 7); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	if got := ParseIntDefault("", 7); got != 7 {
		t.Fatalf("expected default 7, got %d", got)
	}
	if got := ParseIntDefault("abc", 7); got != 7 {
		t.Fatalf("expected default for garbage, got %d", got)
	}
}

func TestSplitCSV(t *testing.T) {
	got := SplitCSV(" AAPL, msft ,,TSLA ")
	if len(got) != 3 || got[0] != "AAPL" || got[1] != "msft" || got[2] != "TSLA" {
		t.Fatalf("unexpected split: %v", got)
	}
	if got := SplitCSV(""); got != nil {
		t.Fatalf("empty input should yield nil, got %v", got)
	}
}

func TestContainsFold(t *testing.T) {
	if !ContainsFold("Apple beats expectations", "BEATS") {
		t.Fatal("expected case-insensitive match")
	}
	if ContainsFold("Apple", "orange") {
		t.Fatal("unexpected match")
	}
}
