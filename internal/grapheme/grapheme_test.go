package grapheme

import "testing"

func TestSplitAndJoin_RoundTrip(t *testing.T) {
	in := "éa🇯🇵"
	parts := Split(in)
	if len(parts) != 3 {
		t.Fatalf("clusters=%q, want 3 clusters", parts)
	}
	if got := Join(parts); got != in {
		t.Fatalf("join=%q, want %q", got, in)
	}
	if got := Count(in); got != 3 {
		t.Fatalf("count=%d, want 3", got)
	}
}

func TestSplit_Empty(t *testing.T) {
	if got := Split(""); got != nil {
		t.Fatalf("split empty=%q, want nil", got)
	}
	if got := Count(""); got != 0 {
		t.Fatalf("count empty=%d, want 0", got)
	}
}

func TestLeadingSpace(t *testing.T) {
	cases := []struct {
		line string
		want int
	}{
		{line: "", want: 0},
		{line: "abc", want: 0},
		{line: "  x", want: 2},
		{line: "\t y", want: 2},
		{line: "    ", want: 4},
	}
	for _, tc := range cases {
		if got := len(LeadingSpace(Split(tc.line))); got != tc.want {
			t.Fatalf("LeadingSpace(%q)=%d, want %d", tc.line, got, tc.want)
		}
	}
}

func TestCells_WideClusters(t *testing.T) {
	line := Split("aテb")
	if got := Cells(line, 0); got != 0 {
		t.Fatalf("cells(0)=%d, want 0", got)
	}
	if got := Cells(line, 2); got != 3 {
		t.Fatalf("cells(2)=%d, want 3", got)
	}
	if got := Cells(line, 3); got != 4 {
		t.Fatalf("cells(3)=%d, want 4", got)
	}
}

func TestWidth_ControlCountsOneCell(t *testing.T) {
	if got := Width("\t"); got != 1 {
		t.Fatalf("Width(tab)=%d, want 1", got)
	}
	if Printable("\t") {
		t.Fatalf("Printable(tab)=true, want false")
	}
	if got := Width("テ"); got != 2 {
		t.Fatalf("Width(テ)=%d, want 2", got)
	}
	if !Printable("a") {
		t.Fatalf("Printable(a)=false, want true")
	}
}
