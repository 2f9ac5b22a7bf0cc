package buffer

import "testing"

func TestPos_Before(t *testing.T) {
	cases := []struct {
		p, q Pos
		want bool
	}{
		{p: Pos{Row: 0, Col: 9}, q: Pos{Row: 1, Col: 0}, want: true},
		{p: Pos{Row: 2, Col: 0}, q: Pos{Row: 1, Col: 999}, want: false},
		{p: Pos{Row: 1, Col: 0}, q: Pos{Row: 1, Col: 1}, want: true},
		{p: Pos{Row: 1, Col: 2}, q: Pos{Row: 1, Col: 1}, want: false},
		{p: Pos{Row: 3, Col: 4}, q: Pos{Row: 3, Col: 4}, want: false},
	}
	for _, tc := range cases {
		if got := tc.p.Before(tc.q); got != tc.want {
			t.Fatalf("%v.Before(%v)=%v, want %v", tc.p, tc.q, got, tc.want)
		}
	}
}

func TestRange_Ordered(t *testing.T) {
	r := Range{Start: Pos{Row: 2, Col: 3}, End: Pos{Row: 1, Col: 9}}.Ordered()
	if r.Start != (Pos{Row: 1, Col: 9}) || r.End != (Pos{Row: 2, Col: 3}) {
		t.Fatalf("range=%#v, want swapped ends", r)
	}
	if again := r.Ordered(); again != r {
		t.Fatalf("Ordered not idempotent: %#v != %#v", again, r)
	}
	if r.Empty() {
		t.Fatalf("range %#v reported empty", r)
	}
	if !(Range{Start: Pos{Row: 1, Col: 1}, End: Pos{Row: 1, Col: 1}}).Empty() {
		t.Fatalf("collapsed range not empty")
	}
}

func TestBuffer_ClampPos(t *testing.T) {
	b := New("a\n\nabc")

	cases := []struct {
		in   Pos
		want Pos
	}{
		{in: Pos{Row: -1, Col: -1}, want: Pos{Row: 0, Col: 0}},
		{in: Pos{Row: 999, Col: 999}, want: Pos{Row: 2, Col: 3}},
		{in: Pos{Row: 1, Col: 5}, want: Pos{Row: 1, Col: 0}},
		{in: Pos{Row: 0, Col: 1}, want: Pos{Row: 0, Col: 1}},
	}
	for _, tc := range cases {
		if got := b.clampPos(tc.in); got != tc.want {
			t.Fatalf("clampPos(%v)=%v, want %v", tc.in, got, tc.want)
		}
	}
}
