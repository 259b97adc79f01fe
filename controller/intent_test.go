package controller

import "testing"

func TestParseDimension(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"10", 10, true},
		{" 7 ", 7, true},
		{"0", 0, true},
		{"-3", 0, false},
		{"", 0, false},
		{"ten", 0, false},
		{"1.5", 0, false},
		{"99999999999", 0, false},
		{"4096", 4096, true},
		{"4097", 0, false},
		{"100000", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseDimension(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseDimension(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseResize(t *testing.T) {
	if r, ok := ParseResize("5", "4"); !ok || r != (Resize{Width: 5, Height: 4}) {
		t.Fatalf("ParseResize(5,4) = %v, %v", r, ok)
	}
	if _, ok := ParseResize("5", "x"); ok {
		t.Fatal("unparsable height accepted")
	}
	if _, ok := ParseResize("100000", "100000"); ok {
		t.Fatal("oversized resize accepted")
	}
	if _, ok := ParseResize("", "4"); ok {
		t.Fatal("unparsable width accepted")
	}
}

func TestParseSize(t *testing.T) {
	for _, in := range []string{"12x8", "12X8", "12 8", "12,8", " 12 x 8 "} {
		r, ok := ParseSize(in)
		if !ok || r != (Resize{Width: 12, Height: 8}) {
			t.Errorf("ParseSize(%q) = %v, %v", in, r, ok)
		}
	}
	for _, in := range []string{"", "12", "12x", "axb", "1x2x3", "-1x2", "100000x100000", "2147483647x2147483647"} {
		if _, ok := ParseSize(in); ok {
			t.Errorf("ParseSize(%q) accepted", in)
		}
	}
}

func TestParseThreshold(t *testing.T) {
	if v, ok := ParseThreshold("0.35"); !ok || v != 0.35 {
		t.Fatalf("ParseThreshold(0.35) = %v, %v", v, ok)
	}
	for _, in := range []string{"1.01", "-0.2", "NaN", "half"} {
		if _, ok := ParseThreshold(in); ok {
			t.Errorf("ParseThreshold(%q) accepted", in)
		}
	}
}
