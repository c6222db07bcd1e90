package timing

import "testing"

func TestUnpack_DecomposesCentis(t *testing.T) {
	tests := []struct {
		name   string
		centis int
		want   Parts
	}{
		{"zero", 0, Parts{}},
		{"centis only", 4, Parts{Centis: 4}},
		{"seconds", 304, Parts{Seconds: 3, Centis: 4}},
		{"minutes", 12304, Parts{Minutes: 2, Seconds: 3, Centis: 4}},
		{"hours", 372304, Parts{Hours: 1, Minutes: 2, Seconds: 3, Centis: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Unpack(tt.centis)
			if !ok {
				t.Fatalf("Unpack(%d) not ok", tt.centis)
			}
			if got != tt.want {
				t.Errorf("Unpack(%d) = %+v, want %+v", tt.centis, got, tt.want)
			}
			if Pack(got) != tt.centis {
				t.Errorf("Pack(Unpack(%d)) = %d", tt.centis, Pack(got))
			}
		})
	}
}

func TestUnpack_SentinelNotOK(t *testing.T) {
	if _, ok := Unpack(SentinelCentis); ok {
		t.Error("expected Unpack(-1) to fail")
	}
	if _, ok := Unpack(-500); ok {
		t.Error("expected Unpack(-500) to fail")
	}
}

func TestFormat_OmitsLeadingZeroComponents(t *testing.T) {
	tests := []struct {
		centis int
		want   string
	}{
		{304, "3.04"},
		{12304, "2:03.04"},
		{372304, "1:02:03.04"},
		{0, "0.00"},
		{99, "0.99"},
		{6000, "1:00.00"},
		{SentinelCentis, "-"},
	}

	for _, tt := range tests {
		if got := Format(tt.centis); got != tt.want {
			t.Errorf("Format(%d) = %q, want %q", tt.centis, got, tt.want)
		}
	}
}

func TestFormatWithPenalty(t *testing.T) {
	tests := []struct {
		name    string
		centis  int
		penalty Penalty
		want    string
	}{
		{"no penalty", 304, PenaltyNone, "3.04"},
		{"plus2 adds and marks", 304, PenaltyPlus2, "5.04+"},
		{"plus2 carries into minutes", 5900, PenaltyPlus2, "1:01.00+"},
		{"dnf short-circuits", 304, PenaltyDNF, "DNF"},
		{"dnf wins over sentinel", SentinelCentis, PenaltyDNF, "DNF"},
		{"sentinel without dnf", SentinelCentis, PenaltyNone, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWithPenalty(tt.centis, tt.penalty); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyPenalty(t *testing.T) {
	if got := ApplyPenalty(300, PenaltyNone); got != 300 {
		t.Errorf("none: got %d", got)
	}
	if got := ApplyPenalty(300, PenaltyPlus2); got != 500 {
		t.Errorf("plus2: got %d, want 500", got)
	}
	if got := ApplyPenalty(300, PenaltyDNF); got != SentinelCentis {
		t.Errorf("dnf: got %d, want sentinel", got)
	}
}

func TestCompare_SentinelIsAlwaysWorst(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want int
	}{
		{"equal reals", 300, 300, 0},
		{"a better", 200, 300, -1},
		{"b better", 300, 200, 1},
		{"sentinel worse than any real", SentinelCentis, 999999, 1},
		{"real beats sentinel", 1, SentinelCentis, -1},
		{"two sentinels equal", SentinelCentis, SentinelCentis, 0},
		{"negative values are sentinel class", -42, 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Parts
		ok    bool
	}{
		{"3.04", Parts{Seconds: 3, Centis: 4}, true},
		{"2:03.04", Parts{Minutes: 2, Seconds: 3, Centis: 4}, true},
		{"1:02:03.04", Parts{Hours: 1, Minutes: 2, Seconds: 3, Centis: 4}, true},
		{"1:02:03", Parts{Hours: 1, Minutes: 2, Seconds: 3}, true},
		{"  12.5 ", Parts{Seconds: 12, Centis: 50}, true},
		{"12.345", Parts{Seconds: 12, Centis: 34}, true},
		{"1234567", Parts{Hours: 1, Minutes: 23, Seconds: 45, Centis: 67}, true},
		{"123", Parts{Seconds: 1, Centis: 23}, true},
		{"90.00", Parts{Minutes: 1, Seconds: 30}, true}, // overflow carries
		{":30", Parts{Seconds: 30}, true},
		{"", Parts{}, false},
		{"abc", Parts{}, false},
		{"1:2:3:4", Parts{}, false},
		{"12345678", Parts{}, false},
		{".", Parts{}, false},
		{"1.2.3", Parts{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Parse(tt.input)
			if ok != tt.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_RoundTripsThroughPack(t *testing.T) {
	p, ok := Parse("1:02:03.04")
	if !ok {
		t.Fatal("parse failed")
	}
	if Format(Pack(p)) != "1:02:03.04" {
		t.Errorf("round trip got %q", Format(Pack(p)))
	}
}
