package tracker

import "testing"

func TestParseMoney(t *testing.T) {
	testCases := []struct {
		input     string
		expect    float64
		expectErr bool
	}{
		{"22.63", 22.63, false},
		{"$21.99", 21.99, false},
		{"$3,208.46", 3208.46, false},
		{"-$555.69", -555.69, false},
		{"-$45,749.70", -45749.70, false},
		{"-12.50", -12.50, false},
		{" $1.00 ", 1.00, false},
		{"0", 0, false},
		{"", 0, true},
		{"$", 0, true},
		{"n/a", 0, true},
		{"12.3.4", 0, true},
	}

	for _, tc := range testCases {
		m, err := ParseMoney(tc.input)
		if (err != nil) != tc.expectErr {
			t.Errorf("ParseMoney(%q) error = %v, want error: %v", tc.input, err, tc.expectErr)
			continue
		}
		if !tc.expectErr && !m.Equal(M(tc.expect)) {
			t.Errorf("ParseMoney(%q) = %v, want %v", tc.input, m, M(tc.expect))
		}
	}
}

func TestMoneyString(t *testing.T) {
	testCases := []struct {
		value  float64
		expect string
	}{
		{21.99, "$21.99"},
		{3208.46, "$3,208.46"},
		{-555.69, "-$555.69"},
		{0, "$0.00"},
		{0.25, "$0.25"},
	}
	for _, tc := range testCases {
		if got := M(tc.value).String(); got != tc.expect {
			t.Errorf("M(%v).String() = %q, want %q", tc.value, got, tc.expect)
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a, b := M(0.1), M(0.2)
	if got := a.Add(b); !got.Equal(M(0.3)) {
		t.Errorf("Add() = %v, want $0.30", got)
	}
	if !M(0).IsZero() || M(1).IsZero() {
		t.Errorf("IsZero() is inconsistent")
	}
	if got := M(21.99).AsFloat(); got != 21.99 {
		t.Errorf("AsFloat() = %v, want 21.99", got)
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(10).String(); got != "10.00%" {
		t.Errorf("String() = %q", got)
	}
	if got := Percent(10.8).SignedString(); got != "+10.80%" {
		t.Errorf("SignedString() = %q", got)
	}
	if got := Percent(-4.5).SignedString(); got != "-4.50%" {
		t.Errorf("SignedString() = %q", got)
	}
	if !Percent(10).Equal(Percent(10.00005)) {
		t.Errorf("Equal() too strict")
	}
	if Percent(10).Equal(Percent(10.1)) {
		t.Errorf("Equal() too loose")
	}
}
