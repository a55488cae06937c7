package model

import "testing"

func TestParseReshufflePolicy(t *testing.T) {
	cases := []struct {
		in   string
		want ReshufflePolicy
	}{
		{"", ReshuffleOnStart},
		{"start", ReshuffleOnStart},
		{" Correct ", ReshuffleOnCorrect},
	}
	for _, tc := range cases {
		got, err := ParseReshufflePolicy(tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parse %q: expected %v, got %v", tc.in, tc.want, got)
		}
	}
	if _, err := ParseReshufflePolicy("always"); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}

func TestReshufflePolicyString(t *testing.T) {
	if ReshuffleOnCorrect.String() != "correct" {
		t.Fatalf("unexpected name: %s", ReshuffleOnCorrect)
	}
	if ReshufflePolicy(9).String() != "ReshufflePolicy(9)" {
		t.Fatalf("unexpected fallback name: %s", ReshufflePolicy(9))
	}
}
