package core

import "testing"

func TestResolveOutcomes(t *testing.T) {
	cases := []struct {
		p1, p2 string
		want   Outcome
	}{
		{"rock", "scissors", OutcomePlayer1},
		{"paper", "rock", OutcomePlayer1},
		{"scissors", "paper", OutcomePlayer1},
		{"scissors", "rock", OutcomePlayer2},
		{"rock", "paper", OutcomePlayer2},
		{"paper", "scissors", OutcomePlayer2},
		{"rock", "rock", OutcomeDraw},
		{"paper", "paper", OutcomeDraw},
		{"scissors", "scissors", OutcomeDraw},
	}

	for _, tc := range cases {
		if got := Resolve(tc.p1, tc.p2); got != tc.want {
			t.Errorf("Resolve(%q, %q) = %q, want %q", tc.p1, tc.p2, got, tc.want)
		}
	}
}

func TestValidChoice(t *testing.T) {
	for _, choice := range []string{"rock", "paper", "scissors"} {
		if !ValidChoice(choice) {
			t.Errorf("ValidChoice(%q) = false", choice)
		}
	}
	for _, choice := range []string{"", "lizard", "ROCK", "rock "} {
		if ValidChoice(choice) {
			t.Errorf("ValidChoice(%q) = true", choice)
		}
	}
}
