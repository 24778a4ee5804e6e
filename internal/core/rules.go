package core

// Outcome is the result of resolving one round.
type Outcome string

const (
	OutcomeDraw    Outcome = "draw"
	OutcomePlayer1 Outcome = "player1"
	OutcomePlayer2 Outcome = "player2"
)

// beats maps each choice to the choice it defeats.
var beats = map[string]string{
	"rock":     "scissors",
	"paper":    "rock",
	"scissors": "paper",
}

// ValidChoice reports whether s is a playable move.
func ValidChoice(s string) bool {
	_, ok := beats[s]
	return ok
}

// Resolve determines the round outcome for two valid choices.
func Resolve(player1Choice, player2Choice string) Outcome {
	if player1Choice == player2Choice {
		return OutcomeDraw
	}
	if beats[player1Choice] == player2Choice {
		return OutcomePlayer1
	}
	return OutcomePlayer2
}
