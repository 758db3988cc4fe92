package game

import (
	"fmt"

	"github.com/cardroom/holdemgen/internal/poker"
)

// Record is the exported artifact of one hand. Its shape is consumed
// downstream by the indexing and analysis pipeline and must stay stable.
type Record struct {
	DocumentType string                `json:"document_type"`
	GameID       string                `json:"game_id"`
	Timestamp    string                `json:"timestamp"`
	Seed         int64                 `json:"seed"`
	Players      map[string]PlayerInfo `json:"players"`
	Actions      []ActionDoc           `json:"actions"`
	ChatMessages []ChatDoc             `json:"chat_messages"`
	HandSummary  Summary               `json:"hand_summary"`
	Degraded     bool                  `json:"degraded"`
}

// PlayerInfo is the per-seat metadata block.
type PlayerInfo struct {
	PersonalityType   string             `json:"personality_type"`
	PersonalityTraits map[string]float64 `json:"personality_traits"`
	StartingStack     int                `json:"starting_stack"`
}

// ActionDoc is one committed action. Amount is the chips added for a call
// and the raise-to total for a raise. Degraded marks decisions where the
// provider failed and a safe default was substituted.
type ActionDoc struct {
	DocumentType    string `json:"document_type"`
	GameID          string `json:"game_id"`
	ActionID        string `json:"action_id"`
	Sequence        int    `json:"sequence"`
	PlayerID        string `json:"player_id"`
	GameStage       string `json:"game_stage"`
	Action          string `json:"action"`
	Amount          int    `json:"amount"`
	PotSize         int    `json:"pot_size"`
	Position        string `json:"position"`
	BoardCards      string `json:"board_cards"`
	TextDescription string `json:"text_description"`
	Degraded        bool   `json:"degraded"`
}

// ChatDoc is one table-talk line, tied to the action it accompanied by
// ActionSequence. AssociatedAction is the action the message itself
// mentions, which need not be the committed one.
type ChatDoc struct {
	DocumentType     string `json:"document_type"`
	GameID           string `json:"game_id"`
	MessageID        string `json:"message_id"`
	PlayerID         string `json:"player_id"`
	Message          string `json:"message"`
	Sentiment        string `json:"sentiment"`
	AssociatedAction string `json:"associated_action"`
	ActionSequence   int    `json:"action_sequence"`
	TextDescription  string `json:"text_description"`
}

// PotDoc is one pot's resolution in the summary.
type PotDoc struct {
	Amount  int      `json:"amount"`
	Winners []string `json:"winners"`
}

// Summary is the hand outcome block.
type Summary struct {
	DocumentType    string            `json:"document_type"`
	GameID          string            `json:"game_id"`
	HoleCards       map[string]string `json:"hole_cards"`
	Winner          string            `json:"winner"`
	Winners         []string          `json:"winners"`
	PotAmount       int               `json:"pot_amount"`
	Pots            []PotDoc          `json:"pots"`
	ProfitLoss      map[string]int    `json:"profit_loss"`
	ShowdownReached bool              `json:"showdown_reached"`
	FinalBoard      string            `json:"final_board"`
	RevealedHands   map[string]string `json:"revealed_hands,omitempty"`
	TextDescription string            `json:"text_description"`
}

// positionName maps a seat to its table position relative to the button.
func positionName(index, button, numSeats int) string {
	relative := (index - button + numSeats) % numSeats
	switch {
	case relative == 0:
		return "button"
	case relative == 1:
		return "small_blind"
	case relative == 2:
		return "big_blind"
	case relative <= numSeats/3:
		return "early"
	case relative <= 2*numSeats/3:
		return "middle"
	default:
		return "late"
	}
}

// describeAction builds the free-text form of an action doc, the field the
// semantic index embeds.
func describeAction(playerID string, act Action, position string, street Street, board []poker.Card) string {
	verb := act.Kind.String() + "ed"
	if act.Kind == Raise {
		verb = "raised"
	}
	text := playerID + " " + verb
	if act.Amount > 0 {
		if act.Kind == Raise {
			text += fmt.Sprintf(" to %d", act.Amount)
		} else {
			text += fmt.Sprintf(" %d", act.Amount)
		}
	}
	text += fmt.Sprintf(" in %s position during %s", position, street)
	if len(board) > 0 {
		text += " with board " + poker.FormatCards(board)
	}
	return text
}

// describeChat builds the free-text form of a chat doc.
func describeChat(playerID, message, sentiment, associated string) string {
	text := fmt.Sprintf("%s said: %q, expressing %s sentiment", playerID, message, sentiment)
	if associated != "" {
		text += fmt.Sprintf(" while %sing", associated)
	}
	return text
}

// describeSummary builds the free-text form of the hand summary.
func describeSummary(gameID string, s *Summary, foldedBy string) string {
	text := fmt.Sprintf("Game %s ended with ", gameID)
	switch {
	case len(s.Winners) > 1:
		text += fmt.Sprintf("%v splitting a pot of %d", s.Winners, s.PotAmount)
	case s.Winner != "":
		text += fmt.Sprintf("%s winning a pot of %d", s.Winner, s.PotAmount)
	default:
		text += "no clear winner"
	}
	if s.ShowdownReached {
		text += " at showdown"
	} else if foldedBy != "" {
		text += fmt.Sprintf(" when %s folded", foldedBy)
	}
	if s.FinalBoard != "" {
		text += " with final board " + s.FinalBoard
	}
	return text
}
