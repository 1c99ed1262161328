package main

import (
	"math/big"
	"strings"
	"testing"
)

type fixedDealer struct {
	hands [][]uint32
	next  int
}

func (d *fixedDealer) Deal() []uint32 {
	h := d.hands[d.next%len(d.hands)]
	d.next++
	return append([]uint32(nil), h...)
}

func typeLine(g *Game, s string) {
	g.typeRunes([]rune(s))
	g.submit()
}

func TestGameRounds(t *testing.T) {
	dealer := &fixedDealer{hands: [][]uint32{{6, 5, 6, 5}, {1, 2, 3, 4}}}
	g := newGame(dealer, big.NewRat(1, 1), 2)

	if g.round != 1 {
		t.Fatalf("round = %d, want 1", g.round)
	}

	typeLine(g, "6 + 5 + 6 + 5")
	if g.round != 1 || g.incorrect != 1 {
		t.Fatalf("after wrong answer: round %d, incorrect %d", g.round, g.incorrect)
	}
	if g.message != "Incorrect input: incorrect value: expected 1, got 22" {
		t.Errorf("message = %q", g.message)
	}
	if string(g.input) != "6 + 5 + 6 + 5" {
		t.Errorf("wrong answer should stay editable, input = %q", string(g.input))
	}

	for range g.input {
		g.backspace()
	}
	typeLine(g, "(6 - 5) * (6 - 5)")
	if g.round != 2 || g.message != "Correct!" || len(g.input) != 0 {
		t.Fatalf("after correct answer: round %d, message %q, input %q", g.round, g.message, string(g.input))
	}

	typeLine(g, "(4 - 3) * (2 - 1)")
	if g.summary == nil {
		t.Fatal("expected the game to be finished")
	}
	if g.summary.Rounds != 2 || g.summary.Incorrect != 1 {
		t.Errorf("summary = %+v", *g.summary)
	}
	if !strings.HasPrefix(g.summary.String(), "Played 2 rounds in ") {
		t.Errorf("summary line = %q", g.summary.String())
	}

	typeLine(g, "1")
	if g.summary.Incorrect != 1 {
		t.Error("input after the last round must be ignored")
	}
}

func TestGameInputEditing(t *testing.T) {
	g := newGame(&fixedDealer{hands: [][]uint32{{1}}}, big.NewRat(1, 1), 1)

	g.typeRunes([]rune("1 +\x00\t2"))
	if got := string(g.input); got != "1 +2" {
		t.Errorf("input = %q, want control characters dropped", got)
	}
	g.backspace()
	g.backspace()
	if got := string(g.input); got != "1 " {
		t.Errorf("input = %q", got)
	}
	g.backspace()
	g.backspace()
	g.backspace()
	if len(g.input) != 0 {
		t.Errorf("input = %q, want empty", string(g.input))
	}
}

func TestGameZeroRounds(t *testing.T) {
	g := newGame(&fixedDealer{hands: [][]uint32{{1}}}, big.NewRat(1, 1), 0)
	if g.summary == nil || g.summary.Rounds != 0 {
		t.Fatalf("summary = %v", g.summary)
	}
	g.submit()
}

func TestGameEmptySubmit(t *testing.T) {
	g := newGame(&fixedDealer{hands: [][]uint32{{1}}}, big.NewRat(1, 1), 1)
	g.submit()
	if g.message != "Incorrect input: unexpected end of input" {
		t.Errorf("message = %q", g.message)
	}
}
