// Package game runs rounds of the dice game over a line-oriented console.
package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"dicegame/pkg/judge"
)

// ErrInputClosed is returned when the input ends before a round is solved.
var ErrInputClosed = errors.New("input closed before the round was solved")

// Dealer supplies the numbers for each round.
type Dealer interface {
	Deal() []uint32
}

// Summary describes a finished game.
type Summary struct {
	Rounds    int
	Incorrect int
	Elapsed   time.Duration
}

func (s Summary) String() string {
	return fmt.Sprintf("Played %d rounds in %gs, %d incorrect attempts",
		s.Rounds, s.Elapsed.Seconds(), s.Incorrect)
}

// Session reads answers line by line from in and writes the transcript to
// out.
type Session struct {
	in     *bufio.Reader
	out    io.Writer
	dealer Dealer
	target *big.Rat
	logger *slog.Logger
}

// NewSession returns a Session. A nil target means 1.
func NewSession(in io.Reader, out io.Writer, dealer Dealer, target *big.Rat) *Session {
	if target == nil {
		target = big.NewRat(1, 1)
	}
	return &Session{
		in:     bufio.NewReader(in),
		out:    out,
		dealer: dealer,
		target: target,
		logger: slog.Default(),
	}
}

// WithLogger replaces the logger used for attempt and round records.
func (s *Session) WithLogger(l *slog.Logger) *Session {
	s.logger = l
	return s
}

// FormatHand renders a hand as [1, 2, 3, 4].
func FormatHand(hand []uint32) string {
	parts := make([]string, len(hand))
	for i, v := range hand {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// PlayRound shows hand and reads answers until one is correct. It returns
// how many answers were rejected along the way.
func (s *Session) PlayRound(hand []uint32) (int, error) {
	j := judge.New(hand, s.target)
	fmt.Fprintln(s.out, FormatHand(hand))

	incorrect := 0
	for {
		line, err := s.readLine()
		if err != nil {
			return incorrect, err
		}

		err = j.Check(line)
		if err == nil {
			fmt.Fprintln(s.out, "Correct!")
			return incorrect, nil
		}

		incorrect++
		s.logger.Debug("answer rejected",
			slog.String("hand", FormatHand(hand)),
			slog.String("stage", string(judge.StageOf(err))),
			slog.String("error", err.Error()),
			slog.Int("attempt", incorrect),
		)
		fmt.Fprintf(s.out, "Incorrect input: %v\n", err)
	}
}

// readLine returns the next answer without its line ending. Lines of any
// length are accepted; a final line without a newline still counts.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read answer: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Play deals and plays rounds rounds. On error the Summary covers the
// rounds completed so far.
func (s *Session) Play(rounds int) (Summary, error) {
	start := time.Now()
	var sum Summary

	for i := 0; i < rounds; i++ {
		hand := s.dealer.Deal()
		incorrect, err := s.PlayRound(hand)
		sum.Incorrect += incorrect
		if err != nil {
			sum.Elapsed = time.Since(start)
			return sum, err
		}
		sum.Rounds++
		s.logger.Info("round solved",
			slog.Int("round", sum.Rounds),
			slog.String("hand", FormatHand(hand)),
			slog.Int("incorrect", incorrect),
		)
	}

	sum.Elapsed = time.Since(start)
	return sum, nil
}
