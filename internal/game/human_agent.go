package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/pokerized/holdem/internal/deck"
)

// HumanAgent reads decisions from a line based input. A full action name or
// its first letter is accepted; anything outside the legal set is asked
// again. Input is read on a background goroutine so a cancelled context
// interrupts a pending prompt; the line is kept for the next decision.
type HumanAgent struct {
	scanner *bufio.Scanner
	out     io.Writer

	start sync.Once
	lines chan inputLine
}

type inputLine struct {
	text string
	err  error
}

// NewHumanAgent creates a human agent prompting on out
func NewHumanAgent(scanner *bufio.Scanner, out io.Writer) *HumanAgent {
	if out == nil {
		out = io.Discard
	}
	return &HumanAgent{scanner: scanner, out: out, lines: make(chan inputLine)}
}

func (h *HumanAgent) read() {
	defer close(h.lines)
	for h.scanner.Scan() {
		h.lines <- inputLine{text: h.scanner.Text()}
	}
	err := h.scanner.Err()
	if err == nil {
		err = io.ErrUnexpectedEOF
	}
	h.lines <- inputLine{err: err}
}

func (h *HumanAgent) readLine(ctx context.Context) (string, error) {
	h.start.Do(func() { go h.read() })
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-h.lines:
		if !ok {
			return "", io.ErrUnexpectedEOF
		}
		return line.text, line.err
	}
}

func (h *HumanAgent) Decide(ctx context.Context, view TableView, legal []Action) (Action, error) {
	me := view.Me()
	fmt.Fprintf(h.out, "\n%s | hand %d | %s | board %s | pot %d\n",
		me.Name, view.HandNumber, view.Street, formatCards(view.Community), view.Pot)
	fmt.Fprintf(h.out, "Your cards: %s  to call: %d\n", formatCards(me.Hole), view.ToCall)

	names := make([]string, len(legal))
	for i, a := range legal {
		names[i] = a.String()
	}

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		fmt.Fprintf(h.out, "Action [%s]: ", strings.Join(names, "/"))

		text, err := h.readLine(ctx)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return 0, err
		}
		if err != nil {
			return 0, fmt.Errorf("read action: %w", err)
		}

		if action, ok := matchAction(text, legal); ok {
			return action, nil
		}
		fmt.Fprintf(h.out, "Invalid action, choose one of: %s\n", strings.Join(names, ", "))
	}
}

func matchAction(input string, legal []Action) (Action, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return 0, false
	}

	if a, err := ParseAction(input); err == nil {
		return a, slices.Contains(legal, a)
	}
	if len(input) == 1 {
		for _, a := range legal {
			if a.String()[0] == input[0] {
				return a, true
			}
		}
	}
	return 0, false
}

func formatCards(cards []deck.Card) string {
	if len(cards) == 0 {
		return "-"
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
