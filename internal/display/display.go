// Package display renders cards, hands and reports for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/pokerized/holdem/internal/deck"
	"github.com/pokerized/holdem/internal/evaluator"
	"github.com/pokerized/holdem/internal/game"
	"github.com/pokerized/holdem/internal/simulator"
)

// Styles contains all styling for terminal output
type Styles struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Event     lipgloss.Style
	Winner    lipgloss.Style
	Muted     lipgloss.Style
	Box       lipgloss.Style
}

// Renderer turns engine values into styled text
type Renderer struct {
	styles Styles
}

// NewRenderer creates a renderer for w. With noColor set every style
// degrades to plain text.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	lr := lipgloss.NewRenderer(w)
	if noColor {
		lr.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{styles: newStyles(lr)}
}

func newStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		RedCard: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		BlackCard: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Event: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		Winner: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Muted: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1),
	}
}

// Title renders a banner line
func (r *Renderer) Title(s string) string {
	return r.styles.Title.Render(s)
}

// RenderCard renders one card in its suit colour
func (r *Renderer) RenderCard(c deck.Card) string {
	if c.Suit.IsRed() {
		return r.styles.RedCard.Render(c.String())
	}
	return r.styles.BlackCard.Render(c.String())
}

// RenderCards renders cards separated by spaces, or "-" for none
func (r *Renderer) RenderCards(cards []deck.Card) string {
	if len(cards) == 0 {
		return r.styles.Muted.Render("-")
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = r.RenderCard(c)
	}
	return strings.Join(parts, " ")
}

// RenderHand renders a five card hand with its category
func (r *Renderer) RenderHand(h evaluator.Hand) string {
	return fmt.Sprintf("%s  %s", r.RenderCards(h.Cards()), r.styles.Header.Render(h.Category().String()))
}

// RenderHistory renders a full hand the way a dealer would read it out
func (r *Renderer) RenderHistory(h *game.HandHistory) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", r.Title(fmt.Sprintf("Hand #%d", h.HandNumber)))
	fmt.Fprintf(&b, "%s\n", r.styles.Muted.Render(fmt.Sprintf("%s  %s  blinds %d/%d",
		h.HandID, h.StartedAt.Format("2006-01-02 15:04:05"), h.SmallBlind, h.BigBlind)))

	for _, s := range h.Seats {
		fmt.Fprintf(&b, "Seat %d: %-12s %s%s\n", s.Seat+1, s.Name, r.RenderCards(s.Hole), roleTag(h, s.Seat))
	}

	for _, s := range h.Streets {
		header := "*** " + strings.ToUpper(s.Name) + " ***"
		if len(s.Revealed) > 0 {
			header += " " + r.RenderCards(s.Revealed)
		}
		fmt.Fprintf(&b, "\n%s\n", r.styles.Header.Render(header))
		for _, e := range s.Events {
			fmt.Fprintf(&b, "%s\n", r.styles.Event.Render(e))
		}
		fmt.Fprintf(&b, "%s\n", r.styles.Muted.Render(fmt.Sprintf("pot %d", s.Pot)))
	}

	if len(h.Showdown) > 0 {
		fmt.Fprintf(&b, "\n%s\n", r.styles.Header.Render("*** SHOWDOWN ***"))
		for _, s := range h.Showdown {
			fmt.Fprintf(&b, "%s shows %s: %s (%s)\n", s.Name, r.RenderCards(s.Hole), s.Category, r.RenderCards(s.Best))
		}
	}

	fmt.Fprintf(&b, "\n%s\n", r.styles.Winner.Render(winnerLine(h.Winners, h.Outcome, h.Pot)))
	return b.String()
}

// RenderResult renders a one line summary of a hand
func (r *Renderer) RenderResult(res *game.HandResult) string {
	line := fmt.Sprintf("#%d %s", res.HandNumber, winnerLine(res.Winners, res.Outcome, res.Pot))
	if res.Outcome == game.OutcomeShowdown {
		line += " with " + res.WinningCategory.String()
	}
	return r.styles.Winner.Render(line)
}

// RenderShowdown renders evaluated contenders and the winners among them
func (r *Renderer) RenderShowdown(results []evaluator.Showdown, winners []int) string {
	var b strings.Builder
	won := make(map[int]bool, len(winners))
	for _, w := range winners {
		won[w] = true
	}
	for i, s := range results {
		line := fmt.Sprintf("%-12s %s  ->  %s", s.Name, r.RenderCards(s.Hole[:]), r.RenderHand(s.Best))
		if won[i] {
			line += "  " + r.styles.Winner.Render("WIN")
		}
		fmt.Fprintln(&b, line)
	}
	return b.String()
}

// RenderReport renders a simulation summary
func (r *Renderer) RenderReport(rep *simulator.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.Title("Simulation"))
	fmt.Fprintf(&b, "seed %d  matches %d  hands %d  elapsed %s\n", rep.Seed, rep.Matches, rep.Hands, rep.Elapsed)
	fmt.Fprintf(&b, "uncontested %d  showdowns %d  split pots %d  average pot %.2f\n",
		rep.Folds, rep.Showdowns, rep.SplitPots, rep.AveragePot())

	fmt.Fprintf(&b, "\n%s\n", r.styles.Header.Render("Wins"))
	for _, name := range rep.Players() {
		share := 0.0
		if rep.Hands > 0 {
			share = 100 * float64(rep.Wins[name]) / float64(rep.Hands)
		}
		fmt.Fprintf(&b, "%-12s %6d  %5.1f%%\n", name, rep.Wins[name], share)
	}

	fmt.Fprintf(&b, "\n%s\n", r.styles.Header.Render("Winning hands at showdown"))
	for i := len(evaluator.Categories) - 1; i >= 0; i-- {
		c := evaluator.Categories[i]
		if rep.Categories[c] == 0 {
			continue
		}
		fmt.Fprintf(&b, "%-16s %6d  %5.1f%%\n", c, rep.Categories[c], 100*rep.CategoryShare(c))
	}
	return r.styles.Box.Render(strings.TrimRight(b.String(), "\n"))
}

func roleTag(h *game.HandHistory, seat int) string {
	var tags []string
	if seat == h.Button {
		tags = append(tags, "D")
	}
	if seat == h.SmallBlindSeat {
		tags = append(tags, "SB")
	}
	if seat == h.BigBlindSeat {
		tags = append(tags, "BB")
	}
	if len(tags) == 0 {
		return ""
	}
	return " [" + strings.Join(tags, ",") + "]"
}

func winnerLine(winners []string, outcome string, pot int) string {
	verb := "wins"
	if len(winners) > 1 {
		verb = "split"
	}
	line := fmt.Sprintf("%s %s pot %d", strings.Join(winners, " and "), verb, pot)
	if outcome == game.OutcomeFold {
		line += " uncontested"
	}
	return line
}
