// Package transcript exports finished hands as TOML documents.
package transcript

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/pokerized/holdem/internal/deck"
	"github.com/pokerized/holdem/internal/fileutil"
	"github.com/pokerized/holdem/internal/game"
)

// Document is the on-disk form of a hand
type Document struct {
	HandID         string     `toml:"hand"`
	HandNumber     int        `toml:"number"`
	Time           string     `toml:"time"`
	DurationMillis int64      `toml:"duration_ms"`
	Players        []string   `toml:"players"`
	HoleCards      [][]string `toml:"hole_cards"`
	Button         int        `toml:"button"`
	SmallBlindSeat int        `toml:"small_blind_seat"`
	BigBlindSeat   int        `toml:"big_blind_seat"`
	Blinds         []int      `toml:"blinds"`
	Board          []string   `toml:"board"`
	Outcome        string     `toml:"outcome"`
	Pot            int        `toml:"pot"`
	Winners        []string   `toml:"winners"`
	Streets        []Street   `toml:"streets"`
	Showdown       []Showdown `toml:"showdown,omitempty"`
}

// Street is one betting street
type Street struct {
	Name     string   `toml:"name"`
	Revealed []string `toml:"revealed"`
	Events   []string `toml:"events"`
	Pot      int      `toml:"pot"`
}

// Showdown is one contender's shown hand
type Showdown struct {
	Seat     int      `toml:"seat"`
	Player   string   `toml:"player"`
	Hole     []string `toml:"hole"`
	Best     []string `toml:"best"`
	Category string   `toml:"category"`
}

// FromHistory converts a hand history into a Document. Cards are written as
// two character codes such as "Td".
func FromHistory(h *game.HandHistory) Document {
	doc := Document{
		HandID:         h.HandID,
		HandNumber:     h.HandNumber,
		Time:           h.StartedAt.UTC().Format(time.RFC3339),
		Button:         h.Button,
		SmallBlindSeat: h.SmallBlindSeat,
		BigBlindSeat:   h.BigBlindSeat,
		Blinds:         []int{h.SmallBlind, h.BigBlind},
		Board:          codes(h.Community),
		Outcome:        h.Outcome,
		Pot:            h.Pot,
		Winners:        append([]string{}, h.Winners...),
	}
	if !h.EndedAt.IsZero() {
		doc.DurationMillis = h.EndedAt.Sub(h.StartedAt).Milliseconds()
	}

	for _, s := range h.Seats {
		doc.Players = append(doc.Players, s.Name)
		doc.HoleCards = append(doc.HoleCards, codes(s.Hole))
	}
	for _, s := range h.Streets {
		doc.Streets = append(doc.Streets, Street{
			Name:     s.Name,
			Revealed: codes(s.Revealed),
			Events:   append([]string{}, s.Events...),
			Pot:      s.Pot,
		})
	}
	for _, s := range h.Showdown {
		doc.Showdown = append(doc.Showdown, Showdown{
			Seat:     s.Seat,
			Player:   s.Name,
			Hole:     codes(s.Hole),
			Best:     codes(s.Best),
			Category: s.Category.String(),
		})
	}
	return doc
}

// Encode writes the hand history to w as TOML
func Encode(w io.Writer, h *game.HandHistory) error {
	if h == nil {
		return errors.New("transcript: hand history is nil")
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(FromHistory(h))
}

// EncodeToBytes encodes and returns the result as bytes
func EncodeToBytes(h *game.HandHistory) ([]byte, error) {
	var buf strings.Builder
	if err := Encode(&buf, h); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}

// Decode reads a Document back
func Decode(r io.Reader) (Document, error) {
	var doc Document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("transcript: %w", err)
	}
	return doc, nil
}

// Writer receives finished hands; it satisfies game.HistoryWriter
type Writer interface {
	WriteHand(h *game.HandHistory) error
}

// FileWriter writes one TOML file per hand into a directory
type FileWriter struct {
	directory string
}

// NewFileWriter creates a writer for directory, which is created on the
// first write
func NewFileWriter(directory string) *FileWriter {
	return &FileWriter{directory: directory}
}

// Path returns the file a hand is written to
func (w *FileWriter) Path(h *game.HandHistory) string {
	return filepath.Join(w.directory, fmt.Sprintf("hand-%05d-%s.toml", h.HandNumber, h.HandID))
}

// WriteHand encodes h and writes it atomically
func (w *FileWriter) WriteHand(h *game.HandHistory) error {
	data, err := EncodeToBytes(h)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(w.Path(h), data, 0o644); err != nil {
		return fmt.Errorf("failed to write hand history file: %w", err)
	}
	return nil
}

// NopWriter discards hands
type NopWriter struct{}

// WriteHand does nothing
func (NopWriter) WriteHand(*game.HandHistory) error { return nil }

// MultiWriter fans every hand out to several writers and stops at the first
// error
type MultiWriter []Writer

func (m MultiWriter) WriteHand(h *game.HandHistory) error {
	for _, w := range m {
		if err := w.WriteHand(h); err != nil {
			return err
		}
	}
	return nil
}

func codes(cards []deck.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Code()
	}
	return out
}

var (
	_ game.HistoryWriter = (*FileWriter)(nil)
	_ game.HistoryWriter = NopWriter{}
	_ game.HistoryWriter = MultiWriter(nil)
)
