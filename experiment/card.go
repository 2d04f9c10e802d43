// Copyright 2026 The Prometheus Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package experiment

import (
	"github.com/probsim/probsim/random"
	"github.com/probsim/probsim/tally"
)

const (
	// DeckSize is the number of cards in a deck.
	DeckSize = 52
	// lastRed is the highest card value coloured red.
	lastRed = DeckSize / 2
)

// CardDrawTally is the name of the tally CardDraw produces.
const CardDrawTally = "card_draws"

// Color is the colour class of a card.
type Color int

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Card is a card value in 1..DeckSize. Values up to 26 are red, the rest
// black.
type Card int

// Color returns the colour class of c.
func (c Card) Color() Color {
	if c <= lastRed {
		return Red
	}
	return Black
}

// NewDeck returns the ordered deck 1..DeckSize.
func NewDeck() []Card {
	deck := make([]Card, DeckSize)
	for i := range deck {
		deck[i] = Card(i + 1)
	}
	return deck
}

// Shuffle returns a uniformly random permutation of deck. The input slice
// is left untouched.
func Shuffle(src *random.Source, deck []Card) []Card {
	return random.Permute(src, deck)
}

// Draw returns a copy of the first k cards of deck. Drawing from the top of
// a shuffled deck is drawing without replacement. k must be in
// 1..len(deck); Draw never clamps.
func Draw(deck []Card, k int) ([]Card, error) {
	if err := checkSize("number of cards drawn", k); err != nil {
		return nil, err
	}
	if k > len(deck) {
		return nil, invalidArgument("cannot draw %d cards from a deck of %d", k, len(deck))
	}
	hand := make([]Card, k)
	copy(hand, deck[:k])
	return hand, nil
}

// DrawCards shuffles a fresh deck and draws k cards from it. k is checked
// before the deck is shuffled.
func DrawCards(src *random.Source, k int) ([]Card, error) {
	deck := NewDeck()
	// Validate first so a bad k consumes no randomness.
	if _, err := Draw(deck, k); err != nil {
		return nil, err
	}
	return Draw(Shuffle(src, deck), k)
}

// CardTally counts the colours of drawn cards.
type CardTally struct {
	Red   int
	Black int
}

// TallyCards counts colours in a single pass over cards.
func TallyCards(cards []Card) CardTally {
	var t CardTally
	for _, c := range cards {
		if c.Color() == Red {
			t.Red++
		} else {
			t.Black++
		}
	}
	return t
}

// Total is Red+Black, the number of cards drawn.
func (t CardTally) Total() int {
	return t.Red + t.Black
}

// Tally converts t into a generic tally with categories red and black.
// Each draw is red with marginal probability one half, with or without
// replacement.
func (t CardTally) Tally() *tally.Tally {
	out := tally.New(CardDrawTally,
		tally.Outcome{Label: Red.String(), P: .5},
		tally.Outcome{Label: Black.String(), P: .5},
	)
	out.Add(Red.String(), t.Red)
	out.Add(Black.String(), t.Black)
	return out
}

// CardDraw draws Draws cards from a freshly shuffled deck.
type CardDraw struct {
	Draws int
}

func (CardDraw) Name() string { return CardName }

func (e CardDraw) Run(src *random.Source) (*Result, error) {
	hand, err := DrawCards(src, e.Draws)
	if err != nil {
		return nil, err
	}

	outcomes := make([]byte, len(hand))
	for i, c := range hand {
		outcomes[i] = byte(c)
	}

	return &Result{
		Experiment:  CardName,
		Size:        len(hand),
		Seed:        src.Seed(),
		Fingerprint: fingerprint(CardName, outcomes),
		Tallies:     []*tally.Tally{TallyCards(hand).Tally()},
	}, nil
}
