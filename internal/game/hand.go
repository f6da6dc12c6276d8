package game

import (
	"sort"
	"strconv"
	"strings"

	"github.com/lox/blackjackforbots/internal/deck"
)

const (
	// BlackjackScore is the target hand total.
	BlackjackScore = 21

	// DefaultBank is the bankroll a hand starts with unless the caller
	// chooses otherwise.
	DefaultBank = 1000

	// DefaultBet is the flat stake of the default staking policy.
	DefaultBet = 250
)

// StakingPolicy decides the stake debited from a hand's bank when a bet
// is placed. The engine deliberately does not hard-code one formula;
// flat betting, bank-fraction betting and split-aware halving are all
// house-rule experiments that belong to the simulation, not the engine.
type StakingPolicy func(bank int, isSplit, doubleDown bool) int

// FlatStaking bets a fixed amount per hand, doubled on double-down.
func FlatStaking(bet int) StakingPolicy {
	return func(bank int, isSplit, doubleDown bool) int {
		if doubleDown {
			return bet * 2
		}
		return bet
	}
}

// DefaultStaking is the flat DefaultBet policy.
var DefaultStaking = FlatStaking(DefaultBet)

// HandBase is the card sequence and chip bank shared by player hands
// and the dealer's own hand.
type HandBase struct {
	cards []deck.Card
	bank  int
}

func newHandBase(bank int) HandBase {
	return HandBase{cards: make([]deck.Card, 0, 4), bank: bank}
}

// Bank returns the current chip bank
func (h *HandBase) Bank() int {
	return h.bank
}

// Count returns the number of cards in the hand
func (h *HandBase) Count() int {
	return len(h.cards)
}

// Cards returns a copy of the hand's cards in deal order
func (h *HandBase) Cards() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// FirstCard returns the first dealt card, or the back sentinel for an
// empty hand. For the dealer this is the upcard.
func (h *HandBase) FirstCard() deck.Card {
	if len(h.cards) == 0 {
		return deck.Back
	}
	return h.cards[0]
}

// Hit appends a card to the hand
func (h *HandBase) Hit(card deck.Card) {
	h.cards = append(h.cards, card)
}

// Score returns the blackjack total of the hand. At most one ace is
// revalued from one to eleven: revaluing a second could only matter if
// it avoided a bust, which ten extra points never do.
func (h *HandBase) Score() int {
	score := 0
	for _, card := range h.cards {
		score += card.Score()
	}
	if score <= 11 && h.hasAce() {
		return score + 10
	}
	return score
}

// IsNatural reports a two-card twenty-one
func (h *HandBase) IsNatural() bool {
	return len(h.cards) == 2 && h.Score() == BlackjackScore
}

func (h *HandBase) hasAce() bool {
	for _, card := range h.cards {
		if card.IsAce() {
			return true
		}
	}
	return false
}

// pop debits chips from the bank. A request that is non-positive or
// exceeds the bank is a settlement-logic bug and fails without touching
// the bank.
func (h *HandBase) pop(chips int) (int, error) {
	if chips <= 0 {
		return 0, ErrInvalidAmount
	}
	if chips > h.bank {
		return 0, ErrInsufficientFunds
	}
	h.bank -= chips
	return chips, nil
}

// push credits chips to the bank
func (h *HandBase) push(chips int) error {
	if chips <= 0 {
		return ErrInvalidAmount
	}
	h.bank += chips
	return nil
}

// Hand is one player hand in one game: cards, bank, outcome and split
// lineage. A hand belongs to exactly one Player for its lifetime.
type Hand struct {
	HandBase

	player  Player
	staking StakingPolicy
	play    HandPlay
	isSplit bool

	// doubled and standing park the hand until final settlement.
	doubled  bool
	standing bool

	// moveLayout is the situation key frozen at the hand's first
	// decision point, recorded by learning players.
	moveLayout string
}

// NewHand creates a hand for player with the given bankroll and the
// default staking policy. A nil player behaves as a bystander that is
// never consulted.
func NewHand(player Player, bank int) *Hand {
	return NewStakedHand(player, bank, DefaultStaking)
}

// NewStakedHand creates a hand with an explicit staking policy
func NewStakedHand(player Player, bank int, staking StakingPolicy) *Hand {
	if staking == nil {
		staking = DefaultStaking
	}
	return &Hand{HandBase: newHandBase(bank), player: player, staking: staking}
}

func newSplitHand(parent *Hand, card deck.Card, bank int) *Hand {
	hand := &Hand{
		HandBase: newHandBase(bank),
		player:   parent.player,
		staking:  parent.staking,
		isSplit:  true,
	}
	hand.Hit(card)
	return hand
}

// Player returns the owning player
func (h *Hand) Player() Player {
	return h.player
}

// Play returns the hand's outcome, PlayNone until resolved
func (h *Hand) Play() HandPlay {
	return h.play
}

// IsSplit reports whether this hand was produced by a split
func (h *Hand) IsSplit() bool {
	return h.isSplit
}

// SecondCard returns the second dealt card, or the back sentinel
func (h *Hand) SecondCard() deck.Card {
	if len(h.cards) < 2 {
		return deck.Back
	}
	return h.cards[1]
}

// Kind classifies the hand: a two-card same-rank Pair, a Soft hand
// holding an ace, otherwise Hard.
func (h *Hand) Kind() HandKind {
	if len(h.cards) == 2 && h.cards[0].Rank == h.cards[1].Rank {
		return Pair
	}
	if h.hasAce() {
		return Soft
	}
	return Hard
}

// String renders the hand's strategy layout: hard hands by total
// ("13"), soft hands and pairs by score symbols ordered ace-first
// ("A-9", "T-T"). Every ten-value card reads as 'T' so J-J and T-T
// share a layout.
func (h *Hand) String() string {
	if h.Kind() == Hard {
		return strconv.Itoa(h.Score())
	}

	ordered := h.Cards()
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order() > ordered[j].Order()
	})

	symbols := make([]string, len(ordered))
	for i, card := range ordered {
		symbols[i] = string(card.Rank.ScoreSymbol())
	}
	return strings.Join(symbols, "-")
}

// Layout returns the situation key for this hand against an upcard,
// "<hand-layout>/<upcard-symbol>". Strategy tables are indexed by it.
func (h *Hand) Layout(upcard deck.Card) string {
	return h.String() + "/" + string(upcard.Rank.ScoreSymbol())
}

// MoveLayout returns the situation key recorded at the hand's first
// decision point, or "" if the hand never reached one.
func (h *Hand) MoveLayout() string {
	return h.moveLayout
}

// RecordMoveLayout freezes the hand's feedback key. Only the first
// recorded layout sticks; later decision points for the same hand do
// not move it.
func (h *Hand) RecordMoveLayout(layout string) {
	if h.moveLayout == "" {
		h.moveLayout = layout
	}
}

// Set resolves the hand to a terminal outcome and notifies the owning
// player that the hand is finished.
func (h *Hand) Set(play HandPlay) {
	h.play = play
	if h.player != nil {
		h.player.EndPlay(h)
	}
}

// Split removes the hand's second card and returns a new hand seeded
// with it, staked from this hand's bank. Only a Pair may split.
func (h *Hand) Split() (*Hand, error) {
	if h.Kind() != Pair {
		return nil, ErrInvalidOperation
	}

	stake, err := h.pop(h.staking(h.bank, true, false))
	if err != nil {
		return nil, err
	}

	second := h.cards[1]
	h.cards = h.cards[:1]
	return newSplitHand(h, second, stake), nil
}

// MakeBet debits the hand's stake per its staking policy and escrows it
// in a Bet.
func (h *Hand) MakeBet(doubleDown bool) (Bet, error) {
	chips, err := h.pop(h.staking(h.bank, h.isSplit, doubleDown))
	if err != nil {
		return Bet{}, err
	}
	return Bet{Hand: h, Chips: chips}, nil
}

// ResolveBet credits a resolved bet's chips back to the hand
func (h *Hand) ResolveBet(bet Bet) error {
	return h.push(bet.Chips)
}

func (h *Hand) waiting() bool {
	return h.standing || h.doubled
}
