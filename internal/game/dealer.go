package game

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjackforbots/internal/deck"
)

const (
	// StandScore is the total at which the dealer stops drawing.
	StandScore = 17

	// HouseBank is the dealer's payout reserve for one game.
	HouseBank = 50000
)

// Bet pairs a hand with the chips the dealer holds in escrow for it.
// A hand has at most one outstanding bet per dealer.
type Bet struct {
	Hand  *Hand
	Chips int
}

// Dealer orchestrates one complete game: bet placement, the two-card
// deal, the naturals check, the per-hand play loop with splits and
// doubles, the dealer's own draw-to-17, and settlement. It embeds
// HandBase as its own hand-of-one, with the house bank as its payout
// reserve. A dealer plays exactly one game and is then discarded.
type Dealer struct {
	HandBase

	shoe   *deck.Shoe
	bets   map[*Hand]Bet
	logger *log.Logger
}

// NewDealer creates a dealer owning the given shoe
func NewDealer(shoe *deck.Shoe, logger *log.Logger) *Dealer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Dealer{
		HandBase: newHandBase(HouseBank),
		bets:     make(map[*Hand]Bet),
		shoe:     shoe,
		logger:   logger,
	}
}

// String renders the dealer as its visible upcard
func (d *Dealer) String() string {
	return d.FirstCard().String()
}

// Play runs one complete game over the given hands. Splits insert new
// hands, so the returned slice is the full set of hands played,
// superset of the input. A returned error is an engine-contract
// violation; player-level mistakes resolve as outcome Wrong on the
// offending hand and never fail the game.
func (d *Dealer) Play(hands []*Hand) ([]*Hand, error) {
	if err := d.placeBets(hands); err != nil {
		return hands, err
	}

	// One card to every hand then one to the dealer, twice over,
	// before any decisions.
	if err := d.deal(hands); err != nil {
		return hands, err
	}
	if err := d.deal(hands); err != nil {
		return hands, err
	}

	if err := d.checkNaturals(hands); err != nil {
		return hands, err
	}

	for {
		again, err := d.dealRound(&hands)
		if err != nil {
			return hands, err
		}
		if !again {
			break
		}
	}

	if err := d.settlePending(hands); err != nil {
		return hands, err
	}

	d.logger.Debug("game settled",
		"hands", len(hands), "dealer", d.Score(), "remaining", d.shoe.Remaining())

	return hands, nil
}

// deal gives one card to every hand and then one to the dealer.
// Dealing into a dealer hand that already holds its two cards is a
// misuse of the state machine.
func (d *Dealer) deal(hands []*Hand) error {
	if d.Count() >= 2 {
		return fmt.Errorf("%w: initial deal already complete", ErrInvalidOperation)
	}

	for _, hand := range hands {
		card, err := d.shoe.Draw()
		if err != nil {
			return err
		}
		hand.Hit(card)
	}

	card, err := d.shoe.Draw()
	if err != nil {
		return err
	}
	d.Hit(card)
	return nil
}

// checkNaturals resolves two-card twenty-ones. The dealer only "has" a
// natural when its upcard could be part of one, mirroring no-peek
// table rules: the check happens after both dealer cards are dealt.
func (d *Dealer) checkNaturals(hands []*Hand) error {
	upScore := d.FirstCard().Score()
	dealerNatural := (upScore == 1 || upScore == 10) && d.IsNatural()

	for _, hand := range hands {
		switch {
		case hand.IsNatural() && dealerNatural:
			hand.Set(Tie)
			if err := d.returnBet(hand); err != nil {
				return err
			}
		case hand.IsNatural():
			// The natural bonus: three to two, rounded up.
			hand.Set(Blackjack)
			if err := d.payBet(hand, 1.5); err != nil {
				return err
			}
		case dealerNatural:
			hand.Set(Loss)
			if err := d.collectBet(hand); err != nil {
				return err
			}
		}
	}

	if dealerNatural {
		d.logger.Debug("dealer natural", "upcard", d.FirstCard())
	}
	return nil
}

// dealRound walks the live hand list once, asking each unresolved,
// still-active hand for a move, then gives the dealer a card if it is
// below its stand score. It reports whether another round is needed.
// The loop uses an index cursor so a split's freshly inserted hand is
// visited before the cursor moves past it.
func (d *Dealer) dealRound(hands *[]*Hand) (bool, error) {
	dealerScore := d.Score()
	again := false

	list := *hands
	for i := 0; i < len(list); i++ {
		hand := list[i]
		if hand.Play() != PlayNone || hand.waiting() {
			continue
		}

		split, err := d.playHand(hand, dealerScore)
		if err != nil {
			if errors.Is(err, deck.ErrEmptyShoe) {
				// Running the shoe dry is an engine sizing bug,
				// not a player mistake. Fail loudly.
				return false, err
			}
			// Containment boundary: a broken strategy forfeits this
			// hand (and its fresh split sibling) without taking the
			// game down with it.
			d.logger.Warn("hand forfeits after failed move", "hand", hand, "error", err)
			hand.Set(Wrong)
			if split != nil {
				split.Set(Wrong)
			}
		}

		if split != nil {
			list = slices.Insert(list, i+1, split)
		}

		if hand.Play() == Wrong {
			if err := d.collectBet(hand); err != nil {
				return false, err
			}
			if split != nil {
				if err := d.collectBet(split); err != nil {
					return false, err
				}
			}
			continue
		}

		if err := d.evaluate(hand); err != nil {
			return false, err
		}
		if split != nil {
			if err := d.evaluate(split); err != nil {
				return false, err
			}
		}

		if (hand.Play() == PlayNone && !hand.waiting()) ||
			(split != nil && split.Play() == PlayNone && !split.waiting()) {
			again = true
		}
	}
	*hands = list

	if dealerScore < StandScore {
		card, err := d.shoe.Draw()
		if err != nil {
			return false, err
		}
		d.Hit(card)
		again = true
	}

	return again, nil
}

// playHand asks the hand's player for one move and applies it. A panic
// inside the player's decision is recovered into an error so the
// caller can forfeit just this hand.
func (d *Dealer) playHand(hand *Hand, dealerScore int) (split *Hand, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("player move panicked: %v", r)
		}
	}()

	move := Stand
	if hand.player != nil {
		move = hand.player.Move(hand, d.FirstCard(), dealerScore)
	}

	switch move {
	case Stand:
		hand.standing = true
		return nil, nil

	case Hit:
		card, err := d.shoe.Draw()
		if err != nil {
			return nil, err
		}
		hand.Hit(card)
		return nil, nil

	case Double:
		if score := hand.Score(); score < 9 || score > 11 {
			// Declaring a double outside 9-11 is a player error,
			// not an engine one.
			hand.Set(Wrong)
			return nil, nil
		}
		if err := d.doubleBet(hand); err != nil {
			return nil, err
		}
		card, err := d.shoe.Draw()
		if err != nil {
			return nil, err
		}
		hand.Hit(card)
		hand.doubled = true
		return nil, nil

	case Split:
		if hand.Kind() != Pair {
			hand.Set(Wrong)
			return nil, nil
		}
		split, err := hand.Split()
		if err != nil {
			return nil, err
		}
		if err := d.placeBet(split); err != nil {
			return split, err
		}
		for _, h := range []*Hand{hand, split} {
			card, err := d.shoe.Draw()
			if err != nil {
				return split, err
			}
			h.Hit(card)
		}
		return split, nil
	}

	return nil, fmt.Errorf("%w: unknown move %d", ErrInvalidOperation, move)
}

// evaluate resolves a hand immediately after it acted: twenty-one pays
// even money (this is a drawn 21, never the two-card natural), over
// twenty-one busts. Anything else keeps playing or waits for the
// final settlement.
func (d *Dealer) evaluate(hand *Hand) error {
	if hand.Play() != PlayNone {
		return nil
	}

	switch score := hand.Score(); {
	case score == BlackjackScore:
		hand.Set(Blackjack)
		return d.payBet(hand, 1)
	case score > BlackjackScore:
		hand.Set(Bust)
		return d.collectBet(hand)
	}
	return nil
}

// settlePending compares every still-pending hand against the dealer's
// final score once the dealer has stood.
func (d *Dealer) settlePending(hands []*Hand) error {
	dealerScore := d.Score()

	for _, hand := range hands {
		if hand.Play() != PlayNone {
			continue
		}

		switch handScore := hand.Score(); {
		case dealerScore > BlackjackScore:
			hand.Set(Win)
			if err := d.payBet(hand, 1); err != nil {
				return err
			}
		case handScore > dealerScore:
			hand.Set(Win)
			if err := d.payBet(hand, 1); err != nil {
				return err
			}
		case handScore < dealerScore:
			hand.Set(Loss)
			if err := d.collectBet(hand); err != nil {
				return err
			}
		default:
			hand.Set(Tie)
			if err := d.returnBet(hand); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Dealer) placeBets(hands []*Hand) error {
	for _, hand := range hands {
		if err := d.placeBet(hand); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dealer) placeBet(hand *Hand) error {
	if _, ok := d.bets[hand]; ok {
		return fmt.Errorf("%w: hand already has an outstanding bet", ErrInvalidOperation)
	}

	bet, err := hand.MakeBet(false)
	if err != nil {
		return err
	}
	d.bets[hand] = bet
	return nil
}

// doubleBet debits a second stake equal to the escrowed bet, doubling
// the hand's exposure.
func (d *Dealer) doubleBet(hand *Hand) error {
	bet, ok := d.bets[hand]
	if !ok {
		return fmt.Errorf("%w: doubling a hand with no bet", ErrInvalidOperation)
	}

	extra, err := hand.pop(bet.Chips)
	if err != nil {
		return err
	}
	bet.Chips += extra
	d.bets[hand] = bet
	return nil
}

// payBet returns the stake plus ceil(stake x multiplier) profit from
// the house bank. Paying a hand with no bet entry is a no-op.
func (d *Dealer) payBet(hand *Hand, multiplier float64) error {
	bet, ok := d.bets[hand]
	if !ok {
		return nil
	}
	delete(d.bets, hand)

	profit, err := d.pop(int(math.Ceil(float64(bet.Chips) * multiplier)))
	if err != nil {
		return fmt.Errorf("house bank cannot cover payout: %w", err)
	}
	bet.Chips += profit
	return hand.ResolveBet(bet)
}

// collectBet forfeits the stake to the house bank. Collecting a hand
// with no bet entry is a no-op.
func (d *Dealer) collectBet(hand *Hand) error {
	bet, ok := d.bets[hand]
	if !ok {
		return nil
	}
	delete(d.bets, hand)
	return d.push(bet.Chips)
}

// returnBet gives the stake back with no profit. Returning a hand with
// no bet entry is a no-op.
func (d *Dealer) returnBet(hand *Hand) error {
	bet, ok := d.bets[hand]
	if !ok {
		return nil
	}
	delete(d.bets, hand)
	return hand.ResolveBet(bet)
}
