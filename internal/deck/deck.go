package deck

// standardDeck is built once at init and never mutated; callers always
// copy before shuffling.
var standardDeck = func() []Card {
	cards := make([]Card, 0, 52)
	for suit := Hearts; suit <= Spades; suit++ {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}()

// upcards are synthetic rank-only markers for the ten dealer upcard
// columns (2..9, T, A) that strategy tables are indexed by. They are
// information, not real cards, and are never drawn from a shoe.
var upcards = []Card{
	{Rank: Two},
	{Rank: Three},
	{Rank: Four},
	{Rank: Five},
	{Rank: Six},
	{Rank: Seven},
	{Rank: Eight},
	{Rank: Nine},
	{Rank: Ten},
	{Rank: Ace},
}

// StandardDeck returns the 52 cards of a standard deck. The returned
// slice is shared; do not mutate it.
func StandardDeck() []Card {
	return standardDeck
}

// Upcards returns the ten synthetic upcard markers, in strategy-table
// column order (2 through 9, then ten-value, then ace). The returned
// slice is shared; do not mutate it.
func Upcards() []Card {
	return upcards
}
