// Package poker implements a card game table: a shared pile built from one
// or more standard decks and a hand per seated player.
//
// # Core Types
//
// Game: owns the pile and the hands. Cards move between them but are never
// created or destroyed after construction.
//
// The card and deck types live in the card and deck packages.
//
// # Game Flow
//
// A game is created with NewGame, its pile is shuffled with Shuffle, then
// cards are handed out with Deal or Draw and returned with Play. SortAllHands
// orders every hand by rank, ace high.
//
// No game rules are enforced: betting, turns and hand evaluation are up to
// the caller.
package poker
