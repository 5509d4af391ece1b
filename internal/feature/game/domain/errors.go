// Package domain defines domain-level errors for the game feature.
package domain

import "errors"

// Rejection causes for engine operations. A rejected operation never mutates state.
// Upper layers match these with errors.Is to choose a transport status.
var (
	// ErrEmptyPlayerName indicates a blank player name.
	ErrEmptyPlayerName = errors.New("player name must not be empty")

	// ErrNegativeHouses indicates a negative house count in an assignment.
	ErrNegativeHouses = errors.New("houses must be non-negative")

	// ErrUnknownAsset indicates that the requested asset is not in the catalog.
	ErrUnknownAsset = errors.New("asset does not exist")

	// ErrOwnedByOther indicates that another player already owns the asset.
	ErrOwnedByOther = errors.New("asset already assigned to another player")

	// ErrAlreadyHeld indicates that the requesting player already holds the commercial asset.
	ErrAlreadyHeld = errors.New("asset already owned by the requesting player")

	// ErrDuplicatePlayer indicates that a player name was listed twice when starting a game.
	ErrDuplicatePlayer = errors.New("duplicate player name")

	// ErrNegativeStartingBalance indicates a negative starting balance.
	ErrNegativeStartingBalance = errors.New("starting balance must be non-negative")

	// ErrNotOwned indicates that nobody owns the asset a rent quote was asked for.
	ErrNotOwned = errors.New("asset is not owned by any player")

	// ErrInvalidDiceRoll indicates a dice total outside 2..12.
	ErrInvalidDiceRoll = errors.New("dice roll must be between 2 and 12")
)
