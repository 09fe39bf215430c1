package entity

import (
	"github.com/bwmarrin/snowflake"
)

const (
	ModuleName = "blackjack-solo"

	// StartingBalance seeds every brand-new game identifier.
	StartingBalance = 1000.0

	BustScore        = 21
	DealerStandScore = 17
	InitialHandSize  = 2
)

var snowflakeNode, _ = snowflake.NewNode(1)

// NewGameID returns an opaque unique game identifier.
func NewGameID() string {
	return snowflakeNode.Generate().String()
}
