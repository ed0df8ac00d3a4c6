package rms

import (
	_ "embed"
	"fmt"
)

// Builtin definition sources. These are parsed with the regular forgiving
// parser to seed the builtin symbol tables whenever the compatibility mode
// changes.
var (
	//go:embed defs/def_aoc.rms
	defAoC string
	//go:embed defs/def_up15.rms
	defUP15 string
	//go:embed defs/def_wk.rms
	defWK string
	//go:embed defs/def_de.rms
	defDE string
)

// definitionSources returns the builtin definition texts for a compatibility
// mode, in parse order.
func definitionSources(compat Compatibility) []string {
	switch compat {
	case CompatWololoKingdoms:
		return []string{defWK}
	case CompatUserPatch15:
		return []string{defAoC, defUP15}
	case CompatDefinitiveEdition:
		return []string{defAoC, defDE}
	default:
		return []string{defAoC}
	}
}

// aocOptionDefines are names the game may or may not define depending on map
// size and game settings. They are valid in `if` statements but carry no
// value.
var aocOptionDefines = []string{
	"TINY_MAP",
	"SMALL_MAP",
	"MEDIUM_MAP",
	"LARGE_MAP",
	"HUGE_MAP",
	"GIGANTIC_MAP",
	"UP_AVAILABLE",
	"UP_EXTENSION",
}

// upOptionDefines are the game-setting names UserPatch 1.5 exposes to
// scripts.
func upOptionDefines() []string {
	list := []string{
		"FIXED_POSITIONS",
		"AI_PLAYERS",
		"CAPTURE_RELIC",
		"DEATH_MATCH",
		"DEFEND_WONDER",
		"KING_OT_HILL",
		"RANDOM_MAP",
		"REGICIDE",
		"TURBO_RANDOM_MAP",
		"WONDER_RACE",
	}

	for i := 1; i <= 8; i++ {
		list = append(list, fmt.Sprintf("%d_PLAYER_GAME", i))
	}
	for i := 0; i <= 4; i++ {
		list = append(list, fmt.Sprintf("%d_TEAM_GAME", i))
	}
	for team := 0; team <= 4; team++ {
		for player := 1; player <= 8; player++ {
			list = append(list, fmt.Sprintf("PLAYER%d_TEAM%d", player, team))
		}
	}
	for team := 0; team <= 4; team++ {
		for size := 0; size <= 8; size++ {
			list = append(list, fmt.Sprintf("TEAM%d_SIZE%d", team, size))
		}
	}

	return list
}
