// Package definition loads tournament definition files.
//
// A definition is a small TOML document naming the battle system and its
// entrants:
//
//	title  = "Winner 127"
//	system = "int"
//	entrants = [6, 1, 2, 9, 3, 4, 127, 5, 8, 7]
//
// or, for rock-paper-scissors:
//
//	system = "janken"
//	seed   = 42
//
//	[[fighter]]
//	name = "Rocky"
//	rock = 0.8
//	paper = 0.1
//	scissors = 0.1
package definition

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/bracket/pkg/battle"
	"github.com/matzehuels/bracket/pkg/errors"
	"github.com/matzehuels/bracket/pkg/tournament"
)

// Supported battle systems.
const (
	SystemInt    = "int"
	SystemJanken = "janken"
)

// Definition is a decoded tournament definition file.
type Definition struct {
	Title    string    `toml:"title"`
	System   string    `toml:"system"`
	Seed     *uint64   `toml:"seed"`
	Entrants []uint32  `toml:"entrants"`
	Fighters []Fighter `toml:"fighter"`
}

// Fighter is one [[fighter]] table of a janken definition.
type Fighter struct {
	Name     string  `toml:"name"`
	Rock     float64 `toml:"rock"`
	Paper    float64 `toml:"paper"`
	Scissors float64 `toml:"scissors"`
}

// Load reads and validates the definition at path. A missing title defaults
// to the file name without its extension.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "definition %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", path)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	if def.Title == "" {
		def.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return def, nil
}

// Parse decodes and validates a definition. Keys the format does not know
// are rejected so typos do not silently drop entrants.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	md, err := toml.Decode(string(data), &def)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode definition")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if def.System == "" {
		def.System = SystemInt
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate checks the definition against its battle system.
func (d *Definition) Validate() error {
	if err := errors.ValidateTitle(d.Title); err != nil {
		return err
	}
	switch d.System {
	case SystemInt:
		if len(d.Fighters) > 0 {
			return errors.New(errors.ErrCodeInvalidInput, "system %q takes entrants, not fighters", d.System)
		}
		if len(d.Entrants) == 0 {
			return errors.New(errors.ErrCodeNeedsEntrant, "system %q needs at least one entrant", d.System)
		}
	case SystemJanken:
		if len(d.Entrants) > 0 {
			return errors.New(errors.ErrCodeInvalidInput, "system %q takes fighters, not entrants", d.System)
		}
		if len(d.Fighters) == 0 {
			return errors.New(errors.ErrCodeNeedsEntrant, "system %q needs at least one fighter", d.System)
		}
		for i, f := range d.Fighters {
			if f.Rock < 0 || f.Paper < 0 || f.Scissors < 0 {
				return errors.New(errors.ErrCodeInvalidInput, "fighter %d has a negative weight", i+1)
			}
			if f.Rock+f.Paper+f.Scissors == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "fighter %d has no weights", i+1)
			}
		}
	default:
		return errors.New(errors.ErrCodeInvalidSystem, "unknown system %q (want %q or %q)", d.System, SystemInt, SystemJanken)
	}
	return nil
}

// Rand returns a source seeded from the definition, or nil to use the global
// generator when no seed is set.
func (d *Definition) Rand() *rand.Rand {
	if d.Seed == nil {
		return nil
	}
	return rand.New(rand.NewPCG(*d.Seed, *d.Seed))
}

// IntTournament builds the tournament of an "int" definition.
func (d *Definition) IntTournament() (*tournament.Tournament[battle.IntFighter, string], error) {
	if d.System != SystemInt {
		return nil, errors.New(errors.ErrCodeInvalidSystem, "definition uses system %q, not %q", d.System, SystemInt)
	}
	return tournament.New[battle.IntFighter, string](
		battle.IntFighters(d.Entrants),
		battle.IntSystem{Rand: d.Rand()},
		tournament.WithName(d.Title),
	)
}

// JankenTournament builds the tournament of a "janken" definition. Unnamed
// fighters are called "Fighter N".
func (d *Definition) JankenTournament() (*tournament.Tournament[battle.JankenFighter, string], error) {
	if d.System != SystemJanken {
		return nil, errors.New(errors.ErrCodeInvalidSystem, "definition uses system %q, not %q", d.System, SystemJanken)
	}
	return tournament.NewFromGenerator[battle.JankenFighter, string](
		len(d.Fighters),
		func(i int) battle.JankenFighter {
			f := d.Fighters[i]
			name := f.Name
			if name == "" {
				name = fmt.Sprintf("Fighter %d", i+1)
			}
			return battle.JankenFighter{Name: name, Rock: f.Rock, Paper: f.Paper, Scissors: f.Scissors}
		},
		battle.JankenSystem{Rand: d.Rand()},
		tournament.WithName(d.Title),
	)
}
