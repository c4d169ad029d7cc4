// Package battle provides ready-made battle systems for the tournament core.
//
// [IntSystem] pits unsigned integers against each other and is the system
// behind the "int" definition files. [JankenSystem] plays weighted
// rock-paper-scissors and keeps a win counter on each fighter, showing how
// entrant state carries from one round into the next.
//
// Both systems take an optional *rand.Rand. A nil source uses the global
// generator; pass a seeded one for reproducible brackets.
package battle
