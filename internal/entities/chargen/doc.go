// Package chargen holds the character-creation domain: ability rolls, the score
// pool and its slot assignment, the one-shot racial bonus and the derivation of
// a finished character.
//
// Everything here is pure and synchronous. A Session is loaded, mutated in
// memory and persisted by the orchestrator; every mutating method either
// succeeds completely or leaves the session untouched.
package chargen
