// Package engine runs one play-through of the MAN.3 decision simulation.
//
// An Engine owns a single RunState and moves it through four phases:
// not started, awaiting a choice, awaiting the advance that commits the
// chosen option, and terminated. Choosing an option only records a pending
// resolution so callers can show feedback before the meters change; Advance
// commits it.
//
// The engine performs no I/O and is not safe for concurrent use. Callers that
// share an Engine across goroutines must serialize access themselves.
//
// Out-of-order calls and invalid option indexes are rejected with a sentinel
// error and leave the run untouched, so a UI driver may call methods
// speculatively without corrupting state.
package engine
