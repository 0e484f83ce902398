// Package cli provides the interactive goaltracker terminal client.
//
// It wires configuration, the local session database, the API services and
// the session store, then runs a REPL. Every command renders one of four
// states: a loading line while the request is in flight, the data, an empty
// state, or the error message with a hint to retry the command.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
