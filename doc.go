// Package litekite holds the client-side core of the LiteKite terminal
// client: the persisted session, the wire types served by the LiteKite
// backend, display money values, and the small state machines that pages
// (subcommands) build on.
//
// All business state (balances, holdings, order execution, pricing) is owned
// by the backend. This package never computes a number the server already
// provides; derived figures such as P&L are display-only.
package litekite
