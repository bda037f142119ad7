// Package tui is the interactive record browser of the command-line client.
//
// The browser pages through the caller's records, opens sealed values on
// demand, copies them to the clipboard and removes records after a
// confirmation.
package tui
