// Package cli provides the interactive AskPro command-line front end.
//
// The REPL reads one command per line and calls into the auth and board
// services. It keeps the same view state the web page does: the current
// search text and category filter, and which answers were liked during the
// current login.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends. See runREPL for the command list.
package cli
