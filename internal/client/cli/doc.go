// Package cli provides the hackernews command-line client.
//
// It runs either a single command given on the command line or an
// interactive REPL. Commands:
//   - signup / login / logout
//   - post <url> [description]
//   - vote <link id>
//   - feed [first] [skip]
//
// The session token survives between runs in a file readable only by the
// owner. See App.Run.
package cli
