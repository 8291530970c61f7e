// Package app wires application dependencies for the CLI.
//
// LoadConfig layers defaults, an optional YAML config file, PASSPHRASES_*
// environment variables and command-line flags into a Config. New builds the
// random source, services and logger from it and exposes them via App; the
// wordlist is loaded once on first use and then shared for the process.
package app
