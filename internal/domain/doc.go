// Package domain defines core data models, errors and interfaces shared across the app.
// It contains plain types (Wordlist, Request, Passphrase) and contracts only.
package domain
