package app

import (
	"context"

	"github.com/sirupsen/logrus"

	"passphrases/internal/crypto"
	"passphrases/internal/domain"
	"passphrases/internal/wordlist"
)

// App bundles configuration, services and the process wordlist for commands.
type App struct {
	Config      Config
	Log         logrus.FieldLogger
	Passphrases domain.PassphraseService
	Mnemonics   domain.MnemonicService

	wordlist *domain.Wordlist
}

// WordlistOptions derives loader options from the config.
func (a *App) WordlistOptions() wordlist.Options {
	return wordlist.Options{
		Separator: a.Config.Separator,
		Digest:    a.Config.WordlistDigest,
		Timeout:   a.Config.WordlistTimeout,
	}
}

// Wordlist loads the configured list on first use and returns the same list
// afterwards.
func (a *App) Wordlist(ctx context.Context) (domain.Wordlist, error) {
	if a.wordlist != nil {
		return *a.wordlist, nil
	}
	wl, err := wordlist.Open(ctx, a.Config.Wordlist, a.WordlistOptions())
	if err != nil {
		return domain.Wordlist{}, err
	}
	a.Log.WithFields(logrus.Fields{
		"wordlist": wl.Source(),
		"size":     wl.Len(),
		"digest":   crypto.Fingerprint(crypto.WordlistDigest(wl)),
	}).Debug("wordlist loaded")
	a.wordlist = &wl
	return wl, nil
}
