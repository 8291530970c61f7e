package app

import (
	"github.com/sirupsen/logrus"

	"passphrases/internal/crypto"
	"passphrases/internal/domain"
	"passphrases/internal/logging"
	mnemonicsvc "passphrases/internal/services/mnemonic"
	passphrasesvc "passphrases/internal/services/passphrase"
)

// Option overrides a dependency built by New.
type Option func(*options)

type options struct {
	random domain.RandomSource
}

// WithRandomSource replaces the system CSPRNG, e.g. with a seeded stream in tests.
func WithRandomSource(r domain.RandomSource) Option {
	return func(o *options) { o.random = r }
}

// New constructs the dependency graph from cfg.
func New(cfg Config, log logrus.FieldLogger, opts ...Option) *App {
	o := options{random: crypto.NewSystemSource()}
	for _, opt := range opts {
		opt(&o)
	}
	if log == nil {
		log = logging.Discard()
	}

	return &App{
		Config:      cfg,
		Log:         log,
		Passphrases: passphrasesvc.New(o.random),
		Mnemonics:   mnemonicsvc.New(),
	}
}
