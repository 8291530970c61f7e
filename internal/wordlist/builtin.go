package wordlist

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"

	"passphrases/internal/domain"
)

const (
	// BuiltinPrefix marks a reference to a list compiled into the binary.
	BuiltinPrefix = "builtin:"
	// DefaultBuiltin is used when no wordlist is configured.
	DefaultBuiltin = "bip39-english"
)

var builtins = map[string]func() []string{
	DefaultBuiltin: func() []string { return wordlists.English },
}

// Names lists the built-in wordlists.
func Names() []string {
	out := make([]string, 0, len(builtins))
	for name := range builtins {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Builtin returns the named built-in list validated against opts.
func Builtin(name string, opts Options) (domain.Wordlist, error) {
	words, ok := builtins[name]
	if !ok {
		return domain.Wordlist{}, fmt.Errorf("%w: unknown built-in %q (have %s)",
			domain.ErrInvalidWordlist, name, strings.Join(Names(), ", "))
	}
	wl, err := domain.NewWordlist(BuiltinPrefix+name, words())
	if err != nil {
		return domain.Wordlist{}, err
	}
	return check(wl, opts)
}

// Open resolves ref: empty selects DefaultBuiltin, "builtin:<name>" a built-in
// list, anything else a file path.
func Open(ctx context.Context, ref string, opts Options) (domain.Wordlist, error) {
	switch {
	case ref == "":
		return Builtin(DefaultBuiltin, opts)
	case strings.HasPrefix(ref, BuiltinPrefix):
		return Builtin(strings.TrimPrefix(ref, BuiltinPrefix), opts)
	default:
		return LoadFile(ctx, ref, opts)
	}
}
