package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"passphrases/internal/app"
	"passphrases/internal/domain"
	"passphrases/internal/services/passphrase"
)

type passphrasesOutput struct {
	Wordlist     string              `json:"wordlist" yaml:"wordlist"`
	WordlistSize int                 `json:"wordlist_size" yaml:"wordlist_size"`
	Passphrases  []domain.Passphrase `json:"passphrases" yaml:"passphrases"`
}

// renderPassphrases writes ps in format. Text output is one passphrase per
// line followed by the entropy, with a strength label on terminals.
func renderPassphrases(w io.Writer, format string, quiet bool, source string, size int, ps []domain.Passphrase) error {
	if format != app.FormatText {
		return encode(w, format, passphrasesOutput{Wordlist: source, WordlistSize: size, Passphrases: ps})
	}
	for _, p := range ps {
		if _, err := fmt.Fprintln(w, p.Text); err != nil {
			return err
		}
	}
	if quiet || len(ps) == 0 {
		return nil
	}
	bits := ps[0].EntropyBits
	if isTerminal(w) {
		_, err := fmt.Fprintf(w, "Entropy: %.2f bits (%s)\n", bits, passphrase.Rate(bits))
		return err
	}
	_, err := fmt.Fprintf(w, "Entropy: %.2f bits\n", bits)
	return err
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case app.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case app.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
