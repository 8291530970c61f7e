package commands

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"passphrases/internal/app"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

func generateCmd() *cobra.Command {
	var copyOut, quiet bool
	defaults := app.Defaults()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate passphrases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := appCtx.Config
			wl, err := appCtx.Wordlist(cmd.Context())
			if err != nil {
				return err
			}

			ps, err := appCtx.Passphrases.GenerateN(cfg.Request(wl), cfg.Repeat)
			if err != nil {
				return err
			}

			fields := logrus.Fields{
				"wordlist":     wl.Source(),
				"size":         wl.Len(),
				"words":        len(ps[0].Words),
				"entropy_bits": ps[0].EntropyBits,
				"count":        len(ps),
			}
			appCtx.Log.WithFields(fields).Debug("passphrases generated")
			if ps[0].EntropyBits < cfg.MinEntropy {
				appCtx.Log.WithFields(fields).Warnf("entropy below min_entropy %.2f bits", cfg.MinEntropy)
			}

			if copyOut {
				texts := make([]string, len(ps))
				for i, p := range ps {
					texts[i] = p.Text
				}
				if err := writeClipboard(strings.Join(texts, "\n")); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				appCtx.Log.WithField("count", len(ps)).Info("copied to clipboard")
			}

			return renderPassphrases(cmd.OutOrStdout(), cfg.Format, quiet, wl.Source(), wl.Len(), ps)
		},
	}

	f := cmd.Flags()
	f.IntP("count", "n", defaults["count"].(int), "words per passphrase")
	f.Float64P("entropy", "e", 0, "target entropy in bits; picks the smallest word count reaching it")
	f.IntP("repeat", "r", defaults["repeat"].(int), "number of passphrases to generate")
	f.Float64("min-entropy", 0, "warn when a passphrase carries fewer bits than this")
	f.BoolVarP(&copyOut, "copy", "c", false, "also copy the passphrases to the clipboard")
	f.BoolVarP(&quiet, "quiet", "q", false, "print passphrases only (text format)")
	cmd.MarkFlagsMutuallyExclusive("count", "entropy")
	return cmd
}
