package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"passphrases/internal/app"
	"passphrases/internal/crypto"
	"passphrases/internal/wordlist"
)

type wordlistInfo struct {
	Source      string  `json:"source" yaml:"source"`
	Words       int     `json:"words" yaml:"words"`
	BitsPerWord float64 `json:"bits_per_word" yaml:"bits_per_word"`
	Digest      string  `json:"digest" yaml:"digest"`
}

func wordlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordlist",
		Short: "Inspect and export wordlists",
	}
	cmd.AddCommand(wordlistInfoCmd(), wordlistListCmd(), wordlistExportCmd())
	return cmd
}

func wordlistInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Describe the active wordlist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wl, err := appCtx.Wordlist(cmd.Context())
			if err != nil {
				return err
			}
			info := wordlistInfo{
				Source:      wl.Source(),
				Words:       wl.Len(),
				BitsPerWord: wl.BitsPerWord(),
				Digest:      crypto.WordlistDigest(wl),
			}
			if appCtx.Config.Format != app.FormatText {
				return encode(cmd.OutOrStdout(), appCtx.Config.Format, info)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Source:     %s\nWords:      %d\nBits/word:  %.2f\nDigest:     %s\n",
				info.Source, info.Words, info.BitsPerWord, info.Digest)
			return err
		},
	}
}

func wordlistListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in wordlists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range wordlist.Names() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), wordlist.BuiltinPrefix+name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// wordlistExportCmd writes the active list so it can be edited and loaded
// back with --wordlist.
func wordlistExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Write the active wordlist to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wl, err := appCtx.Wordlist(cmd.Context())
			if err != nil {
				return err
			}
			if err := wordlist.Save(args[0], wl); err != nil {
				return fmt.Errorf("exporting %s: %w", wl.Source(), err)
			}
			appCtx.Log.WithField("path", args[0]).Info("wordlist exported")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d words to %s\n", wl.Len(), args[0])
			return err
		},
	}
}
