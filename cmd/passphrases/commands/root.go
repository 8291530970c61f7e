package commands

import (
	"time"

	"github.com/spf13/cobra"

	"passphrases/internal/app"
	"passphrases/internal/logging"
)

var (
	cfgFile string
	verbose bool
	appCtx  *app.App

	// appOptions lets tests swap dependencies such as the random source.
	appOptions []app.Option
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "passphrases",
		Short:        "Generate passphrases from a wordlist using a secure random source",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(cmd, cfgFile)
			if err != nil {
				return err
			}
			if verbose {
				cfg.LogLevel = "debug"
			}
			log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return err
			}
			appCtx = app.New(cfg, log, appOptions...)
			return nil
		},
	}

	defaults := app.Defaults()
	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/passphrases/passphrases.yaml)")
	pf.String("wordlist", "", "wordlist file or builtin:<name> (default builtin:bip39-english)")
	pf.String("wordlist-digest", "", "expected BLAKE2b-256 hex digest of the wordlist")
	pf.Duration("wordlist-timeout", defaults["wordlist_timeout"].(time.Duration), "give up reading the wordlist after this long")
	pf.StringP("separator", "s", defaults["separator"].(string), "string placed between words")
	pf.StringP("format", "f", defaults["format"].(string), "output format: text, json or yaml")
	pf.String("log-level", logging.DefaultLevel, "log level: debug, info, warn or error")
	pf.BoolVarP(&verbose, "verbose", "v", false, "shorthand for --log-level debug")

	root.AddCommand(generateCmd(), wordlistCmd(), mnemonicCmd(), versionCmd())
	return root
}
