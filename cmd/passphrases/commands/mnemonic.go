package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"passphrases/internal/domain"
	"passphrases/internal/services/mnemonic"
)

const mnemonicWords = 2048

func mnemonicCmd() *cobra.Command {
	var bits int
	cmd := &cobra.Command{
		Use:   "mnemonic",
		Short: "Generate a BIP-39 recovery phrase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := appCtx.Mnemonics.Generate(bits)
			if err != nil {
				return err
			}
			appCtx.Log.WithField("entropy_bits", p.EntropyBits).Debug("mnemonic generated")
			return renderPassphrases(cmd.OutOrStdout(), appCtx.Config.Format, false,
				"bip39-mnemonic", mnemonicWords, []domain.Passphrase{p})
		},
	}
	cmd.Flags().IntVarP(&bits, "bits", "b", mnemonic.DefaultBits, "entropy bits: 128, 160, 192, 224 or 256")
	cmd.AddCommand(mnemonicCheckCmd())
	return cmd
}

func mnemonicCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <word>...",
		Short: "Verify the words and checksum of a BIP-39 recovery phrase",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !appCtx.Mnemonics.Valid(strings.Join(args, " ")) {
				return fmt.Errorf("%w: not a valid BIP-39 mnemonic", domain.ErrInvalidRequest)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return err
		},
	}
}
