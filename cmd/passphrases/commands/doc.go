// Package commands defines the passphrases CLI and wires dependencies for subcommands.
//
// Commands
//
//   - generate          Draw passphrases from the active wordlist
//   - wordlist info     Describe the active wordlist (size, bits per word, digest)
//   - wordlist list     List built-in wordlists
//   - wordlist export   Write the active wordlist to a file
//   - mnemonic          Generate a BIP-39 recovery phrase
//   - mnemonic check    Verify a BIP-39 recovery phrase
//   - version           Print the build version
//
// # Implementation
//
// The root command resolves configuration (flags, PASSPHRASES_* environment,
// config file, defaults) and builds the app context before any subcommand
// runs, so handlers share one logger, one random source and one wordlist.
package commands
