// Package mnemonic produces and checks BIP-39 recovery phrases.
package mnemonic
