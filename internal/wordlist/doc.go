// Package wordlist loads, validates and writes passphrase vocabularies.
//
// A wordlist file is UTF-8 text with one word per line. Surrounding
// whitespace is trimmed, blank lines are ignored and duplicates are dropped
// keeping the first occurrence, so file order is preserved. Diceware-style
// lines ("16655<TAB>word") contribute only the word.
//
// Lists are also available built in (see Builtin); the default is the BIP-39
// English list. Open resolves a reference that is either a file path or
// "builtin:<name>".
package wordlist
