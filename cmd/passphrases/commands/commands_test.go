package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"passphrases/internal/app"
	"passphrases/internal/crypto"
	"passphrases/internal/domain"
	"passphrases/internal/wordlist"
)

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func writeWords(t *testing.T, words ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0o644))
	return path
}

func decodeJSON(t *testing.T, s string) passphrasesOutput {
	t.Helper()
	var out passphrasesOutput
	require.NoError(t, json.Unmarshal([]byte(s), &out))
	return out
}

func TestGenerate_JSONFromFile(t *testing.T) {
	path := writeWords(t, "correct", "horse", "battery", "staple")
	stdout, _, err := run(t, "generate", "--wordlist", path, "--count", "4", "--separator", "-", "--format", "json")
	require.NoError(t, err)

	out := decodeJSON(t, stdout)
	assert.Equal(t, path, out.Wordlist)
	assert.Equal(t, 4, out.WordlistSize)
	require.Len(t, out.Passphrases, 1)

	p := out.Passphrases[0]
	assert.InDelta(t, 8.0, p.EntropyBits, 1e-12)
	tokens := strings.Split(p.Text, "-")
	require.Len(t, tokens, 4)
	for _, tok := range tokens {
		assert.Contains(t, []string{"correct", "horse", "battery", "staple"}, tok)
	}
}

func TestGenerate_TextDefaults(t *testing.T) {
	stdout, _, err := run(t, "generate")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Len(t, strings.Split(lines[0], " "), 7)
	assert.Equal(t, "Entropy: 77.00 bits", lines[1])
}

func TestGenerate_QuietRepeat(t *testing.T) {
	stdout, _, err := run(t, "generate", "-q", "-r", "3", "-n", "5", "-s", ".")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Len(t, strings.Split(line, "."), 5)
	}
}

func TestGenerate_EntropyTarget(t *testing.T) {
	stdout, _, err := run(t, "generate", "--entropy", "40", "--format", "json")
	require.NoError(t, err)

	out := decodeJSON(t, stdout)
	require.Len(t, out.Passphrases, 1)
	assert.Len(t, out.Passphrases[0].Words, 4)
	assert.InDelta(t, 44.0, out.Passphrases[0].EntropyBits, 1e-9)
}

func TestGenerate_YAML(t *testing.T) {
	stdout, _, err := run(t, "generate", "--count", "3", "--format", "yaml")
	require.NoError(t, err)

	var out passphrasesOutput
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, "builtin:bip39-english", out.Wordlist)
	require.Len(t, out.Passphrases, 1)
	assert.Len(t, out.Passphrases[0].Words, 3)
}

func TestGenerate_ZeroCount(t *testing.T) {
	stdout, _, err := run(t, "generate", "--count", "0")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	assert.Empty(t, stdout, "no passphrase on error")
}

func TestGenerate_SingleWordList(t *testing.T) {
	path := writeWords(t, "solo", "solo")
	stdout, _, err := run(t, "generate", "--wordlist", path)
	assert.ErrorIs(t, err, domain.ErrInvalidWordlist)
	assert.Empty(t, stdout)
}

func TestGenerate_SeparatorCollision(t *testing.T) {
	path := writeWords(t, "ice-cream", "cone", "wafer")
	_, _, err := run(t, "generate", "--wordlist", path, "--separator", "-")
	assert.ErrorIs(t, err, domain.ErrInvalidWordlist)
}

func TestGenerate_MultiCharSeparatorOverlap(t *testing.T) {
	path := writeWords(t, "x-", "y", "z")
	stdout, _, err := run(t, "generate", "--wordlist", path, "--separator", "--")
	assert.ErrorIs(t, err, domain.ErrInvalidWordlist)
	assert.Empty(t, stdout)

	stdout, _, err = run(t, "generate", "--wordlist", path, "--separator", "")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	assert.Empty(t, stdout)
}

func TestGenerate_DigestPin(t *testing.T) {
	path := writeWords(t, "alpha", "beta", "gamma")
	wl, err := wordlist.LoadFile(context.Background(), path, wordlist.Options{})
	require.NoError(t, err)
	digest := crypto.WordlistDigest(wl)

	_, _, err = run(t, "generate", "--wordlist", path, "--wordlist-digest", digest)
	require.NoError(t, err)

	_, _, err = run(t, "generate", "--wordlist", path, "--wordlist-digest", strings.Repeat("0", 64))
	assert.ErrorIs(t, err, domain.ErrInvalidWordlist)
}

func TestGenerate_WordlistFromEnv(t *testing.T) {
	path := writeWords(t, "north", "south")
	t.Setenv("PASSPHRASES_WORDLIST", path)

	stdout, _, err := run(t, "generate", "-n", "6", "-q")
	require.NoError(t, err)
	for _, w := range strings.Fields(stdout) {
		assert.Contains(t, []string{"north", "south"}, w)
	}
}

func TestGenerate_ConfigFile(t *testing.T) {
	path := writeWords(t, "red", "green", "blue")
	cfg := filepath.Join(t.TempDir(), "passphrases.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("wordlist: "+path+"\ncount: 2\nseparator: \"+\"\n"), 0o600))

	stdout, _, err := run(t, "--config", cfg, "generate", "-q")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(stdout), "+"), 2)
}

func TestGenerate_Deterministic(t *testing.T) {
	gen := func() string {
		src, err := crypto.NewStreamSource([32]byte{3})
		require.NoError(t, err)
		appOptions = []app.Option{app.WithRandomSource(src)}
		t.Cleanup(func() { appOptions = nil })

		stdout, _, err := run(t, "generate", "-q")
		require.NoError(t, err)
		return stdout
	}
	assert.Equal(t, gen(), gen())
}

func TestGenerate_Copy(t *testing.T) {
	orig := writeClipboard
	var copied string
	writeClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { writeClipboard = orig })

	stdout, _, err := run(t, "generate", "-q", "-r", "2", "--copy")
	require.NoError(t, err)
	assert.Equal(t, strings.TrimRight(stdout, "\n"), copied)
}

func TestGenerate_CopyFailure(t *testing.T) {
	orig := writeClipboard
	writeClipboard = func(string) error { return errors.New("no display") }
	t.Cleanup(func() { writeClipboard = orig })

	stdout, _, err := run(t, "generate", "--copy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no display")
	assert.Empty(t, stdout)
}

func TestGenerate_MinEntropyWarning(t *testing.T) {
	_, stderr, err := run(t, "generate", "-n", "4", "--min-entropy", "64")
	require.NoError(t, err)
	assert.Contains(t, stderr, "below min_entropy")
	assert.Contains(t, stderr, "entropy_bits=44")
}

func TestGenerate_LogsNeverContainPassphrase(t *testing.T) {
	stdout, stderr, err := run(t, "generate", "-q", "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "passphrases generated")
	assert.NotContains(t, stderr, strings.TrimSpace(stdout))
}

func TestWordlistInfo(t *testing.T) {
	stdout, _, err := run(t, "wordlist", "info", "--format", "json")
	require.NoError(t, err)

	var info wordlistInfo
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.Equal(t, "builtin:bip39-english", info.Source)
	assert.Equal(t, 2048, info.Words)
	assert.InDelta(t, 11.0, info.BitsPerWord, 1e-12)
	assert.Len(t, info.Digest, 64)

	stdout, _, err = run(t, "wordlist", "info")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Words:      2048")
}

func TestWordlistList(t *testing.T) {
	stdout, _, err := run(t, "wordlist", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "builtin:bip39-english")
}

func TestWordlistExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "english.txt")
	stdout, _, err := run(t, "wordlist", "export", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote 2048 words")

	exported, err := wordlist.LoadFile(context.Background(), path, wordlist.Options{})
	require.NoError(t, err)
	builtin, err := wordlist.Builtin(wordlist.DefaultBuiltin, wordlist.Options{})
	require.NoError(t, err)
	assert.Equal(t, crypto.WordlistDigest(builtin), crypto.WordlistDigest(exported))
}

func TestMnemonic(t *testing.T) {
	stdout, _, err := run(t, "mnemonic", "--bits", "256", "--format", "json")
	require.NoError(t, err)

	out := decodeJSON(t, stdout)
	require.Len(t, out.Passphrases, 1)
	assert.Len(t, out.Passphrases[0].Words, 24)
	assert.InDelta(t, 256.0, out.Passphrases[0].EntropyBits, 1e-12)

	_, _, err = run(t, "mnemonic", "--bits", "100")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestMnemonicCheck(t *testing.T) {
	vector := strings.Fields("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")
	stdout, _, err := run(t, append([]string{"mnemonic", "check"}, vector...)...)
	require.NoError(t, err)
	assert.Equal(t, "valid\n", stdout)

	_, _, err = run(t, "mnemonic", "check", "correct", "horse", "battery", "staple")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "version", "--format", "xml")
	require.NoError(t, err)
	assert.Equal(t, "passphrases dev\n", stdout)
}
