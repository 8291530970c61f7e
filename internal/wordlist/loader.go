package wordlist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"passphrases/internal/crypto"
	"passphrases/internal/domain"
)

const maxLineBytes = 1 << 20

// Options controls validation of a loaded list.
type Options struct {
	// No word may contain any character of Separator. Empty disables the check.
	Separator string
	// Digest, when set, pins the hex BLAKE2b-256 digest of the list.
	Digest string
	// Timeout bounds LoadFile and LoadContext on top of any ctx deadline.
	Timeout time.Duration
}

// Load reads a wordlist from r.
func Load(r io.Reader, opts Options) (domain.Wordlist, error) {
	return load(r, "reader", opts)
}

// LoadContext reads a wordlist from r, giving up when ctx is done or
// opts.Timeout elapses. On expiry r is closed when it is an io.Closer so the
// pending read returns; other readers must be unblocked by the caller.
func LoadContext(ctx context.Context, r io.Reader, source string, opts Options) (domain.Wordlist, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	type result struct {
		wl  domain.Wordlist
		err error
	}
	done := make(chan result, 1)
	go func() {
		wl, err := load(r, source, opts)
		done <- result{wl: wl, err: err}
	}()

	select {
	case res := <-done:
		return res.wl, res.err
	case <-ctx.Done():
		if c, ok := r.(io.Closer); ok {
			_ = c.Close()
		}
		return domain.Wordlist{}, fmt.Errorf("%w: loading %s: %w", domain.ErrInvalidWordlist, source, ctx.Err())
	}
}

// LoadFile opens path and loads it with LoadContext.
func LoadFile(ctx context.Context, path string, opts Options) (domain.Wordlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Wordlist{}, fmt.Errorf("%w: %w", domain.ErrInvalidWordlist, err)
	}
	defer f.Close()
	return LoadContext(ctx, f, path, opts)
}

func load(r io.Reader, source string, opts Options) (domain.Wordlist, error) {
	words, err := parse(r)
	if err != nil {
		return domain.Wordlist{}, fmt.Errorf("%w: reading %s: %w", domain.ErrInvalidWordlist, source, err)
	}
	wl, err := domain.NewWordlist(source, words)
	if err != nil {
		return domain.Wordlist{}, fmt.Errorf("%s: %w", source, err)
	}
	return check(wl, opts)
}

// check applies the separator and digest constraints shared by file and
// built-in lists.
func check(wl domain.Wordlist, opts Options) (domain.Wordlist, error) {
	if word, ok := wl.CollidesWith(opts.Separator); ok {
		return domain.Wordlist{}, fmt.Errorf("%w: %s: word %q contains separator %q",
			domain.ErrInvalidWordlist, wl.Source(), word, opts.Separator)
	}
	if opts.Digest != "" {
		got := crypto.WordlistDigest(wl)
		if !strings.EqualFold(got, strings.TrimSpace(opts.Digest)) {
			return domain.Wordlist{}, fmt.Errorf("%w: %s: digest %s does not match pinned %s",
				domain.ErrInvalidWordlist, wl.Source(), crypto.Fingerprint(got), crypto.Fingerprint(opts.Digest))
		}
	}
	return wl, nil
}

func parse(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var words []string
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if line == 1 {
			text = strings.TrimPrefix(text, "\ufeff")
		}
		if !utf8.ValidString(text) {
			return nil, fmt.Errorf("line %d is not valid UTF-8", line)
		}
		word := entry(text)
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// entry extracts the word from a line, dropping a leading dice-roll column.
func entry(line string) string {
	line = strings.TrimSpace(line)
	fields := strings.Fields(line)
	if len(fields) == 2 && isDiceRoll(fields[0]) {
		return fields[1]
	}
	return line
}

func isDiceRoll(s string) bool {
	if len(s) < 4 || len(s) > 6 {
		return false
	}
	for _, c := range s {
		if c < '1' || c > '6' {
			return false
		}
	}
	return true
}
