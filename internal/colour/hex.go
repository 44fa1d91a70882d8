package colour

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidHex is the sentinel wrapped by every FormatError.
var ErrInvalidHex = errors.New("invalid hex colour")

// FormatError reports a token that is not a 6-digit hex colour.
type FormatError struct {
	Token  string
	Reason string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid hex colour %q: %s", e.Token, e.Reason)
}

// Unwrap returns ErrInvalidHex.
func (e *FormatError) Unwrap() error {
	return ErrInvalidHex
}

// ParseHex parses a 6-digit hex colour, optionally prefixed with a single '#'.
// With normalize set, channels are divided by 255 and the triple is tagged normalised.
func ParseHex(token string, normalize bool) (Triple, error) {
	rgb, err := parseHexRGB(token)
	if err != nil {
		return Triple{}, err
	}
	if normalize {
		return NormalizedTriple(rgb), nil
	}
	return IntTriple(rgb), nil
}

// MustParseHex is like ParseHex with normalize unset but panics on error.
// It is intended for constant colours in code and tests.
func MustParseHex(token string) RGB {
	rgb, err := parseHexRGB(token)
	if err != nil {
		panic(err)
	}
	return rgb
}

func parseHexRGB(token string) (RGB, error) {
	digits := strings.TrimPrefix(token, "#")
	if len(digits) != 6 {
		return RGB{}, &FormatError{
			Token:  token,
			Reason: fmt.Sprintf("expected 6 hex digits, got %d", len(digits)),
		}
	}

	var ch [3]uint8
	for i := range ch {
		group := digits[i*2 : i*2+2]
		v, err := strconv.ParseUint(group, 16, 8)
		if err != nil {
			return RGB{}, &FormatError{
				Token:  token,
				Reason: fmt.Sprintf("%q is not a hex byte", group),
			}
		}
		ch[i] = uint8(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// Separator selects how batch text is split into tokens.
type Separator int

const (
	// SeparatorNewline splits on line breaks only.
	SeparatorNewline Separator = iota
	// SeparatorAny splits on any run of commas, semicolons or whitespace.
	SeparatorAny
)

// SkippedToken is a batch token that failed to parse.
type SkippedToken struct {
	Token string
	Err   error
}

// BatchResult is the outcome of ScanHexBatch.
type BatchResult struct {
	Triples []Triple
	Skipped []SkippedToken
}

// ParseHexBatch parses one hex colour per line, dropping lines that fail to parse.
// It never fails and returns an empty slice when nothing parses.
func ParseHexBatch(text string, normalize bool) []Triple {
	return ScanHexBatch(text, SeparatorNewline, normalize).Triples
}

// ParseHexList is the permissive form of ParseHexBatch: tokens may be separated
// by any mix of commas, semicolons and whitespace.
func ParseHexList(text string, normalize bool) []Triple {
	return ScanHexBatch(text, SeparatorAny, normalize).Triples
}

// ScanHexBatch splits text with sep and parses every non-empty token.
// Tokens that fail are reported in Skipped rather than aborting the batch.
func ScanHexBatch(text string, sep Separator, normalize bool) BatchResult {
	res := BatchResult{Triples: []Triple{}}
	for _, tok := range splitTokens(text, sep) {
		t, err := ParseHex(tok, normalize)
		if err != nil {
			res.Skipped = append(res.Skipped, SkippedToken{Token: tok, Err: err})
			continue
		}
		res.Triples = append(res.Triples, t)
	}
	return res
}

func splitTokens(text string, sep Separator) []string {
	var fields []string
	switch sep {
	case SeparatorAny:
		fields = strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ';' || unicode.IsSpace(r)
		})
	default:
		fields = strings.Split(text, "\n")
	}

	tokens := fields[:0]
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
