package main

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/titanous/json5"
)

const (
	// formTokenSelector matches the carnivore input either by its own id or
	// nested inside the element carrying that id.
	formTokenSelector = "input#carnivoreatingbambu, #carnivoreatingbambu input"
)

var (
	identityNamePattern = newBoundedPattern("ursidae = ", ";")
	letterMapPattern    = newBoundedPattern("kretzoi = ", ";")
	payloadTokenPattern = newBoundedPattern(`oons" value="`, `"`)
)

// LetterCodeMap maps a single character to its numeric code for one session.
type LetterCodeMap map[string]int

// boundedPattern finds the first text between a literal prefix and the
// next occurrence of a literal terminator, on a single line.
type boundedPattern struct {
	prefix     string
	terminator string
	re         *regexp.Regexp
}

func newBoundedPattern(prefix, terminator string) *boundedPattern {
	return &boundedPattern{
		prefix:     prefix,
		terminator: terminator,
		re:         regexp.MustCompile(regexp.QuoteMeta(prefix) + `(.*?)` + regexp.QuoteMeta(terminator)),
	}
}

// Find returns the delimited text, or ErrPatternNotFound.
func (p *boundedPattern) Find(text string) (string, error) {
	match := p.re.FindStringSubmatch(text)
	if match == nil {
		return "", fmt.Errorf("%w: %q ... %q", ErrPatternNotFound, p.prefix, p.terminator)
	}
	return match[1], nil
}

// ExtractFormToken reads the value of the carnivore input on the ballot page.
func ExtractFormToken(document string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return "", fmt.Errorf("failed to parse form page: %w", err)
	}

	input := doc.Find(formTokenSelector).First()
	if input.Length() == 0 {
		return "", fmt.Errorf("%w: %s", ErrElementNotFound, formTokenSelector)
	}

	value, ok := input.Attr("value")
	if !ok {
		return "", fmt.Errorf("%w: value on %s", ErrAttributeMissing, formTokenSelector)
	}

	return value, nil
}

// ExtractIdentityName decodes the ursidae character-code array in the
// token script into a string.
func ExtractIdentityName(script string) (string, error) {
	literal, err := identityNamePattern.Find(script)
	if err != nil {
		return "", err
	}

	var codes []int
	if err := json5.Unmarshal([]byte(literal), &codes); err != nil {
		return "", fmt.Errorf("%w: ursidae is not a list of integers: %v", ErrInvalidEncoding, err)
	}
	if codes == nil {
		return "", fmt.Errorf("%w: ursidae is null", ErrInvalidEncoding)
	}

	return codesToString(codes)
}

func codesToString(codes []int) (string, error) {
	var sb strings.Builder
	for i, code := range codes {
		r := rune(code)
		if code < 0 || code > utf8.MaxRune || !utf8.ValidRune(r) {
			return "", fmt.Errorf("%w: %d at index %d", ErrInvalidCodePoint, code, i)
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

// ExtractLetterMap parses the kretzoi letter mapping in the token script.
func ExtractLetterMap(script string) (LetterCodeMap, error) {
	literal, err := letterMapPattern.Find(script)
	if err != nil {
		return nil, err
	}

	var letters LetterCodeMap
	if err := json5.Unmarshal([]byte(literal), &letters); err != nil {
		return nil, fmt.Errorf("%w: kretzoi is not a letter map: %v", ErrInvalidEncoding, err)
	}
	if letters == nil {
		return nil, fmt.Errorf("%w: kretzoi is null", ErrInvalidEncoding)
	}

	for key := range letters {
		if utf8.RuneCountInString(key) != 1 {
			return nil, fmt.Errorf("%w: kretzoi key %q is not a single character", ErrInvalidEncoding, key)
		}
	}

	return letters, nil
}

// ExtractPayloadToken reads the rogue raccoons value out of the payload script.
func ExtractPayloadToken(payload string) (string, error) {
	return payloadTokenPattern.Find(payload)
}
