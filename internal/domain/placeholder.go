package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// namespace scopes the placeholders of one masking phase. Tokens are a decimal
// counter between two Unicode noncharacters: the delimiters are not word
// characters and digits cannot start an identifier, so a token is never seen
// as an identifier, and tokens of different namespaces never match each other.
type namespace struct {
	name    string
	open    rune
	close   rune
	pattern *regexp.Regexp
}

func newNamespace(name string, left, right rune) namespace {
	return namespace{
		name:    name,
		open:    left,
		close:   right,
		pattern: regexp.MustCompile(regexp.QuoteMeta(string(left)) + `([0-9]+)` + regexp.QuoteMeta(string(right))),
	}
}

var (
	literalNamespace        = newNamespace("literal", '\uFDD0', '\uFDD1')
	commentNamespace        = newNamespace("comment", '\uFDD2', '\uFDD3')
	commentLiteralNamespace = newNamespace("comment-literal", '\uFDD4', '\uFDD5')
)

// reservedRunes may not appear in input text.
const reservedRunes = "\uFDD0\uFDD1\uFDD2\uFDD3\uFDD4\uFDD5"

func (n namespace) token(index int) string {
	var b strings.Builder

	b.WriteRune(n.open)
	b.WriteString(strconv.Itoa(index))
	b.WriteRune(n.close)

	return b.String()
}

// placeholders records the text hidden behind each token of one phase.
type placeholders struct {
	ns     namespace
	values []string
}

func newPlaceholders(ns namespace) *placeholders {
	return &placeholders{ns: ns}
}

// add stores text and returns the token that stands in for it.
func (p *placeholders) add(text string) string {
	token := p.ns.token(len(p.values))
	p.values = append(p.values, text)

	return token
}

func (p *placeholders) len() int {
	return len(p.values)
}

// restore replaces every token of this namespace in text with replace(index, original).
// Tokens whose index was never issued are left as they are.
func (p *placeholders) restore(text string, replace func(index int, original string) string) string {
	if len(p.values) == 0 {
		return text
	}

	return p.ns.pattern.ReplaceAllStringFunc(text, func(token string) string {
		digits := token[len(string(p.ns.open)) : len(token)-len(string(p.ns.close))]

		index, err := strconv.Atoi(digits)
		if err != nil || index >= len(p.values) {
			return token
		}

		return replace(index, p.values[index])
	})
}

// original restores tokens to the text they replaced.
func (p *placeholders) original(text string) string {
	return p.restore(text, func(_ int, original string) string {
		return original
	})
}
