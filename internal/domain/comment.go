package domain

import (
	"regexp"
	"strings"
	"sync"

	m "veil.dev/pkg/veil/internal/model"
)

var commentPatterns sync.Map // m.CommentSyntax -> *regexp.Regexp

// commentPattern matches a closed block comment or a line comment up to, not
// including, the newline. A block start without an end marker is not a match,
// so the text after it is still renamed.
func commentPattern(syntax m.CommentSyntax) *regexp.Regexp {
	if cached, ok := commentPatterns.Load(syntax); ok {
		return cached.(*regexp.Regexp)
	}

	expr := `(?m:` + regexp.QuoteMeta(syntax.LinePrefix) + `.*)`
	if syntax.HasBlock() {
		block := `(?s:` + regexp.QuoteMeta(syntax.BlockStart) + `.*?` + regexp.QuoteMeta(syntax.BlockEnd) + `)`
		expr = block + `|` + expr
	}

	pattern := regexp.MustCompile(expr)
	commentPatterns.Store(syntax, pattern)

	return pattern
}

// extractComments swaps every comment for a comment token. Literals are masked
// in their own namespace first so that quotes and comment markers inside them
// cannot open or close a comment, then restored both in the text and inside
// the recorded comments.
func extractComments(text string, profile m.Profile) (string, *placeholders) {
	masked, literals := maskLiterals(text, profile.LongStrings, commentLiteralNamespace)
	comments := newPlaceholders(commentNamespace)

	masked = commentPattern(profile.Comments).ReplaceAllStringFunc(masked, func(comment string) string {
		return comments.add(literals.original(comment))
	})

	return literals.original(masked), comments
}

// stripResult reports what stripComments removed.
type stripResult struct {
	comments      int
	strippedLines int
}

// stripComments deletes comments line by line. A single flag tracks whether a
// block comment is open, so block comments do not nest: the first end marker
// closes the block. Lines left blank by the removal are dropped; lines that
// were already blank are kept.
func stripComments(text string, profile m.Profile) (string, stripResult) {
	masked, literals := maskLiterals(text, profile.LongStrings, commentLiteralNamespace)

	var (
		result  stripResult
		inBlock bool
	)

	lines := strings.Split(masked, "\n")
	kept := make([]string, 0, len(lines))

	for _, line := range lines {
		body, carriage := strings.CutSuffix(line, "\r")

		stripped, removed, comments := stripLine(body, profile.Comments, &inBlock)
		result.comments += comments

		if removed && strings.TrimSpace(stripped) == "" {
			result.strippedLines++
			continue
		}

		if carriage {
			stripped += "\r"
		}

		kept = append(kept, stripped)
	}

	return literals.original(strings.Join(kept, "\n")), result
}

// stripLine removes comment text from one line, scanning for the earliest
// marker each time so that "/* // */ code" keeps "code". It returns the
// remaining text, whether anything was removed and how many comments started
// on this line.
func stripLine(line string, syntax m.CommentSyntax, inBlock *bool) (string, bool, int) {
	var (
		kept     strings.Builder
		removed  bool
		comments int
	)

	rest := line

	for {
		if *inBlock {
			removed = true

			end := strings.Index(rest, syntax.BlockEnd)
			if end < 0 {
				break
			}

			rest = rest[end+len(syntax.BlockEnd):]
			*inBlock = false

			continue
		}

		lineAt := strings.Index(rest, syntax.LinePrefix)

		blockAt := -1
		if syntax.HasBlock() {
			blockAt = strings.Index(rest, syntax.BlockStart)
		}

		switch {
		case blockAt >= 0 && (lineAt < 0 || blockAt <= lineAt):
			kept.WriteString(rest[:blockAt])
			rest = rest[blockAt+len(syntax.BlockStart):]
			*inBlock = true
			comments++

			continue
		case lineAt >= 0:
			kept.WriteString(rest[:lineAt])
			comments++
			removed = true
		default:
			kept.WriteString(rest)
		}

		break
	}

	if removed {
		return strings.TrimRight(kept.String(), " \t"), true, comments
	}

	return kept.String(), false, comments
}
