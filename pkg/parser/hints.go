package parser

import (
	"fmt"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/sandrolain/golox/pkg/types"
)

// literalKeywords are the keywords that can start a primary expression.
var literalKeywords = []string{"true", "false", "nil"}

// suggestLiteral returns a hint when an identifier in primary position is
// a likely misspelling of a literal keyword, e.g. "ture" or "nill".
func suggestLiteral(tok types.Token) string {
	if tok.Type != types.TokenIdentifier || len(tok.Lexeme) < 2 {
		return ""
	}

	best, bestDist := "", 3
	for _, kw := range literalKeywords {
		d := fuzzy.LevenshteinDistance(tok.Lexeme, kw)
		if d < bestDist {
			best, bestDist = kw, d
		}
	}
	// Short words are only one edit away from many things.
	if best == "" || (bestDist == 2 && len(tok.Lexeme) < 4) {
		return ""
	}
	return fmt.Sprintf("did you mean '%s'?", best)
}
