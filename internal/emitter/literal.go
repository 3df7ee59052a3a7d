package emitter

import (
	"strings"
	"unicode"

	"github.com/pomsky-lang/pomsky-go/internal/ast"
	"github.com/pomsky-lang/pomsky-go/internal/flavor"
)

// baselineMetachars are escaped in a literal under every flavor in this
// set.
const baselineMetachars = `.^$|?*+()[]{}\`

func (em *emitter) writeLiteral(sb *strings.Builder, l *ast.Literal) {
	for _, r := range l.Text {
		sb.WriteString(escapeLiteralRune(r, em.fl))
	}
}

func escapeLiteralRune(r rune, fl flavor.Flavor) string {
	if strings.ContainsRune(baselineMetachars, r) || containsRune(fl.ExtraMetachars(), r) {
		return `\` + string(r)
	}
	switch r {
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	}
	if !unicode.IsPrint(r) {
		return fl.HexEscape(r)
	}
	return string(r)
}

func containsRune(rs []rune, r rune) bool {
	for _, x := range rs {
		if x == r {
			return true
		}
	}
	return false
}
