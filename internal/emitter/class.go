package emitter

import (
	"fmt"
	"strings"

	"github.com/pomsky-lang/pomsky-go/internal/ast"
)

// shorthandEscape maps a class shorthand to its flavor-universal escape,
// negated form included: \w \d \s \h \v and their uppercase complements
// are valid both inside and outside a `[...]` union in every flavor this
// compiler targets, so no per-flavor dispatch is needed here.
var shorthandEscape = map[ast.ShorthandKind][2]string{
	ast.ShorthandWord:       {`\w`, `\W`},
	ast.ShorthandDigit:      {`\d`, `\D`},
	ast.ShorthandSpace:      {`\s`, `\S`},
	ast.ShorthandHorizSpace: {`\h`, `\H`},
	ast.ShorthandVertSpace:  {`\v`, `\V`},
}

// asciiShorthandBody maps an ASCII shorthand to the fragment embedded
// inside a `[...]` union; the same ASCII ranges apply under every flavor.
// See ast.AsciiShorthandDescriptions for each name's human-readable gloss
// (alphabetic, alphanumeric, blank, ...).
var asciiShorthandBody = map[ast.AsciiShorthandKind]string{
	"ascii":        `\x00-\x7F`,
	"ascii_alpha":  `a-zA-Z`,
	"ascii_alnum":  `a-zA-Z0-9`,
	"ascii_blank":  ` \t`,
	"ascii_cntrl":  `\x00-\x1F\x7F`,
	"ascii_digit":  `0-9`,
	"ascii_graph":  `\x21-\x7E`,
	"ascii_lower":  `a-z`,
	"ascii_print":  `\x20-\x7E`,
	"ascii_punct":  `!-/:-@\[-` + "`" + `{-~`,
	"ascii_space":  ` \t\n\r\f\v`,
	"ascii_upper":  `A-Z`,
	"ascii_word":   `a-zA-Z0-9_`,
	"ascii_xdigit": `0-9a-fA-F`,
}

func (em *emitter) writeCharClass(sb *strings.Builder, c *ast.CharClass) error {
	if frag, ok := soleCodepointShorthand(c); ok {
		sb.WriteString(frag)
		return nil
	}

	var body strings.Builder
	negated := c.Negated
	for i, item := range c.Items {
		sole := len(c.Items) == 1
		if err := em.writeClassItem(&body, item, sole, &negated); err != nil {
			return fmt.Errorf("class item %d: %w", i, err)
		}
	}

	sb.WriteByte('[')
	if negated {
		sb.WriteByte('^')
	}
	sb.WriteString(body.String())
	sb.WriteByte(']')
	return nil
}

// soleCodepointShorthand handles the "any code point" shorthand
// ([codepoint], [C], bare Codepoint/C) as a complete class expression: it
// always lowers to `[\s\S]`, never a DOTALL-mode `.`, so it behaves
// identically whether or not the flavor's dot matches newlines.
func soleCodepointShorthand(c *ast.CharClass) (string, bool) {
	if len(c.Items) != 1 {
		return "", false
	}
	sh, ok := c.Items[0].(*ast.ClassShorthand)
	if !ok || sh.Kind != ast.ShorthandCodepoint {
		return "", false
	}
	if c.Negated != sh.Negated {
		return `[^\s\S]`, true // matches nothing; a pathological but well-defined input
	}
	return `[\s\S]`, true
}

// writeClassItem appends item's fragment to body. sole reports whether
// item is the only member of its enclosing class, letting a negated
// ASCII/Unicode item fold its negation into the class-level bracket
// instead of needing a standalone complemented escape. negated is the
// class's own negation flag, flipped in place when a sole negated item
// folds into it.
func (em *emitter) writeClassItem(body *strings.Builder, item ast.ClassItem, sole bool, negated *bool) error {
	switch it := item.(type) {
	case *ast.ClassChar:
		body.WriteString(escapeClassRune(it.Rune, em.fl.ExtraMetachars()))
		return nil

	case *ast.ClassRange:
		body.WriteString(escapeClassRune(it.Lo, em.fl.ExtraMetachars()))
		body.WriteByte('-')
		body.WriteString(escapeClassRune(it.Hi, em.fl.ExtraMetachars()))
		return nil

	case *ast.ClassShorthand:
		pair := shorthandEscape[it.Kind]
		if it.Negated {
			body.WriteString(pair[1])
		} else {
			body.WriteString(pair[0])
		}
		return nil

	case *ast.ClassAsciiShorthand:
		frag := asciiShorthandBody[it.Kind]
		if !it.Negated {
			body.WriteString(frag)
			return nil
		}
		if sole {
			*negated = true // fold into the enclosing class negation
			body.WriteString(frag)
			return nil
		}
		return fmt.Errorf("negated ASCII shorthand %q cannot be combined with other members of the same class", it.Kind)

	case *ast.ClassUnicodeProperty:
		syntax, ok := em.fl.UnicodeProperty(it.Name)
		if !ok {
			return fmt.Errorf("flavor %q has no syntax for Unicode property %q", em.fl.Name(), it.Name)
		}
		if it.Negated {
			if sole {
				*negated = true
				body.WriteString(syntax)
				return nil
			}
			body.WriteString(negateProperty(syntax))
			return nil
		}
		body.WriteString(syntax)
		return nil

	default:
		return fmt.Errorf("unhandled class item %T", item)
	}
}

// negateProperty turns `\p{Name}` into `\P{Name}`, valid standalone inside
// or outside a class union under every flavor that supports \p{} at all.
func negateProperty(syntax string) string {
	if strings.HasPrefix(syntax, `\p`) {
		return `\P` + syntax[2:]
	}
	return syntax
}

// escapeClassRune escapes the handful of characters special inside a
// `[...]` union: `]`, `\`, `^`, and `-`.
func escapeClassRune(r rune, extra []rune) string {
	switch r {
	case ']', '\\', '^', '-':
		return `\` + string(r)
	}
	return escapeLiteralRuneInClass(r, extra)
}

func escapeLiteralRuneInClass(r rune, extra []rune) string {
	if containsRune(extra, r) {
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
	return string(r)
}
