package pcre

import "github.com/pomsky-lang/pomsky-go/internal/flavor/unicodeprops"

// propertyTemplate describes PCRE2's \p{...} syntax: categories and
// scripts share the same bare form, PCRE2 has no notion of Unicode
// blocks at all.
var propertyTemplate = unicodeprops.Template{
	Category: `\p{%s}`,
	Script:   `\p{%s}`,
}

func lookupProperty(name string) (string, bool) {
	return unicodeprops.Lookup(name, propertyTemplate)
}

func knownProperties() []string {
	known := make([]string, 0, len(unicodeprops.Categories)+len(unicodeprops.Scripts))
	known = append(known, unicodeprops.Categories...)
	known = append(known, unicodeprops.Scripts...)
	return known
}
