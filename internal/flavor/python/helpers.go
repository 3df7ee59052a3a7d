package python

import "github.com/pomsky-lang/pomsky-go/internal/flavor/unicodeprops"

// propertyTemplate: the regex module supports `\p{Category}` and
// `\p{Script}` but, unlike Java, has no `\p{InBlockName}` block syntax.
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
