package ruby

import "github.com/pomsky-lang/pomsky-go/internal/flavor/unicodeprops"

// propertyTemplate: Onigmo accepts `\p{Category}` and `\p{ScriptName}`
// in the same bare form, with no separate block syntax.
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
