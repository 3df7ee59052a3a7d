package java

import "github.com/pomsky-lang/pomsky-go/internal/flavor/unicodeprops"

// propertyTemplate: java.util.regex.Pattern is the one flavor in this set
// with a real block syntax (\p{InBasic_Latin}) alongside \p{Category} and
// \p{IsScriptName}.
var propertyTemplate = unicodeprops.Template{
	Category: `\p{%s}`,
	Script:   `\p{Is%s}`,
	Block:    `\p{In%s}`,
}

func lookupProperty(name string) (string, bool) {
	return unicodeprops.Lookup(name, propertyTemplate)
}

func knownProperties() []string {
	known := make([]string, 0, len(unicodeprops.Categories)+len(unicodeprops.Scripts)+len(unicodeprops.Blocks))
	known = append(known, unicodeprops.Categories...)
	known = append(known, unicodeprops.Scripts...)
	known = append(known, unicodeprops.Blocks...)
	return known
}
