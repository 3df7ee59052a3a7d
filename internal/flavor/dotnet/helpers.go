package dotnet

import "github.com/pomsky-lang/pomsky-go/internal/flavor/unicodeprops"

// propertyTemplate: .NET supports `\p{Category}` and `\p{IsScriptName}`
// but, like most flavors here, has no Unicode block syntax.
var propertyTemplate = unicodeprops.Template{
	Category: `\p{%s}`,
	Script:   `\p{Is%s}`,
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
