package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// generatorCatalog maps compiler keys to CMake generator names.
var generatorCatalog = map[string]string{
	"gcc":   "Unix Makefiles",
	"mingw": "MinGW Makefiles",
	"msvc":  "Visual Studio 17 2022",
	"vs":    "Visual Studio 17 2022",
	"ninja": "Ninja",
	"xcode": "Xcode",
}

// multiConfigMarkers identify generators that select the configuration at build time.
var multiConfigMarkers = []string{"visual studio", "xcode", "multi-config"}

// LookupGenerator resolves a compiler key to its generator name.
// The key is matched case-insensitively. Unknown keys return ErrUnknownGenerator.
func LookupGenerator(key string) (string, error) {
	name, ok := generatorCatalog[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		err := zerr.Wrap(ErrUnknownGenerator, "cannot resolve generator")
		err = zerr.With(err, "key", key)
		return "", zerr.With(err, "available", strings.Join(GeneratorKeys(), ", "))
	}
	return name, nil
}

// GeneratorKeys returns the known compiler keys in sorted order.
func GeneratorKeys() []string {
	keys := make([]string, 0, len(generatorCatalog))
	for k := range generatorCatalog {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// IsMultiConfig reports whether the generator defers configuration selection to build time.
func IsMultiConfig(generator string) bool {
	lower := strings.ToLower(generator)
	for _, marker := range multiConfigMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// IsVisualStudio reports whether the generator belongs to the Visual Studio family.
func IsVisualStudio(generator string) bool {
	return strings.Contains(strings.ToLower(generator), "visual studio")
}
