// File: inifile/helper.go
package inifile

import "strings"

// flattenMap converts a nested map[string]any to a flat map[string]any with
// dot-notation paths.
func flattenMap(nested map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)

	for key, value := range nested {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		if nestedMap, isMap := value.(map[string]any); isMap {
			for subPath, subValue := range flattenMap(nestedMap, path) {
				flat[subPath] = subValue
			}
		} else {
			flat[path] = value
		}
	}

	return flat
}

// setNestedValue sets a value in a nested map using a dot-notation path,
// creating intermediate maps as needed. A segment that exists but is not a
// map is overwritten by a new map.
func setNestedValue(nested map[string]any, path string, value any) {
	segments := strings.Split(path, ".")
	current := nested

	for i := 0; i < len(segments)-1; i++ {
		segment := segments[i]

		if next, exists := current[segment]; exists {
			if nextMap, isMap := next.(map[string]any); isMap {
				current = nextMap
				continue
			}
		}
		newMap := make(map[string]any)
		current[segment] = newMap
		current = newMap
	}

	current[segments[len(segments)-1]] = value
}
