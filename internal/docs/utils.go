package docs

import "strings"

// containsPathTraversal checks if a path contains a ".." component.
func containsPathTraversal(path string) bool {
	isSep := func(r rune) bool { return r == '/' || r == '\\' }
	for _, part := range strings.FieldsFunc(path, isSep) {
		if part == ".." {
			return true
		}
	}
	return false
}
