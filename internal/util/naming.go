package util

import (
	"fmt"
	"regexp"
	"strings"
)

var fileNameRegexp = regexp.MustCompile("[^a-z0-9_.-]+")

// ExportFileName builds a safe file name for an exported diagram image
// from the repository's full name.
func ExportFileName(repoFullName string) string {
	safeName := strings.ToLower(strings.ReplaceAll(repoFullName, "/", "-"))
	safeName = fileNameRegexp.ReplaceAllString(safeName, "")
	if safeName == "" {
		safeName = "diagram"
	}

	name := fmt.Sprintf("%s.png", safeName)

	const maxFileNameLength = 255
	if len(name) > maxFileNameLength {
		name = name[:maxFileNameLength-4] + ".png"
	}
	return name
}
