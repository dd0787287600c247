package transformer

import (
	"path"
	"regexp"
	"strings"
)

// DerivedImageExtension is the file extension of derived images
const DerivedImageExtension = ".jpg"

var (
	alphanumeric      = regexp.MustCompile(`[A-Za-z0-9]`)
	invalidTitleChars = regexp.MustCompile(`[^A-Za-z0-9_]`)
	filesystemChars   = regexp.MustCompile(`[\\/:*?<>|&;]`)
)

// BuildDerivedImageTitle names the derived image (overview, thumbnail...)
// generated from a product titled title. The base name of the title is
// reduced to lowercase letters, digits and underscores and prefixed with the
// qualifier; a title with no letters or digits falls back to the qualifier
// alone.
func BuildDerivedImageTitle(title string, qualifier string) string {
	qualifier = filesystemChars.ReplaceAllString(qualifier, "")
	base := path.Base(strings.ReplaceAll(title, `\`, "/"))
	base = strings.TrimSuffix(base, path.Ext(base))
	if !alphanumeric.MatchString(base) {
		return qualifier + DerivedImageExtension
	}
	stripped := invalidTitleChars.ReplaceAllString(base, "")
	return strings.ToLower(qualifier + "-" + stripped + DerivedImageExtension)
}
