package project

import (
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	namePolicyOnce sync.Once
	namePolicy     *bluemonday.Policy

	filenameSpace   = regexp.MustCompile(`[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]+`)
	filenameInvalid = regexp.MustCompile(`[^a-z0-9-]`)
	filenameDashes  = regexp.MustCompile(`-+`)
)

// SanitizeName strips markup from a project name and trims it.
func SanitizeName(name string) string {
	namePolicyOnce.Do(func() {
		namePolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(namePolicy.Sanitize(name)))
}

// SanitizeFilename turns a project name into a file-system friendly slug:
// lower case, whitespace runs as "-", only [a-z0-9-] kept, no repeated or
// edge dashes. An empty result becomes "untitled".
func SanitizeFilename(name string) string {
	out := strings.TrimSpace(strings.ToLower(name))
	out = filenameSpace.ReplaceAllString(out, "-")
	out = filenameInvalid.ReplaceAllString(out, "")
	out = filenameDashes.ReplaceAllString(out, "-")
	out = strings.Trim(out, "-")
	if out == "" {
		return "untitled"
	}
	return out
}
