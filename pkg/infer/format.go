package infer

import (
	"regexp"
	"strconv"

	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// space matches the whitespace class used by browser regular expressions,
// which is wider than RE2's ASCII-only \s.
const space = `\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}`

var (
	emailPattern    = regexp.MustCompile(`^[^` + space + `@]+@[^` + space + `@]+\.[^` + space + `@]+$`)
	dateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(Z|[+-]\d{2}:\d{2})?$`)
	isoDatePattern  = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	usDatePattern   = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	euDatePattern   = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)
	blankPattern    = regexp.MustCompile(`^[` + space + `]*$`)
)

// IsBlank reports whether value is empty once browser whitespace is trimmed.
// U+FEFF counts as whitespace, U+0085 does not.
func IsBlank(value string) bool {
	return blankPattern.MatchString(value)
}

// DetectFormat returns the format annotation for a sample string, or "" when
// none applies. Email wins over date-time, date-time over date.
func DetectFormat(value string) schema.Format {
	switch {
	case IsEmail(value):
		return schema.FormatEmail
	case IsDateTime(value):
		return schema.FormatDateTime
	case IsDate(value):
		return schema.FormatDate
	default:
		return ""
	}
}

// IsEmail reports whether value has the local@domain.tld shape.
func IsEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// IsDateTime reports whether value is YYYY-MM-DDTHH:MM:SS with an optional Z
// or ±HH:MM offset. Fractional seconds are not accepted.
func IsDateTime(value string) bool {
	return dateTimePattern.MatchString(value)
}

// IsDate accepts YYYY-MM-DD (month 1-12, day 1-31, no calendar check),
// MM/DD/YYYY and DD-MM-YYYY. The last two are accepted on shape alone.
func IsDate(value string) bool {
	if m := isoDatePattern.FindStringSubmatch(value); m != nil {
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return month >= 1 && month <= 12 && day >= 1 && day <= 31
	}
	return usDatePattern.MatchString(value) || euDatePattern.MatchString(value)
}
