package validation

import (
	"errors"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbuilder/pkg/infer"
	"github.com/goliatone/go-formbuilder/pkg/schema"
)

var registerFormats sync.Once

// ensureFormats replaces kin-openapi's string format checks with the
// detectors used during inference, so a schema generated from a sample
// always accepts that sample.
func ensureFormats() {
	registerFormats.Do(func() {
		define(schema.FormatEmail, infer.IsEmail, "not a valid email address")
		define(schema.FormatDateTime, infer.IsDateTime, "not a valid date-time")
		define(schema.FormatDate, infer.IsDate, "not a valid date")
	})
}

func define(format schema.Format, match func(string) bool, reason string) {
	openapi3.DefineStringFormatValidator(string(format), openapi3.NewCallbackValidator(func(value string) error {
		if match(value) {
			return nil
		}
		return errors.New(reason)
	}))
}
