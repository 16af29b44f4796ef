package cmdutil

import (
	"errors"
	"fmt"

	"github.com/pfgen/cli/internal/config"
	oerrors "github.com/pfgen/cli/internal/errors"
	"github.com/pfgen/cli/internal/output"
)

// PrintError logs err in a user-friendly format and marks it as printed so
// main does not print it again. Config validation errors are listed per
// field.
func PrintError(msg string, err error) error {
	var exitErr *oerrors.ExitError
	var verrs config.ValidationErrors
	var detail *oerrors.DetailError

	switch {
	case errors.As(err, &verrs):
		output.Error(msg)
		for _, e := range verrs {
			output.Error(fmt.Sprintf("  %s: %s", e.Field, e.Message))
		}
	case errors.As(err, &exitErr):
		// The exit error carries the summary; its causes were reported already.
		if !exitErr.Printed {
			output.Error(msg, "error", exitErr.Err)
			exitErr.Printed = true
		}
		return exitErr
	case errors.As(err, &detail):
		output.Error(detail.Message, detailFields(detail)...)
		if detail.Hint != "" {
			output.Info(detail.Hint)
		}
	default:
		output.Error(msg, "error", err)
	}

	return &oerrors.ExitError{
		Code:    oerrors.ExitCodeFromError(err),
		Err:     err,
		Printed: true,
	}
}

func detailFields(d *oerrors.DetailError) []interface{} {
	var kv []interface{}
	if d.Field != "" {
		kv = append(kv, "field", d.Field)
	}
	if d.Location != "" {
		kv = append(kv, "location", d.Location)
	}
	return kv
}
