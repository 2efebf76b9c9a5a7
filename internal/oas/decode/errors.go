package decode

import (
	"strconv"

	"github.com/goliatone/go-oasmodel/pkg/oas"
)

func malformed(path, message string) *oas.DecodeError {
	return &oas.DecodeError{
		Code:    oas.CodeMalformedField,
		Path:    path,
		Message: message,
	}
}

func itoa(idx int) string {
	return strconv.Itoa(idx)
}
