package lorem

import "errors"

var (
	// ErrUnsupportedLanguage is returned when the language resolves to an
	// empty corpus.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrInvalidConfig wraps every Config validation failure.
	ErrInvalidConfig = errors.New("invalid generator config")
)
