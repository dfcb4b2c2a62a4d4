package domain

import "errors"

var (
	// ErrMissingFields indica fullName, email ou position ausente/vazio.
	ErrMissingFields = errors.New("missing required fields")
	// ErrInvalidPayload indica corpo ausente ou que não é um objeto JSON.
	ErrInvalidPayload = errors.New("invalid JSON payload")
	// ErrNotFound indica arquivo estático inexistente (ou fora da raiz).
	ErrNotFound = errors.New("not found")
)

// ValidationError é o erro de cliente (4xx) do cadastro.
// JSON malformado também é tratado como ValidationError.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

// IsValidation informa se err (ou algo que ele embrulha) é ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
