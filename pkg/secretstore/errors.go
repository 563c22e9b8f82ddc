package secretstore

import "errors"

var (
	// ErrSecretNotFound is returned when the requested secret does not exist.
	ErrSecretNotFound = errors.New("secretstore: secret not found")

	// ErrEmptySecret is returned when the secret exists but carries no string value.
	ErrEmptySecret = errors.New("secretstore: secret has no string value")

	// ErrInvalidSecretJSON is returned by GetSecretKey when the secret is not a JSON object.
	ErrInvalidSecretJSON = errors.New("secretstore: secret is not a JSON object")

	// ErrKeyNotFound is returned by GetSecretKey when the JSON object lacks the field.
	ErrKeyNotFound = errors.New("secretstore: key not found in secret")

	// ErrFailedToLoadConfig is returned when the AWS configuration cannot be assembled.
	ErrFailedToLoadConfig = errors.New("secretstore: failed to load AWS config")

	// ErrFailedToRetrieve wraps transport and service errors other than not-found.
	ErrFailedToRetrieve = errors.New("secretstore: failed to retrieve secret")
)
