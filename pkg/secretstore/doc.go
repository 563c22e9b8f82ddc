// Package secretstore resolves secret key material from external sources.
//
// The signer package never fetches its own key; callers resolve the key
// through a Store implementation and pass the resulting string to
// signer.New. Two implementations are provided:
//
//   - SecretsManagerStore: a thin pass-through over AWS Secrets Manager,
//     with optional extraction of a single field from JSON-object secrets.
//   - EnvStore: environment-variable lookup for local development and tests.
//
// # Usage
//
//	import "github.com/sealkit/sealkit/pkg/secretstore"
//
//	store, err := secretstore.NewSecretsManagerStore(ctx, secretstore.Config{
//	    Region: "eu-central-1",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	key, err := store.GetSecret(ctx, "prod/signing-key")
//
//	// For secrets stored as JSON objects:
//	password, err := store.GetSecretKey(ctx, "prod/db", "password")
//
// Missing secrets surface as ErrSecretNotFound regardless of backend, so
// callers can match with errors.Is without knowing the store in use.
package secretstore
