package signer_test

import (
	"crypto/sha1"
	"encoding/binary"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sealkit/sealkit/pkg/secrets"
	"github.com/sealkit/sealkit/pkg/signer"
)

func TestSignValidate_RoundTrip(t *testing.T) {
	t.Parallel()

	s, err := signer.New("somesupersecretvalue", signer.WithSalt("validate-email"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		value string
	}{
		{"simple value", "user-42"},
		{"empty value", ""},
		{"unicode", "héllo 世界 🌍"},
		{"json", `{"uid":"42","scope":"email"}`},
		{"value containing separators", "a.b.c.d"},
		{"long value", strings.Repeat("x", 2048)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			token := s.Sign(tt.value)
			require.Len(t, strings.Split(token, "."), 3)
			assert.NotEqual(t, tt.value, token)

			got, err := s.Validate(token)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)

			// Still valid with a generous max age.
			got, err = s.Validate(token, signer.WithMaxAge(100*time.Second))
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestSignAt_Deterministic(t *testing.T) {
	t.Parallel()

	s, err := signer.New("key")
	require.NoError(t, err)

	issuedAt := time.Unix(1735689600, 0)
	assert.Equal(t, s.SignAt("value", issuedAt), s.SignAt("value", issuedAt))
	assert.NotEqual(t, s.SignAt("value", issuedAt), s.SignAt("value", issuedAt.Add(time.Second)))
}

func TestValidate_TamperedSignature(t *testing.T) {
	t.Parallel()

	s, err := signer.New("key")
	require.NoError(t, err)

	token := s.Sign("user-42")
	parts := strings.Split(token, ".")
	sig := parts[2]

	// Flipping any single character of the signature must be detected.
	for i := range sig {
		flipped := byte('A')
		if sig[i] == 'A' {
			flipped = 'B'
		}
		tampered := parts[0] + "." + parts[1] + "." + sig[:i] + string(flipped) + sig[i+1:]
		_, err := s.Validate(tampered)
		require.ErrorIs(t, err, signer.ErrSignatureMismatch, "flipped signature byte %d", i)
	}
}

func TestValidate_TamperedValue(t *testing.T) {
	t.Parallel()

	s, err := signer.New("key")
	require.NoError(t, err)

	token := s.Sign("user-42")
	parts := strings.Split(token, ".")

	// Swap in the encoding of a different value, keeping timestamp and
	// signature intact.
	parts[0] = strings.Split(s.Sign("user-43"), ".")[0]

	_, err = s.Validate(strings.Join(parts, "."))
	require.ErrorIs(t, err, signer.ErrSignatureMismatch)
}

func TestValidate_Expiry(t *testing.T) {
	t.Parallel()

	s, err := signer.New("key")
	require.NoError(t, err)

	token := s.SignAt("value", time.Now().Add(-100*time.Second))

	_, err = s.Validate(token, signer.WithMaxAge(time.Second))
	require.ErrorIs(t, err, signer.ErrTokenExpired)

	got, err := s.Validate(token, signer.WithMaxAge(1000*time.Second))
	require.NoError(t, err)
	assert.Equal(t, "value", got)

	// No expiry check when max age is unset.
	got, err = s.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "value", got)
}

func TestValidate_ClockSkewTolerance(t *testing.T) {
	t.Parallel()

	s, err := signer.New("key")
	require.NoError(t, err)

	// A future-dated token inside the window validates.
	future := s.SignAt("value", time.Now().Add(30*time.Second))
	_, err = s.Validate(future, signer.WithMaxAge(time.Minute))
	require.NoError(t, err)

	// Outside the window it reports expiry.
	farFuture := s.SignAt("value", time.Now().Add(10*time.Minute))
	_, err = s.Validate(farFuture, signer.WithMaxAge(time.Minute))
	require.ErrorIs(t, err, signer.ErrTokenExpired)
}

func TestValidate_Structure(t *testing.T) {
	t.Parallel()

	s, err := signer.New("key")
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		reason error
	}{
		{"no separator", "nosep", signer.ErrSeparatorNotFound},
		{"two parts", "has.sep", signer.ErrInvalidStructure},
		{"four parts", "a.b.c.d", signer.ErrInvalidStructure},
		{"malformed timestamp segment", "dXNlcg.!!!!.c2ln", signer.ErrInvalidStructure},
		{"timestamp of wrong width", "dXNlcg.AQID.c2ln", signer.ErrInvalidStructure},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := s.Validate(tt.token)
			require.ErrorIs(t, err, tt.reason)

			var bad *signer.BadTokenError
			require.ErrorAs(t, err, &bad)
			assert.Equal(t, tt.token, bad.Token)
		})
	}
}

func TestValidate_MalformedSegmentsWrapDecodeError(t *testing.T) {
	t.Parallel()

	s, err := signer.New("key")
	require.NoError(t, err)

	// Valid structure, undecodable timestamp.
	_, err = s.Validate("dXNlcg.****.c2ln")
	require.ErrorIs(t, err, signer.ErrInvalidStructure)
	require.ErrorIs(t, err, signer.ErrDecode)
}

func TestNew_Rejections(t *testing.T) {
	t.Parallel()

	_, err := signer.New("")
	require.ErrorIs(t, err, signer.ErrMissingKey)

	for _, sep := range []string{"", "a", "Z", "0", "-", "_", "=", "a:b", ".x"} {
		_, err := signer.New("key", signer.WithSeparator(sep))
		require.ErrorIs(t, err, signer.ErrUnsafeSeparator, "separator %q", sep)
	}
}

func TestCustomSeparator(t *testing.T) {
	t.Parallel()

	for _, sep := range []string{":", "~~", "!"} {
		s, err := signer.New("key", signer.WithSeparator(sep))
		require.NoError(t, err, "separator %q", sep)

		token := s.Sign("user-42")
		require.Len(t, strings.Split(token, sep), 3)

		got, err := s.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "user-42", got)
	}
}

func TestKeyIndependence(t *testing.T) {
	t.Parallel()

	for i := 0; i < 1000; i++ {
		keyA, err := secrets.GenerateSecret(0)
		require.NoError(t, err)
		keyB, err := secrets.GenerateSecret(0)
		require.NoError(t, err)
		require.NotEqual(t, keyA, keyB)

		a, err := signer.New(keyA)
		require.NoError(t, err)
		b, err := signer.New(keyB)
		require.NoError(t, err)

		_, err = b.Validate(a.Sign("value"))
		require.ErrorIs(t, err, signer.ErrSignatureMismatch)
	}
}

func TestSaltIndependence(t *testing.T) {
	t.Parallel()

	a, err := signer.New("shared-key", signer.WithSalt("confirm-email"))
	require.NoError(t, err)
	b, err := signer.New("shared-key", signer.WithSalt("reset-password"))
	require.NoError(t, err)

	token := a.Sign("user-42")

	_, err = b.Validate(token)
	require.ErrorIs(t, err, signer.ErrSignatureMismatch)

	got, err := a.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", got)
}

func TestInjectedValidators(t *testing.T) {
	t.Parallel()

	s, err := signer.New("key")
	require.NoError(t, err)
	token := s.Sign("value")

	alwaysExpired := signer.TimestampValidatorFunc(
		func(time.Time, time.Duration) bool { return false })
	_, err = s.Validate(token, signer.WithTimestampValidator(alwaysExpired))
	require.ErrorIs(t, err, signer.ErrTokenExpired)

	neverMatches := signer.SignatureValidatorFunc(
		func(_, _ string) bool { return false })
	_, err = s.Validate(token, signer.WithSignatureValidator(neverMatches))
	require.ErrorIs(t, err, signer.ErrSignatureMismatch)
}

func TestAlgorithmAndByteOrderOptions(t *testing.T) {
	t.Parallel()

	legacy, err := signer.New("key", signer.WithAlgorithm(sha1.New))
	require.NoError(t, err)
	little, err := signer.New("key", signer.WithByteOrder(binary.LittleEndian))
	require.NoError(t, err)
	plain, err := signer.New("key")
	require.NoError(t, err)

	for _, s := range []*signer.Signer{legacy, little} {
		token := s.Sign("user-42")
		got, err := s.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "user-42", got)
	}

	// Tokens from a SHA-1 signer must not validate under SHA-256.
	_, err = plain.Validate(legacy.Sign("user-42"))
	require.ErrorIs(t, err, signer.ErrSignatureMismatch)
}

func TestDefaultValidators(t *testing.T) {
	t.Parallel()

	now := time.Now()
	assert.True(t, signer.DefaultTimestampValidator.ValidTimestamp(now.Add(-time.Hour), 0))
	assert.True(t, signer.DefaultTimestampValidator.ValidTimestamp(now, time.Minute))
	assert.False(t, signer.DefaultTimestampValidator.ValidTimestamp(now.Add(-2*time.Minute), time.Minute))

	assert.True(t, signer.DefaultSignatureValidator.Equal("abc", "abc"))
	assert.False(t, signer.DefaultSignatureValidator.Equal("abc", "abd"))
}
