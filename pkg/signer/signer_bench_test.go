package signer_test

import (
	"testing"
	"time"

	"github.com/sealkit/sealkit/pkg/signer"
)

func BenchmarkSign(b *testing.B) {
	s, err := signer.New("benchmark-secret")
	if err != nil {
		b.Fatal(err)
	}

	for i := 0; i < b.N; i++ {
		_ = s.Sign("user-42")
	}
}

func BenchmarkValidate(b *testing.B) {
	s, err := signer.New("benchmark-secret")
	if err != nil {
		b.Fatal(err)
	}
	token := s.Sign("user-42")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Validate(token, signer.WithMaxAge(time.Hour)); err != nil {
			b.Fatal(err)
		}
	}
}
