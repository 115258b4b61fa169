package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte("secret")
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

func TestSentinels_MatchThroughWrapping(t *testing.T) {
	err := fmt.Errorf("login admin: %w", ErrorUnauthorized)
	if !errors.Is(err, ErrorUnauthorized) {
		t.Fatalf("expected wrapped error to match ErrorUnauthorized, got %v", err)
	}
	if errors.Is(err, ErrorNotFound) {
		t.Fatalf("unexpected match with ErrorNotFound")
	}
}
