package bls12381

import (
	"bytes"
	"testing"
)

func TestExpandMessageXMDDeterministic(t *testing.T) {
	msg := []byte("hello world")
	out1, err := expandMessageXMD(msg, DSTHashToG1, 128)
	if err != nil {
		t.Fatalf("expandMessageXMD error: %v", err)
	}
	out2, err := expandMessageXMD(msg, DSTHashToG1, 128)
	if err != nil {
		t.Fatalf("expandMessageXMD error: %v", err)
	}
	if !bytes.Equal(out1, out2) {
		t.Fatal("expandMessageXMD is not deterministic")
	}
	if len(out1) != 128 {
		t.Fatalf("expandMessageXMD returned %d bytes, want 128", len(out1))
	}
}

func TestExpandMessageXMDRejectsOversizeParameters(t *testing.T) {
	longDST := bytes.Repeat([]byte{0x01}, 256)
	if _, err := expandMessageXMD([]byte("msg"), longDST, 32); err != ErrInvalidExpandLength {
		t.Fatalf("expected ErrInvalidExpandLength for oversize dst, got %v", err)
	}
	if _, err := expandMessageXMD([]byte("msg"), DSTHashToG1, 256*32+1); err != ErrInvalidExpandLength {
		t.Fatalf("expected ErrInvalidExpandLength for oversize L, got %v", err)
	}
}

func TestExpandMessageXMDVariesWithInput(t *testing.T) {
	a, err := expandMessageXMD([]byte("message one"), DSTHashToG1, 64)
	if err != nil {
		t.Fatalf("expandMessageXMD error: %v", err)
	}
	b, err := expandMessageXMD([]byte("message two"), DSTHashToG1, 64)
	if err != nil {
		t.Fatalf("expandMessageXMD error: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatal("expandMessageXMD produced identical output for different messages")
	}
}

func TestHashToG1ProducesValidSubgroupPoint(t *testing.T) {
	p, err := HashToG1([]byte("test message"), DSTHashToG1)
	if err != nil {
		t.Fatalf("HashToG1 error: %v", err)
	}
	if p.Inf {
		t.Fatal("HashToG1 returned the point at infinity")
	}
	if !g1IsOnCurve(p) {
		t.Fatal("HashToG1 result not on curve")
	}
	if !g1InSubgroup(p) {
		t.Fatal("HashToG1 result not in order-r subgroup")
	}
}

func TestHashToG1Deterministic(t *testing.T) {
	p1, err := HashToG1([]byte("deterministic"), DSTHashToG1)
	if err != nil {
		t.Fatalf("HashToG1 error: %v", err)
	}
	p2, err := HashToG1([]byte("deterministic"), DSTHashToG1)
	if err != nil {
		t.Fatalf("HashToG1 error: %v", err)
	}
	if !g1Equal(p1, p2) {
		t.Fatal("HashToG1 is not deterministic for a fixed (msg, dst)")
	}
}

func TestHashToG1RejectsEmptyDST(t *testing.T) {
	if _, err := HashToG1([]byte("msg"), nil); err != ErrInvalidExpandLength {
		t.Fatalf("expected ErrInvalidExpandLength for empty dst, got %v", err)
	}
}
