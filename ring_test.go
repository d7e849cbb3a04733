package bufkit_test

import (
	"testing"

	"github.com/jacoelho/bufkit"
)

func TestRingWriteRead(t *testing.T) {
	r := bufkit.NewRing(8)

	if err := r.WriteAll([]byte("abc")); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}
	if r.Len() != 3 || r.Free() != 5 || r.Cap() != 8 {
		t.Fatalf("unexpected accounting: len=%d free=%d cap=%d", r.Len(), r.Free(), r.Cap())
	}

	fillExpect(t, r, []byte("abc"))
	r.Consume(3)
	fillExpect(t, r, nil)
	if r.Free() != 8 {
		t.Fatalf("expected the full capacity back, got %d", r.Free())
	}
}

func TestRingOverflow(t *testing.T) {
	r := bufkit.NewRing(2)

	err := r.WriteAll([]byte("abc"))
	if err == nil {
		t.Fatalf("expected overflow, got nil")
	}
	if err.BytesPastEnd != 1 {
		t.Fatalf("expected 1 byte past end, got %d", err.BytesPastEnd)
	}
	// all-or-nothing: the failed write stored nothing
	if r.Len() != 0 {
		t.Fatalf("expected an empty ring, got %d bytes", r.Len())
	}

	if err := r.WriteAll([]byte("ab")); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}
	if err := r.WriteAll([]byte("c")); err == nil || err.BytesPastEnd != 1 {
		t.Fatalf("expected a 1 byte overflow, got %v", err)
	}
}

func TestRingWrapAround(t *testing.T) {
	r := bufkit.NewRing(4)

	if err := r.WriteAll([]byte("abcd")); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}
	fillExpect(t, r, []byte("abcd"))
	r.Consume(2)

	if err := r.WriteAll([]byte("xy")); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}

	// the stored bytes now wrap: one contiguous view up to the end of the
	// storage, then the remainder
	fillExpect(t, r, []byte("cdx"))
	r.Consume(3)
	fillExpect(t, r, []byte("y"))
	r.Consume(1)
	fillExpect(t, r, nil)
}

func TestRingDrainAcrossWrap(t *testing.T) {
	r := bufkit.NewRing(4)
	r.WriteAll([]byte("abcd"))
	r.Consume(2) // discard "ab" without reading
	r.WriteAll([]byte("ef"))

	got := readAll(t, r)
	if string(got) != "cdef" {
		t.Fatalf("expected %q, got %q", "cdef", got)
	}
}

func TestRingConsumeOverrunPanics(t *testing.T) {
	r := bufkit.NewRing(4)
	r.WriteAll([]byte("ab"))

	expectPanic(t, func() { r.Consume(3) })
}

func TestRingReset(t *testing.T) {
	r := bufkit.NewRing(4)
	r.WriteAll([]byte("abcd"))
	r.Reset()

	if r.Len() != 0 || r.Free() != 4 {
		t.Fatalf("expected an empty ring after Reset, len=%d free=%d", r.Len(), r.Free())
	}
	fillExpect(t, r, nil)
}

func TestRingCopyRoundTrip(t *testing.T) {
	ring := bufkit.NewRing(16)
	if _, err := bufkit.Copy[bufkit.Never, *bufkit.BufferOverflow](ring, bufkit.NewBytesReader([]byte("through the ring"))); err != nil {
		t.Fatalf("Copy in failed: %v", err)
	}

	var out bufkit.Buffer
	n, err := bufkit.Copy[*bufkit.BufferOverflow, bufkit.Never](&out, ring)
	if err != nil {
		t.Fatalf("Copy out failed: %v", err)
	}
	if n != 16 || out.String() != "through the ring" {
		t.Fatalf("expected %q (16), got %q (%d)", "through the ring", out.String(), n)
	}
}
