package bufkit_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jacoelho/bufkit"
)

func TestChainBothEmpty(t *testing.T) {
	r := bufkit.Chain(bufkit.NewBytesReader(nil), bufkit.NewBytesReader(nil))

	fillExpect(t, r, nil)
	fillExpect(t, r, nil)
	fillExpect(t, r, nil)
}

func TestChainFirstThenEmpty(t *testing.T) {
	r := bufkit.Chain(bufkit.NewBytesReader([]byte{1}), bufkit.NewBytesReader(nil))

	fillExpect(t, r, []byte{1})
	r.Consume(1)
	fillExpect(t, r, nil)
	fillExpect(t, r, nil)
}

func TestChainEmptyThenSecond(t *testing.T) {
	r := bufkit.Chain(bufkit.NewBytesReader(nil), bufkit.NewBytesReader([]byte{42}))

	// the switch to the second reader happens inside the first call
	fillExpect(t, r, []byte{42})
	r.Consume(1)
	fillExpect(t, r, nil)
}

func TestChainBothSides(t *testing.T) {
	r := bufkit.Chain(bufkit.NewBytesReader([]byte{42}), bufkit.NewBytesReader([]byte{21}))

	fillExpect(t, r, []byte{42})
	r.Consume(1)
	fillExpect(t, r, []byte{21})
	r.Consume(1)
	fillExpect(t, r, nil)
	fillExpect(t, r, nil)
}

func TestChainConcatenation(t *testing.T) {
	tests := []struct {
		name  string
		first string
		next  string
	}{
		{"BothData", "hello ", "world"},
		{"FirstEmpty", "", "world"},
		{"SecondEmpty", "hello", ""},
		{"BothEmpty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bufkit.Chain(
				bufkit.NewBytesReader([]byte(tt.first)),
				bufkit.NewBytesReader([]byte(tt.next)),
			)
			got := readAll(t, r)
			want := tt.first + tt.next
			if !bytes.Equal(got, []byte(want)) {
				t.Fatalf("expected %q, got %q", want, got)
			}
			fillExpect(t, r, nil)
		})
	}
}

func TestChainFirstNotConsultedAfterSwitch(t *testing.T) {
	first := &countingReader{inner: bufkit.NewBytesReader(nil)}
	r := bufkit.Chain[bufkit.Never](first, bufkit.NewBytesReader([]byte("xy")))

	fillExpect(t, r, []byte("xy"))
	fills := first.fills
	fillExpect(t, r, []byte("xy"))
	if first.fills != fills {
		t.Fatalf("first reader was consulted after the switch")
	}
}

func TestChainErrorPropagation(t *testing.T) {
	boom := errors.New("boom")

	t.Run("FirstFails", func(t *testing.T) {
		r := bufkit.Chain[error](&scriptReader{err: boom}, &scriptReader{})
		if _, err := r.FillBuf(); err != boom {
			t.Fatalf("expected %v, got %v", boom, err)
		}
	})

	t.Run("SecondFails", func(t *testing.T) {
		r := bufkit.Chain[error](
			&scriptReader{chunks: [][]byte{[]byte("a")}},
			&scriptReader{err: boom},
		)
		fillExpect(t, r, []byte("a"))
		r.Consume(1)
		if _, err := r.FillBuf(); err != boom {
			t.Fatalf("expected %v, got %v", boom, err)
		}
	})
}
