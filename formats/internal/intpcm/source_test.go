// SPDX-License-Identifier: EPL-2.0

package intpcm

import (
	"bytes"
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

type fakeReader struct {
	data []int
	pos  int
	err  error
}

func (f *fakeReader) Format() *goaudio.Format {
	return &goaudio.Format{NumChannels: 1, SampleRate: 8000}
}

func (f *fakeReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := copy(buf.Data, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func TestSource_Normalizes(t *testing.T) {
	t.Parallel()

	src := NewSource(&fakeReader{data: []int{0, 16384, -32768, 32767}}, 8000, 1, 16)

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}

	want := []float32{0, 0.5, -1, 32767.0 / 32768.0}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}

	if n, err := src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() at end = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestSource_ShortReadIsEOF(t *testing.T) {
	t.Parallel()

	src := NewSource(&fakeReader{data: []int{1, 2}}, 8000, 1, 16)

	n, err := src.ReadSamples(make([]float32, 8))
	if n != 2 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (2, EOF)", n, err)
	}
}

func TestSource_PropagatesError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src := NewSource(&fakeReader{err: boom}, 8000, 1, 16)

	if _, err := src.ReadSamples(make([]float32, 8)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want boom", err)
	}
}

func TestScale(t *testing.T) {
	t.Parallel()

	tests := map[int]float32{8: 128, 16: 32768, 24: 8388608, 32: 2147483648, 12: 32768}
	for depth, want := range tests {
		if got := Scale(depth); got != want {
			t.Errorf("Scale(%d) = %v, want %v", depth, got, want)
		}
	}
}

type plainReader struct{ r io.Reader }

func (p plainReader) Read(b []byte) (int, error) { return p.r.Read(b) }

func TestAsReadSeeker(t *testing.T) {
	t.Parallel()

	br := bytes.NewReader([]byte("abc"))
	rs, err := AsReadSeeker(br)
	if err != nil || rs != io.ReadSeeker(br) {
		t.Errorf("AsReadSeeker(seeker) = (%v, %v), want same reader", rs, err)
	}

	rs, err = AsReadSeeker(plainReader{bytes.NewReader([]byte("xyz"))})
	if err != nil {
		t.Fatalf("AsReadSeeker() error = %v", err)
	}
	got, _ := io.ReadAll(rs)
	if string(got) != "xyz" {
		t.Errorf("buffered data = %q, want xyz", got)
	}
}
