// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/ik5/audconv/audio"
	"github.com/ik5/audconv/internal/audiotest"
)

type fixedCapability struct {
	buf  *audio.Buffer
	err  error
	rate int
}

func (f fixedCapability) Decode([]byte, audio.Format) (*audio.Buffer, error) { return f.buf, f.err }
func (f fixedCapability) SampleRate() int                                     { return f.rate }

func TestSynthesize(t *testing.T) {
	t.Parallel()

	buf := Synthesize(44100, FallbackSeconds)

	if err := buf.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if buf.Channels() != 2 || buf.Frames() != 88200 || buf.SampleRate != 44100 {
		t.Fatalf("shape = %d ch, %d frames, %d Hz", buf.Channels(), buf.Frames(), buf.SampleRate)
	}

	for _, i := range []int{0, 1, 25, 100, 44099, 88199} {
		want := float32(math.Sin(2*math.Pi*440*float64(i)/44100) * 0.3)
		if buf.Data[0][i] != want {
			t.Errorf("left[%d] = %v, want %v", i, buf.Data[0][i], want)
		}
		if buf.Data[1][i] != buf.Data[0][i] {
			t.Errorf("right[%d] = %v, want identical to left", i, buf.Data[1][i])
		}
	}

	var peak float32
	for _, s := range buf.Data[0] {
		peak = max(peak, float32(math.Abs(float64(s))))
	}
	if peak > 0.3 || peak < 0.29 {
		t.Errorf("peak = %v, want about 0.3", peak)
	}

	// Channels must not share storage.
	buf.Data[0][1] = 9
	if buf.Data[1][1] == 9 {
		t.Error("channels share a backing array")
	}
}

func TestSynthesize_Deterministic(t *testing.T) {
	t.Parallel()

	a := Synthesize(8000, 0.5)
	b := Synthesize(8000, 0.5)
	for i := range a.Data[0] {
		if a.Data[0][i] != b.Data[0][i] {
			t.Fatalf("sample %d differs between runs", i)
		}
	}
	if a.Frames() != 4000 {
		t.Errorf("Frames() = %d, want 4000", a.Frames())
	}
}

func TestSampleSource_Success(t *testing.T) {
	t.Parallel()

	want, _ := audio.NewBuffer(1, 10, 8000)
	src := NewSampleSource(fixedCapability{buf: want, rate: 8000})

	res := src.Decode([]byte("x"), audio.FormatWAV)
	if res.Synthetic || res.Cause != nil {
		t.Errorf("Decode() = synthetic %v, cause %v", res.Synthetic, res.Cause)
	}
	if res.Buffer != want {
		t.Error("Decode() did not return the capability buffer")
	}
}

func TestSampleSource_FallbackOnError(t *testing.T) {
	t.Parallel()

	logs := new(bytes.Buffer)
	logger := slog.New(slog.NewTextHandler(logs, nil))
	boom := errors.New("boom")

	src := NewSampleSource(fixedCapability{err: boom, rate: 48000}, WithLogger(logger))
	res := src.Decode([]byte("x"), audio.FormatMP3)

	if !res.Synthetic {
		t.Fatal("Decode() Synthetic = false, want true")
	}
	if !errors.Is(res.Cause, boom) {
		t.Errorf("Cause = %v, want boom", res.Cause)
	}
	if res.Buffer.SampleRate != 48000 || res.Buffer.Frames() != 96000 || res.Buffer.Channels() != 2 {
		t.Errorf("fallback shape = %d Hz, %d frames, %d ch",
			res.Buffer.SampleRate, res.Buffer.Frames(), res.Buffer.Channels())
	}
	if !strings.Contains(logs.String(), "level=WARN") || !strings.Contains(logs.String(), "format=mp3") {
		t.Errorf("log output = %q, want a WARN entry with format", logs.String())
	}
}

func TestSampleSource_FallbackOnInvalidBuffer(t *testing.T) {
	t.Parallel()

	ragged := &audio.Buffer{SampleRate: 8000, Data: [][]float32{{0}, {}}}
	src := NewSampleSource(fixedCapability{buf: ragged, rate: 8000},
		WithLogger(slog.New(slog.DiscardHandler)))

	res := src.Decode(nil, audio.FormatWAV)
	if !res.Synthetic || !errors.Is(res.Cause, audio.ErrInvalidBuffer) {
		t.Errorf("Decode() = synthetic %v, cause %v", res.Synthetic, res.Cause)
	}
}

func TestSampleSource_NilCapability(t *testing.T) {
	t.Parallel()

	src := NewSampleSource(nil, WithLogger(slog.New(slog.DiscardHandler)), WithFallbackSeconds(1))
	res := src.Decode(audiotest.WAV16(8000, 1, []int16{1, 2}), audio.FormatWAV)

	if !res.Synthetic || !errors.Is(res.Cause, ErrCapabilityUnavailable) {
		t.Errorf("Decode() = synthetic %v, cause %v", res.Synthetic, res.Cause)
	}
	if res.Buffer.Frames() != DefaultSampleRate {
		t.Errorf("Frames() = %d, want %d", res.Buffer.Frames(), DefaultSampleRate)
	}
}

func TestSampleSource_RealDecode(t *testing.T) {
	t.Parallel()

	data := audiotest.WAV16(8000, 1, []int16{16384, -16384})
	res := NewSampleSource(NewDefaultHost(0)).Decode(data, audio.FormatWAV)

	if res.Synthetic {
		t.Fatalf("Decode() fell back: %v", res.Cause)
	}
	if res.Buffer.Data[0][0] != 0.5 || res.Buffer.Data[0][1] != -0.5 {
		t.Errorf("samples = %v", res.Buffer.Data[0])
	}
}
