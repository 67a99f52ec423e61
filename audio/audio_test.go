// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"

	"github.com/ik5/audconv/internal/audiotest"
)

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.Reader) (Source, error) {
	return audiotest.NewSilentSource(44100, 2, 100), nil
}

// failingDecoder always returns an error
type failingDecoder struct{}

func (d *failingDecoder) Decode(r io.Reader) (Source, error) {
	return nil, errors.New("decode failed")
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}

	registry.Register(FormatWAV, decoder)

	got, ok := registry.Get(FormatWAV)
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}

	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_MultipleFormats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wavDecoder := &mockDecoder{name: "wav"}
	mp3Decoder := &mockDecoder{name: "mp3"}
	oggDecoder := &failingDecoder{}

	registry.Register(FormatWAV, wavDecoder)
	registry.Register(FormatMP3, mp3Decoder)
	registry.Register(FormatVorbis, oggDecoder)

	tests := []struct {
		format Format
		want   Decoder
		wantOK bool
	}{
		{FormatWAV, wavDecoder, true},
		{FormatMP3, mp3Decoder, true},
		{FormatVorbis, oggDecoder, true},
		{FormatFLAC, nil, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			got, ok := registry.Get(tt.format)
			if ok != tt.wantOK {
				t.Errorf("Registry.Get(%q) ok = %v, want %v", tt.format, ok, tt.wantOK)
			}
			if tt.wantOK && got != tt.want {
				t.Errorf("Registry.Get(%q) returned wrong decoder", tt.format)
			}
		})
	}
}

func TestRegistry_FormatsKeepsRegistrationOrder(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register(FormatMP3, &mockDecoder{})
	registry.Register(FormatWAV, &mockDecoder{})
	registry.Register(FormatFLAC, &mockDecoder{})
	// Overwriting keeps the original slot.
	registry.Register(FormatMP3, &failingDecoder{})

	got := registry.Formats()
	want := []Format{FormatMP3, FormatWAV, FormatFLAC}
	if len(got) != len(want) {
		t.Fatalf("Formats() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Formats()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// The returned slice is a copy.
	got[0] = FormatUnknown
	if registry.Formats()[0] != FormatMP3 {
		t.Error("Formats() exposed internal slice")
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder1 := &mockDecoder{name: "first"}
	decoder2 := &mockDecoder{name: "second"}

	registry.Register(FormatWAV, decoder1)
	registry.Register(FormatWAV, decoder2)

	got, ok := registry.Get(FormatWAV)
	if !ok {
		t.Fatal("Registry.Get() failed after overwrite")
	}

	if got != decoder2 {
		t.Error("Registry.Get() did not return the overwritten decoder")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "test"}

	done := make(chan bool)
	for range 10 {
		go func() {
			registry.Register(FormatWAV, decoder)
			done <- true
		}()
	}

	for range 10 {
		go func() {
			_, _ = registry.Get(FormatWAV)
			_ = registry.Formats()
			done <- true
		}()
	}

	for range 20 {
		<-done
	}

	got, ok := registry.Get(FormatWAV)
	if !ok {
		t.Error("Registry.Get() failed after concurrent operations")
	}
	if got != decoder {
		t.Error("Registry returned wrong decoder after concurrent operations")
	}
	if n := len(registry.Formats()); n != 1 {
		t.Errorf("Formats() has %d entries, want 1", n)
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Format
	}{
		{"wav", FormatWAV},
		{"WAV", FormatWAV},
		{" .mp3 ", FormatMP3},
		{"Flac", FormatFLAC},
		{"ogg", FormatVorbis},
		{"", FormatUnknown},
		{"opus", Format("opus")},
	}

	for _, tt := range tests {
		if got := ParseFormat(tt.in); got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormat_ExtensionAndMIME(t *testing.T) {
	t.Parallel()

	if got := FormatWAV.Extension(); got != ".wav" {
		t.Errorf("Extension() = %q, want .wav", got)
	}
	if got := FormatUnknown.Extension(); got != "" {
		t.Errorf("Extension() = %q, want empty", got)
	}
	if got := FormatMP3.MIMEType(); got != "audio/mpeg" {
		t.Errorf("MIMEType() = %q, want audio/mpeg", got)
	}
	if got := Format("xyz").MIMEType(); got != "application/octet-stream" {
		t.Errorf("MIMEType() = %q, want application/octet-stream", got)
	}
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	if registry == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	if registry.codecs == nil {
		t.Error("NewRegistry() did not initialize codecs map")
	}

	if registry.mtx == nil {
		t.Error("NewRegistry() did not initialize mutex")
	}
}

// BenchmarkRegistry_Get benchmarks retrieving decoders
func BenchmarkRegistry_Get(b *testing.B) {
	registry := NewRegistry()
	decoder := &mockDecoder{}
	registry.Register(FormatWAV, decoder)

	b.ReportAllocs()

	for b.Loop() {
		_, _ = registry.Get(FormatWAV)
	}
}
