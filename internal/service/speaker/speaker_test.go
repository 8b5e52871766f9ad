package speaker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSynth struct {
	audio []byte
	err   error
	calls int
}

func (f *fakeSynth) Synthesize(_ context.Context, _ string) ([]byte, error) {
	f.calls++
	return f.audio, f.err
}

// fakePlayer читает файл в момент вызова Play — так проверяется,
// что к началу воспроизведения файл уже записан целиком.
type fakePlayer struct {
	err   error
	calls int
	seen  [][]byte
}

func (f *fakePlayer) Play(_ context.Context, path string) error {
	f.calls++
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	f.seen = append(f.seen, b)
	return f.err
}

func TestSpeak(t *testing.T) {
	ctx := context.Background()

	t.Run("writes file before playback", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "out.mp3")
		synth := &fakeSynth{audio: []byte("mp3-bytes-hello")}
		ply := &fakePlayer{}

		err := New(synth, ply, out, nil).Speak(ctx, "hello")
		require.NoError(t, err)

		require.Equal(t, 1, ply.calls)
		// Плеер видел полностью записанный файл
		assert.Equal(t, []byte("mp3-bytes-hello"), ply.seen[0])
		b, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.NotEmpty(t, b)
	})

	t.Run("second call overwrites, not appends", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "out.mp3")
		synth := &fakeSynth{audio: []byte("first-run-audio-content")}
		ply := &fakePlayer{}
		spk := New(synth, ply, out, nil)

		require.NoError(t, spk.Speak(ctx, "one"))
		synth.audio = []byte("second")
		require.NoError(t, spk.Speak(ctx, "two"))

		b, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), b)
	})

	t.Run("empty text rejected before synthesis", func(t *testing.T) {
		synth := &fakeSynth{audio: []byte("x")}
		spk := New(synth, &fakePlayer{}, filepath.Join(t.TempDir(), "out.mp3"), nil)

		err := spk.Speak(ctx, "   ")
		require.ErrorIs(t, err, ErrEmptyText)
		assert.Zero(t, synth.calls)
	})

	t.Run("synthesis failure propagates with stage", func(t *testing.T) {
		synth := &fakeSynth{err: errors.New("unsupported language")}
		ply := &fakePlayer{}
		out := filepath.Join(t.TempDir(), "out.mp3")

		err := New(synth, ply, out, nil).Speak(ctx, "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "synthesize:")
		// Файл не создан, плеер не запускался
		_, statErr := os.Stat(out)
		assert.True(t, os.IsNotExist(statErr))
		assert.Zero(t, ply.calls)
	})

	t.Run("empty audio is a synthesis failure", func(t *testing.T) {
		spk := New(&fakeSynth{audio: nil}, &fakePlayer{}, filepath.Join(t.TempDir(), "out.mp3"), nil)
		err := spk.Speak(ctx, "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "synthesize")
	})

	t.Run("playback failure propagates with stage", func(t *testing.T) {
		ply := &fakePlayer{err: errors.New("no player binary")}
		spk := New(&fakeSynth{audio: []byte("x")}, ply, filepath.Join(t.TempDir(), "out.mp3"), nil)

		err := spk.Speak(ctx, "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "playback:")
	})

	t.Run("write failure propagates with stage", func(t *testing.T) {
		// Путь внутри несуществующего каталога
		out := filepath.Join(t.TempDir(), "missing", "out.mp3")
		spk := New(&fakeSynth{audio: []byte("x")}, &fakePlayer{}, out, nil)

		err := spk.Speak(ctx, "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "write audio:")
	})
}
