package player

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFFPlayArgs(t *testing.T) {
	p := NewFFPlay("", nil)
	assert.Equal(t, "ffplay", p.binary)
	// тихий режим, без видеоокна, автовыход, затем путь
	assert.Equal(t, []string{"-v", "0", "-nodisp", "-autoexit", "sound.mp3"}, p.args("sound.mp3"))
}

func TestFFPlayPlay(t *testing.T) {
	ctx := context.Background()

	t.Run("missing binary reported explicitly", func(t *testing.T) {
		p := NewFFPlay("definitely-not-a-real-player-binary", nil)
		err := p.Play(ctx, "whatever.mp3")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found in PATH")
	})

	t.Run("empty path rejected", func(t *testing.T) {
		p := NewFFPlay("ffplay", nil)
		require.Error(t, p.Play(ctx, ""))
	})

	t.Run("blocks until player exits", func(t *testing.T) {
		// `true` игнорирует аргументы и сразу завершается успешно —
		// достаточно, чтобы проверить блокирующий запуск процесса
		path := filepath.Join(t.TempDir(), "sound.mp3")
		require.NoError(t, os.WriteFile(path, []byte("mp3"), 0o644))

		p := NewFFPlay("true", nil)
		assert.NoError(t, p.Play(ctx, path))
	})

	t.Run("non-zero exit surfaces as error", func(t *testing.T) {
		p := NewFFPlay("false", nil)
		err := p.Play(ctx, "sound.mp3")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "player:")
	})
}
