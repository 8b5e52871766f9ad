package config

import (
	"testing"

	"github.com/caarlos0/env/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, "gtrans", cfg.TTSService)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, "com", cfg.TLD)
	assert.Equal(t, "__text_output.mp3", cfg.OutputPath)
	assert.Equal(t, "ffplay", cfg.PlayerBackend)
	assert.Equal(t, "ffplay", cfg.FFPlayBinary)
	assert.Equal(t, 1.0, cfg.GoogleTTS.SpeakingRate)
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("TTS_SERVICE", "google")
	t.Setenv("SPEAK_LANGUAGE", "fr")
	t.Setenv("SPEAK_TLD", "fr")
	t.Setenv("SPEAK_OUTPUT_PATH", "voice.mp3")
	t.Setenv("PLAYER_BACKEND", "beep")
	t.Setenv("GOOGLE_TTS_VOICE", "fr-FR-Wavenet-A")

	cfg := Defaults()
	require.NoError(t, env.Parse(cfg))

	assert.Equal(t, "google", cfg.TTSService)
	assert.Equal(t, "fr", cfg.Language)
	assert.Equal(t, "fr", cfg.TLD)
	assert.Equal(t, "voice.mp3", cfg.OutputPath)
	assert.Equal(t, "beep", cfg.PlayerBackend)
	assert.Equal(t, "fr-FR-Wavenet-A", cfg.GoogleTTS.Voice)
}
