package speaker

import (
	"TextSpeaker/internal/service/tts"
	"TextSpeaker/internal/service/tts/player"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrEmptyText возвращается до обращения к сервису синтеза,
// поведение на пустом входе определено явно.
var ErrEmptyText = errors.New("speaker: empty text")

// Speaker связывает синтез, запись файла и воспроизведение в один
// синхронный проход. Файл полностью записывается до запуска плеера.
type Speaker struct {
	synth      tts.Synthesizer
	player     player.Player
	outputPath string
	logger     *zap.SugaredLogger
}

// New создаёт Speaker. outputPath перезаписывается при каждом вызове Speak.
func New(synth tts.Synthesizer, p player.Player, outputPath string, logger *zap.SugaredLogger) *Speaker {
	return &Speaker{synth: synth, player: p, outputPath: outputPath, logger: logger}
}

// Speak синтезирует text, сохраняет MP3 в outputPath и проигрывает файл.
// Блокируется до конца воспроизведения. Ошибка каждого этапа помечена,
// чтобы вызывающий мог различить причину отказа.
func (s *Speaker) Speak(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}

	started := time.Now()
	audio, err := s.synth.Synthesize(ctx, text)
	if err != nil {
		return fmt.Errorf("synthesize: %w", err)
	}
	if len(audio) == 0 {
		// Пустой файл записывать бессмысленно — это отказ синтеза
		return errors.New("synthesize: empty audio")
	}

	// Перезапись целиком: create/truncate, без дозаписи
	if err := os.WriteFile(s.outputPath, audio, 0o644); err != nil {
		return fmt.Errorf("write audio: %w", err)
	}
	if s.logger != nil {
		s.logger.Infow("Audio saved",
			"path", s.outputPath,
			"bytes", len(audio),
			"took", time.Since(started).String(),
		)
	}

	if err := s.player.Play(ctx, s.outputPath); err != nil {
		return fmt.Errorf("playback: %w", err)
	}
	return nil
}

// OutputPath возвращает путь выходного файла.
func (s *Speaker) OutputPath() string { return s.outputPath }
