package player

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// Player воспроизводит аудиофайл по пути и блокируется до конца воспроизведения.
type Player interface {
	Play(ctx context.Context, path string) error
}

// FFPlay реализует Player через внешний процесс ffplay.
// Плеер запускается без окна и без вывода в консоль и сам завершается
// по окончании воспроизведения, поэтому Run блокирует ровно на длительность файла.
type FFPlay struct {
	binary string
	logger *zap.SugaredLogger
}

// NewFFPlay создаёт плеер поверх внешнего исполняемого файла.
// Пустое имя означает ffplay из PATH.
func NewFFPlay(binary string, logger *zap.SugaredLogger) *FFPlay {
	if strings.TrimSpace(binary) == "" {
		binary = "ffplay"
	}
	return &FFPlay{binary: binary, logger: logger}
}

func (p *FFPlay) Play(ctx context.Context, path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("player: empty path")
	}
	if _, err := exec.LookPath(p.binary); err != nil {
		return fmt.Errorf("player: %s not found in PATH: %w", p.binary, err)
	}

	cmd := exec.CommandContext(ctx, p.binary, p.args(path)...)
	// stdout/stderr плеера не подключаем — консоль остаётся чистой
	if p.logger != nil {
		p.logger.Infow("Starting playback", "binary", p.binary, "path", path)
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("player: %s: %w", p.binary, err)
	}
	return nil
}

// args собирает аргументы запуска: тихий режим, без видеоокна, автовыход.
func (p *FFPlay) args(path string) []string {
	return []string{"-v", "0", "-nodisp", "-autoexit", path}
}
