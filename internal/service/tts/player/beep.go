package player

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// Beep реализует Player без внешних процессов: декодирует файл
// (mp3 или wav по расширению) и играет через устройство вывода.
type Beep struct{ volumeDB float64 }

// NewBeep создаёт встроенный плеер без изменения громкости (0 dB).
func NewBeep() *Beep { return &Beep{volumeDB: 0} }

// NewBeepWithVolume создаёт встроенный плеер с предустановленной громкостью в dB (отрицательные — тише).
func NewBeepWithVolume(db float64) *Beep { return &Beep{volumeDB: db} }

func (b *Beep) Play(ctx context.Context, path string) error {
	// Проверяем отмену контекста до начала
	select {
	case <-ctx.Done():
		return context.Cause(ctx)
	default:
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	var rc io.ReadCloser = f
	defer rc.Close()

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "wav":
		return playWAV(rc, b.volumeDB)
	case "mp3", "":
		// без расширения считаем mp3 — формат сервиса синтеза
		return playMP3(rc, b.volumeDB)
	default:
		return errors.New("unsupported format for direct playback; use mp3 or wav")
	}
}

func playWAV(r io.Reader, volDB float64) error {
	streamer, format, err := wav.Decode(io.NopCloser(r))
	if err != nil {
		return err
	}
	defer streamer.Close()

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return err
	}
	vol := &effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   volDB,
		Silent:   false,
	}
	done := make(chan struct{})
	speaker.Play(beep.Seq(vol, beep.Callback(func() { close(done) })))
	<-done
	return nil
}

func playMP3(r io.Reader, volDB float64) error {
	streamer, format, err := mp3.Decode(io.NopCloser(r))
	if err != nil {
		return err
	}
	defer streamer.Close()

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return err
	}
	vol := &effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   volDB,
		Silent:   false,
	}
	done := make(chan struct{})
	speaker.Play(beep.Seq(vol, beep.Callback(func() { close(done) })))
	<-done
	return nil
}
