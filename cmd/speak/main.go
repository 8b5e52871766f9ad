package main

import (
	"TextSpeaker/internal/config"
	"TextSpeaker/internal/service/speaker"
	"TextSpeaker/internal/service/tts"
	"TextSpeaker/internal/service/tts/google"
	"TextSpeaker/internal/service/tts/gtrans"
	"TextSpeaker/internal/service/tts/player"
	"bufio"
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Утилита: читает одну строку текста из stdin, синтезирует речь выбранным
// сервисом, сохраняет MP3 и проигрывает его. Любая ошибка завершает процесс
// ненулевым кодом.
func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	sugar.Infow(
		"Starting speak",
		"service", cfg.TTSService,
		"language", cfg.Language,
		"tld", cfg.TLD,
		"output", cfg.OutputPath,
		"player", cfg.PlayerBackend,
	)

	// Одна строка со стандартного ввода
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			sugar.Fatalw("Failed to read stdin", "error", err)
		}
		sugar.Fatalw("No input text")
	}
	text := scanner.Text()

	// Синтезатор по конфигу
	var synth tts.Synthesizer
	switch strings.ToLower(strings.TrimSpace(cfg.TTSService)) {
	case "google":
		synth = google.New(cfg.GoogleTTS, sugar)
	default:
		synth = gtrans.New(cfg.Language, cfg.TLD, sugar)
	}

	// Плеер по конфигу
	var ply player.Player
	switch strings.ToLower(strings.TrimSpace(cfg.PlayerBackend)) {
	case "beep":
		ply = player.NewBeepWithVolume(cfg.PlayerVolume)
	default:
		ply = player.NewFFPlay(cfg.FFPlayBinary, sugar)
	}

	spk := speaker.New(synth, ply, cfg.OutputPath, sugar)
	if err := spk.Speak(context.Background(), text); err != nil {
		sugar.Fatalw("Speak failed", "error", err)
	}
}
