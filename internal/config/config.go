package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	DebugMode bool `env:"DEBUG_MODE"` //Режим дебага

	// Переключатель сервиса синтеза: gtrans (Google Translate TTS) | google (Cloud Text-to-Speech)
	TTSService string `env:"TTS_SERVICE"`

	// Параметры синтеза через Google Translate TTS.
	// Оба значения явные — никаких скрытых дефолтов внутри кода синтеза.
	Language string `env:"SPEAK_LANGUAGE"` // Код языка, напр. en, fr, ru
	TLD      string `env:"SPEAK_TLD"`      // Региональный домен сервиса (акцент), напр. com, fr, co.uk

	// Путь к выходному MP3-файлу. Файл перезаписывается при каждом запуске.
	OutputPath string `env:"SPEAK_OUTPUT_PATH"`

	// Воспроизведение: ffplay (внешний процесс) | beep (встроенный декодер)
	PlayerBackend string  `env:"PLAYER_BACKEND"`
	FFPlayBinary  string  `env:"FFPLAY_BINARY"`    // Имя/путь исполняемого файла плеера
	PlayerVolume  float64 `env:"PLAYER_VOLUME_DB"` // Громкость встроенного плеера в dB (отрицательные — тише)

	// Конфиг Google Cloud Text-to-Speech
	GoogleTTS GoogleTTSConfig
}

// GoogleTTSConfig конфигурация для синтеза речи через Google Cloud Text-to-Speech.
type GoogleTTSConfig struct {
	// Путь к файлу ключа сервисного аккаунта. Фактически читается из ENV GOOGLE_APPLICATION_CREDENTIALS.
	// Здесь храним дефолт (service-account.json в корне проекта) для удобства.
	CredentialsPath string  `env:"GOOGLE_APPLICATION_CREDENTIALS"`
	Language        string  `env:"GOOGLE_TTS_LANGUAGE"` // BCP-47, напр. en-US
	Voice           string  `env:"GOOGLE_TTS_VOICE"`
	SpeakingRate    float64 `env:"GOOGLE_TTS_SPEAKING_RATE"`
	Pitch           float64 `env:"GOOGLE_TTS_PITCH"`
	VolumeGainDb    float64 `env:"GOOGLE_TTS_VOLUME_DB"`
	// Эффект профиля устройства воспроизведения (оптимизация эквализации)
	EffectsProfileID string `env:"GOOGLE_TTS_EFFECTS_PROFILE_ID"`
	// Тип входа: text|ssml. Пусто — text.
	InputType string `env:"GOOGLE_TTS_INPUT_TYPE"`
}

// Defaults возвращает конфигурацию с предустановленными значениями по умолчанию.
// Эти значения перекрываются .env, переменными окружения и флагами CLI.
func Defaults() *Config {
	return &Config{
		DebugMode: false,
		// По умолчанию используем открытый Translate TTS — без ключей
		TTSService: "gtrans",
		Language:   "en",
		TLD:        "com",
		// Имя файла фиксированное, перезапись при каждом вызове
		OutputPath: "__text_output.mp3",
		// Внешний плеер по умолчанию
		PlayerBackend: "ffplay",
		FFPlayBinary:  "ffplay",
		PlayerVolume:  0,
		GoogleTTS: GoogleTTSConfig{
			CredentialsPath:  "service-account.json",
			Language:         "en-US",
			Voice:            "en-US-Standard-C",
			SpeakingRate:     1.0,
			Pitch:            0.0,
			VolumeGainDb:     0.0,
			EffectsProfileID: "",
			InputType:        "", // text
		},
	}
}

// NewConfig загружает конфигурацию приложения.
func NewConfig() *Config {
	_ = godotenv.Load()

	// Стартуем с дефолтов, затем перекрываем .env/окружением и флагами
	cfg := Defaults()
	_ = env.Parse(cfg)

	flag.BoolVar(&cfg.DebugMode, "debug-mode", cfg.DebugMode, "включить режим дебага для отображения доп инфы")
	flag.StringVar(&cfg.TTSService, "tts-service", cfg.TTSService, "выбор сервиса TTS: gtrans|google")
	flag.StringVar(&cfg.Language, "language", cfg.Language, "код языка синтеза, напр. en, fr")
	flag.StringVar(&cfg.TLD, "tld", cfg.TLD, "региональный домен translate.google.<tld> для выбора акцента, напр. com, fr")
	flag.StringVar(&cfg.OutputPath, "output-path", cfg.OutputPath, "путь к выходному MP3-файлу (перезаписывается)")
	flag.StringVar(&cfg.PlayerBackend, "player-backend", cfg.PlayerBackend, "бэкенд воспроизведения: ffplay|beep")
	flag.StringVar(&cfg.FFPlayBinary, "ffplay-binary", cfg.FFPlayBinary, "имя или путь исполняемого файла ffplay")
	flag.Float64Var(&cfg.PlayerVolume, "player-volume-db", cfg.PlayerVolume, "громкость встроенного плеера в dB (0 — без изменений)")
	// Параметры Google TTS
	flag.StringVar(&cfg.GoogleTTS.CredentialsPath, "google-tts-credentials", cfg.GoogleTTS.CredentialsPath, "путь к service-account.json (также читается из ENV GOOGLE_APPLICATION_CREDENTIALS)")
	flag.StringVar(&cfg.GoogleTTS.Language, "google-tts-language", cfg.GoogleTTS.Language, "язык синтеза BCP-47, напр. en-US")
	flag.StringVar(&cfg.GoogleTTS.Voice, "google-tts-voice", cfg.GoogleTTS.Voice, "имя голоса, напр. en-US-Standard-C или en-US-Wavenet-A")
	flag.Float64Var(&cfg.GoogleTTS.SpeakingRate, "google-tts-speaking-rate", cfg.GoogleTTS.SpeakingRate, "скорость речи (1.0 по умолчанию)")
	flag.Float64Var(&cfg.GoogleTTS.Pitch, "google-tts-pitch", cfg.GoogleTTS.Pitch, "тон (полутоны), может быть отрицательным")
	flag.Float64Var(&cfg.GoogleTTS.VolumeGainDb, "google-tts-volume-db", cfg.GoogleTTS.VolumeGainDb, "усиление громкости (дБ), допустимо от -96.0 до +16.0")
	flag.StringVar(&cfg.GoogleTTS.EffectsProfileID, "google-tts-effects-profile-id", cfg.GoogleTTS.EffectsProfileID, "EffectsProfileId, напр. large-home-entertainment-class-device")
	flag.StringVar(&cfg.GoogleTTS.InputType, "google-tts-input-type", cfg.GoogleTTS.InputType, "тип входа: text|ssml")
	flag.Parse()

	// Валидация и подготовка окружения для Google TTS.
	// Если выбран сервис google, убеждаемся, что задан путь к cred-файлу
	// и он существует. Если ENV пуст, но в конфиге указан путь — устанавливаем ENV.
	if strings.EqualFold(cfg.TTSService, "google") {
		cred := strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
		if cred == "" {
			if cp := strings.TrimSpace(cfg.GoogleTTS.CredentialsPath); cp != "" {
				_ = os.Setenv("GOOGLE_APPLICATION_CREDENTIALS", cp)
				cred = cp
			}
		}
		if cred == "" {
			panic(fmt.Errorf("google tts: переменная окружения GOOGLE_APPLICATION_CREDENTIALS не задана; укажите ENV или флаг -google-tts-credentials"))
		}
		if _, err := os.Stat(cred); err != nil {
			panic(fmt.Errorf("google tts: файл ключа не найден: %s", cred))
		}
	}

	return cfg
}
