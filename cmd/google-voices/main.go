package main

import (
	"TextSpeaker/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2/google"
)

// Небольшая утилита: делает GET к Google TTS Voices и печатает список голосов
// для языка из конфига. Полезно для подбора значения -google-tts-voice.
func main() {
	cfg := config.NewConfig()

	// Установим GOOGLE_APPLICATION_CREDENTIALS из конфига, если не задано в окружении.
	if os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") == "" && cfg.GoogleTTS.CredentialsPath != "" {
		_ = os.Setenv("GOOGLE_APPLICATION_CREDENTIALS", cfg.GoogleTTS.CredentialsPath)
	}

	ctx, cancel := context.WithTimeoutCause(context.Background(), 15*time.Second, errors.New("google tts voices request timeout"))
	defer cancel()

	// Получим учётные данные по ADC и токен для вызова REST API.
	creds, err := google.FindDefaultCredentials(ctx, "https://www.googleapis.com/auth/cloud-platform")
	if err != nil {
		fmt.Println("не удалось найти учётные данные Google (ADC):", err)
		os.Exit(1)
	}
	tok, err := creds.TokenSource.Token()
	if err != nil {
		fmt.Println("не удалось получить токен доступа Google:", err)
		os.Exit(1)
	}

	lang := cfg.GoogleTTS.Language
	if lang == "" {
		lang = "en-US"
	}

	url := fmt.Sprintf("https://texttospeech.googleapis.com/v1/voices?languageCode=%s", lang)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		fmt.Println("не удалось создать запрос:", err)
		os.Exit(1)
	}
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)

	hc := &http.Client{Timeout: 20 * time.Second}
	resp, err := hc.Do(req)
	if err != nil {
		fmt.Println("ошибка при выполнении запроса:", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var raw any
		_ = json.NewDecoder(resp.Body).Decode(&raw)
		b, _ := json.MarshalIndent(raw, "", "  ")
		fmt.Printf("Google TTS Voices: status=%d, body=%s\n", resp.StatusCode, string(b))
		os.Exit(1)
	}

	var payload struct {
		Voices []any `json:"voices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		fmt.Println("не удалось распарсить ответ Google TTS Voices:", err)
		os.Exit(1)
	}

	out, _ := json.MarshalIndent(payload, "", "  ")
	fmt.Println(string(out))
}
