package gtrans

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Открытый endpoint Translate TTS. Региональный домен (tld) выбирает акцент озвучки.
const endpointFormat = "https://translate.google.%s/translate_tts"

// Сервис обрезает текст длиннее ~100 символов, поэтому длинный текст
// разбивается на части и запрашивается по кускам.
const partLimit = 100

// Без браузерного User-Agent сервис отвечает 403.
const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// Client реализует синтез речи через открытый Google Translate TTS.
// Авторизация не требуется; язык и региональный домен задаются при создании.
type Client struct {
	http     *http.Client
	logger   *zap.SugaredLogger
	lang     string
	endpoint string
}

// New создаёт клиента для языка lang (напр. en, fr) и регионального домена tld.
// Пустой tld означает com.
func New(lang, tld string, logger *zap.SugaredLogger) *Client {
	tld = strings.TrimSpace(tld)
	if tld == "" {
		tld = "com"
	}
	return &Client{
		http:     &http.Client{Timeout: 30 * time.Second},
		logger:   logger,
		lang:     strings.TrimSpace(lang),
		endpoint: fmt.Sprintf(endpointFormat, tld),
	}
}

// Synthesize выполняет запросы к Translate TTS и возвращает склеенный MP3-контент.
// MP3-части — обычные потоки MPEG-кадров, конкатенация даёт валидный файл.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("gtrans tts: empty text")
	}
	if c.lang == "" {
		return nil, errors.New("gtrans tts: language code is not set")
	}

	parts := splitText(text, partLimit)
	started := time.Now()

	var audio []byte
	for i, part := range parts {
		b, err := c.fetchPart(ctx, part, i, len(parts))
		if err != nil {
			return nil, err
		}
		audio = append(audio, b...)
	}

	if c.logger != nil {
		c.logger.Infow("Translate TTS synthesize completed",
			"lang", c.lang,
			"parts", len(parts),
			"bytes", len(audio),
			"took", time.Since(started).String(),
		)
	}
	return audio, nil
}

// fetchPart запрашивает озвучку одной части текста.
func (c *Client) fetchPart(ctx context.Context, part string, idx, total int) ([]byte, error) {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", c.lang)
	q.Set("q", part)
	q.Set("total", strconv.Itoa(total))
	q.Set("idx", strconv.Itoa(idx))
	q.Set("textlen", strconv.Itoa(len([]rune(part))))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Сервис отдаёт HTML с описанием; берём начало тела для диагностики
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("gtrans tts: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		// Пустой ответ при 200 — считаем ошибкой, чтобы не записать пустой файл
		return nil, errors.New("gtrans tts: empty audio in response")
	}
	return b, nil
}

// splitText разбивает текст на части не длиннее limit рун, по границам слов.
// Слово длиннее лимита режется жёстко.
func splitText(text string, limit int) []string {
	words := strings.Fields(text)
	var parts []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			parts = append(parts, string(cur))
			cur = cur[:0]
		}
	}

	for _, w := range words {
		r := []rune(w)
		for len(r) > limit {
			flush()
			parts = append(parts, string(r[:limit]))
			r = r[limit:]
		}
		if len(r) == 0 {
			continue
		}
		// +1 за пробел-разделитель
		if len(cur) > 0 && len(cur)+1+len(r) > limit {
			flush()
		}
		if len(cur) > 0 {
			cur = append(cur, ' ')
		}
		cur = append(cur, r...)
	}
	flush()
	return parts
}
