package tts

import "context"

// Synthesizer абстракция TTS. Метод выполняет синтез и возвращает MP3-контент,
// воспроизведением занимается отдельная абстракция player.Player.
// Провайдер-специфичная конфигурация передаётся в конструктор реализации.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
