// scheduleTracker/config/google.go
package config

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var GeminiClient *genai.GenerativeModel

// InitGemini инициализирует клиент Gemini API. Ключ не обязателен: без него
// подсказка шаблона недоступна, но остальное приложение работает как обычно.
func InitGemini() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		slog.Warn("Переменная окружения GEMINI_API_KEY не установлена, подсказка шаблона будет отключена.")
		return
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		slog.Error("Не удалось создать клиент Gemini", "error", err)
		return
	}
	GeminiClient = client.GenerativeModel("gemini-1.5-flash")
	slog.Info("Клиент Gemini API инициализирован.")
}
