package middleware

import (
	"context"
	"net/http"

	"github.com/frontandrew/drivesure/internal/i18n"
)

// LanguageKey - ключ языка интерфейса в контексте
const LanguageKey contextKey = "language"

// LanguageMiddleware выбирает язык по ?lang= и Accept-Language
func LanguageMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := i18n.Negotiate(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
		w.Header().Set("Content-Language", string(lang))

		ctx := context.WithValue(r.Context(), LanguageKey, lang)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetLanguage возвращает язык из контекста (английский по умолчанию)
func GetLanguage(ctx context.Context) i18n.Language {
	if lang, ok := ctx.Value(LanguageKey).(i18n.Language); ok {
		return lang
	}
	return i18n.English
}
