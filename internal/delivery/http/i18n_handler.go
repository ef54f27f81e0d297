package http

import (
	"net/http"

	"github.com/frontandrew/drivesure/internal/i18n"
	"github.com/go-chi/chi/v5"
)

// GetTranslations возвращает строки интерфейса для языка
// GET /api/v1/i18n/{lang}
func GetTranslations(w http.ResponseWriter, r *http.Request) {
	lang, ok := i18n.ParseLanguage(chi.URLParam(r, "lang"))
	if !ok {
		respondError(w, http.StatusNotFound, "Unsupported language")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"language": lang,
		"data":     i18n.Translations(lang),
	})
}
