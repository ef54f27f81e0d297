// Package i18n содержит строки интерфейса на английском и йоруба.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Language - язык интерфейса
type Language string

const (
	English Language = "en"
	Yoruba  Language = "yor"
)

// Languages - поддерживаемые языки, первый используется по умолчанию
var Languages = []Language{English, Yoruba}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Make("yo"),
})

// T возвращает перевод ключа
// Неизвестный ключ возвращается как есть
func T(lang Language, key string) string {
	e, ok := table[key]
	if !ok {
		return key
	}
	if lang == Yoruba {
		return e.Yoruba
	}
	return e.English
}

// Translations возвращает всю таблицу для языка
func Translations(lang Language) map[string]string {
	out := make(map[string]string, len(table))
	for key := range table {
		out[key] = T(lang, key)
	}
	return out
}

// ParseLanguage разбирает код языка ("en", "yor", "yo", "yo-NG")
func ParseLanguage(s string) (Language, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en":
		return English, true
	case "yor", "yo":
		return Yoruba, true
	}

	tag, err := language.Parse(s)
	if err != nil {
		return English, false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return English, false
	}
	switch base.String() {
	case "en":
		return English, true
	case "yo":
		return Yoruba, true
	}
	return English, false
}

// Negotiate выбирает язык по списку предпочтений
// Каждое значение - код языка или заголовок Accept-Language, пустые пропускаются
func Negotiate(prefs ...string) Language {
	for _, pref := range prefs {
		if pref == "" {
			continue
		}
		if lang, ok := ParseLanguage(pref); ok {
			return lang
		}

		tags, _, err := language.ParseAcceptLanguage(pref)
		if err != nil || len(tags) == 0 {
			continue
		}
		_, index, conf := matcher.Match(tags...)
		if conf != language.No {
			return Languages[index]
		}
	}
	return English
}
