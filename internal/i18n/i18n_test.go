package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT(t *testing.T) {
	assert.Equal(t, "DriveSure Lagos", T(English, "appTitle"))
	assert.Equal(t, "DriveSure Eko", T(Yoruba, "appTitle"))
	assert.Equal(t, "Invalid QR Code Data", T(English, "invalidQrCode"))

	// Неизвестный ключ возвращается как есть
	assert.Equal(t, "noSuchKey", T(English, "noSuchKey"))
	assert.Equal(t, "noSuchKey", T(Yoruba, "noSuchKey"))

	// Неизвестный язык - английский
	assert.Equal(t, "Driver", T(Language("fr"), "driver"))
}

func TestTranslations(t *testing.T) {
	en := Translations(English)
	yor := Translations(Yoruba)

	assert.Len(t, en, len(table))
	assert.Len(t, yor, len(table))
	assert.Equal(t, "Sanwó Báyìí", yor["payNow"])
	assert.Equal(t, "Pay Now", en["payNow"])
}

func TestTable_Complete(t *testing.T) {
	for key, e := range table {
		assert.NotEmpty(t, e.English, key)
		assert.NotEmpty(t, e.Yoruba, key)
	}
}

func TestNegotiate(t *testing.T) {
	tests := []struct {
		name  string
		prefs []string
		want  Language
	}{
		{name: "пусто", prefs: nil, want: English},
		{name: "код yor", prefs: []string{"yor"}, want: Yoruba},
		{name: "код en", prefs: []string{"en"}, want: English},
		{name: "Accept-Language йоруба", prefs: []string{"yo-NG,en;q=0.5"}, want: Yoruba},
		{name: "Accept-Language английский", prefs: []string{"en-GB,en;q=0.9"}, want: English},
		{name: "неподдерживаемый", prefs: []string{"fr-FR"}, want: English},
		{name: "явный параметр важнее заголовка", prefs: []string{"yor", "en-US"}, want: Yoruba},
		{name: "пустой параметр пропускается", prefs: []string{"", "yo"}, want: Yoruba},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Negotiate(tt.prefs...))
		})
	}
}
