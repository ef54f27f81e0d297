package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/frontandrew/drivesure/internal/domain"
)

// Цвета статусов
var (
	colorSuccess = lipgloss.Color("#2E7D32")
	colorWarning = lipgloss.Color("#F9A825")
	colorDanger  = lipgloss.Color("#C62828")
	colorMuted   = lipgloss.Color("#757575")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1565C0"))
	labelStyle = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorDanger)
)

// badge раскрашивает статус документа, техосмотра, штрафа или пробки
func badge(status string) string {
	return badgeLabel(status, status)
}

// badgeLabel раскрашивает label цветом статуса
func badgeLabel(status, label string) string {
	color := colorMuted
	switch status {
	case string(domain.DocumentValid), string(domain.InspectionPassed), string(domain.FinePaid), string(domain.TrafficLight):
		color = colorSuccess
	case string(domain.DocumentExpiringSoon), string(domain.InspectionPending), string(domain.TrafficModerate):
		color = colorWarning
	case string(domain.DocumentExpired), string(domain.DocumentMissing), string(domain.InspectionFailed),
		string(domain.FineUnpaid), string(domain.TrafficHeavy):
		color = colorDanger
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(label)
}

func title(w io.Writer, text string) {
	fmt.Fprintln(w, titleStyle.Render(text))
}

func field(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s: %s\n", labelStyle.Render(label), value)
}

// naira форматирует сумму в найрах с разделителями тысяч
func naira(amount int64) string {
	digits := fmt.Sprintf("%d", amount)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return "₦" + b.String()
}

// renderMarkdown выводит markdown ответа ассистента
// Если рендерер недоступен, текст выводится как есть
func renderMarkdown(w io.Writer, markdown string) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err == nil {
		if out, err := renderer.Render(markdown); err == nil {
			fmt.Fprint(w, out)
			return
		}
	}
	fmt.Fprintln(w, markdown)
}
