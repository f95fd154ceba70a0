package telegram

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"go-hh-publisher/internal/models"
)

const (
	missingValue  = "---"
	notSpecified  = "Не указано"
	bulletPrefix  = "• "
	detailsAnchor = "Подробнее на HH"
)

// escapeMarkdown escapes the legacy Markdown control characters.
func escapeMarkdown(text string) string {
	replacer := strings.NewReplacer(
		"_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[",
	)
	return replacer.Replace(text)
}

// value prepares a row field for display, "---" when it is empty.
func value(s string) string {
	s = strings.TrimSpace(norm.NFC.String(s))
	if s == "" {
		return missingValue
	}
	return escapeMarkdown(s)
}

// FormatField renders a summary section as bullet lines, or the
// "not specified" placeholder when there is nothing to show.
func FormatField(f models.SummaryField) string {
	bullets := f.Bullets()
	if len(bullets) == 0 {
		return notSpecified
	}
	lines := make([]string, 0, len(bullets))
	for _, b := range bullets {
		lines = append(lines, bulletPrefix+escapeMarkdown(norm.NFC.String(b)))
	}
	return strings.Join(lines, "\n")
}

func writeLine(b *strings.Builder, label, v string) {
	b.WriteString(label)
	b.WriteString(" ")
	b.WriteString(value(v))
	b.WriteString("\n")
}

func writeHeader(b *strings.Builder, p models.Posting) {
	writeLine(b, "🌐 *Город:*", p.Location)
	writeLine(b, "📅 *Должность:*", p.Title)
	writeLine(b, "💼 *Компания:*", p.Company)
	writeLine(b, "💰 *ЗП:*", p.DisplaySalary())
}

// FormatPosting renders the full channel post: row fields, the three
// summary sections and the link.
func FormatPosting(p models.Posting, s models.Summary) string {
	var b strings.Builder
	writeHeader(&b, p)
	b.WriteString("\n")

	writeLine(&b, "🎓 *Опыт:*", p.Experience)
	writeLine(&b, "📂 *Тип занятости:*", p.EmploymentType)
	writeLine(&b, "📆 *График:*", p.Schedule)
	writeLine(&b, "🕒 *Рабочие часы:*", p.WorkingHours)
	writeLine(&b, "🏠 *Формат работы:*", p.WorkFormat)
	writeLine(&b, "📅 *Дата публикации:*", p.PublishedDate)
	b.WriteString("\n")

	b.WriteString("💾 *Обязанности:*\n")
	b.WriteString(FormatField(s.Responsibilities))
	b.WriteString("\n\n🌟 *Требования:*\n")
	b.WriteString(FormatField(s.Requirements))
	b.WriteString("\n\n🏢 *О компании:*\n")
	b.WriteString(FormatField(s.AboutCompany))
	b.WriteString("\n\n")

	b.WriteString("🔎 [" + detailsAnchor + "](" + p.Link + ")")
	return b.String()
}

// FormatShort is the summary-less post used when the LLM is disabled.
func FormatShort(p models.Posting, _ models.Summary) string {
	var b strings.Builder
	writeHeader(&b, p)
	b.WriteString("\n[" + detailsAnchor + "](" + p.Link + ")")
	return b.String()
}
