package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-hh-publisher/internal/models"
)

func TestFormatField(t *testing.T) {
	tests := []struct {
		name  string
		field models.SummaryField
		want  string
	}{
		{name: "items", field: models.ItemsField([]string{"a", "b"}), want: "• a\n• b"},
		{name: "text", field: models.TextField("not a list"), want: "• not a list"},
		{name: "empty list", field: models.ItemsField(nil), want: "Не указано"},
		{name: "empty", field: models.EmptyField(), want: "Не указано"},
		{name: "escaped", field: models.TextField("snake_case *bold*"), want: "• snake\\_case \\*bold\\*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatField(tt.field))
		})
	}
}

func samplePosting() models.Posting {
	return models.Posting{
		Link:           "https://hh.kz/vacancy/101",
		Title:          "Data Scientist",
		Company:        "Kaspi_Lab",
		Location:       "Алматы",
		Salary:         "от 500 000 ₸",
		SalaryRange:    "500 000 – 800 000 ₸",
		Experience:     "1–3 года",
		EmploymentType: "Полная занятость",
		WorkFormat:     "Гибрид",
		PublishedDate:  "23 апреля 2025",
	}
}

func TestFormatPosting(t *testing.T) {
	s := models.Summary{
		Responsibilities: models.ItemsField([]string{"Строить модели", "Проводить A/B тесты"}),
		Requirements:     models.TextField("Python"),
	}

	msg := FormatPosting(samplePosting(), s)

	assert.Contains(t, msg, "🌐 *Город:* Алматы\n")
	assert.Contains(t, msg, "💼 *Компания:* Kaspi\\_Lab\n")
	assert.Contains(t, msg, "💰 *ЗП:* 500 000 – 800 000 ₸\n")
	assert.Contains(t, msg, "📆 *График:* ---\n", "missing row field uses placeholder")
	assert.Contains(t, msg, "💾 *Обязанности:*\n• Строить модели\n• Проводить A/B тесты\n")
	assert.Contains(t, msg, "🌟 *Требования:*\n• Python\n")
	assert.Contains(t, msg, "🏢 *О компании:*\nНе указано\n")
	assert.True(t, strings.HasSuffix(msg, "🔎 [Подробнее на HH](https://hh.kz/vacancy/101)"))
}

func TestFormatPosting_SalaryFallback(t *testing.T) {
	p := samplePosting()
	p.SalaryRange = ""
	assert.Contains(t, FormatPosting(p, models.Summary{}), "💰 *ЗП:* от 500 000 ₸\n")

	p.Salary = ""
	assert.Contains(t, FormatPosting(p, models.Summary{}), "💰 *ЗП:* ---\n")
}

func TestFormatShort(t *testing.T) {
	msg := FormatShort(samplePosting(), models.Summary{})

	assert.Contains(t, msg, "📅 *Должность:* Data Scientist\n")
	assert.NotContains(t, msg, "Обязанности")
	assert.True(t, strings.HasSuffix(msg, "[Подробнее на HH](https://hh.kz/vacancy/101)"))
}
