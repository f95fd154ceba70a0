package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVacancyID(t *testing.T) {
	tests := []struct {
		name   string
		link   string
		wantID string
		wantOK bool
	}{
		{name: "plain", link: "https://hh.kz/vacancy/123456", wantID: "123456", wantOK: true},
		{name: "query string", link: "https://hh.kz/vacancy/98765?from=vacancy_search_list&query=data", wantID: "98765", wantOK: true},
		{name: "city subdomain", link: "https://almaty.hh.kz/vacancy/555", wantID: "555", wantOK: true},
		{name: "trailing slash", link: "https://hh.ru/vacancy/42/", wantID: "42", wantOK: true},
		{name: "fragment", link: "https://hh.kz/vacancy/777#top", wantID: "777", wantOK: true},
		{name: "bare id", link: "123456", wantID: "123456", wantOK: true},
		{name: "no id", link: "https://hh.kz/vacancy/", wantOK: false},
		{name: "id glued to text", link: "https://hh.kz/vacancy/123abc", wantOK: false},
		{name: "not a vacancy", link: "https://hh.kz/employer/12345", wantOK: false},
		{name: "empty", link: "", wantOK: false},
		{name: "garbage", link: "::::not a url%%%", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractVacancyID(tt.link)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)

			if !ok {
				return
			}
			again, okAgain := ExtractVacancyID(id)
			assert.True(t, okAgain)
			assert.Equal(t, id, again)
		})
	}
}

func TestExtractVacancyID_NeverPanics(t *testing.T) {
	inputs := []string{"\x00", "/vacancy/", "/vacancy/abc", "vacancy/1", string([]byte{0xff, 0xfe}), "/vacancy/" + string(make([]byte, 4096))}
	for _, in := range inputs {
		assert.NotPanics(t, func() { ExtractVacancyID(in) })
	}
}
