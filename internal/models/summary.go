package models

import "encoding/json"

type FieldKind int

const (
	FieldEmpty FieldKind = iota
	FieldText
	FieldItems
)

// SummaryField is resolved once when the summarizer answers, so rendering
// never has to guess whether it got a list or a string.
type SummaryField struct {
	Kind  FieldKind
	Text  string
	Items []string
}

func EmptyField() SummaryField { return SummaryField{Kind: FieldEmpty} }

func TextField(s string) SummaryField {
	if s == "" {
		return EmptyField()
	}
	return SummaryField{Kind: FieldText, Text: s}
}

func ItemsField(items []string) SummaryField {
	if len(items) == 0 {
		return EmptyField()
	}
	return SummaryField{Kind: FieldItems, Items: items}
}

// Bullets flattens the field into display lines.
func (f SummaryField) Bullets() []string {
	switch f.Kind {
	case FieldText:
		return []string{f.Text}
	case FieldItems:
		return f.Items
	default:
		return nil
	}
}

type Summary struct {
	Responsibilities SummaryField `json:"responsibilities"`
	Requirements     SummaryField `json:"requirements"`
	AboutCompany     SummaryField `json:"about_company"`
}

// MarshalJSON writes the field back in the shape the summarizer uses:
// null, a string, or a list of strings.
func (f SummaryField) MarshalJSON() ([]byte, error) {
	switch f.Kind {
	case FieldText:
		return json.Marshal(f.Text)
	case FieldItems:
		return json.Marshal(f.Items)
	default:
		return []byte("null"), nil
	}
}
