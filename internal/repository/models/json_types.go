package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"easyway/internal/domain"
)

// valueJSON marshals v into the string form stored in a jsonb column. A nil
// value is stored as the given empty literal so reads never see SQL NULL.
func valueJSON(v interface{}, emptyLiteral string) (driver.Value, error) {
	if v == nil {
		return emptyLiteral, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// scanJSON unmarshals a jsonb column value into dest. NULL and empty values
// leave dest at its zero value.
func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("scanJSON: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	return json.Unmarshal(data, dest)
}

// StringSlice stores a []string as a jsonb array.
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return valueJSON([]string(s), "[]")
}

func (s *StringSlice) Scan(value interface{}) error {
	*s = StringSlice{}
	return scanJSON(value, s)
}

// QuizOption is the stored form of one mcq choice.
type QuizOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// OptionList stores a question's mcq options as a jsonb array.
type OptionList []QuizOption

func (o OptionList) Value() (driver.Value, error) {
	if o == nil {
		return "[]", nil
	}
	return valueJSON([]QuizOption(o), "[]")
}

func (o *OptionList) Scan(value interface{}) error {
	*o = OptionList{}
	return scanJSON(value, o)
}

// AnswerPair is the stored form of one submitted answer.
type AnswerPair struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

// AnswerPairList stores a submission's answers as a jsonb array.
type AnswerPairList []AnswerPair

func (a AnswerPairList) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	return valueJSON([]AnswerPair(a), "[]")
}

func (a *AnswerPairList) Scan(value interface{}) error {
	*a = AnswerPairList{}
	return scanJSON(value, a)
}

// PersonalInfoColumn stores a resume's personal block as a jsonb object.
type PersonalInfoColumn domain.PersonalInfo

func (p PersonalInfoColumn) Value() (driver.Value, error) {
	return valueJSON(domain.PersonalInfo(p), "{}")
}

func (p *PersonalInfoColumn) Scan(value interface{}) error {
	*p = PersonalInfoColumn{}
	return scanJSON(value, p)
}

// EntryList stores one resume section as a jsonb array.
type EntryList []domain.ResumeEntry

func (e EntryList) Value() (driver.Value, error) {
	if e == nil {
		return "[]", nil
	}
	return valueJSON([]domain.ResumeEntry(e), "[]")
}

func (e *EntryList) Scan(value interface{}) error {
	*e = EntryList{}
	return scanJSON(value, e)
}

// SectionList stores a doc question's answer parts as a jsonb array.
type SectionList []domain.AnswerSection

func (s SectionList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return valueJSON([]domain.AnswerSection(s), "[]")
}

func (s *SectionList) Scan(value interface{}) error {
	*s = SectionList{}
	return scanJSON(value, s)
}

// MonthList stores a roadmap's months as a jsonb array.
type MonthList []domain.RoadmapMonth

func (m MonthList) Value() (driver.Value, error) {
	if m == nil {
		return "[]", nil
	}
	return valueJSON([]domain.RoadmapMonth(m), "[]")
}

func (m *MonthList) Scan(value interface{}) error {
	*m = MonthList{}
	return scanJSON(value, m)
}

// BoolMap stores a progress mapping as a jsonb object.
type BoolMap map[string]bool

func (b BoolMap) Value() (driver.Value, error) {
	if b == nil {
		return "{}", nil
	}
	return valueJSON(map[string]bool(b), "{}")
}

func (b *BoolMap) Scan(value interface{}) error {
	*b = BoolMap{}
	return scanJSON(value, b)
}
