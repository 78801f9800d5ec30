package content

import (
	"errors"

	"artiste_site/internal/domain/models"
)

// ErrIndexOutOfRange is returned by index based FAQ edits.
var ErrIndexOutOfRange = errors.New("faq: index out of range")

// AddQuestion appends an empty question.
func AddQuestion(data models.FAQData) models.FAQData {
	out := cloneFAQ(data)
	out.Questions = append(out.Questions, models.FAQItem{})
	return out
}

// QuestionEdit replaces the French text of a question. The English mirrors
// change only when set; an empty string clears them.
type QuestionEdit struct {
	Q   string
	A   string
	QEn *string
	AEn *string
}

func UpdateQuestion(data models.FAQData, idx int, edit QuestionEdit) (models.FAQData, error) {
	if idx < 0 || idx >= len(data.Questions) {
		return data, ErrIndexOutOfRange
	}
	out := cloneFAQ(data)

	item := out.Questions[idx]
	item.Q = edit.Q
	item.A = edit.A
	if edit.QEn != nil {
		item.QEn = *edit.QEn
	}
	if edit.AEn != nil {
		item.AEn = *edit.AEn
	}
	out.Questions[idx] = item

	return out, nil
}

func RemoveQuestion(data models.FAQData, idx int) (models.FAQData, error) {
	if idx < 0 || idx >= len(data.Questions) {
		return data, ErrIndexOutOfRange
	}
	out := cloneFAQ(data)
	out.Questions = append(out.Questions[:idx], out.Questions[idx+1:]...)
	return out, nil
}

func cloneFAQ(data models.FAQData) models.FAQData {
	questions := make([]models.FAQItem, len(data.Questions))
	copy(questions, data.Questions)
	return models.FAQData{Questions: questions}
}
