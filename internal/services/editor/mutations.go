package editor

import (
	"artiste_site/internal/content"
	"artiste_site/internal/domain/models"
)

// Mutation меняет черновик секции
type Mutation func(s *models.Section) error

// Fields - частичное обновление полей секции, nil означает "не менять"
type Fields struct {
	Title               *string
	Subtitle            *string
	Description         *string
	ButtonText          *string
	ButtonLink          *string
	ImageURL            *string
	ImageOverlayOpacity *float64
	BackgroundColor     *string
	TextColor           *string
	AccentColor         *string
	IsVisible           *bool
}

func SetFields(f Fields) Mutation {
	return func(s *models.Section) error {
		setStr(&s.Title, f.Title)
		setStr(&s.Subtitle, f.Subtitle)
		setStr(&s.Description, f.Description)
		setStr(&s.ButtonText, f.ButtonText)
		setStr(&s.ButtonLink, f.ButtonLink)
		setStr(&s.ImageURL, f.ImageURL)
		setStr(&s.BackgroundColor, f.BackgroundColor)
		setStr(&s.TextColor, f.TextColor)
		setStr(&s.AccentColor, f.AccentColor)
		if f.ImageOverlayOpacity != nil {
			s.ImageOverlayOpacity = content.ClampOpacity(*f.ImageOverlayOpacity)
		}
		if f.IsVisible != nil {
			s.IsVisible = *f.IsVisible
		}
		return nil
	}
}

// MergeCustomData перезаписывает переданные ключи custom_data, остальные сохраняются
func MergeCustomData(patch models.Metadata) Mutation {
	return func(s *models.Section) error {
		if s.CustomData == nil {
			s.CustomData = models.Metadata{}
		}
		for k, v := range patch.Clone() {
			s.CustomData[k] = v
		}
		return nil
	}
}

// SetTitleLine edits one line of a hero title stored as "first|second".
func SetTitleLine(idx int, value string) Mutation {
	return func(s *models.Section) error {
		s.Title = models.StrPtr(content.SetTitleLine(models.Str(s.Title), idx, value))
		return nil
	}
}

func AddQuestion() Mutation {
	return faqMutation(func(d models.FAQData) (models.FAQData, error) {
		return content.AddQuestion(d), nil
	})
}

func UpdateQuestion(idx int, edit content.QuestionEdit) Mutation {
	return faqMutation(func(d models.FAQData) (models.FAQData, error) {
		return content.UpdateQuestion(d, idx, edit)
	})
}

func RemoveQuestion(idx int) Mutation {
	return faqMutation(func(d models.FAQData) (models.FAQData, error) {
		return content.RemoveQuestion(d, idx)
	})
}

func faqMutation(fn func(models.FAQData) (models.FAQData, error)) Mutation {
	return func(s *models.Section) error {
		data, _ := models.DecodePayload(models.SectionFAQ, s.CustomData).(models.FAQData)
		next, err := fn(data)
		if err != nil {
			return err
		}
		s.CustomData = next.Apply(s.CustomData)
		return nil
	}
}

func setStr(dst **string, v *string) {
	if v == nil {
		return
	}
	if *v == "" {
		*dst = nil
		return
	}
	*dst = models.StrPtr(*v)
}
