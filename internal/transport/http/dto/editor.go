package dto

import (
	"artiste_site/internal/content"
	"artiste_site/internal/domain/models"
	"artiste_site/internal/services/editor"
)

// FAQOperation - операция над списком вопросов секции faq
type FAQOperation struct {
	Op       string `json:"op" validate:"required,oneof=add update remove"`
	Index    int    `json:"index" validate:"gte=0"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	// английские версии меняются, только если переданы
	QuestionEn *string `json:"question_en"`
	AnswerEn   *string `json:"answer_en"`
}

type TitleLine struct {
	Index int    `json:"index" validate:"oneof=0 1"`
	Value string `json:"value"`
}

// EditorMutationRequest: все части необязательны, применяются по порядку полей
type EditorMutationRequest struct {
	Title               *string         `json:"title"`
	Subtitle            *string         `json:"subtitle"`
	Description         *string         `json:"description"`
	ButtonText          *string         `json:"button_text"`
	ButtonLink          *string         `json:"button_link"`
	ImageURL            *string         `json:"image_url"`
	ImageOverlayOpacity *float64        `json:"image_overlay_opacity"`
	BackgroundColor     *string         `json:"background_color" validate:"omitempty,hexcolor"`
	TextColor           *string         `json:"text_color" validate:"omitempty,hexcolor"`
	AccentColor         *string         `json:"accent_color" validate:"omitempty,hexcolor"`
	IsVisible           *bool           `json:"is_visible"`
	CustomData          models.Metadata `json:"custom_data"`
	HeroTitleLine       *TitleLine      `json:"hero_title_line" validate:"omitempty"`
	FAQ                 *FAQOperation   `json:"faq" validate:"omitempty"`
}

func (r EditorMutationRequest) Mutations() []editor.Mutation {
	mutations := []editor.Mutation{editor.SetFields(editor.Fields{
		Title:               r.Title,
		Subtitle:            r.Subtitle,
		Description:         r.Description,
		ButtonText:          r.ButtonText,
		ButtonLink:          r.ButtonLink,
		ImageURL:            r.ImageURL,
		ImageOverlayOpacity: r.ImageOverlayOpacity,
		BackgroundColor:     r.BackgroundColor,
		TextColor:           r.TextColor,
		AccentColor:         r.AccentColor,
		IsVisible:           r.IsVisible,
	})}

	if len(r.CustomData) > 0 {
		mutations = append(mutations, editor.MergeCustomData(r.CustomData))
	}

	if r.HeroTitleLine != nil {
		mutations = append(mutations, editor.SetTitleLine(r.HeroTitleLine.Index, r.HeroTitleLine.Value))
	}

	if r.FAQ != nil {
		switch r.FAQ.Op {
		case "add":
			mutations = append(mutations, editor.AddQuestion())
		case "update":
			mutations = append(mutations, editor.UpdateQuestion(r.FAQ.Index, content.QuestionEdit{
				Q:   r.FAQ.Question,
				A:   r.FAQ.Answer,
				QEn: r.FAQ.QuestionEn,
				AEn: r.FAQ.AnswerEn,
			}))
		case "remove":
			mutations = append(mutations, editor.RemoveQuestion(r.FAQ.Index))
		}
	}

	return mutations
}
