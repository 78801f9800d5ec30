package validate

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/fr"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translation "github.com/go-playground/validator/v10/translations/en"
	fr_translation "github.com/go-playground/validator/v10/translations/fr"
)

// Validator проверяет DTO и переводит ошибки на язык клиента (en по умолчанию)
type Validator struct {
	validate *validator.Validate
	uni      *ut.UniversalTranslator
}

func New() (*Validator, error) {
	enT := en.New()
	frT := fr.New()

	// первый аргумент - запасной язык
	uni := ut.New(enT, enT, frT)

	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enTrans, _ := uni.GetTranslator("en")
	if err := en_translation.RegisterDefaultTranslations(v, enTrans); err != nil {
		return nil, err
	}

	frTrans, _ := uni.GetTranslator("fr")
	if err := fr_translation.RegisterDefaultTranslations(v, frTrans); err != nil {
		return nil, err
	}

	return &Validator{validate: v, uni: uni}, nil
}

// Validate реализует echo.Validator
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// Translator picks the first supported language of an Accept-Language header.
func (v *Validator) Translator(acceptLanguage string) ut.Translator {
	var langs []string
	for _, part := range strings.Split(acceptLanguage, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if tag == "" {
			continue
		}
		langs = append(langs, strings.ToLower(strings.SplitN(tag, "-", 2)[0]))
	}

	trans, _ := v.uni.FindTranslator(langs...)
	return trans
}

// Details returns "field: message" pairs joined by "; ", or err.Error() for non-validation errors.
func Details(err error, trans ut.Translator) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || trans == nil {
		return err.Error()
	}

	translated := remove(verrs.Translate(trans))

	keys := make([]string, 0, len(translated))
	for k := range translated {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+translated[k])
	}

	return strings.Join(parts, "; ")
}

// remove отрезает имя структуры из namespace
func remove(errs validator.ValidationErrorsTranslations) map[string]string {
	result := make(map[string]string, len(errs))
	for key, value := range errs {
		result[key[strings.Index(key, ".")+1:]] = value
	}
	return result
}
