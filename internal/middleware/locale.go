package middleware

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/labstack/echo/v4"
)

const TranslatorKey = "translator"

type TranslatorProvider interface {
	Translator(acceptLanguage string) ut.Translator
}

// Locale кладёт в контекст переводчик ошибок валидации по заголовку Accept-Language
func Locale(p TranslatorProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(TranslatorKey, p.Translator(c.Request().Header.Get("Accept-Language")))
			return next(c)
		}
	}
}
