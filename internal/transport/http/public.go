package http

import (
	"log/slog"
	"net/http"

	"artiste_site/internal/domain/models"
	"artiste_site/internal/transport/http/dto"
	"artiste_site/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// GetPage godoc
// @Summary Публичная страница
// @Description Видимые секции страницы в порядке section_order, с разрешёнными цветами, оверлеем и локализованными полями.
// @Tags pages
// @Produce json
// @Param page path string true "Имя страницы" example(home)
// @Param locale query string false "Язык" Enums(fr, en)
// @Success 200 {object} response.Response{data=[]content.RenderedSection}
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /api/v1/pages/{page} [get]
func (r *Routers) GetPage(c echo.Context) error {
	const op = "http.routers.GetPage"

	log := r.log.With(
		slog.String("op", op),
		slog.String("page", c.Param("page")),
	)

	lang := locale(c)

	rendered, err := r.SectionService.PublicPage(c.Request().Context(), c.Param("page"), lang)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.LocalizedResponse(rendered, lang))
}

// GetPageSection godoc
// @Summary Одна видимая секция страницы по ключу
// @Tags pages
// @Produce json
// @Param page path string true "Имя страницы"
// @Param key path string true "Ключ секции" example(hero)
// @Param locale query string false "Язык" Enums(fr, en)
// @Success 200 {object} response.Response{data=content.RenderedSection}
// @Failure 404 {object} response.ErrorResponse "Секция отсутствует или скрыта"
// @Router /api/v1/pages/{page}/sections/{key} [get]
func (r *Routers) GetPageSection(c echo.Context) error {
	const op = "http.routers.GetPageSection"

	log := r.log.With(
		slog.String("op", op),
		slog.String("page", c.Param("page")),
		slog.String("key", c.Param("key")),
	)

	lang := locale(c)

	rendered, err := r.SectionService.PublicSection(
		c.Request().Context(),
		c.Param("page"),
		models.SectionKey(c.Param("key")),
		lang,
	)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.LocalizedResponse(rendered, lang))
}

// ListPaintings godoc
// @Summary Каталог картин
// @Tags catalog
// @Produce json
// @Param category query []string false "Категории" collectionFormat(multi)
// @Param available query bool false "Только доступные"
// @Param limit query int false "Лимит"
// @Param offset query int false "Смещение"
// @Success 200 {object} response.Response{data=[]dto.PaintingResponse}
// @Failure 400 {object} response.ErrorResponse "Неверные параметры"
// @Router /api/v1/paintings [get]
func (r *Routers) ListPaintings(c echo.Context) error {
	const op = "http.routers.ListPaintings"

	log := r.log.With(
		slog.String("op", op),
	)

	var q dto.PaintingQuery
	if err := bind(c, &q); err != nil {
		return r.invalid(c, log, err)
	}

	list, err := r.CatalogService.ListPaintings(c.Request().Context(), q.ToFilter())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.NewPaintingList(list)))
}

// GetPainting godoc
// @Summary Картина по ID
// @Tags catalog
// @Produce json
// @Param id path string true "UUID картины" format(uuid)
// @Success 200 {object} response.Response{data=dto.PaintingResponse}
// @Failure 400 {object} response.ErrorResponse "Невалидный UUID"
// @Failure 404 {object} response.ErrorResponse "Картина не найдена"
// @Router /api/v1/paintings/{id} [get]
func (r *Routers) GetPainting(c echo.Context) error {
	const op = "http.routers.GetPainting"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := paramUUID(c, "id")
	if err != nil {
		return r.invalidID(c, "painting id")
	}

	p, err := r.CatalogService.GetPainting(c.Request().Context(), id)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.NewPaintingResponse(p)))
}

// GalleryCategories godoc
// @Summary Категории фильтра галереи
// @Description Категории из настроек секции gallery, иначе выведенные из каталога.
// @Tags catalog
// @Produce json
// @Success 200 {object} response.Response{data=models.GalleryData}
// @Router /api/v1/gallery/categories [get]
func (r *Routers) GalleryCategories(c echo.Context) error {
	const op = "http.routers.GalleryCategories"

	log := r.log.With(
		slog.String("op", op),
	)

	data, err := r.CatalogService.GalleryCategories(c.Request().Context())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(data))
}

// ListExhibitions godoc
// @Summary Список выставок
// @Tags exhibitions
// @Produce json
// @Success 200 {object} response.Response{data=[]models.Exhibition}
// @Router /api/v1/exhibitions [get]
func (r *Routers) ListExhibitions(c echo.Context) error {
	const op = "http.routers.ListExhibitions"

	log := r.log.With(
		slog.String("op", op),
	)

	list, err := r.ExhibitionService.ListExhibitions(c.Request().Context())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(list))
}

// ExhibitionCalendar godoc
// @Summary Календарь выставок
// @Description Предстоящие и прошедшие выставки, сгруппированные по году и месяцу.
// @Tags exhibitions
// @Produce json
// @Success 200 {object} response.Response{data=services.Calendar}
// @Router /api/v1/exhibitions/calendar [get]
func (r *Routers) ExhibitionCalendar(c echo.Context) error {
	const op = "http.routers.ExhibitionCalendar"

	log := r.log.With(
		slog.String("op", op),
	)

	cal, err := r.ExhibitionService.Calendar(c.Request().Context())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(cal))
}

// GetSettings godoc
// @Summary Настройки сайта
// @Tags settings
// @Produce json
// @Param locale query string false "Язык" Enums(fr, en)
// @Success 200 {object} response.Response{data=models.Settings}
// @Router /api/v1/settings [get]
func (r *Routers) GetSettings(c echo.Context) error {
	const op = "http.routers.GetSettings"

	log := r.log.With(
		slog.String("op", op),
	)

	settings, err := r.SettingsService.Localized(c.Request().Context(), c.QueryParam("locale"))
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(settings))
}
