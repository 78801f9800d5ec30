package http

import (
	"log/slog"
	"net/http"

	sections "artiste_site/internal/services/section_service"
	"artiste_site/internal/transport/http/dto"
	"artiste_site/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// ListPages godoc
// @Summary Страницы, у которых есть секции
// @Tags admin-sections
// @Produce json
// @Success 200 {object} response.Response{data=[]string}
// @Router /api/v1/admin/pages [get]
func (r *Routers) ListPages(c echo.Context) error {
	const op = "http.routers.ListPages"

	log := r.log.With(
		slog.String("op", op),
	)

	pages, err := r.SectionService.ListPages(c.Request().Context())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(pages))
}

// AdminSections godoc
// @Summary Все секции страницы, включая скрытые
// @Description Список берётся из памяти после первой загрузки; reload=true перечитывает БД.
// @Tags admin-sections
// @Produce json
// @Param page path string true "Имя страницы"
// @Param reload query bool false "Перечитать из БД"
// @Success 200 {object} response.Response{data=[]models.Section}
// @Router /api/v1/admin/pages/{page}/sections [get]
func (r *Routers) AdminSections(c echo.Context) error {
	const op = "http.routers.AdminSections"

	log := r.log.With(
		slog.String("op", op),
		slog.String("page", c.Param("page")),
	)

	ctx := c.Request().Context()
	page := c.Param("page")

	load := r.SectionService.AdminSections
	if c.QueryParam("reload") == "true" {
		load = r.SectionService.Reload
	}

	list, err := load(ctx, page)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(list))
}

// CreateSection godoc
// @Summary Добавить секцию в конец страницы
// @Description Секция создаётся с цветами, оверлеем и custom_data по умолчанию.
// @Tags admin-sections
// @Accept json
// @Produce json
// @Param page path string true "Имя страницы"
// @Param request body dto.CreateSectionRequest true "Ключ секции"
// @Success 201 {object} response.Response{data=models.Section}
// @Failure 400 {object} response.ErrorResponse "Неизвестный ключ"
// @Router /api/v1/admin/pages/{page}/sections [post]
func (r *Routers) CreateSection(c echo.Context) error {
	const op = "http.routers.CreateSection"

	log := r.log.With(
		slog.String("op", op),
		slog.String("page", c.Param("page")),
	)

	var req dto.CreateSectionRequest
	if err := bind(c, &req); err != nil {
		return r.invalid(c, log, err)
	}

	created, err := r.SectionService.CreateSection(c.Request().Context(), c.Param("page"), req.SectionKey)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(created))
}

// GetSection godoc
// @Summary Секция по ID
// @Tags admin-sections
// @Produce json
// @Param id path string true "UUID секции" format(uuid)
// @Success 200 {object} response.Response{data=models.Section}
// @Failure 404 {object} response.ErrorResponse "Секция не найдена"
// @Router /api/v1/admin/sections/{id} [get]
func (r *Routers) GetSection(c echo.Context) error {
	const op = "http.routers.GetSection"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := paramUUID(c, "id")
	if err != nil {
		return r.invalidID(c, "section id")
	}

	sec, err := r.SectionService.GetSection(c.Request().Context(), id)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(sec))
}

// UpdateSection godoc
// @Summary Перезаписать секцию целиком
// @Tags admin-sections
// @Accept json
// @Produce json
// @Param id path string true "UUID секции" format(uuid)
// @Param request body dto.UpdateSectionRequest true "Все редактируемые поля"
// @Success 200 {object} response.Response{data=models.Section}
// @Failure 400 {object} response.ErrorResponse "Неверные данные"
// @Failure 404 {object} response.ErrorResponse "Секция не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища, локальный список не изменён"
// @Router /api/v1/admin/sections/{id} [put]
func (r *Routers) UpdateSection(c echo.Context) error {
	const op = "http.routers.UpdateSection"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := paramUUID(c, "id")
	if err != nil {
		return r.invalidID(c, "section id")
	}

	var req dto.UpdateSectionRequest
	if err := bind(c, &req); err != nil {
		return r.invalid(c, log, err)
	}

	ctx := c.Request().Context()

	current, err := r.SectionService.GetSection(ctx, id)
	if err != nil {
		return r.fail(c, log, err)
	}

	saved, err := r.SectionService.SaveSection(ctx, req.Apply(current))
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(saved))
}

// SetSectionVisibility godoc
// @Summary Показать или скрыть секцию
// @Tags admin-sections
// @Accept json
// @Produce json
// @Param id path string true "UUID секции" format(uuid)
// @Param request body dto.VisibilityRequest true "Видимость"
// @Success 200 {object} response.Response{data=models.Section}
// @Router /api/v1/admin/sections/{id}/visibility [patch]
func (r *Routers) SetSectionVisibility(c echo.Context) error {
	const op = "http.routers.SetSectionVisibility"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := paramUUID(c, "id")
	if err != nil {
		return r.invalidID(c, "section id")
	}

	var req dto.VisibilityRequest
	if err := bind(c, &req); err != nil {
		return r.invalid(c, log, err)
	}

	sec, err := r.SectionService.SetVisibility(c.Request().Context(), id, *req.IsVisible)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(sec))
}

// DeleteSection godoc
// @Summary Удалить секцию
// @Tags admin-sections
// @Param id path string true "UUID секции" format(uuid)
// @Success 204
// @Failure 404 {object} response.ErrorResponse "Секция не найдена"
// @Router /api/v1/admin/sections/{id} [delete]
func (r *Routers) DeleteSection(c echo.Context) error {
	const op = "http.routers.DeleteSection"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := paramUUID(c, "id")
	if err != nil {
		return r.invalidID(c, "section id")
	}

	if err := r.SectionService.DeleteSection(c.Request().Context(), id); err != nil {
		return r.fail(c, log, err)
	}

	// черновик удалённой секции отбрасывается без записи
	r.EditorService.Discard(id)

	return c.NoContent(http.StatusNoContent)
}

// DuplicateSection godoc
// @Summary Дублировать секцию
// @Description Копия получает заголовок с суффиксом " (copie)", порядок +1 и сразу открывается в редакторе.
// @Tags admin-sections
// @Produce json
// @Param id path string true "UUID секции" format(uuid)
// @Success 201 {object} response.Response{data=editor.Snapshot}
// @Router /api/v1/admin/sections/{id}/duplicate [post]
func (r *Routers) DuplicateSection(c echo.Context) error {
	const op = "http.routers.DuplicateSection"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := paramUUID(c, "id")
	if err != nil {
		return r.invalidID(c, "section id")
	}

	ctx := c.Request().Context()

	dup, err := r.SectionService.DuplicateSection(ctx, id)
	if err != nil {
		return r.fail(c, log, err)
	}

	snap, err := r.EditorService.Open(ctx, dup.ID)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(snap))
}

// MoveSection godoc
// @Summary Сдвинуть секцию вверх или вниз
// @Description Меняет section_order с соседом одной транзакцией. На краю списка ничего не меняется.
// @Tags admin-sections
// @Accept json
// @Produce json
// @Param id path string true "UUID секции" format(uuid)
// @Param request body dto.MoveSectionRequest true "Направление"
// @Success 200 {object} response.Response{data=[]models.Section}
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища, порядок не изменён"
// @Router /api/v1/admin/sections/{id}/move [post]
func (r *Routers) MoveSection(c echo.Context) error {
	const op = "http.routers.MoveSection"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := paramUUID(c, "id")
	if err != nil {
		return r.invalidID(c, "section id")
	}

	var req dto.MoveSectionRequest
	if err := bind(c, &req); err != nil {
		return r.invalid(c, log, err)
	}

	dir := sections.MoveUp
	if req.Direction == "down" {
		dir = sections.MoveDown
	}

	list, err := r.SectionService.MoveSection(c.Request().Context(), id, dir)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(list))
}
