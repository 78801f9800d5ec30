package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"artiste_site/internal/domain/models"
	"artiste_site/internal/transport/http/dto"
	"artiste_site/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CreatePainting godoc
// @Summary Добавить картину
// @Tags admin-catalog
// @Accept json
// @Produce json
// @Param request body dto.PaintingRequest true "Картина"
// @Success 201 {object} response.Response{data=dto.PaintingResponse}
// @Failure 400 {object} response.ErrorResponse "Неверные данные"
// @Router /api/v1/admin/paintings [post]
func (r *Routers) CreatePainting(c echo.Context) error {
	const op = "http.routers.CreatePainting"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.PaintingRequest
	if err := bind(c, &req); err != nil {
		return r.invalid(c, log, err)
	}

	p, err := r.CatalogService.CreatePainting(c.Request().Context(), req.ToDomain(uuid.Nil))
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(dto.NewPaintingResponse(p)))
}

// UpdatePainting godoc
// @Summary Изменить картину
// @Tags admin-catalog
// @Accept json
// @Produce json
// @Param id path string true "UUID картины" format(uuid)
// @Param request body dto.PaintingRequest true "Картина"
// @Success 200 {object} response.Response{data=dto.PaintingResponse}
// @Failure 404 {object} response.ErrorResponse "Картина не найдена"
// @Router /api/v1/admin/paintings/{id} [put]
func (r *Routers) UpdatePainting(c echo.Context) error {
	const op = "http.routers.UpdatePainting"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := paramUUID(c, "id")
	if err != nil {
		return r.invalidID(c, "painting id")
	}

	var req dto.PaintingRequest
	if err := bind(c, &req); err != nil {
		return r.invalid(c, log, err)
	}

	p, err := r.CatalogService.UpdatePainting(c.Request().Context(), req.ToDomain(id))
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.NewPaintingResponse(p)))
}

// DeletePainting godoc
// @Summary Удалить картину
// @Tags admin-catalog
// @Param id path string true "UUID картины" format(uuid)
// @Success 204
// @Router /api/v1/admin/paintings/{id} [delete]
func (r *Routers) DeletePainting(c echo.Context) error {
	const op = "http.routers.DeletePainting"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := paramUUID(c, "id")
	if err != nil {
		return r.invalidID(c, "painting id")
	}

	if err := r.CatalogService.DeletePainting(c.Request().Context(), id); err != nil {
		return r.fail(c, log, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateExhibition godoc
// @Summary Добавить выставку
// @Tags admin-exhibitions
// @Accept json
// @Produce json
// @Param request body dto.ExhibitionRequest true "Выставка"
// @Success 201 {object} response.Response{data=models.Exhibition}
// @Router /api/v1/admin/exhibitions [post]
func (r *Routers) CreateExhibition(c echo.Context) error {
	const op = "http.routers.CreateExhibition"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.ExhibitionRequest
	if err := bind(c, &req); err != nil {
		return r.invalid(c, log, err)
	}

	e, err := req.ToDomain(uuid.Nil)
	if err != nil {
		return r.invalid(c, log, err)
	}

	created, err := r.ExhibitionService.CreateExhibition(c.Request().Context(), e)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(created))
}

// UpdateExhibition godoc
// @Summary Изменить выставку
// @Tags admin-exhibitions
// @Accept json
// @Produce json
// @Param id path string true "UUID выставки" format(uuid)
// @Param request body dto.ExhibitionRequest true "Выставка"
// @Success 200 {object} response.Response{data=models.Exhibition}
// @Router /api/v1/admin/exhibitions/{id} [put]
func (r *Routers) UpdateExhibition(c echo.Context) error {
	const op = "http.routers.UpdateExhibition"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := paramUUID(c, "id")
	if err != nil {
		return r.invalidID(c, "exhibition id")
	}

	var req dto.ExhibitionRequest
	if err := bind(c, &req); err != nil {
		return r.invalid(c, log, err)
	}

	e, err := req.ToDomain(id)
	if err != nil {
		return r.invalid(c, log, err)
	}

	updated, err := r.ExhibitionService.UpdateExhibition(c.Request().Context(), e)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(updated))
}

// DeleteExhibition godoc
// @Summary Удалить выставку
// @Tags admin-exhibitions
// @Param id path string true "UUID выставки" format(uuid)
// @Success 204
// @Router /api/v1/admin/exhibitions/{id} [delete]
func (r *Routers) DeleteExhibition(c echo.Context) error {
	const op = "http.routers.DeleteExhibition"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := paramUUID(c, "id")
	if err != nil {
		return r.invalidID(c, "exhibition id")
	}

	if err := r.ExhibitionService.DeleteExhibition(c.Request().Context(), id); err != nil {
		return r.fail(c, log, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListOrders godoc
// @Summary Заказы
// @Tags admin-orders
// @Produce json
// @Param status query string false "Фильтр по статусу" Enums(pending, paid, processing, shipped, delivered, cancelled)
// @Success 200 {object} response.Response{data=[]models.Order}
// @Router /api/v1/admin/orders [get]
func (r *Routers) ListOrders(c echo.Context) error {
	const op = "http.routers.ListOrders"

	log := r.log.With(
		slog.String("op", op),
	)

	list, err := r.OrderService.ListOrders(c.Request().Context(), models.OrderStatus(c.QueryParam("status")))
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(list))
}

// GetOrder godoc
// @Summary Заказ по ID
// @Tags admin-orders
// @Produce json
// @Param id path string true "UUID заказа" format(uuid)
// @Success 200 {object} response.Response{data=models.Order}
// @Failure 404 {object} response.ErrorResponse "Заказ не найден"
// @Router /api/v1/admin/orders/{id} [get]
func (r *Routers) GetOrder(c echo.Context) error {
	const op = "http.routers.GetOrder"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := paramUUID(c, "id")
	if err != nil {
		return r.invalidID(c, "order id")
	}

	order, err := r.OrderService.GetOrder(c.Request().Context(), id)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(order))
}

// UpdateOrder godoc
// @Summary Изменить статус, трек-номер и заметки
// @Description Статус двигается только вперёд по цепочке, cancelled доступен из любого нетерминального.
// @Tags admin-orders
// @Accept json
// @Produce json
// @Param id path string true "UUID заказа" format(uuid)
// @Param request body dto.UpdateOrderRequest true "Изменения"
// @Success 200 {object} response.Response{data=models.Order}
// @Failure 409 {object} response.ErrorResponse "Недопустимый переход статуса"
// @Router /api/v1/admin/orders/{id} [patch]
func (r *Routers) UpdateOrder(c echo.Context) error {
	const op = "http.routers.UpdateOrder"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := paramUUID(c, "id")
	if err != nil {
		return r.invalidID(c, "order id")
	}

	var req dto.UpdateOrderRequest
	if err := bind(c, &req); err != nil {
		return r.invalid(c, log, err)
	}

	order, err := r.OrderService.UpdateOrder(c.Request().Context(), id, req.ToDomain())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(order))
}

// ExportOrders godoc
// @Summary Выгрузка заказов в xlsx
// @Tags admin-orders
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param status query string false "Фильтр по статусу"
// @Success 200 {file} file
// @Router /api/v1/admin/orders/export [get]
func (r *Routers) ExportOrders(c echo.Context) error {
	const op = "http.routers.ExportOrders"

	log := r.log.With(
		slog.String("op", op),
	)

	var buf bytes.Buffer
	if err := r.OrderService.ExportXLSX(c.Request().Context(), models.OrderStatus(c.QueryParam("status")), &buf); err != nil {
		return r.fail(c, log, err)
	}

	filename := fmt.Sprintf("commandes-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))

	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// AdminSettings godoc
// @Summary Настройки сайта без локализации
// @Tags admin-settings
// @Produce json
// @Success 200 {object} response.Response{data=models.Settings}
// @Router /api/v1/admin/settings [get]
func (r *Routers) AdminSettings(c echo.Context) error {
	const op = "http.routers.AdminSettings"

	log := r.log.With(
		slog.String("op", op),
	)

	settings, err := r.SettingsService.GetSettings(c.Request().Context())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(settings))
}

// UpsertSettings godoc
// @Summary Сохранить настройки сайта
// @Tags admin-settings
// @Accept json
// @Produce json
// @Param request body dto.SettingsRequest true "Настройки"
// @Success 200 {object} response.Response{data=models.Settings}
// @Router /api/v1/admin/settings [put]
func (r *Routers) UpsertSettings(c echo.Context) error {
	const op = "http.routers.UpsertSettings"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.SettingsRequest
	if err := bind(c, &req); err != nil {
		return r.invalid(c, log, err)
	}

	saved, err := r.SettingsService.UpsertSettings(c.Request().Context(), req.ToDomain())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(saved))
}

// Upload godoc
// @Summary Загрузка изображения
// @Description Сохраняет файл как uploads/<folder>/<uuid><ext>. Принимаются jpeg, png, webp и gif.
// @Tags admin-uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Изображение"
// @Param folder formData string false "Папка (по умолчанию misc)"
// @Success 201 {object} response.Response{data=models.Upload}
// @Failure 400 {object} response.ErrorResponse "Нет файла или неверная папка"
// @Failure 413 {object} response.ErrorResponse "Превышен максимальный размер файла"
// @Failure 415 {object} response.ErrorResponse "Неподдерживаемый тип файла"
// @Router /api/v1/admin/uploads [post]
func (r *Routers) Upload(c echo.Context) error {
	const op = "http.routers.Upload"

	log := r.log.With(
		slog.String("op", op),
	)

	startTime := time.Now()

	file, err := c.FormFile("file")
	if err != nil {
		log.Warn("empty file in request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("file_required", "file is required"))
	}

	log.Debug("got file for upload",
		slog.String("filename", file.Filename),
		slog.Int64("size", file.Size),
	)

	upload, err := r.MediaService.Upload(c.Request().Context(), file, c.FormValue("folder"))
	if err != nil {
		return r.fail(c, log, err)
	}

	log.Info("upload successful",
		slog.String("path", upload.Path),
		slog.Duration("duration", time.Since(startTime)),
	)

	return c.JSON(http.StatusCreated, response.SuccessResponse(upload))
}

// DeleteUpload godoc
// @Summary Удалить загруженный файл
// @Tags admin-uploads
// @Param path query string true "Относительный путь файла"
// @Success 204
// @Failure 404 {object} response.ErrorResponse "Файл не найден"
// @Router /api/v1/admin/uploads [delete]
func (r *Routers) DeleteUpload(c echo.Context) error {
	const op = "http.routers.DeleteUpload"

	log := r.log.With(
		slog.String("op", op),
	)

	path := c.QueryParam("path")
	if path == "" {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "path is required"))
	}

	if err := r.MediaService.Delete(c.Request().Context(), path); err != nil {
		return r.fail(c, log, err)
	}

	return c.NoContent(http.StatusNoContent)
}
