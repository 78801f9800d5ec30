package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"artiste_site/internal/lib/logger/sl"
	"artiste_site/internal/realtime"
	"artiste_site/internal/transport/http/dto"
	"artiste_site/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// OpenEditor godoc
// @Summary Открыть секцию в редакторе
// @Description Создаёт черновик (глубокую копию секции). Повторное открытие возвращает текущий черновик.
// @Tags admin-editor
// @Produce json
// @Param id path string true "UUID секции" format(uuid)
// @Success 200 {object} response.Response{data=editor.Snapshot}
// @Failure 404 {object} response.ErrorResponse "Секция не найдена"
// @Router /api/v1/admin/editor/{id} [post]
func (r *Routers) OpenEditor(c echo.Context) error {
	const op = "http.routers.OpenEditor"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := paramUUID(c, "id")
	if err != nil {
		return r.invalidID(c, "section id")
	}

	snap, err := r.EditorService.Open(c.Request().Context(), id)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(snap))
}

// EditorState godoc
// @Summary Состояние черновика
// @Tags admin-editor
// @Produce json
// @Param id path string true "UUID секции" format(uuid)
// @Success 200 {object} response.Response{data=editor.Snapshot}
// @Failure 404 {object} response.ErrorResponse "Редактор не открыт"
// @Router /api/v1/admin/editor/{id} [get]
func (r *Routers) EditorState(c echo.Context) error {
	const op = "http.routers.EditorState"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := paramUUID(c, "id")
	if err != nil {
		return r.invalidID(c, "section id")
	}

	snap, err := r.EditorService.State(id)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(snap))
}

// MutateDraft godoc
// @Summary Изменить черновик
// @Description Меняет только черновик и перезапускает таймер автосохранения (1.5 с без изменений).
// @Tags admin-editor
// @Accept json
// @Produce json
// @Param id path string true "UUID секции" format(uuid)
// @Param request body dto.EditorMutationRequest true "Изменения"
// @Success 200 {object} response.Response{data=editor.Snapshot}
// @Failure 400 {object} response.ErrorResponse "Неверные данные или индекс вопроса"
// @Failure 404 {object} response.ErrorResponse "Редактор не открыт"
// @Router /api/v1/admin/editor/{id} [patch]
func (r *Routers) MutateDraft(c echo.Context) error {
	const op = "http.routers.MutateDraft"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := paramUUID(c, "id")
	if err != nil {
		return r.invalidID(c, "section id")
	}

	var req dto.EditorMutationRequest
	if err := bind(c, &req); err != nil {
		return r.invalid(c, log, err)
	}

	snap, err := r.EditorService.Mutate(id, req.Mutations()...)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(snap))
}

// SaveDraft godoc
// @Summary Сохранить черновик сейчас
// @Description Отменяет отложенное автосохранение. При ошибке черновик сохраняется, состояние error.
// @Tags admin-editor
// @Produce json
// @Param id path string true "UUID секции" format(uuid)
// @Success 200 {object} response.Response{data=editor.Snapshot}
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /api/v1/admin/editor/{id}/save [post]
func (r *Routers) SaveDraft(c echo.Context) error {
	const op = "http.routers.SaveDraft"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := paramUUID(c, "id")
	if err != nil {
		return r.invalidID(c, "section id")
	}

	snap, err := r.EditorService.Save(c.Request().Context(), id)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(snap))
}

// CloseEditor godoc
// @Summary Закрыть редактор
// @Description Несохранённый черновик сохраняется перед закрытием.
// @Tags admin-editor
// @Param id path string true "UUID секции" format(uuid)
// @Success 204
// @Router /api/v1/admin/editor/{id} [delete]
func (r *Routers) CloseEditor(c echo.Context) error {
	const op = "http.routers.CloseEditor"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := paramUUID(c, "id")
	if err != nil {
		return r.invalidID(c, "section id")
	}

	if err := r.EditorService.Close(c.Request().Context(), id); err != nil {
		return r.fail(c, log, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// PreviewStream godoc
// @Summary Поток изменений секций для живого превью (SSE)
// @Tags admin-editor
// @Produce text/event-stream
// @Param page path string true "Имя страницы"
// @Success 200 {string} string "text/event-stream"
// @Router /api/v1/admin/pages/{page}/preview [get]
func (r *Routers) PreviewStream(c echo.Context) error {
	const op = "http.routers.PreviewStream"

	page := c.Param("page")

	log := r.log.With(
		slog.String("op", op),
		slog.String("page", page),
	)

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	events := r.Preview.Subscribe(page)
	defer r.Preview.Unsubscribe(page, events)

	if err := writeEvent(w, realtime.Event{Type: "connected", Page: page, Timestamp: time.Now().Unix()}); err != nil {
		return nil
	}

	ticker := time.NewTicker(r.keepAlive)
	defer ticker.Stop()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			log.Debug("preview client disconnected")
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if err := writeEvent(w, event); err != nil {
				log.Warn("failed to write preview event", sl.Err(err))
				return nil
			}
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}

func writeEvent(w *echo.Response, event realtime.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, payload); err != nil {
		return err
	}
	w.Flush()

	return nil
}
