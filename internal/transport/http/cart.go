package http

import (
	"log/slog"
	"net/http"

	"artiste_site/internal/domain/models"
	carts "artiste_site/internal/services/cart_service"
	"artiste_site/internal/transport/http/dto"
	"artiste_site/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// cartResponse: история заказов добавляется только для авторизованного покупателя
type cartResponse struct {
	carts.CartView
	Orders []models.Order `json:"orders,omitempty"`
}

// GetCart godoc
// @Summary Текущая корзина
// @Description Корзина из cookie cart_id. С Bearer-токеном в ответ добавляется история заказов.
// @Tags cart
// @Produce json
// @Success 200 {object} response.Response{data=cartResponse}
// @Router /api/v1/cart [get]
func (r *Routers) GetCart(c echo.Context) error {
	const op = "http.routers.GetCart"

	log := r.log.With(
		slog.String("op", op),
	)

	ctx := c.Request().Context()

	view := carts.CartView{Lines: []carts.CartLineView{}}
	if id := cartID(c); id != "" {
		var err error
		view, err = r.CartService.GetCart(ctx, id)
		if err != nil {
			return r.fail(c, log, err)
		}
	}

	resp := cartResponse{CartView: view}

	if userID, ok := currentUser(c); ok {
		// отсутствие таблицы заказов сервис уже сводит к пустому списку
		history, err := r.OrderService.MyOrders(ctx, userID)
		if err != nil {
			return r.fail(c, log, err)
		}
		resp.Orders = history
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(resp))
}

// AddCartItem godoc
// @Summary Добавить картину в корзину
// @Tags cart
// @Accept json
// @Produce json
// @Param request body dto.CartItemRequest true "Картина и количество"
// @Success 200 {object} response.Response{data=services.CartView}
// @Failure 400 {object} response.ErrorResponse "Неверный формат запроса"
// @Failure 404 {object} response.ErrorResponse "Картина не найдена"
// @Failure 409 {object} response.ErrorResponse "Картина не продаётся"
// @Router /api/v1/cart/items [post]
func (r *Routers) AddCartItem(c echo.Context) error {
	const op = "http.routers.AddCartItem"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CartItemRequest
	if err := bind(c, &req); err != nil {
		return r.invalid(c, log, err)
	}

	view, err := r.CartService.AddItem(c.Request().Context(), ensureCartID(c), req.PaintingID, req.Quantity)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(view))
}

// SetCartItem godoc
// @Summary Изменить количество
// @Description Количество 0 удаляет строку.
// @Tags cart
// @Accept json
// @Produce json
// @Param painting_id path string true "UUID картины" format(uuid)
// @Param request body dto.CartQuantityRequest true "Количество"
// @Success 200 {object} response.Response{data=services.CartView}
// @Failure 400 {object} response.ErrorResponse "Неверный формат запроса"
// @Router /api/v1/cart/items/{painting_id} [put]
func (r *Routers) SetCartItem(c echo.Context) error {
	const op = "http.routers.SetCartItem"

	log := r.log.With(
		slog.String("op", op),
	)

	paintingID, err := paramUUID(c, "painting_id")
	if err != nil {
		return r.invalidID(c, "painting id")
	}

	var req dto.CartQuantityRequest
	if err := bind(c, &req); err != nil {
		return r.invalid(c, log, err)
	}

	view, err := r.CartService.SetQuantity(c.Request().Context(), ensureCartID(c), paintingID, req.Quantity)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(view))
}

// RemoveCartItem godoc
// @Summary Удалить картину из корзины
// @Tags cart
// @Produce json
// @Param painting_id path string true "UUID картины" format(uuid)
// @Success 200 {object} response.Response{data=services.CartView}
// @Router /api/v1/cart/items/{painting_id} [delete]
func (r *Routers) RemoveCartItem(c echo.Context) error {
	const op = "http.routers.RemoveCartItem"

	log := r.log.With(
		slog.String("op", op),
	)

	paintingID, err := paramUUID(c, "painting_id")
	if err != nil {
		return r.invalidID(c, "painting id")
	}

	view, err := r.CartService.RemoveItem(c.Request().Context(), ensureCartID(c), paintingID)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(view))
}

// ClearCart godoc
// @Summary Очистить корзину
// @Tags cart
// @Success 204
// @Router /api/v1/cart [delete]
func (r *Routers) ClearCart(c echo.Context) error {
	const op = "http.routers.ClearCart"

	log := r.log.With(
		slog.String("op", op),
	)

	if id := cartID(c); id != "" {
		if err := r.CartService.Clear(c.Request().Context(), id); err != nil {
			return r.fail(c, log, err)
		}
	}

	return c.NoContent(http.StatusNoContent)
}

// Checkout godoc
// @Summary Оформление заказа
// @Description Создаёт заказ из корзины и запрашивает ссылку на оплату. Ошибка платёжного шлюза не отменяет заказ.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body dto.CheckoutRequest true "Данные покупателя"
// @Success 201 {object} response.Response{data=services.CheckoutResult}
// @Failure 400 {object} response.ErrorResponse "Пустая корзина или неверные данные"
// @Failure 404 {object} response.ErrorResponse "Картина не найдена"
// @Failure 409 {object} response.ErrorResponse "Картина больше не продаётся"
// @Router /api/v1/checkout [post]
func (r *Routers) Checkout(c echo.Context) error {
	const op = "http.routers.Checkout"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CheckoutRequest
	if err := bind(c, &req); err != nil {
		return r.invalid(c, log, err)
	}

	id := cartID(c)
	if id == "" {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("empty_cart", "cart is empty"))
	}

	var userID *uuid.UUID
	if uid, ok := currentUser(c); ok {
		userID = &uid
	}

	result, err := r.OrderService.Checkout(c.Request().Context(), id, userID, req)
	if err != nil {
		return r.fail(c, log, err)
	}

	log.Info("order placed", slog.String("order_id", result.Order.ID.String()))

	return c.JSON(http.StatusCreated, response.SuccessResponse(result))
}

func cartID(c echo.Context) string {
	cookie, err := c.Cookie(cartCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// ensureCartID выдаёт новый cart_id, если cookie ещё нет
func ensureCartID(c echo.Context) string {
	if id := cartID(c); id != "" {
		return id
	}

	id := carts.NewCartID()
	c.SetCookie(&http.Cookie{
		Name:     cartCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(cartCookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}
