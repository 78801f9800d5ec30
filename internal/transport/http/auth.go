package http

import (
	"log/slog"
	"net/http"

	"artiste_site/internal/lib/logger/sl"
	"artiste_site/internal/transport/http/dto"
	"artiste_site/internal/transport/http/dto/request"
	"artiste_site/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// Login godoc
// @Summary Аутентификация пользователя
// @Description Вход по email или телефону. Возвращает пару JWT-токенов; для администратора дополнительно открывается сессия.
// @Tags users
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Данные для входа"
// @Success 200 {object} response.Response{data=map[string]string} "Успешный вход (токены)"
// @Failure 400 {object} response.ErrorResponse "Неверный формат запроса"
// @Failure 401 {object} response.ErrorResponse "Ошибка аутентификации"
// @Router /api/v1/login [post]
func (r *Routers) Login(c echo.Context) error {
	const op = "http.routers.Login"

	log := r.log.With(
		slog.String("op", op),
	)

	var req request.LoginRequest
	if err := bind(c, &req); err != nil {
		return r.invalid(c, log, err)
	}

	tokens, user, err := r.UserService.Login(c.Request().Context(), req.Identifier, req.Password)
	if err != nil {
		return r.fail(c, log, err)
	}

	if user.IsAdmin {
		sess, err := session.Get(SessionName, c)
		if err != nil {
			log.Error("failed to open session", sl.Err(err))
			return r.fail(c, log, err)
		}
		sess.Values[SessionUserID] = user.ID.String()
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			log.Error("failed to save session", sl.Err(err))
			return r.fail(c, log, err)
		}
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(map[string]string{
		"user_id":       tokens.UserID.String(),
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
	}))
}

// Logout godoc
// @Summary Завершение административной сессии
// @Tags users
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/logout [post]
func (r *Routers) Logout(c echo.Context) error {
	const op = "http.routers.Logout"

	log := r.log.With(
		slog.String("op", op),
	)

	sess, err := session.Get(SessionName, c)
	if err == nil {
		delete(sess.Values, SessionUserID)
		sess.Options.MaxAge = -1
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			log.Warn("failed to drop session", sl.Err(err))
		}
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success"})
}

// Register godoc
// @Summary Регистрация нового пользователя
// @Description Создание аккаунта покупателя. Возвращает ID пользователя.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.UserRegisterInput true "Данные для регистрации"
// @Success 201 {object} response.Response{data=object{user_id=string}} "Успешная регистрация"
// @Failure 400 {object} response.ErrorResponse "Неверный формат запроса"
// @Failure 409 {object} response.ErrorResponse "Пользователь уже существует"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/register [post]
func (r *Routers) Register(c echo.Context) error {
	const op = "http.routers.Register"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.UserRegisterInput
	if err := bind(c, &req); err != nil {
		return r.invalid(c, log, err)
	}

	userID, err := r.UserService.RegisterNewUser(c.Request().Context(), req)
	if err != nil {
		return r.fail(c, log, err)
	}

	log.Info("user registered successfully", slog.String("user_id", userID.String()))

	return c.JSON(http.StatusCreated, response.SuccessResponse(map[string]uuid.UUID{
		"user_id": userID,
	}))
}

// Refresh godoc
// @Summary Обновление пары токенов
// @Tags users
// @Accept json
// @Produce json
// @Param request body request.RefreshRequest true "Refresh-токен"
// @Success 200 {object} models.TokenPair
// @Failure 400 {object} response.ErrorResponse "Неверный формат запроса"
// @Failure 401 {object} response.ErrorResponse "Недействительный токен"
// @Router /api/v1/refresh [post]
func (r *Routers) Refresh(c echo.Context) error {
	const op = "http.routers.Refresh"

	log := r.log.With(
		slog.String("op", op),
	)

	var req request.RefreshRequest
	if err := bind(c, &req); err != nil {
		return r.invalid(c, log, err)
	}

	tokens, err := r.UserService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		log.Warn("error refresh tokens", sl.Err(err))
		return c.JSON(http.StatusUnauthorized, response.ErrorResponseWithDetails("invalid_refresh_token", err.Error()))
	}

	return c.JSON(http.StatusOK, tokens)
}

// MyOrders godoc
// @Summary История заказов текущего пользователя
// @Tags orders
// @Produce json
// @Success 200 {object} response.Response{data=[]models.Order}
// @Failure 401 {object} response.ErrorResponse "Требуется авторизация"
// @Security ApiKeyAuth
// @Router /api/v1/me/orders [get]
func (r *Routers) MyOrders(c echo.Context) error {
	const op = "http.routers.MyOrders"

	log := r.log.With(
		slog.String("op", op),
	)

	userID, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, response.ErrorResponseWithDetails("authentication_required", "valid token required"))
	}

	list, err := r.OrderService.MyOrders(c.Request().Context(), userID)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(list))
}

// AdminOnly пропускает только сессии администраторов
func (r *Routers) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := session.Get(SessionName, c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, response.ErrorResponseWithDetails("session_required", "session required"))
		}

		userID, ok := sess.Values[SessionUserID].(string)
		if !ok || userID == "" {
			return c.JSON(http.StatusUnauthorized, response.ErrorResponseWithDetails("authentication_required", "authentication required"))
		}

		parsedUUID, err := uuid.Parse(userID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_id", "invalid user ID format"))
		}

		isAdmin, err := r.UserService.IsAdmin(c.Request().Context(), parsedUUID)
		if err != nil || !isAdmin {
			return c.JSON(http.StatusForbidden, response.ErrorResponseWithDetails("forbidden", "admin access required"))
		}

		return next(c)
	}
}
