package response

// Response - успешный ответ; Locale заполняется для локализованного контента страниц
type Response struct {
	Status  string      `json:"status"`
	Locale  string      `json:"locale,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorResponse: Error - машинный код (not_found, invalid_transition...), Details - текст для админки
type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func SuccessResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

// LocalizedResponse сообщает клиенту, на каком языке собран контент
func LocalizedResponse(data interface{}, locale string) Response {
	resp := SuccessResponse(data)
	resp.Locale = locale
	return resp
}

func ErrorResponseWithDetails(code, details string) ErrorResponse {
	return ErrorResponse{
		Status:  "error",
		Error:   code,
		Details: details,
	}
}
