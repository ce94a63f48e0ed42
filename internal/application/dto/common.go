package dto

// ErrorResponse cuerpo de error HTTP: {ok:false, msg}.
type ErrorResponse struct {
	OK  bool   `json:"ok"`
	Msg string `json:"msg"`
}

// Error construye la respuesta de error con ok en false.
func Error(msg string) ErrorResponse {
	return ErrorResponse{OK: false, Msg: msg}
}
