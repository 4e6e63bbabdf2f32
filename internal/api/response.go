package api

import (
	"encoding/json"
	"net/http"
)

// Response 成功回應的固定外層
type Response struct {
	Data any `json:"data"`
}

// ResponseError 錯誤回應的固定外層
// Field 只有驗證錯誤會帶，讓前端做欄位層級提示
type ResponseError struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func SuccessJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(Response{Data: data})
}

func ErrorJSON(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ResponseError{Error: message})
}

func FieldErrorJSON(w http.ResponseWriter, status int, field, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ResponseError{Error: message, Field: field})
}
