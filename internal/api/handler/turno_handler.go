package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/219WD/jamrock-front-sub001/internal/api"
	"github.com/219WD/jamrock-front-sub001/internal/api/dto"
	"github.com/219WD/jamrock-front-sub001/internal/apperr"
	"github.com/219WD/jamrock-front-sub001/internal/infra/client"
	"github.com/219WD/jamrock-front-sub001/internal/service"
	"github.com/go-chi/chi/v5"
)

type TurnoHandler struct {
	turnoService service.ITurnoService
}

func NewTurnoHandler(turnoService service.ITurnoService) *TurnoHandler {
	if turnoService == nil {
		panic("turnoService cannot be nil")
	}
	return &TurnoHandler{turnoService: turnoService}
}

// writeTurnoError 錯誤分類對應到 http status
// ServiceError 的訊息原文轉給前端
func writeTurnoError(w http.ResponseWriter, err error) {
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		api.FieldErrorJSON(w, http.StatusBadRequest, ve.Field, ve.Reason)
		return
	}

	var se *apperr.StateError
	if errors.As(err, &se) {
		api.ErrorJSON(w, http.StatusConflict, "only pending appointments can be edited")
		return
	}

	if errors.Is(err, apperr.ErrTurnoNotFound) {
		api.ErrorJSON(w, http.StatusNotFound, "turno not found")
		return
	}

	var svcErr *apperr.ServiceError
	if errors.As(err, &svcErr) {
		api.ErrorJSON(w, http.StatusBadGateway, svcErr.Error())
		return
	}

	api.ErrorJSON(w, http.StatusInternalServerError, "internal server error")
}

// @Summary create turno
// @Tags turnos
// @Accept json
// @Produce json
// @Param turno body dto.CreateTurnoDTO true "turno draft"
// @Success 200 {object} api.Response{data=model.Turno} "success"
// @Failure 400 {object} api.ResponseError "validation error"
// @Failure 502 {object} api.ResponseError "appointment service error"
// @Router /turnos [post]
func (h *TurnoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTurnoDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	turno, err := h.turnoService.Create(r.Context(), req.ToDraft())
	if err != nil {
		writeTurnoError(w, err)
		return
	}
	api.SuccessJSON(w, turno)
}

// @Summary edit turno fecha/motivo
// @Tags turnos
// @Accept json
// @Produce json
// @Param patch body dto.UpdateTurnoDTO true "fields to change"
// @Success 200 {object} api.Response{data=model.Turno} "success"
// @Failure 400 {object} api.ResponseError "validation error"
// @Failure 404 {object} api.ResponseError "turno not found"
// @Failure 409 {object} api.ResponseError "turno not editable"
// @Failure 502 {object} api.ResponseError "appointment service error"
// @Router /turnos/{turnoID} [put]
func (h *TurnoHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateTurnoDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	turnoID := chi.URLParam(r, "turnoID")
	turno, err := h.turnoService.Edit(r.Context(), turnoID, req.ToPatch())
	if err != nil {
		writeTurnoError(w, err)
		return
	}
	api.SuccessJSON(w, turno)
}

// @Summary list turnos with filter
// @Tags turnos
// @Produce json
// @Param q query string false "free text over paciente/motivo"
// @Param estado query string false "estado or todos"
// @Param fecha query string false "calendar day YYYY-MM-DD"
// @Param especialista_id query string false "especialista id or todos"
// @Success 200 {object} api.Response{data=[]model.Turno} "success"
// @Failure 502 {object} api.ResponseError "appointment service error"
// @Router /turnos [get]
func (h *TurnoHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	scope := client.TurnoScope{
		PacienteID:     q.Get("paciente_id"),
		EspecialistaID: q.Get("scope_especialista_id"),
	}
	if _, err := h.turnoService.Refresh(r.Context(), scope); err != nil {
		writeTurnoError(w, err)
		return
	}

	filter, err := dto.TurnoFilterFromQuery(q.Get("q"), q.Get("estado"), q.Get("fecha"), q.Get("especialista_id"))
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid fecha filter, expected YYYY-MM-DD")
		return
	}

	turnos := h.turnoService.Filtered(filter)
	// 歷史列表統一由新到舊
	service.SortFechaDesc(turnos)
	api.SuccessJSON(w, turnos)
}

// @Summary list especialistas
// @Tags turnos
// @Produce json
// @Success 200 {object} api.Response{data=[]model.Especialista} "success"
// @Failure 502 {object} api.ResponseError "appointment service error"
// @Router /especialistas [get]
func (h *TurnoHandler) Especialistas(w http.ResponseWriter, r *http.Request) {
	especialistas, err := h.turnoService.Especialistas(r.Context())
	if err != nil {
		writeTurnoError(w, err)
		return
	}
	api.SuccessJSON(w, especialistas)
}
