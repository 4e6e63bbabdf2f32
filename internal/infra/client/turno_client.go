package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/219WD/jamrock-front-sub001/internal/apperr"
	"github.com/219WD/jamrock-front-sub001/internal/domain/model"
	"github.com/rs/zerolog"
)

// TurnoScope 向預約服務列出 turnos 時的範圍限制
// 病患端帶 PacienteID，專科醫師端帶 EspecialistaID，行政端兩者皆空
type TurnoScope struct {
	PacienteID     string
	EspecialistaID string
}

// ITurnoClient 預約服務的契約
// 狀態轉移(pendiente 之後)的權威在服務端，本端只送出建立與內容編輯
type ITurnoClient interface {
	// CreateTurno 送出草稿建立新 turno，服務端回傳的紀錄為準
	CreateTurno(ctx context.Context, draft model.TurnoDraft) (*model.Turno, error)
	// UpdateTurno 對既有 turno 送出 fecha/motivo 的 patch
	UpdateTurno(ctx context.Context, turnoID string, patch model.TurnoPatch) (*model.Turno, error)
	// ListTurnos 依 scope 取回 turno 列表
	ListTurnos(ctx context.Context, scope TurnoScope) ([]model.Turno, error)
	// ListEspecialistas 取回可預約的專科醫師
	ListEspecialistas(ctx context.Context) ([]model.Especialista, error)
}

type TurnoClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zerolog.Logger
}

var _ ITurnoClient = (*TurnoClient)(nil)

func NewTurnoClient(baseURL string, timeout time.Duration, logger *zerolog.Logger) *TurnoClient {
	return &TurnoClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// turnoDTO 預約服務回傳的原始形狀
// especialista/paciente 有時巢狀完整物件，有時只有 id，
// 一律由 normalize 壓平成 model.Turno
type turnoDTO struct {
	ID                   string           `json:"id"`
	PacienteID           string           `json:"paciente_id"`
	Paciente             *personaDTO      `json:"paciente,omitempty"`
	EspecialistaID       string           `json:"especialista_id"`
	Especialista         *especialistaDTO `json:"especialista,omitempty"`
	Fecha                time.Time        `json:"fecha"`
	Motivo               string           `json:"motivo"`
	Notas                string           `json:"notas"`
	ReprocannRelacionado bool             `json:"reprocann_relacionado"`
	Estado               string           `json:"estado"`
	Consulta             *consultaDTO     `json:"consulta,omitempty"`
}

type personaDTO struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

type especialistaDTO struct {
	ID           string      `json:"id"`
	Especialidad string      `json:"especialidad"`
	Matricula    string      `json:"matricula"`
	User         *personaDTO `json:"user,omitempty"`
}

type consultaDTO struct {
	EstadoPago string                   `json:"estado_pago"`
	MetodoPago string                   `json:"metodo_pago"`
	Productos  []model.ConsultaProducto `json:"productos"`
}

func (d turnoDTO) normalize() (model.Turno, error) {
	estado := model.EstadoTurno(d.Estado)
	if !estado.IsValid() {
		return model.Turno{}, fmt.Errorf("turno %s: %w: %q", d.ID, model.ErrEstadoInvalido, d.Estado)
	}

	t := model.Turno{
		TurnoID:              d.ID,
		PacienteID:           d.PacienteID,
		EspecialistaID:       d.EspecialistaID,
		Fecha:                d.Fecha,
		Motivo:               d.Motivo,
		Notas:                d.Notas,
		ReprocannRelacionado: d.ReprocannRelacionado,
		Estado:               estado,
	}

	if d.Paciente != nil {
		if t.PacienteID == "" {
			t.PacienteID = d.Paciente.ID
		}
		t.PacienteNombre = d.Paciente.Nombre
	}
	if d.Especialista != nil && t.EspecialistaID == "" {
		t.EspecialistaID = d.Especialista.ID
	}

	// consulta 只在離開 pendiente 之後才有意義，
	// pendiente 還帶 consulta 視為髒資料直接丟棄
	if d.Consulta != nil && estado != model.EstadoPendiente {
		t.Consulta = &model.Consulta{
			EstadoPago: d.Consulta.EstadoPago,
			MetodoPago: d.Consulta.MetodoPago,
			Productos:  d.Consulta.Productos,
		}
	}
	return t, nil
}

func (c *TurnoClient) CreateTurno(ctx context.Context, draft model.TurnoDraft) (*model.Turno, error) {
	fecha, err := model.ParseFecha(draft.Fecha)
	if err != nil {
		return nil, apperr.NewValidationError("fecha", "fecha is not a valid timestamp")
	}

	body := map[string]any{
		"paciente_id":           draft.PacienteID,
		"especialista_id":       draft.EspecialistaID,
		"fecha":                 fecha.Format(time.RFC3339),
		"motivo":                draft.Motivo,
		"notas":                 draft.Notas,
		"reprocann_relacionado": draft.ReprocannRelacionado,
		"estado":                string(model.EstadoPendiente),
	}

	var dto turnoDTO
	if err := c.do(ctx, http.MethodPost, "/turnos", body, &dto); err != nil {
		return nil, err
	}
	turno, err := dto.normalize()
	if err != nil {
		return nil, err
	}
	return &turno, nil
}

func (c *TurnoClient) UpdateTurno(ctx context.Context, turnoID string, patch model.TurnoPatch) (*model.Turno, error) {
	body := map[string]any{}
	if patch.Motivo != nil {
		body["motivo"] = *patch.Motivo
	}
	if patch.Fecha != nil {
		fecha, err := model.ParseFecha(*patch.Fecha)
		if err != nil {
			return nil, apperr.NewValidationError("fecha", "fecha is not a valid timestamp")
		}
		body["fecha"] = fecha.Format(time.RFC3339)
	}

	var dto turnoDTO
	if err := c.do(ctx, http.MethodPut, "/turnos/"+url.PathEscape(turnoID), body, &dto); err != nil {
		return nil, err
	}
	turno, err := dto.normalize()
	if err != nil {
		return nil, err
	}
	return &turno, nil
}

func (c *TurnoClient) ListTurnos(ctx context.Context, scope TurnoScope) ([]model.Turno, error) {
	path := "/turnos"
	query := url.Values{}
	if scope.PacienteID != "" {
		query.Set("paciente_id", scope.PacienteID)
	}
	if scope.EspecialistaID != "" {
		query.Set("especialista_id", scope.EspecialistaID)
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var dtos []turnoDTO
	if err := c.do(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}

	turnos := make([]model.Turno, 0, len(dtos))
	for _, dto := range dtos {
		turno, err := dto.normalize()
		if err != nil {
			// 單筆壞資料不擋整份列表
			c.logger.Warn().Err(err).Msg("skipping malformed turno from appointment service")
			continue
		}
		turnos = append(turnos, turno)
	}
	return turnos, nil
}

func (c *TurnoClient) ListEspecialistas(ctx context.Context) ([]model.Especialista, error) {
	var dtos []especialistaDTO
	if err := c.do(ctx, http.MethodGet, "/especialistas", nil, &dtos); err != nil {
		return nil, err
	}

	especialistas := make([]model.Especialista, 0, len(dtos))
	for _, dto := range dtos {
		e := model.Especialista{
			EspecialistaID: dto.ID,
			Especialidad:   dto.Especialidad,
			Matricula:      dto.Matricula,
		}
		if dto.User != nil {
			e.UserID = dto.User.ID
			e.Nombre = dto.User.Nombre
		}
		especialistas = append(especialistas, e)
	}
	return especialistas, nil
}

// do 發出請求並解碼回應
// 非 2xx 回應轉成 *apperr.ServiceError，服務端的錯誤訊息原文保留
func (c *TurnoClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &apperr.ServiceError{Op: method + " " + path, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &apperr.ServiceError{
			Op:      method + " " + path,
			Status:  resp.StatusCode,
			Message: readServiceMessage(resp.Body),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &apperr.ServiceError{Op: method + " " + path, Status: resp.StatusCode, Message: "malformed response from appointment service"}
	}
	return nil
}

// readServiceMessage 嘗試取出服務端的錯誤訊息
func readServiceMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return strings.TrimSpace(string(data))
}
