package model

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EstadoTurno 表示預約(turno)的狀態
type EstadoTurno string

const (
	// EstadoPendiente 初始狀態，唯一允許編輯內容的狀態
	EstadoPendiente  EstadoTurno = "pendiente"
	EstadoConfirmado EstadoTurno = "confirmado"
	EstadoCancelado  EstadoTurno = "cancelado"
	EstadoCompletado EstadoTurno = "completado"
)

var ErrEstadoInvalido = errors.New("invalid turno estado")

// 狀態轉移只由外部預約服務決定，本端只負責記錄
// pendiente 之後的狀態對客戶端而言都是終態
var transitions = map[EstadoTurno][]EstadoTurno{
	EstadoPendiente:  {EstadoConfirmado, EstadoCancelado, EstadoCompletado},
	EstadoConfirmado: {},
	EstadoCancelado:  {},
	EstadoCompletado: {},
}

func (e EstadoTurno) IsValid() bool {
	_, ok := transitions[e]
	return ok
}

// Editable 內容編輯(fecha/motivo)只允許在 pendiente 狀態
func (e EstadoTurno) Editable() bool {
	return e == EstadoPendiente
}

// CanTransitionTo 檢查狀態轉移是否合法
// 只用於接收外部服務回應時的 sanity check，本端不主動發起轉移
func (e EstadoTurno) CanTransitionTo(to EstadoTurno) bool {
	for _, t := range transitions[e] {
		if t == to {
			return true
		}
	}
	return false
}

// Turno 預約的正規化形狀
// 外部服務回應有時巢狀 especialista 資訊，有時只給 id，
// 一律在 ingestion boundary (client) 轉成這個扁平結構
type Turno struct {
	TurnoID              string      `json:"turno_id"`
	PacienteID           string      `json:"paciente_id"`
	PacienteNombre       string      `json:"paciente_nombre"`
	EspecialistaID       string      `json:"especialista_id"`
	Fecha                time.Time   `json:"fecha"`
	Motivo               string      `json:"motivo"`
	Notas                string      `json:"notas"`
	ReprocannRelacionado bool        `json:"reprocann_relacionado"`
	Estado               EstadoTurno `json:"estado"`
	Consulta             *Consulta   `json:"consulta,omitempty"`
}

// Consulta 就診後的紀錄，包含付款與處方商品
// 只有離開 pendiente 狀態的 turno 才會有 consulta
type Consulta struct {
	EstadoPago string             `json:"estado_pago"`
	MetodoPago string             `json:"metodo_pago"`
	Productos  []ConsultaProducto `json:"productos"`
}

type ConsultaProducto struct {
	ProductID      string          `json:"product_id"`
	Nombre         string          `json:"nombre"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Dosis          string          `json:"dosis"`
}

type Especialista struct {
	EspecialistaID string `json:"especialista_id"`
	Especialidad   string `json:"especialidad"`
	Matricula      string `json:"matricula"`
	UserID         string `json:"user_id"`
	Nombre         string `json:"nombre"`
}

// TurnoDraft 尚未送出的預約草稿，由建立/編輯流程暫時持有
// Fecha 保留原始字串，由 validator 負責解析
type TurnoDraft struct {
	PacienteID           string `json:"paciente_id"`
	EspecialistaID       string `json:"especialista_id"`
	Fecha                string `json:"fecha"`
	Motivo               string `json:"motivo"`
	Notas                string `json:"notas"`
	ReprocannRelacionado bool   `json:"reprocann_relacionado"`
}

// TurnoPatch 編輯既有 turno 時允許變更的欄位
// nil 表示該欄位不變
type TurnoPatch struct {
	Fecha  *string `json:"fecha,omitempty"`
	Motivo *string `json:"motivo,omitempty"`
}

var fechaLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseFecha 解析草稿/patch 的日期字串
func ParseFecha(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range fechaLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
