package service

import (
	"strings"
	"time"

	"github.com/219WD/jamrock-front-sub001/internal/apperr"
	"github.com/219WD/jamrock-front-sub001/internal/domain/model"
)

// TurnoValidator 送出前的純規則驗證
// 不碰網路、不碰狀態，可以在任何請求之前同步執行，
// 明顯不合法的輸入不用浪費一次 round trip
type TurnoValidator struct {
	now func() time.Time
}

func NewTurnoValidator() *TurnoValidator {
	return &TurnoValidator{now: time.Now}
}

// ValidateCreate 建立流程的完整驗證，規則依序檢查，第一個失敗就回傳:
//  1. motivo 非空
//  2. fecha 存在且可解析
//  3. especialista 必填
//  4. fecha 必須嚴格晚於現在
func (v *TurnoValidator) ValidateCreate(draft model.TurnoDraft) error {
	return v.validate(draft, true)
}

// ValidateEdit 病患自行編輯既有 turno 的流程只改 fecha/motivo，
// 不要求 especialista
func (v *TurnoValidator) ValidateEdit(draft model.TurnoDraft) error {
	return v.validate(draft, false)
}

// ValidatePatch 只驗證 patch 有帶的欄位
func (v *TurnoValidator) ValidatePatch(patch model.TurnoPatch) error {
	if patch.Motivo != nil && strings.TrimSpace(*patch.Motivo) == "" {
		return apperr.NewValidationError("motivo", "motivo is required")
	}
	if patch.Fecha != nil {
		fecha, err := model.ParseFecha(*patch.Fecha)
		if err != nil {
			return apperr.NewValidationError("fecha", "fecha is not a valid timestamp")
		}
		if !fecha.After(v.now()) {
			return apperr.NewValidationError("fecha", "fecha must be later than now")
		}
	}
	return nil
}

func (v *TurnoValidator) validate(draft model.TurnoDraft, requireEspecialista bool) error {
	if strings.TrimSpace(draft.Motivo) == "" {
		return apperr.NewValidationError("motivo", "motivo is required")
	}

	if strings.TrimSpace(draft.Fecha) == "" {
		return apperr.NewValidationError("fecha", "fecha is required")
	}
	fecha, err := model.ParseFecha(draft.Fecha)
	if err != nil {
		return apperr.NewValidationError("fecha", "fecha is not a valid timestamp")
	}

	if requireEspecialista && strings.TrimSpace(draft.EspecialistaID) == "" {
		return apperr.NewValidationError("especialista_id", "especialista is required")
	}

	if !fecha.After(v.now()) {
		return apperr.NewValidationError("fecha", "fecha must be later than now")
	}
	return nil
}
