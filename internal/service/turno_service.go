package service

import (
	"context"
	"sync"

	"github.com/219WD/jamrock-front-sub001/internal/apperr"
	"github.com/219WD/jamrock-front-sub001/internal/domain/model"
	"github.com/219WD/jamrock-front-sub001/internal/infra/client"
	"github.com/rs/zerolog"
)

// ITurnoService 組合驗證與狀態規則來處理 turno 的建立/編輯，
// 並維護一份以服務端為準的本地集合
type ITurnoService interface {
	// Create 建立新 turno
	//
	// 流程:
	//  1. 本地驗證，失敗直接回傳，不碰網路
	//  2. 送出給預約服務
	//  3. 成功則把回傳的 turno 併入本地集合
	//
	// 錯誤:
	//   - *apperr.ValidationError: 草稿不合法
	//   - *apperr.ServiceError: 服務端拒絕，訊息原文保留，本地狀態不變
	Create(ctx context.Context, draft model.TurnoDraft) (*model.Turno, error)
	// Edit 編輯既有 turno 的 fecha/motivo
	//
	// 錯誤:
	//   - apperr.ErrTurnoNotFound: 本地集合沒有這筆 turno
	//   - *apperr.StateError: estado 不是 pendiente，驗證與網路都不會執行
	//   - *apperr.ValidationError: patch 欄位不合法
	//   - *apperr.ServiceError: 服務端拒絕
	Edit(ctx context.Context, turnoID string, patch model.TurnoPatch) (*model.Turno, error)
	// Refresh 從預約服務重新拉取並整份取代本地集合
	Refresh(ctx context.Context, scope client.TurnoScope) ([]model.Turno, error)
	// Turnos 回傳本地集合的複本
	Turnos() []model.Turno
	// Filtered 對本地集合套用過濾條件
	Filtered(filter model.TurnoFilter) []model.Turno
	// Especialistas 取回可預約的專科醫師列表
	Especialistas(ctx context.Context) ([]model.Especialista, error)
}

type TurnoService struct {
	mu          sync.RWMutex
	turnoClient client.ITurnoClient
	validator   *TurnoValidator
	turnos      []model.Turno
	logger      *zerolog.Logger
}

var _ ITurnoService = (*TurnoService)(nil)

func NewTurnoService(turnoClient client.ITurnoClient, validator *TurnoValidator, logger *zerolog.Logger) *TurnoService {
	if turnoClient == nil {
		panic("turnoClient cannot be nil")
	}
	if validator == nil {
		validator = NewTurnoValidator()
	}
	return &TurnoService{
		turnoClient: turnoClient,
		validator:   validator,
		logger:      logger,
	}
}

func (s *TurnoService) Create(ctx context.Context, draft model.TurnoDraft) (*model.Turno, error) {
	if err := s.validator.ValidateCreate(draft); err != nil {
		return nil, err
	}

	turno, err := s.turnoClient.CreateTurno(ctx, draft)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.turnos = append(s.turnos, *turno)
	s.mu.Unlock()

	s.logger.Info().
		Str("turno_id", turno.TurnoID).
		Str("estado", string(turno.Estado)).
		Msg("turno created")
	return turno, nil
}

func (s *TurnoService) Edit(ctx context.Context, turnoID string, patch model.TurnoPatch) (*model.Turno, error) {
	s.mu.RLock()
	existing, idx := s.findLocked(turnoID)
	s.mu.RUnlock()
	if idx < 0 {
		return nil, apperr.ErrTurnoNotFound
	}

	// 狀態檢查先於驗證與網路，非 pendiente 直接擋下
	if !existing.Estado.Editable() {
		return nil, &apperr.StateError{TurnoID: turnoID, Estado: string(existing.Estado)}
	}

	if err := s.validator.ValidatePatch(patch); err != nil {
		return nil, err
	}

	updated, err := s.turnoClient.UpdateTurno(ctx, turnoID, patch)
	if err != nil {
		return nil, err
	}

	// 服務端成功就以回傳的紀錄為準，覆蓋本地樂觀狀態
	s.mu.Lock()
	if _, i := s.findLocked(turnoID); i >= 0 {
		s.turnos[i] = *updated
	}
	s.mu.Unlock()

	return updated, nil
}

func (s *TurnoService) Refresh(ctx context.Context, scope client.TurnoScope) ([]model.Turno, error) {
	turnos, err := s.turnoClient.ListTurnos(ctx, scope)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.turnos = turnos
	s.mu.Unlock()

	return append([]model.Turno(nil), turnos...), nil
}

func (s *TurnoService) Turnos() []model.Turno {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Turno(nil), s.turnos...)
}

func (s *TurnoService) Filtered(filter model.TurnoFilter) []model.Turno {
	return FilterTurnos(s.Turnos(), filter)
}

func (s *TurnoService) Especialistas(ctx context.Context) ([]model.Especialista, error) {
	return s.turnoClient.ListEspecialistas(ctx)
}

// findLocked 呼叫端要自己持有鎖
func (s *TurnoService) findLocked(turnoID string) (model.Turno, int) {
	for i, t := range s.turnos {
		if t.TurnoID == turnoID {
			return t, i
		}
	}
	return model.Turno{}, -1
}
