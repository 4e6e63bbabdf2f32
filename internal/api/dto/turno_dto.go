package dto

import (
	"time"

	"github.com/219WD/jamrock-front-sub001/internal/domain/model"
)

type CreateTurnoDTO struct {
	PacienteID           string `json:"paciente_id"`
	EspecialistaID       string `json:"especialista_id"`
	Fecha                string `json:"fecha"`
	Motivo               string `json:"motivo"`
	Notas                string `json:"notas"`
	ReprocannRelacionado bool   `json:"reprocann_relacionado"`
}

func (d CreateTurnoDTO) ToDraft() model.TurnoDraft {
	return model.TurnoDraft{
		PacienteID:           d.PacienteID,
		EspecialistaID:       d.EspecialistaID,
		Fecha:                d.Fecha,
		Motivo:               d.Motivo,
		Notas:                d.Notas,
		ReprocannRelacionado: d.ReprocannRelacionado,
	}
}

type UpdateTurnoDTO struct {
	Fecha  *string `json:"fecha,omitempty"`
	Motivo *string `json:"motivo,omitempty"`
}

func (d UpdateTurnoDTO) ToPatch() model.TurnoPatch {
	return model.TurnoPatch{
		Fecha:  d.Fecha,
		Motivo: d.Motivo,
	}
}

// TurnoFilterFromQuery 從 query string 組出過濾條件
// estado/especialista 缺省時視為萬用
func TurnoFilterFromQuery(query, estado, fecha, especialistaID string) (model.TurnoFilter, error) {
	filter := model.TurnoFilter{
		Query:          query,
		Estado:         estado,
		EspecialistaID: especialistaID,
	}
	if filter.Estado == "" {
		filter.Estado = model.FiltroTodos
	}
	if filter.EspecialistaID == "" {
		filter.EspecialistaID = model.FiltroTodos
	}
	if fecha != "" {
		parsed, err := time.ParseInLocation("2006-01-02", fecha, time.Local)
		if err != nil {
			return model.TurnoFilter{}, err
		}
		filter.Fecha = parsed
	}
	return filter, nil
}
