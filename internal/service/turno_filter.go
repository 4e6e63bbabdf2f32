package service

import (
	"sort"
	"strings"
	"time"

	"github.com/219WD/jamrock-front-sub001/internal/domain/model"
)

// FilterTurnos 依過濾條件回傳符合的子集合，輸入不變動
// 四個條件全部成立才納入; 順序由呼叫端自己決定
func FilterTurnos(turnos []model.Turno, filter model.TurnoFilter) []model.Turno {
	result := make([]model.Turno, 0, len(turnos))
	for _, t := range turnos {
		if !matchesQuery(t, filter.Query) {
			continue
		}
		if !matchesEstado(t, filter.Estado) {
			continue
		}
		if !matchesFecha(t, filter.Fecha) {
			continue
		}
		if !matchesEspecialista(t, filter.EspecialistaID) {
			continue
		}
		result = append(result, t)
	}
	return result
}

// SortFechaDesc 依 fecha 由新到舊排序，歷史畫面用
// 排序是過濾之外的獨立步驟
func SortFechaDesc(turnos []model.Turno) {
	sort.SliceStable(turnos, func(i, j int) bool {
		return turnos[i].Fecha.After(turnos[j].Fecha)
	})
}

func matchesQuery(t model.Turno, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.PacienteNombre), query) ||
		strings.Contains(strings.ToLower(t.Motivo), query)
}

func matchesEstado(t model.Turno, estado string) bool {
	if estado == "" || estado == model.FiltroTodos {
		return true
	}
	return string(t.Estado) == estado
}

func matchesFecha(t model.Turno, fecha time.Time) bool {
	if fecha.IsZero() {
		return true
	}
	y1, m1, d1 := t.Fecha.In(fecha.Location()).Date()
	y2, m2, d2 := fecha.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func matchesEspecialista(t model.Turno, especialistaID string) bool {
	if especialistaID == "" || especialistaID == model.FiltroTodos {
		return true
	}
	return t.EspecialistaID == especialistaID
}
