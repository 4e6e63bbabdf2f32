package service

import (
	"testing"
	"time"

	"github.com/219WD/jamrock-front-sub001/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

func sampleTurnos() []model.Turno {
	day := func(d int) time.Time {
		return time.Date(2026, 4, d, 10, 30, 0, 0, time.Local)
	}
	return []model.Turno{
		{TurnoID: "t1", PacienteNombre: "Ana García", Motivo: "control mensual", Estado: model.EstadoPendiente, EspecialistaID: "esp-1", Fecha: day(1)},
		{TurnoID: "t2", PacienteNombre: "Bruno Díaz", Motivo: "primera consulta", Estado: model.EstadoConfirmado, EspecialistaID: "esp-2", Fecha: day(2)},
		{TurnoID: "t3", PacienteNombre: "Carla López", Motivo: "renovación reprocann", Estado: model.EstadoPendiente, EspecialistaID: "esp-1", Fecha: day(3)},
		{TurnoID: "t4", PacienteNombre: "Diego Suárez", Motivo: "seguimiento", Estado: model.EstadoCompletado, EspecialistaID: "esp-3", Fecha: day(2)},
	}
}

func wildcardFilter() model.TurnoFilter {
	return model.TurnoFilter{
		Query:          "",
		Estado:         model.FiltroTodos,
		EspecialistaID: model.FiltroTodos,
	}
}

func turnoIDs(turnos []model.Turno) []string {
	ids := make([]string, 0, len(turnos))
	for _, t := range turnos {
		ids = append(ids, t.TurnoID)
	}
	return ids
}

func TestFilterWildcardsMatchAll(t *testing.T) {
	turnos := sampleTurnos()
	got := FilterTurnos(turnos, wildcardFilter())
	assert.Equal(t, turnoIDs(turnos), turnoIDs(got))
}

func TestFilterByEstado(t *testing.T) {
	f := wildcardFilter()
	f.Estado = string(model.EstadoPendiente)

	got := FilterTurnos(sampleTurnos(), f)
	assert.Equal(t, []string{"t1", "t3"}, turnoIDs(got))
	for _, turno := range got {
		assert.Equal(t, model.EstadoPendiente, turno.Estado)
	}
}

func TestFilterQueryMatchesPacienteOrMotivo(t *testing.T) {
	f := wildcardFilter()

	// 病患名稱，不分大小寫
	f.Query = "ana gar"
	assert.Equal(t, []string{"t1"}, turnoIDs(FilterTurnos(sampleTurnos(), f)))

	// motivo 子字串
	f.Query = "REPROCANN"
	assert.Equal(t, []string{"t3"}, turnoIDs(FilterTurnos(sampleTurnos(), f)))

	// 比不到任何欄位
	f.Query = "zzz"
	assert.Empty(t, FilterTurnos(sampleTurnos(), f))
}

func TestFilterByFechaCalendarDay(t *testing.T) {
	f := wildcardFilter()
	// 只比對日曆日，時刻不同也要命中
	f.Fecha = time.Date(2026, 4, 2, 0, 0, 0, 0, time.Local)

	got := FilterTurnos(sampleTurnos(), f)
	assert.Equal(t, []string{"t2", "t4"}, turnoIDs(got))
}

func TestFilterByEspecialista(t *testing.T) {
	f := wildcardFilter()
	f.EspecialistaID = "esp-1"

	got := FilterTurnos(sampleTurnos(), f)
	assert.Equal(t, []string{"t1", "t3"}, turnoIDs(got))
}

func TestFilterConjunction(t *testing.T) {
	f := wildcardFilter()
	f.Estado = string(model.EstadoPendiente)
	f.EspecialistaID = "esp-1"
	f.Query = "control"

	got := FilterTurnos(sampleTurnos(), f)
	assert.Equal(t, []string{"t1"}, turnoIDs(got))
}

func TestSortFechaDesc(t *testing.T) {
	turnos := sampleTurnos()
	SortFechaDesc(turnos)

	for i := 1; i < len(turnos); i++ {
		assert.False(t, turnos[i-1].Fecha.Before(turnos[i].Fecha))
	}
	assert.Equal(t, "t3", turnos[0].TurnoID)
}
