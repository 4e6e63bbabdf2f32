package model

import "time"

// FiltroTodos 狀態與專科醫師選擇器的萬用值
const FiltroTodos = "todos"

// TurnoFilter 列表畫面用的過濾條件，每次互動重新計算，沒有持久身分
type TurnoFilter struct {
	// Query 對病患顯示名稱或 motivo 做不分大小寫的子字串比對，空字串全過
	Query string `json:"query"`
	// Estado 為 FiltroTodos 或其中一個具體狀態
	Estado string `json:"estado"`
	// Fecha 零值表示不過濾，否則比對同一天(日曆日)
	Fecha time.Time `json:"fecha"`
	// EspecialistaID 為 FiltroTodos 或具體 id
	EspecialistaID string `json:"especialista_id"`
}
