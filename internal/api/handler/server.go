package handler

// Server 聚合所有 handler，router 只認這個結構
type Server struct {
	CartHandler    *CartHandler
	TurnoHandler   *TurnoHandler
	CatalogHandler *CatalogHandler
}

func NewServer(cart *CartHandler, turno *TurnoHandler, catalog *CatalogHandler) *Server {
	return &Server{
		CartHandler:    cart,
		TurnoHandler:   turno,
		CatalogHandler: catalog,
	}
}
