package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Flota-api/internal/application/auth"
	"github.com/jhoicas/Flota-api/internal/application/usecase"
	"github.com/jhoicas/Flota-api/internal/application/workshop"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RepuestoUC    *usecase.RepuestoUseCase
	EquipoUC      *usecase.EquipoUseCase
	OrdenUC       *usecase.OrdenUseCase
	ConsultaUC    *usecase.ConsultaUseCase
	Consumir      *workshop.ConsumirRepuestoUseCase
	CambiarEstado *workshop.CambiarEstadoUseCase
	Movimiento    *workshop.RegistrarMovimientoUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Repuestos (protegido; escrituras requieren gestión de inventario)
	repuestos := protected.Group("/repuestos")
	repuestoHandler := NewRepuestoHandler(deps.RepuestoUC, deps.Movimiento, deps.ConsultaUC)
	repuestos.Get("/", repuestoHandler.List)
	repuestos.Get("/:id", repuestoHandler.GetByID)
	repuestos.Get("/:id/movimientos", repuestoHandler.ListMovimientos)
	repuestos.Post("/", RequireCapacidad(entity.CapGestionarInventario), repuestoHandler.Create)
	repuestos.Put("/:id", RequireCapacidad(entity.CapGestionarInventario), repuestoHandler.Update)
	repuestos.Delete("/:id", RequireCapacidad(entity.CapGestionarInventario), repuestoHandler.Delete)
	repuestos.Post("/:id/movimientos", RequireCapacidad(entity.CapGestionarInventario), repuestoHandler.RegistrarMovimiento)

	// Equipos (protegido; escrituras requieren gestión de equipos)
	equipos := protected.Group("/equipos")
	equipoHandler := NewEquipoHandler(deps.EquipoUC)
	equipos.Get("/", equipoHandler.List)
	equipos.Get("/:id", equipoHandler.GetByID)
	equipos.Post("/", RequireCapacidad(entity.CapGestionarEquipos), equipoHandler.Create)
	equipos.Put("/:id", RequireCapacidad(entity.CapGestionarEquipos), equipoHandler.Update)
	equipos.Delete("/:id", RequireCapacidad(entity.CapGestionarEquipos), equipoHandler.Delete)

	// Órdenes de trabajo (protegido; la clase de orden decide la capacidad en Create)
	ordenes := protected.Group("/ordenes")
	ordenHandler := NewOrdenHandler(deps.OrdenUC, deps.Consumir, deps.CambiarEstado, deps.ConsultaUC)
	ordenes.Post("/", ordenHandler.Create)
	ordenes.Get("/", ordenHandler.List)
	ordenes.Get("/:id", ordenHandler.GetByID)
	ordenes.Post("/:id/repuestos", RequireCapacidad(entity.CapConsumirRepuestos), ordenHandler.Consumir)
	ordenes.Post("/:id/estado", RequireCapacidad(entity.CapCambiarEstado), ordenHandler.CambiarEstado)

	// Arregladas (protegido, solo lectura)
	arregladas := protected.Group("/arregladas")
	arregladas.Get("/", ordenHandler.ListArregladas)
	arregladas.Get("/:id", ordenHandler.GetArreglada)
}
