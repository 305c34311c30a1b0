package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin     = "admin"
	RolMecanico  = "mecanico"
	RolConductor = "conductor"
)

// Capacidades que un rol puede tener. El despacho por rol pasa siempre por
// esta tabla, nunca por comparaciones de strings dispersas en handlers.
const (
	CapGestionarInventario = "gestionar_inventario"
	CapGestionarEquipos    = "gestionar_equipos"
	CapConsumirRepuestos   = "consumir_repuestos"
	CapCambiarEstado       = "cambiar_estado"
	CapCancelarFalla       = "cancelar_falla"
	CapReportarFalla       = "reportar_falla"
	CapAdministrarUsuarios = "administrar_usuarios"
)

var capacidadesPorRol = map[string]map[string]bool{
	RolAdmin: {
		CapGestionarInventario: true,
		CapGestionarEquipos:    true,
		CapConsumirRepuestos:   true,
		CapCambiarEstado:       true,
		CapCancelarFalla:       true,
		CapReportarFalla:       true,
		CapAdministrarUsuarios: true,
	},
	RolMecanico: {
		CapGestionarInventario: true,
		CapConsumirRepuestos:   true,
		CapCambiarEstado:       true,
		CapCancelarFalla:       true,
		CapReportarFalla:       true,
	},
	RolConductor: {
		CapReportarFalla: true,
	},
}

// RolTiene indica si el rol posee la capacidad dada.
func RolTiene(rol, capacidad string) bool {
	return capacidadesPorRol[rol][capacidad]
}

// Usuario representa un usuario del sistema.
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, nunca en claro después de persistir
	Nombre       string
	Rol          string // admin, mecanico, conductor
	Estado       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
