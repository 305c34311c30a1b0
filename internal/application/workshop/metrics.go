package workshop

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	consumosTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flota_consumos_total",
		Help: "Consumos de repuestos intentados, por resultado.",
	}, []string{"resultado"})

	transicionesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flota_transiciones_total",
		Help: "Transiciones de estado intentadas, por estado destino y resultado.",
	}, []string{"estado", "resultado"})
)
