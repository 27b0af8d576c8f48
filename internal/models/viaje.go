package models

// Trip status values seeded into viaje_estados.
const (
	ViajeProgramado = "Programado"
	ViajeEnCurso    = "En Curso"
	ViajeFinalizado = "Finalizado"
	ViajeCancelado  = "Cancelado"
)

// Viaje is a trip: one chofer, one camion, one acoplado, origin to destination.
// FechaFin stays zero (null on the wire and in the database) while the trip is
// open. Nothing validates fin against inicio; operators fix bad ranges by hand.
type Viaje struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Origen          string    `json:"origen" gorm:"not null"`
	Destino         string    `json:"destino" gorm:"not null"`
	FechaInicio     FechaHora `json:"fechaInicio" gorm:"column:fecha_inicio"`
	FechaFin        FechaHora `json:"fechaFin" gorm:"column:fecha_fin;default:null"`
	ChoferID        uint      `json:"choferId" gorm:"column:chofer_id"`
	CamionDominio   string    `json:"camionDominio" gorm:"column:camion_dominio;size:20"`
	AcopladoDominio string    `json:"acopladoDominio" gorm:"column:acoplado_dominio;size:20"`
	Estado          string    `json:"estado"`
}

func (Viaje) TableName() string {
	return "viajes"
}

type ViajeEstado struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Nombre string `json:"nombre" gorm:"uniqueIndex;not null"`
}

func (ViajeEstado) TableName() string {
	return "viaje_estados"
}
