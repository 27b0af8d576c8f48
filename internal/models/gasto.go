package models

// Gasto is a trip expense in a given currency.
type Gasto struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Monto       float64   `json:"monto" gorm:"not null"`
	Fecha       FechaHora `json:"fecha" gorm:"default:null"`
	Descripcion string    `json:"descripcion" gorm:"type:text"`
	ViajeID     uint      `json:"viajeId" gorm:"column:viaje_id;not null"`
	TipoID      uint      `json:"tipoId" gorm:"column:tipo_id;not null"`
	Moneda      string    `json:"moneda" gorm:"size:3;not null"`
}

func (Gasto) TableName() string {
	return "gastos"
}

// TipoDeGasto is an expense category. Names are unique; the console enforces
// this case-insensitively before ever reaching the server.
type TipoDeGasto struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Nombre string `json:"nombre" gorm:"uniqueIndex;not null"`
}

func (TipoDeGasto) TableName() string {
	return "tipos_de_gasto"
}

// Currency is reference data only; nothing in the console mutates it.
type Currency struct {
	Code string `json:"code" gorm:"primaryKey;size:3"`
	Name string `json:"name" gorm:"not null"`
}

func (Currency) TableName() string {
	return "currencies"
}
