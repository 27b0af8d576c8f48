package models

// Vehicle status values seeded into vehiculo_estados. The estado column stores
// the display string itself, so these must match the seeded lookup rows.
const (
	EstadoDisponible      = "Disponible"
	EstadoEnViaje         = "En Viaje"
	EstadoEnMantenimiento = "En Mantenimiento"
)

// Camion is a truck, keyed by its license plate (dominio) rather than a
// numeric id. Foto holds either a base64 data URL pasted in the console or a
// storage URL produced by the photo upload endpoint.
type Camion struct {
	Dominio string `json:"dominio" gorm:"primaryKey;size:20"`
	Marca   string `json:"marca"`
	Modelo  string `json:"modelo" gorm:"not null"`
	Anio    int    `json:"año" gorm:"column:anio"`
	Color   string `json:"color"`
	Tipo    string `json:"tipo"`
	Chasis  string `json:"chasis" gorm:"uniqueIndex"`
	Foto    string `json:"foto" gorm:"type:text"`
	Estado  string `json:"estado" gorm:"not null"`
}

func (Camion) TableName() string {
	return "camiones"
}

// Acoplado is a trailer. Same shape as Camion minus the photo.
type Acoplado struct {
	Dominio string `json:"dominio" gorm:"primaryKey;size:20"`
	Marca   string `json:"marca"`
	Modelo  string `json:"modelo" gorm:"not null"`
	Anio    int    `json:"año" gorm:"column:anio"`
	Color   string `json:"color"`
	Tipo    string `json:"tipo"`
	Chasis  string `json:"chasis" gorm:"uniqueIndex"`
	Estado  string `json:"estado" gorm:"not null"`
}

func (Acoplado) TableName() string {
	return "acoplados"
}

// VehiculoEstado is a server-defined lookup row; the console fetches these
// instead of hardcoding the status set.
type VehiculoEstado struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Nombre string `json:"nombre" gorm:"uniqueIndex;not null"`
}

func (VehiculoEstado) TableName() string {
	return "vehiculo_estados"
}
