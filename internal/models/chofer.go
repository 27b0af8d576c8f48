package models

// Chofer is a company driver. The wire format keeps the camelCase field names
// the admin console has always used.
type Chofer struct {
	ID                    uint   `json:"id" gorm:"primaryKey"`
	Nombre                string `json:"nombre" gorm:"not null"`
	Apellido              string `json:"apellido" gorm:"not null"`
	Nacionalidad          string `json:"nacionalidad"`
	Identificacion        string `json:"identificacion" gorm:"uniqueIndex;not null"`
	IdentificacionLaboral string `json:"identificacionLaboral" gorm:"column:identificacion_laboral"`
	Telefono              string `json:"telefono"`
	Email                 string `json:"email"`
}

func (Chofer) TableName() string {
	return "choferes"
}
