package models

// Poliza is an insurance policy covering one vehicle (camion or acoplado,
// referenced by plate). Validity is derived from FinVigencia at read time and
// never stored.
type Poliza struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	Aseguradora     string `json:"aseguradora" gorm:"not null"`
	Asegurado       string `json:"asegurado"`
	VehiculoDominio string `json:"vehiculoDominio" gorm:"column:vehiculo_dominio;size:20;not null"`
	InicioVigencia  Fecha  `json:"inicioVigencia" gorm:"column:inicio_vigencia"`
	FinVigencia     Fecha  `json:"finVigencia" gorm:"column:fin_vigencia"`
}

func (Poliza) TableName() string {
	return "polizas"
}
