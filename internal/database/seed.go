package database

import (
	"time"

	"gorm.io/gorm"

	"github.com/blslogistica/cargoflow/internal/models"
)

// Seed populates the lookup tables and a handful of sample records so a fresh
// install has something to show on the dashboard. Safe to call repeatedly; it
// checks counts before inserting.
func Seed(db *gorm.DB) error {
	var count int64

	db.Model(&models.VehiculoEstado{}).Count(&count)
	if count == 0 {
		for _, nombre := range []string{models.EstadoDisponible, models.EstadoEnViaje, models.EstadoEnMantenimiento} {
			if err := db.Create(&models.VehiculoEstado{Nombre: nombre}).Error; err != nil {
				return err
			}
		}
	}

	db.Model(&models.ViajeEstado{}).Count(&count)
	if count == 0 {
		for _, nombre := range []string{models.ViajeProgramado, models.ViajeEnCurso, models.ViajeFinalizado, models.ViajeCancelado} {
			if err := db.Create(&models.ViajeEstado{Nombre: nombre}).Error; err != nil {
				return err
			}
		}
	}

	db.Model(&models.Currency{}).Count(&count)
	if count == 0 {
		currencies := []models.Currency{
			{Code: "PYG", Name: "Guaraní"},
			{Code: "USD", Name: "Dólar"},
		}
		if err := db.Create(&currencies).Error; err != nil {
			return err
		}
	}

	db.Model(&models.TipoDeGasto{}).Count(&count)
	if count == 0 {
		for _, nombre := range []string{"Combustible", "Peaje", "Mantenimiento"} {
			if err := db.Create(&models.TipoDeGasto{Nombre: nombre}).Error; err != nil {
				return err
			}
		}
	}

	return seedSampleData(db)
}

func seedSampleData(db *gorm.DB) error {
	var count int64

	chofer := models.Chofer{
		Nombre: "Juan", Apellido: "Pérez", Nacionalidad: "PY",
		Identificacion: "12345678", IdentificacionLaboral: "LAB123",
		Telefono: "+595981234567", Email: "juan.perez@example.com",
	}
	db.Model(&models.Chofer{}).Count(&count)
	if count == 0 {
		if err := db.Create(&chofer).Error; err != nil {
			return err
		}
	} else {
		db.First(&chofer)
	}

	camion := models.Camion{
		Dominio: "ABC123", Marca: "Scania", Modelo: "R450", Anio: 2022,
		Color: "Rojo", Tipo: "Tractor", Chasis: "CH123456",
		Estado: models.EstadoDisponible,
	}
	db.Model(&models.Camion{}).Count(&count)
	if count == 0 {
		if err := db.Create(&camion).Error; err != nil {
			return err
		}
	} else {
		db.First(&camion)
	}

	acoplado := models.Acoplado{
		Dominio: "ACP321", Marca: "Schmitz", Modelo: "S1", Anio: 2020,
		Color: "Negro", Tipo: "Caja", Chasis: "AC123456",
		Estado: models.EstadoDisponible,
	}
	db.Model(&models.Acoplado{}).Count(&count)
	if count == 0 {
		if err := db.Create(&acoplado).Error; err != nil {
			return err
		}
	} else {
		db.First(&acoplado)
	}

	viaje := models.Viaje{
		Origen: "Asunción", Destino: "Encarnación",
		FechaInicio: models.FechaHora{Time: time.Now()},
		ChoferID:    chofer.ID, CamionDominio: camion.Dominio,
		AcopladoDominio: acoplado.Dominio, Estado: models.ViajeProgramado,
	}
	db.Model(&models.Viaje{}).Count(&count)
	if count == 0 {
		if err := db.Create(&viaje).Error; err != nil {
			return err
		}
	} else {
		db.First(&viaje)
	}

	db.Model(&models.Poliza{}).Count(&count)
	if count == 0 {
		inicio := time.Now()
		poliza := models.Poliza{
			Aseguradora: "Seguros S.A.", Asegurado: "BLSLogistica S.A.",
			VehiculoDominio: camion.Dominio,
			InicioVigencia:  models.NewFecha(inicio),
			FinVigencia:     models.NewFecha(inicio.AddDate(0, 0, 90)),
		}
		if err := db.Create(&poliza).Error; err != nil {
			return err
		}
	}

	db.Model(&models.Gasto{}).Count(&count)
	if count == 0 {
		var tipo models.TipoDeGasto
		var currency models.Currency
		db.First(&tipo)
		db.First(&currency)
		gasto := models.Gasto{
			Monto: 150000.0, Fecha: models.FechaHora{Time: time.Now()},
			Descripcion: "Carga de combustible inicial",
			ViajeID:     viaje.ID, TipoID: tipo.ID, Moneda: currency.Code,
		}
		if err := db.Create(&gasto).Error; err != nil {
			return err
		}
	}

	return nil
}

// Reset drops every fleet table (operator accounts included) and reseeds.
// Development convenience only.
func Reset(db *gorm.DB) error {
	tables := []interface{}{
		&models.Gasto{}, &models.TipoDeGasto{}, &models.Currency{},
		&models.Poliza{}, &models.Viaje{}, &models.ViajeEstado{},
		&models.VehiculoEstado{}, &models.Acoplado{}, &models.Camion{},
		&models.Chofer{}, &models.User{},
	}
	if err := db.Migrator().DropTable(tables...); err != nil {
		return err
	}
	if err := Migrate(db); err != nil {
		return err
	}
	return Seed(db)
}
