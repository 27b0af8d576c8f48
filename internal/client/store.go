package client

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/blslogistica/cargoflow/internal/models"
)

// Collection names one of the API's entity collections. The set is closed:
// every operation on a Store or Coordinator dispatches over these constants,
// so an unknown collection is a compile-time or parse-time error, never a
// silent no-op.
type Collection string

const (
	Choferes        Collection = "choferes"
	Camiones        Collection = "camiones"
	Acoplados       Collection = "acoplados"
	Viajes          Collection = "viajes"
	Polizas         Collection = "polizas"
	TiposDeGasto    Collection = "tiposDeGasto"
	Gastos          Collection = "gastos"
	Currencies      Collection = "currencies"
	VehiculoEstados Collection = "vehiculoEstados"
	ViajeEstados    Collection = "viajeEstados"
)

// ParseCollection maps a wire name to its Collection constant.
func ParseCollection(name string) (Collection, bool) {
	switch c := Collection(name); c {
	case Choferes, Camiones, Acoplados, Viajes, Polizas,
		TiposDeGasto, Gastos, Currencies, VehiculoEstados, ViajeEstados:
		return c, true
	}
	return "", false
}

// Store holds the current snapshot of every collection. A snapshot is always
// either the previous value or a complete freshly-fetched one; replacement is
// a single assignment under the lock, never element by element.
type Store struct {
	api *Client

	mu              sync.RWMutex
	choferes        []models.Chofer
	camiones        []models.Camion
	acoplados       []models.Acoplado
	viajes          []models.Viaje
	polizas         []models.Poliza
	tiposDeGasto    []models.TipoDeGasto
	gastos          []models.Gasto
	currencies      []models.Currency
	vehiculoEstados []models.VehiculoEstado
	viajeEstados    []models.ViajeEstado
}

func NewStore(api *Client) *Store {
	return &Store{api: api}
}

// LoadAll fetches all ten collections in parallel and replaces every snapshot
// only if every fetch succeeds. On any failure the pre-existing snapshots are
// left untouched and the first error is returned — all-or-nothing, including
// for fetches that had already completed.
func (s *Store) LoadAll(ctx context.Context) error {
	var (
		choferes        []models.Chofer
		camiones        []models.Camion
		acoplados       []models.Acoplado
		viajes          []models.Viaje
		polizas         []models.Poliza
		tiposDeGasto    []models.TipoDeGasto
		gastos          []models.Gasto
		currencies      []models.Currency
		vehiculoEstados []models.VehiculoEstado
		viajeEstados    []models.ViajeEstado
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.api.Get(ctx, string(Choferes), &choferes) })
	g.Go(func() error { return s.api.Get(ctx, string(Camiones), &camiones) })
	g.Go(func() error { return s.api.Get(ctx, string(Acoplados), &acoplados) })
	g.Go(func() error { return s.api.Get(ctx, string(Viajes), &viajes) })
	g.Go(func() error { return s.api.Get(ctx, string(Polizas), &polizas) })
	g.Go(func() error { return s.api.Get(ctx, string(TiposDeGasto), &tiposDeGasto) })
	g.Go(func() error { return s.api.Get(ctx, string(Gastos), &gastos) })
	g.Go(func() error { return s.api.Get(ctx, string(Currencies), &currencies) })
	g.Go(func() error { return s.api.Get(ctx, string(VehiculoEstados), &vehiculoEstados) })
	g.Go(func() error { return s.api.Get(ctx, string(ViajeEstados), &viajeEstados) })

	if err := g.Wait(); err != nil {
		return fmt.Errorf("loading collections: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.choferes = choferes
	s.camiones = camiones
	s.acoplados = acoplados
	s.viajes = viajes
	s.polizas = polizas
	s.tiposDeGasto = tiposDeGasto
	s.gastos = gastos
	s.currencies = currencies
	s.vehiculoEstados = vehiculoEstados
	s.viajeEstados = viajeEstados
	return nil
}

// Refresh refetches exactly one collection and replaces only that snapshot.
func (s *Store) Refresh(ctx context.Context, col Collection) error {
	switch col {
	case Choferes:
		return refreshInto(ctx, s, col, &s.choferes)
	case Camiones:
		return refreshInto(ctx, s, col, &s.camiones)
	case Acoplados:
		return refreshInto(ctx, s, col, &s.acoplados)
	case Viajes:
		return refreshInto(ctx, s, col, &s.viajes)
	case Polizas:
		return refreshInto(ctx, s, col, &s.polizas)
	case TiposDeGasto:
		return refreshInto(ctx, s, col, &s.tiposDeGasto)
	case Gastos:
		return refreshInto(ctx, s, col, &s.gastos)
	case Currencies:
		return refreshInto(ctx, s, col, &s.currencies)
	case VehiculoEstados:
		return refreshInto(ctx, s, col, &s.vehiculoEstados)
	case ViajeEstados:
		return refreshInto(ctx, s, col, &s.viajeEstados)
	}
	return fmt.Errorf("unknown collection %q", col)
}

func refreshInto[T any](ctx context.Context, s *Store, col Collection, dst *[]T) error {
	var fetched []T
	if err := s.api.Get(ctx, string(col), &fetched); err != nil {
		return fmt.Errorf("refreshing %s: %w", col, err)
	}

	s.mu.Lock()
	*dst = fetched
	s.mu.Unlock()
	return nil
}

func (s *Store) Choferes() []models.Chofer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.choferes
}

func (s *Store) Camiones() []models.Camion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.camiones
}

func (s *Store) Acoplados() []models.Acoplado {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.acoplados
}

func (s *Store) Viajes() []models.Viaje {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viajes
}

func (s *Store) Polizas() []models.Poliza {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.polizas
}

func (s *Store) TiposDeGasto() []models.TipoDeGasto {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tiposDeGasto
}

func (s *Store) Gastos() []models.Gasto {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gastos
}

func (s *Store) Currencies() []models.Currency {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currencies
}

func (s *Store) VehiculoEstados() []models.VehiculoEstado {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vehiculoEstados
}

func (s *Store) ViajeEstados() []models.ViajeEstado {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viajeEstados
}
