package client

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/blslogistica/cargoflow/internal/models"
)

var (
	// ErrTipoDeGastoDuplicado is returned before any network call when the
	// new name matches an existing type case-insensitively.
	ErrTipoDeGastoDuplicado = errors.New("este tipo de gasto ya existe")

	// ErrTipoDeGastoEnUso is returned before any network call when an
	// expense still references the type.
	ErrTipoDeGastoEnUso = errors.New("el tipo de gasto está en uso")
)

// Coordinator wraps every mutation in the create/update/delete-then-refetch
// protocol: on transport success the affected collection is refetched once;
// on failure the store keeps its pre-mutation snapshot and the error is
// logged and propagated. No retry, no rollback, no deduplication of
// concurrent submissions.
type Coordinator struct {
	api   *Client
	store *Store
}

func NewCoordinator(api *Client, store *Store) *Coordinator {
	return &Coordinator{api: api, store: store}
}

// PendingDelete is a delete that has passed validation but not yet run.
// Callers own the confirmation step (interactive prompt, --yes flag, test);
// Confirm performs the transport call and the refetch.
type PendingDelete struct {
	Description string
	confirm     func(ctx context.Context) error
}

func (p *PendingDelete) Confirm(ctx context.Context) error {
	return p.confirm(ctx)
}

func (m *Coordinator) CreateChofer(ctx context.Context, chofer models.Chofer) error {
	return create(ctx, m, Choferes, chofer)
}

func (m *Coordinator) UpdateChofer(ctx context.Context, chofer models.Chofer) error {
	return update(ctx, m, string(Choferes), fmt.Sprint(chofer.ID), chofer)
}

func (m *Coordinator) RemoveChofer(id uint) *PendingDelete {
	return m.pendingDelete(fmt.Sprintf("chofer %d", id), Choferes, fmt.Sprint(id))
}

func (m *Coordinator) CreateCamion(ctx context.Context, camion models.Camion) error {
	return create(ctx, m, Camiones, camion)
}

func (m *Coordinator) UpdateCamion(ctx context.Context, camion models.Camion) error {
	return update(ctx, m, string(Camiones), camion.Dominio, camion)
}

func (m *Coordinator) RemoveCamion(dominio string) *PendingDelete {
	return m.pendingDelete("camión "+dominio, Camiones, dominio)
}

func (m *Coordinator) CreateAcoplado(ctx context.Context, acoplado models.Acoplado) error {
	return create(ctx, m, Acoplados, acoplado)
}

func (m *Coordinator) UpdateAcoplado(ctx context.Context, acoplado models.Acoplado) error {
	return update(ctx, m, string(Acoplados), acoplado.Dominio, acoplado)
}

func (m *Coordinator) RemoveAcoplado(dominio string) *PendingDelete {
	return m.pendingDelete("acoplado "+dominio, Acoplados, dominio)
}

func (m *Coordinator) CreateViaje(ctx context.Context, viaje models.Viaje) error {
	return create(ctx, m, Viajes, viaje)
}

func (m *Coordinator) UpdateViaje(ctx context.Context, viaje models.Viaje) error {
	return update(ctx, m, string(Viajes), fmt.Sprint(viaje.ID), viaje)
}

func (m *Coordinator) RemoveViaje(id uint) *PendingDelete {
	return m.pendingDelete(fmt.Sprintf("viaje %d", id), Viajes, fmt.Sprint(id))
}

func (m *Coordinator) CreatePoliza(ctx context.Context, poliza models.Poliza) error {
	return create(ctx, m, Polizas, poliza)
}

func (m *Coordinator) UpdatePoliza(ctx context.Context, poliza models.Poliza) error {
	return update(ctx, m, string(Polizas), fmt.Sprint(poliza.ID), poliza)
}

func (m *Coordinator) RemovePoliza(id uint) *PendingDelete {
	return m.pendingDelete(fmt.Sprintf("póliza %d", id), Polizas, fmt.Sprint(id))
}

func (m *Coordinator) CreateGasto(ctx context.Context, gasto models.Gasto) error {
	return create(ctx, m, Gastos, gasto)
}

func (m *Coordinator) UpdateGasto(ctx context.Context, gasto models.Gasto) error {
	return update(ctx, m, string(Gastos), fmt.Sprint(gasto.ID), gasto)
}

func (m *Coordinator) RemoveGasto(id uint) *PendingDelete {
	return m.pendingDelete(fmt.Sprintf("gasto %d", id), Gastos, fmt.Sprint(id))
}

// CreateTipoDeGasto rejects a case-insensitive duplicate of an existing type
// name before issuing any request. The check runs against the current
// snapshot, so it is only as fresh as the last refresh.
func (m *Coordinator) CreateTipoDeGasto(ctx context.Context, nombre string) error {
	for _, tipo := range m.store.TiposDeGasto() {
		if strings.EqualFold(tipo.Nombre, nombre) {
			return ErrTipoDeGastoDuplicado
		}
	}
	return create(ctx, m, TiposDeGasto, models.TipoDeGasto{Nombre: nombre})
}

// RemoveTipoDeGasto rejects the delete while any expense in the current
// snapshot references the type.
func (m *Coordinator) RemoveTipoDeGasto(id uint) (*PendingDelete, error) {
	for _, gasto := range m.store.Gastos() {
		if gasto.TipoID == id {
			return nil, ErrTipoDeGastoEnUso
		}
	}
	return m.pendingDelete(fmt.Sprintf("tipo de gasto %d", id), TiposDeGasto, fmt.Sprint(id)), nil
}

func create[T any](ctx context.Context, m *Coordinator, col Collection, item T) error {
	if err := m.api.Post(ctx, string(col), item, nil); err != nil {
		log.Printf("Error adding item to %s: %v", col, err)
		return err
	}
	return m.store.Refresh(ctx, col)
}

// update refetches the first path segment of the endpoint: a mutation nested
// under a sub-resource path still refreshes its top-level collection.
func update[T any](ctx context.Context, m *Coordinator, endpoint, id string, item T) error {
	if err := m.api.Put(ctx, endpoint, id, item, nil); err != nil {
		log.Printf("Error updating item at %s/%s: %v", endpoint, id, err)
		return err
	}

	refetch, ok := ParseCollection(strings.SplitN(endpoint, "/", 2)[0])
	if !ok {
		return fmt.Errorf("no collection to refetch for endpoint %q", endpoint)
	}
	return m.store.Refresh(ctx, refetch)
}

func (m *Coordinator) pendingDelete(description string, col Collection, id string) *PendingDelete {
	return &PendingDelete{
		Description: description,
		confirm: func(ctx context.Context) error {
			if err := m.api.Delete(ctx, string(col), id); err != nil {
				log.Printf("Error deleting item from %s: %v", col, err)
				return err
			}
			return m.store.Refresh(ctx, col)
		},
	}
}
