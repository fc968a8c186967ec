package rental_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/skirent-api/internal/application/apptest"
	"github.com/jhoicas/skirent-api/internal/application/dto"
	"github.com/jhoicas/skirent-api/internal/application/rental"
	"github.com/jhoicas/skirent-api/internal/domain"
	"github.com/jhoicas/skirent-api/internal/domain/entity"
)

const (
	testUserID      = "00000000-0000-0000-0000-000000000001"
	otherUserID     = "00000000-0000-0000-0000-000000000002"
	testProductID   = "11111111-1111-1111-1111-111111111111"
	testProductName = "Tabla snowboard 155"
)

func newFixture(quantity, available, rented int) (*apptest.Store, *rental.UseCase) {
	store := apptest.NewStore()
	store.SeedProduct(&entity.Product{
		ID:                testProductID,
		Name:              testProductName,
		Category:          entity.CategoryEquipment,
		Type:              "snowboard",
		Quantity:          quantity,
		AvailableQuantity: available,
		RentedQuantity:    rented,
	})
	return store, rental.NewUseCase(store, store.RentalRepo())
}

// ──────────────────────────────────────────────────────────────────────────────
// Rent — creación de renta formal
// ──────────────────────────────────────────────────────────────────────────────

func TestRent_MueveStockYCreaRentaActiva(t *testing.T) {
	store, uc := newFixture(10, 10, 0)
	start := time.Now()

	out, err := uc.Rent(context.Background(), testUserID, testProductID, 2, 5)
	require.NoError(t, err)

	assert.Equal(t, 8, out.AvailableQuantity)
	assert.Equal(t, 2, out.RentedQuantity)
	assert.Equal(t, 10, out.Quantity, "el total no cambia al rentar")

	require.Len(t, store.Rentals, 1)
	r := store.Rentals[0]
	assert.Equal(t, entity.RentalStatusActive, r.Status)
	assert.Equal(t, testUserID, r.UserID)
	assert.Equal(t, 2, r.Qty)
	assert.Nil(t, r.ReturnedAt)
	// end_date = start_date + días solicitados
	wantEnd := r.StartDate.AddDate(0, 0, 5)
	assert.Equal(t, wantEnd, r.EndDate)
	assert.WithinDuration(t, start, r.StartDate, 5*time.Second)

	require.Len(t, store.Audits, 1)
	log := store.Audits[0]
	assert.Equal(t, entity.AuditActionRent, log.Action)
	assert.Equal(t, testProductName, log.Meta["name"])
	assert.Equal(t, 5, log.Meta["days"])
	assert.Equal(t, r.ID, log.Meta["rentalId"])
}

func TestRent_StockInsuficiente(t *testing.T) {
	store, uc := newFixture(5, 1, 4)

	_, err := uc.Rent(context.Background(), testUserID, testProductID, 2, 3)
	assert.Equal(t, domain.ErrInsufficientStock, err)

	assert.Empty(t, store.Rentals, "un rent rechazado no debe crear fila de renta")
	assert.Empty(t, store.Audits)
	p := store.Products[testProductID]
	assert.Equal(t, 1, p.AvailableQuantity)
	assert.Equal(t, 4, p.RentedQuantity)
}

func TestRent_ProductoInexistente(t *testing.T) {
	store := apptest.NewStore()
	uc := rental.NewUseCase(store, store.RentalRepo())

	_, err := uc.Rent(context.Background(), testUserID, "no-existe", 1, 2)
	assert.Equal(t, domain.ErrNotFound, err)
}

func TestRent_ParametrosInvalidos(t *testing.T) {
	_, uc := newFixture(5, 5, 0)
	ctx := context.Background()

	_, err := uc.Rent(ctx, testUserID, testProductID, 0, 2)
	assert.Equal(t, domain.ErrInvalidInput, err)

	_, err = uc.Rent(ctx, testUserID, testProductID, 1, 0)
	assert.Equal(t, domain.ErrInvalidInput, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// ReturnRental — cierre de renta
// ──────────────────────────────────────────────────────────────────────────────

func TestReturnRental_RoundTrip(t *testing.T) {
	store, uc := newFixture(10, 10, 0)
	ctx := context.Background()

	_, err := uc.Rent(ctx, testUserID, testProductID, 2, 3)
	require.NoError(t, err)

	out, err := uc.ReturnRental(ctx, testUserID, testProductID, 2)
	require.NoError(t, err)

	assert.Equal(t, 10, out.AvailableQuantity, "la devolución restaura available")
	assert.Equal(t, 0, out.RentedQuantity)

	require.Len(t, store.Rentals, 1)
	r := store.Rentals[0]
	assert.Equal(t, entity.RentalStatusReturned, r.Status)
	require.NotNil(t, r.ReturnedAt, "la devolución debe sellar returned_at")

	require.Len(t, store.Audits, 2)
	log := store.Audits[1]
	assert.Equal(t, entity.AuditActionReturnRented, log.Action)
	assert.Equal(t, r.ID, log.Meta["rentalId"])
}

func TestReturnRental_SinRentaActiva(t *testing.T) {
	_, uc := newFixture(10, 8, 2)
	ctx := context.Background()

	// Hay unidades rentadas pero ninguna renta ACTIVE de este usuario.
	_, err := uc.Rent(ctx, otherUserID, testProductID, 1, 2)
	require.NoError(t, err)

	_, err = uc.ReturnRental(ctx, testUserID, testProductID, 1)
	assert.Equal(t, domain.ErrNoActiveRental, err)
}

func TestReturnRental_MasDeLoRentado(t *testing.T) {
	_, uc := newFixture(10, 9, 1)

	_, err := uc.ReturnRental(context.Background(), testUserID, testProductID, 2)
	assert.Equal(t, domain.ErrNotEnoughRented, err,
		"devolver más unidades de las rentadas del producto debe rechazarse")
}

func TestReturnRental_ExcedeLaRentaCandidata(t *testing.T) {
	store, uc := newFixture(10, 10, 0)
	ctx := context.Background()

	// Dos rentas de 1 unidad: rented=2 pasa la verificación global, pero la
	// renta candidata (la más reciente) solo cubre 1. Sin devoluciones parciales.
	_, err := uc.Rent(ctx, testUserID, testProductID, 1, 2)
	require.NoError(t, err)
	_, err = uc.Rent(ctx, testUserID, testProductID, 1, 2)
	require.NoError(t, err)

	_, err = uc.ReturnRental(ctx, testUserID, testProductID, 2)
	assert.Equal(t, domain.ErrReturnQtyExceedsRental, err)

	p := store.Products[testProductID]
	assert.Equal(t, 2, p.RentedQuantity, "la devolución rechazada no debe tocar contadores")
	for _, r := range store.Rentals {
		assert.Equal(t, entity.RentalStatusActive, r.Status)
	}
}

func TestReturnRental_CierraLaMasReciente(t *testing.T) {
	store, uc := newFixture(10, 10, 0)
	ctx := context.Background()

	_, err := uc.Rent(ctx, testUserID, testProductID, 1, 2)
	require.NoError(t, err)
	_, err = uc.Rent(ctx, testUserID, testProductID, 3, 4)
	require.NoError(t, err)

	_, err = uc.ReturnRental(ctx, testUserID, testProductID, 3)
	require.NoError(t, err)

	// La segunda renta (más reciente, qty 3) es la que se cierra.
	assert.Equal(t, entity.RentalStatusActive, store.Rentals[0].Status)
	assert.Equal(t, entity.RentalStatusReturned, store.Rentals[1].Status)

	_, err = uc.ReturnRental(ctx, testUserID, testProductID, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.RentalStatusReturned, store.Rentals[0].Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados
// ──────────────────────────────────────────────────────────────────────────────

func TestListMy_SoloRentasPropias(t *testing.T) {
	_, uc := newFixture(10, 10, 0)
	ctx := context.Background()

	_, err := uc.Rent(ctx, testUserID, testProductID, 1, 2)
	require.NoError(t, err)
	_, err = uc.Rent(ctx, otherUserID, testProductID, 1, 2)
	require.NoError(t, err)

	mine, err := uc.ListMy(testUserID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, testUserID, mine[0].UserID)
	require.NotNil(t, mine[0].ProductName, "el listado resuelve el nombre del producto")
	assert.Equal(t, testProductName, *mine[0].ProductName)
}

func TestList_FiltraPorEstado(t *testing.T) {
	_, uc := newFixture(10, 10, 0)
	ctx := context.Background()

	_, err := uc.Rent(ctx, testUserID, testProductID, 1, 2)
	require.NoError(t, err)
	_, err = uc.Rent(ctx, testUserID, testProductID, 1, 2)
	require.NoError(t, err)
	_, err = uc.ReturnRental(ctx, testUserID, testProductID, 1)
	require.NoError(t, err)

	active, err := uc.List(dto.ListRentalsRequest{Status: entity.RentalStatusActive})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, entity.RentalStatusActive, active[0].Status)

	returned, err := uc.List(dto.ListRentalsRequest{Status: entity.RentalStatusReturned})
	require.NoError(t, err)
	require.Len(t, returned, 1)

	all, err := uc.List(dto.ListRentalsRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
