package service

import (
	"context"
	"strings"
	"testing"

	"github.com/medipos/billing-api/internal/domain/entity"
	domainRepo "github.com/medipos/billing-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOrderRepo is an in-memory OrderRepository for service tests.
type fakeOrderRepo struct {
	orders map[uint]*entity.Order
	nextID uint
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint]*entity.Order), nextID: 1}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	order.ID = r.nextID
	r.nextID++
	for i := range order.Cart {
		order.Cart[i].OrderID = order.ID
	}
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id uint) (*entity.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) GetByInvoiceNo(_ context.Context, invoiceNo string) (*entity.Order, error) {
	for _, o := range r.orders {
		if o.InvoiceNo == invoiceNo {
			return o, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) GetWithCart(_ context.Context, id uint) (*entity.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id uint) error {
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) List(_ context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var out []entity.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func TestCreateOrderComputesTotal(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo())

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		PaymentMethod:      "Cash",
		DiscountPercentage: 10,
		Items: []OrderItemInput{
			{Name: "Paracetamol 500mg", Price: 100, Quantity: 2, CGSTRate: 9, SGSTRate: 9},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, order)

	// 200 subtotal, 10% discount; tax is not part of the payable total.
	assert.Equal(t, 180.0, order.Total)
	assert.True(t, strings.HasPrefix(order.InvoiceNo, "INV-"), "invoice number %q", order.InvoiceNo)
	require.Len(t, order.Cart, 1)
	assert.Equal(t, 9.0, order.Cart[0].CGSTRate)
}

func TestCreateOrderDefaultsDateAndTime(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo())

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		PaymentMethod: "UPI",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, order.OrderDate)
	assert.NotEmpty(t, order.OrderTime)
	assert.Zero(t, order.Total)
}

func TestCreateOrderKeepsEmptyCustomerFieldsNil(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo())

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		PaymentMethod: "Cash",
		CustomerName:  "Asha Rao",
	})
	require.NoError(t, err)

	require.NotNil(t, order.Customer.CustomerName)
	assert.Equal(t, "Asha Rao", *order.Customer.CustomerName)
	assert.Nil(t, order.Customer.DoctorName)
	assert.Nil(t, order.Customer.CustomerMobile)
}

func TestGetOrderByInvoiceNo(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewOrderService(repo)

	created, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		PaymentMethod: "Cash",
		Items:         []OrderItemInput{{Name: "Gauze", Price: 15, Quantity: 1}},
	})
	require.NoError(t, err)

	order, err := svc.GetOrderByInvoiceNo(context.Background(), created.InvoiceNo)
	require.NoError(t, err)
	assert.Equal(t, created.ID, order.ID)
	require.Len(t, order.Cart, 1)
}

func TestGetOrderByInvoiceNoNotFound(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo())

	order, err := svc.GetOrderByInvoiceNo(context.Background(), "INV-missing")
	assert.Nil(t, order)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetOrderNotFound(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo())

	order, err := svc.GetOrder(context.Background(), 42)
	assert.Nil(t, order)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDeleteOrderNotFound(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo())

	err := svc.DeleteOrder(context.Background(), 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDeleteOrderRemovesOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewOrderService(repo)

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{PaymentMethod: "Cash"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(context.Background(), order.ID))
	_, err = svc.GetOrder(context.Background(), order.ID)
	assert.Error(t, err)
}
