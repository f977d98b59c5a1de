package controllers

import (
	"context"
	"io"

	"pharma-place/models"

	"github.com/stretchr/testify/mock"
)

type MockUserStore struct{ mock.Mock }

func (m *MockUserStore) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserStore) RoleOf(ctx context.Context, email string) (models.Role, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.Role), args.Error(1)
}

func (m *MockUserStore) Create(ctx context.Context, user models.User) (models.InsertResult, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(models.InsertResult), args.Error(1)
}

func (m *MockUserStore) SetRole(ctx context.Context, id string, role models.Role) (models.UpdateResult, error) {
	args := m.Called(ctx, id, role)
	return args.Get(0).(models.UpdateResult), args.Error(1)
}

func (m *MockUserStore) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.DeleteResult), args.Error(1)
}

type MockMedicineStore struct{ mock.Mock }

func (m *MockMedicineStore) List(ctx context.Context) ([]models.Medicine, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Medicine), args.Error(1)
}

func (m *MockMedicineStore) Get(ctx context.Context, id string) (*models.Medicine, error) {
	args := m.Called(ctx, id)
	med, _ := args.Get(0).(*models.Medicine)
	return med, args.Error(1)
}

func (m *MockMedicineStore) Create(ctx context.Context, medicine models.Medicine) (models.InsertResult, error) {
	args := m.Called(ctx, medicine)
	return args.Get(0).(models.InsertResult), args.Error(1)
}

func (m *MockMedicineStore) ListByOwner(ctx context.Context, email string) ([]models.Medicine, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]models.Medicine), args.Error(1)
}

func (m *MockMedicineStore) ListSlider(ctx context.Context) ([]models.Medicine, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Medicine), args.Error(1)
}

func (m *MockMedicineStore) ListDiscounted(ctx context.Context) ([]models.Medicine, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Medicine), args.Error(1)
}

func (m *MockMedicineStore) SetSliderStatus(ctx context.Context, id, status string) (models.UpdateResult, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(models.UpdateResult), args.Error(1)
}

type MockCartStore struct{ mock.Mock }

func (m *MockCartStore) Find(ctx context.Context, email, name string) (*models.CartItem, error) {
	args := m.Called(ctx, email, name)
	item, _ := args.Get(0).(*models.CartItem)
	return item, args.Error(1)
}

func (m *MockCartStore) Get(ctx context.Context, id string) (*models.CartItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*models.CartItem)
	return item, args.Error(1)
}

func (m *MockCartStore) ListByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]models.CartItem), args.Error(1)
}

func (m *MockCartStore) Create(ctx context.Context, item models.CartItem) (models.InsertResult, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(models.InsertResult), args.Error(1)
}

func (m *MockCartStore) UpdateQuantity(ctx context.Context, id string, quantity int) (models.UpdateResult, error) {
	args := m.Called(ctx, id, quantity)
	return args.Get(0).(models.UpdateResult), args.Error(1)
}

func (m *MockCartStore) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.DeleteResult), args.Error(1)
}

func (m *MockCartStore) DeleteByEmail(ctx context.Context, email string) (models.DeleteResult, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.DeleteResult), args.Error(1)
}

type MockPaymentStore struct{ mock.Mock }

func (m *MockPaymentStore) List(ctx context.Context) ([]models.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *MockPaymentStore) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *MockPaymentStore) Patch(ctx context.Context, id string, fields map[string]interface{}) (models.UpdateResult, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(models.UpdateResult), args.Error(1)
}

func (m *MockPaymentStore) Checkout(ctx context.Context, p models.Payment) (models.CheckoutResult, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(models.CheckoutResult), args.Error(1)
}

type MockReportStore struct{ mock.Mock }

func (m *MockReportStore) AdminStats(ctx context.Context) (models.AdminStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.AdminStats), args.Error(1)
}

func (m *MockReportStore) SalesReport(ctx context.Context) ([]models.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *MockReportStore) SellerSales(ctx context.Context, email string, role models.Role) ([]models.SellerSale, error) {
	args := m.Called(ctx, email, role)
	return args.Get(0).([]models.SellerSale), args.Error(1)
}

type MockGateway struct{ mock.Mock }

func (m *MockGateway) CreateIntent(ctx context.Context, amountMinor int64) (string, error) {
	args := m.Called(ctx, amountMinor)
	return args.String(0), args.Error(1)
}

type MockUploader struct{ mock.Mock }

func (m *MockUploader) Upload(ctx context.Context, r io.Reader, contentType, folder string) (string, error) {
	args := m.Called(ctx, r, contentType, folder)
	return args.String(0), args.Error(1)
}
