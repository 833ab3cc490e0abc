package services

import (
	"context"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/foodcourt/app/models"
	"github.com/shashiranjanraj/foodcourt/app/repositories"
	"github.com/shashiranjanraj/foodcourt/pkg/payment"
)

// In-memory doubles for the repository and gateway interfaces.

type fakeUsers struct {
	byEmail map[string]*models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: map[string]*models.User{}}
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	f.byEmail[user.Email] = user
	return nil
}

type fakeCarts struct {
	items   map[string]int64
	missing bool
	cleared int
}

func newFakeCarts() *fakeCarts {
	return &fakeCarts{items: map[string]int64{}}
}

func (f *fakeCarts) Cart(_ context.Context, _ string) (map[string]int64, error) {
	if f.missing {
		return nil, repositories.ErrNotFound
	}
	return f.items, nil
}

func (f *fakeCarts) IncrementCartItem(_ context.Context, _, itemID string) error {
	if f.missing {
		return repositories.ErrNotFound
	}
	f.items[itemID]++
	return nil
}

func (f *fakeCarts) DecrementCartItem(_ context.Context, _, itemID string) error {
	if f.missing {
		return repositories.ErrNotFound
	}
	if f.items[itemID] > 0 {
		f.items[itemID]--
	}
	return nil
}

func (f *fakeCarts) ClearCart(_ context.Context, _ string) error {
	f.items = map[string]int64{}
	f.cleared++
	return nil
}

type fakeOrders struct {
	orders map[string]*models.Order
}

func newFakeOrders() *fakeOrders {
	return &fakeOrders{orders: map[string]*models.Order{}}
}

func (f *fakeOrders) Create(_ context.Context, order *models.Order) error {
	order.ID = primitive.NewObjectID()
	if order.Status == "" {
		order.Status = models.StatusProcessing
	}
	if order.Date.IsZero() {
		order.Date = time.Now().UTC()
	}
	f.orders[order.ID.Hex()] = order
	return nil
}

func (f *fakeOrders) FindByID(_ context.Context, id string) (*models.Order, error) {
	if o, ok := f.orders[id]; ok {
		return o, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeOrders) All(_ context.Context) ([]models.Order, error) {
	out := []models.Order{}
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrders) ByUser(_ context.Context, userID string) ([]models.Order, error) {
	out := []models.Order{}
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrders) UpdateStatus(_ context.Context, id, status string) error {
	o, ok := f.orders[id]
	if !ok {
		return repositories.ErrNotFound
	}
	o.Status = status
	return nil
}

func (f *fakeOrders) SetPayment(_ context.Context, id string, paid bool) error {
	o, ok := f.orders[id]
	if !ok {
		return repositories.ErrNotFound
	}
	o.Payment = paid
	return nil
}

func (f *fakeOrders) Delete(_ context.Context, id string) error {
	if _, ok := f.orders[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.orders, id)
	return nil
}

type fakeGateway struct {
	items      []payment.LineItem
	successURL string
	cancelURL  string
	err        error
}

func (f *fakeGateway) CreateCheckoutSession(_ context.Context, items []payment.LineItem, successURL, cancelURL string) (*payment.Session, error) {
	f.items = items
	f.successURL = successURL
	f.cancelURL = cancelURL
	if f.err != nil {
		return nil, f.err
	}
	return &payment.Session{ID: "cs_test_1", URL: "https://checkout.test/cs_test_1"}, nil
}

type fakeCatalog struct {
	foods map[string]*models.Food
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{foods: map[string]*models.Food{}}
}

func (f *fakeCatalog) All(_ context.Context) ([]models.Food, error) {
	out := []models.Food{}
	for _, fd := range f.foods {
		out = append(out, *fd)
	}
	return out, nil
}

func (f *fakeCatalog) FindByID(_ context.Context, id string) (*models.Food, error) {
	if fd, ok := f.foods[id]; ok {
		return fd, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeCatalog) Create(_ context.Context, food *models.Food) error {
	food.ID = primitive.NewObjectID()
	f.foods[food.ID.Hex()] = food
	return nil
}

func (f *fakeCatalog) Delete(_ context.Context, id string) error {
	if _, ok := f.foods[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.foods, id)
	return nil
}

type fakeDisk struct {
	files   map[string][]byte
	deleted []string
	delErr  error
}

func newFakeDisk() *fakeDisk {
	return &fakeDisk{files: map[string][]byte{}}
}

func (d *fakeDisk) Put(path string, content []byte) error {
	d.files[path] = content
	return nil
}

func (d *fakeDisk) PutStream(path string, r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	d.files[path] = b
	return nil
}

func (d *fakeDisk) Get(path string) ([]byte, error) {
	if b, ok := d.files[path]; ok {
		return b, nil
	}
	return nil, io.EOF
}

func (d *fakeDisk) GetStream(path string) (io.ReadCloser, error) {
	return nil, io.EOF
}

func (d *fakeDisk) Exists(path string) bool {
	_, ok := d.files[path]
	return ok
}

func (d *fakeDisk) Missing(path string) bool { return !d.Exists(path) }

func (d *fakeDisk) Size(path string) (int64, error) {
	return int64(len(d.files[path])), nil
}

func (d *fakeDisk) LastModified(string) (time.Time, error) { return time.Time{}, nil }

func (d *fakeDisk) URL(path string) string { return "http://localhost/images/" + path }

func (d *fakeDisk) Delete(path string) error {
	d.deleted = append(d.deleted, path)
	if d.delErr != nil {
		return d.delErr
	}
	delete(d.files, path)
	return nil
}
