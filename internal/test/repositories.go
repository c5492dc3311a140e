package test

import (
	"context"
	"sort"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/campusmart/internal/domain/errors"
	"github.com/polkiloo/campusmart/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Login: login, PasswordHash: passwordHash}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// VerificationRepositoryStub keeps codes in memory and applies the same
// latest-code and expiry rules as the database query.
type VerificationRepositoryStub struct {
	mu        sync.Mutex
	Codes     []model.VerificationCode
	Verified  map[int64]string
	CreateErr error
	ConsumeFn func(context.Context, int64, string, time.Time) (string, bool, error)
	LatestErr error
}

// NewVerificationRepositoryStub constructs an empty stub.
func NewVerificationRepositoryStub() *VerificationRepositoryStub {
	return &VerificationRepositoryStub{Verified: make(map[int64]string)}
}

// Create appends a code.
func (s *VerificationRepositoryStub) Create(ctx context.Context, code model.VerificationCode) error {
	if s.CreateErr != nil {
		return s.CreateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Codes = append(s.Codes, code)
	return nil
}

// Consume marks the latest matching pending code consumed.
func (s *VerificationRepositoryStub) Consume(ctx context.Context, ownerID int64, code string, now time.Time) (string, bool, error) {
	if s.ConsumeFn != nil {
		return s.ConsumeFn(ctx, ownerID, code, now)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.latestIndex(ownerID)
	if i < 0 {
		return "", false, nil
	}
	latest := &s.Codes[i]
	if latest.Code != code || latest.StatusAt(now) != model.CodeStatusPending {
		return "", false, nil
	}
	consumedAt := now
	latest.ConsumedAt = &consumedAt
	if s.Verified == nil {
		s.Verified = make(map[int64]string)
	}
	s.Verified[ownerID] = latest.Phone
	return latest.Phone, true, nil
}

// Latest returns the most recently created code of the owner.
func (s *VerificationRepositoryStub) Latest(ctx context.Context, ownerID int64) (*model.VerificationCode, error) {
	if s.LatestErr != nil {
		return nil, s.LatestErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.latestIndex(ownerID)
	if i < 0 {
		return nil, domainErrors.ErrNotFound
	}
	code := s.Codes[i]
	return &code, nil
}

func (s *VerificationRepositoryStub) latestIndex(ownerID int64) int {
	idx := -1
	for i, c := range s.Codes {
		if c.OwnerID != ownerID {
			continue
		}
		if idx < 0 || !c.CreatedAt.Before(s.Codes[idx].CreatedAt) {
			idx = i
		}
	}
	return idx
}

// MerchantRepositoryStub stores merchant profiles in memory.
type MerchantRepositoryStub struct {
	ByOwner map[int64]*model.Merchant
	Next    int64
	Err     error
}

// NewMerchantRepositoryStub constructs an empty stub.
func NewMerchantRepositoryStub() *MerchantRepositoryStub {
	return &MerchantRepositoryStub{ByOwner: make(map[int64]*model.Merchant), Next: 1}
}

// Create registers one merchant per owner.
func (s *MerchantRepositoryStub) Create(ctx context.Context, ownerID int64, name, channel string) (*model.Merchant, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.ByOwner == nil {
		s.ByOwner = make(map[int64]*model.Merchant)
	}
	if _, ok := s.ByOwner[ownerID]; ok {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	m := &model.Merchant{ID: s.Next, OwnerID: ownerID, Name: name, Channel: channel}
	s.Next++
	s.ByOwner[ownerID] = m
	return m, nil
}

// GetByOwner returns the merchant owned by ownerID.
func (s *MerchantRepositoryStub) GetByOwner(ctx context.Context, ownerID int64) (*model.Merchant, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if m, ok := s.ByOwner[ownerID]; ok {
		return m, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ProductRepositoryStub stores products in memory.
type ProductRepositoryStub struct {
	Items map[int64]*model.Product
	Next  int64
	Err   error
}

// NewProductRepositoryStub constructs an empty stub.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Items: make(map[int64]*model.Product), Next: 1}
}

// Create stores product and assigns an identifier.
func (s *ProductRepositoryStub) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Items == nil {
		s.Items = make(map[int64]*model.Product)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	product.ID = s.Next
	s.Next++
	s.Items[product.ID] = &product
	return &product, nil
}

// GetByID returns product or not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if p, ok := s.Items[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByMerchant returns products of merchant ordered by id.
func (s *ProductRepositoryStub) ListByMerchant(ctx context.Context, merchantID int64) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Product
	for _, p := range s.Items {
		if p.MerchantID == merchantID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type cartRow struct {
	id        int64
	userID    int64
	productID int64
	quantity  int
}

// CartRepositoryStub keeps cart rows in memory and joins them with the
// product and merchant stubs on read.
type CartRepositoryStub struct {
	Products  *ProductRepositoryStub
	Merchants map[int64]model.Merchant
	rows      []cartRow
	next      int64
	Err       error
}

// NewCartRepositoryStub constructs a stub reading products from products.
func NewCartRepositoryStub(products *ProductRepositoryStub, merchants ...model.Merchant) *CartRepositoryStub {
	byID := make(map[int64]model.Merchant, len(merchants))
	for _, m := range merchants {
		byID[m.ID] = m
	}
	return &CartRepositoryStub{Products: products, Merchants: byID, next: 1}
}

func (s *CartRepositoryStub) line(r cartRow) model.CartLine {
	line := model.CartLine{ID: r.id, UserID: r.userID, ProductID: r.productID, Quantity: r.quantity}
	if p, ok := s.Products.Items[r.productID]; ok {
		line.ProductName = p.Name
		line.UnitPrice = p.Price
		line.Stock = p.Stock
		line.MerchantID = p.MerchantID
		if m, ok := s.Merchants[p.MerchantID]; ok {
			line.MerchantName = m.Name
			line.MerchantChannel = m.Channel
		}
	}
	return line
}

// Lines returns rows of the user in insertion order.
func (s *CartRepositoryStub) Lines(ctx context.Context, userID int64) ([]model.CartLine, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.CartLine
	for _, r := range s.rows {
		if r.userID == userID {
			out = append(out, s.line(r))
		}
	}
	return out, nil
}

// GetLine returns one line of the user.
func (s *CartRepositoryStub) GetLine(ctx context.Context, userID, lineID int64) (*model.CartLine, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, r := range s.rows {
		if r.id == lineID && r.userID == userID {
			line := s.line(r)
			return &line, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// FindByProduct returns the user's line for productID.
func (s *CartRepositoryStub) FindByProduct(ctx context.Context, userID, productID int64) (*model.CartLine, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, r := range s.rows {
		if r.productID == productID && r.userID == userID {
			line := s.line(r)
			return &line, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Insert adds a row.
func (s *CartRepositoryStub) Insert(ctx context.Context, userID, productID int64, quantity int) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	if s.next == 0 {
		s.next = 1
	}
	id := s.next
	s.next++
	s.rows = append(s.rows, cartRow{id: id, userID: userID, productID: productID, quantity: quantity})
	return id, nil
}

// UpdateQuantity changes a row quantity.
func (s *CartRepositoryStub) UpdateQuantity(ctx context.Context, userID, lineID int64, quantity int) error {
	if s.Err != nil {
		return s.Err
	}
	for i := range s.rows {
		if s.rows[i].id == lineID && s.rows[i].userID == userID {
			s.rows[i].quantity = quantity
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// Delete removes a row.
func (s *CartRepositoryStub) Delete(ctx context.Context, userID, lineID int64) error {
	if s.Err != nil {
		return s.Err
	}
	for i := range s.rows {
		if s.rows[i].id == lineID && s.rows[i].userID == userID {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// OrderRepositoryStub stores orders in memory with conditional updates.
type OrderRepositoryStub struct {
	mu             sync.Mutex
	Orders         map[int64]*model.Order
	Changes        []model.StatusChange
	Next           int64
	CreateErr      error
	UpdateStatusFn func(context.Context, int64, model.StatusChange) (time.Time, error)
}

// NewOrderRepositoryStub constructs an empty stub.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[int64]*model.Order), Next: 1}
}

// Create stores the order and its items.
func (s *OrderRepositoryStub) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	if s.CreateErr != nil {
		return nil, s.CreateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Orders == nil {
		s.Orders = make(map[int64]*model.Order)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	order.ID = s.Next
	s.Next++
	now := time.Now()
	order.CreatedAt, order.UpdatedAt = now, now
	for i := range order.Items {
		order.Items[i].ID = int64(i + 1)
		order.Items[i].OrderID = order.ID
	}
	stored := order
	s.Orders[order.ID] = &stored
	out := order
	return &out, nil
}

// GetByID returns a copy of the order.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.Orders[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByMerchant returns orders of merchant, newest first.
func (s *OrderRepositoryStub) ListByMerchant(ctx context.Context, merchantID int64) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Order
	for _, o := range s.Orders {
		if o.MerchantID == merchantID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// UpdateStatus applies change when merchant and current status match.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, merchantID int64, change model.StatusChange) (time.Time, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, merchantID, change)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.Orders[change.OrderID]
	if !ok || o.MerchantID != merchantID || o.Status != change.From {
		return time.Time{}, domainErrors.ErrConflict
	}
	o.Status = change.To
	o.UpdatedAt = change.ChangedAt
	s.Changes = append(s.Changes, change)
	return change.ChangedAt, nil
}

// History returns recorded changes of the order.
func (s *OrderRepositoryStub) History(ctx context.Context, orderID int64) ([]model.StatusChange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.StatusChange
	for _, c := range s.Changes {
		if c.OrderID == orderID {
			out = append(out, c)
		}
	}
	return out, nil
}
