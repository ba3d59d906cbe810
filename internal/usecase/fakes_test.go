package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"avion/internal/domain/entity"
	"avion/internal/domain/repository"
	"avion/internal/domain/service"
	"avion/pkg/errors"
)

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo(products ...*entity.Product) *memProductRepo {
	repo := &memProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (r *memProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = fmt.Sprintf("prod-%d", len(r.products)+1)
	}
	product.CreatedAt = time.Now()
	r.products[product.ID] = product
	return nil
}

func (r *memProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, ok := r.products[id]
	if !ok || product.DeletedAt != nil {
		return nil, errors.NotFound("Product", nil)
	}
	return product, nil
}

func (r *memProductRepo) List(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, int64, error) {
	var matched []*entity.Product
	for _, p := range r.products {
		if p.DeletedAt != nil {
			continue
		}
		if filter.Search != "" && !strings.HasPrefix(strings.ToLower(p.Name), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.MinPrice > 0 && p.Price < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && p.Price > filter.MaxPrice {
			continue
		}
		if len(filter.Categories) > 0 {
			found := false
			for _, name := range filter.Categories {
				if p.Category != nil && p.Category.Name == name {
					found = true
				}
			}
			if !found {
				continue
			}
		}
		matched = append(matched, p)
	}

	total := int64(len(matched))
	if offset >= len(matched) {
		return []*entity.Product{}, total, nil
	}
	end := len(matched)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return matched[offset:end], total, nil
}

func (r *memProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return errors.NotFound("Product", nil)
	}
	r.products[product.ID] = product
	return nil
}

func (r *memProductRepo) SoftDelete(ctx context.Context, id string) error {
	product, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	now := time.Now()
	product.DeletedAt = &now
	return nil
}

type memCategoryRepo struct {
	categories map[string]*entity.Category
}

func newMemCategoryRepo(categories ...*entity.Category) *memCategoryRepo {
	repo := &memCategoryRepo{categories: map[string]*entity.Category{}}
	for _, c := range categories {
		repo.categories[c.ID] = c
	}
	return repo
}

func (r *memCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	if category.ID == "" {
		category.ID = fmt.Sprintf("cat-%d", len(r.categories)+1)
	}
	r.categories[category.ID] = category
	return nil
}

func (r *memCategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, errors.NotFound("Category", nil)
	}
	return category, nil
}

func (r *memCategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, errors.NotFound("Category", nil)
}

func (r *memCategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

type memCartRepo struct {
	carts map[string]*entity.Cart
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{carts: map[string]*entity.Cart{}}
}

func (r *memCartRepo) GetCart(ctx context.Context, userID string) (*entity.Cart, error) {
	cart, ok := r.carts[userID]
	if !ok {
		return nil, nil
	}
	copied := &entity.Cart{UserID: cart.UserID, UpdatedAt: cart.UpdatedAt}
	copied.Items = append(copied.Items, cart.Items...)
	return copied, nil
}

func (r *memCartRepo) SaveCart(ctx context.Context, cart *entity.Cart) error {
	cart.UpdatedAt = time.Now()
	r.carts[cart.UserID] = cart
	return nil
}

func (r *memCartRepo) DeleteCart(ctx context.Context, userID string) error {
	delete(r.carts, userID)
	return nil
}

type memOrderRepo struct {
	orders []*entity.Order
}

func (r *memOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = fmt.Sprintf("order-%d", len(r.orders)+1)
	}
	r.orders = append(r.orders, order)
	return nil
}

func (r *memOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, errors.NotFound("Order", nil)
}

func (r *memOrderRepo) GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (*entity.Order, error) {
	for _, o := range r.orders {
		if o.PaymentIntentID == paymentIntentID {
			return o, nil
		}
	}
	return nil, nil
}

func (r *memOrderRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error) {
	var matched []*entity.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			matched = append(matched, o)
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return []*entity.Order{}, total, nil
	}
	end := len(matched)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return matched[offset:end], total, nil
}

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo(users ...*entity.User) *memUserRepo {
	repo := &memUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *memUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return errors.NotFound("User", nil)
	}
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

type memReviewRepo struct {
	reviews   []*entity.Review
	listCalls int
}

func (r *memReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = fmt.Sprintf("review-%d", len(r.reviews)+1)
	}
	r.reviews = append(r.reviews, review)
	return nil
}

func (r *memReviewRepo) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	for _, rev := range r.reviews {
		if rev.ID == id {
			return rev, nil
		}
	}
	return nil, errors.NotFound("Review", nil)
}

func (r *memReviewRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.Review, int64, error) {
	r.listCalls++
	var matched []*entity.Review
	for _, rev := range r.reviews {
		if rev.ProductID == productID {
			matched = append(matched, rev)
		}
	}
	total := int64(len(matched))
	if limit <= 0 {
		return matched, total, nil
	}
	if offset >= len(matched) {
		return []*entity.Review{}, total, nil
	}
	end := len(matched)
	if offset+limit < end {
		end = offset + limit
	}
	return matched[offset:end], total, nil
}

func (r *memReviewRepo) Delete(ctx context.Context, id string) error {
	for i, rev := range r.reviews {
		if rev.ID == id {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return nil
		}
	}
	return errors.NotFound("Review", nil)
}

type memWishlistRepo struct {
	items    map[string]*entity.WishlistItem
	products *memProductRepo
}

func newMemWishlistRepo(products *memProductRepo) *memWishlistRepo {
	return &memWishlistRepo{items: map[string]*entity.WishlistItem{}, products: products}
}

func (r *memWishlistRepo) AddToWishlist(ctx context.Context, userID, productID string) (*entity.WishlistItem, error) {
	key := userID + "_" + productID
	if _, ok := r.items[key]; ok {
		return nil, errors.Conflict("Product is already in wishlist")
	}
	item := &entity.WishlistItem{
		ID:        key,
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}
	r.items[key] = item
	return item, nil
}

func (r *memWishlistRepo) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	key := userID + "_" + productID
	if _, ok := r.items[key]; !ok {
		return errors.NotFound("Wishlist item", nil)
	}
	delete(r.items, key)
	return nil
}

func (r *memWishlistRepo) GetUserWishlist(ctx context.Context, userID string, limit, offset int) ([]*entity.WishlistItemWithProduct, int64, error) {
	var out []*entity.WishlistItemWithProduct
	for _, item := range r.items {
		if item.UserID != userID {
			continue
		}
		product, _ := r.products.GetByID(ctx, item.ProductID)
		out = append(out, &entity.WishlistItemWithProduct{
			ID:        item.ID,
			UserID:    item.UserID,
			ProductID: item.ProductID,
			Product:   product,
			CreatedAt: item.CreatedAt,
		})
	}
	return out, int64(len(out)), nil
}

func (r *memWishlistRepo) IsInWishlist(ctx context.Context, userID, productID string) (bool, error) {
	_, ok := r.items[userID+"_"+productID]
	return ok, nil
}

func (r *memWishlistRepo) GetWishlistCount(ctx context.Context, userID string) (int64, error) {
	var count int64
	for _, item := range r.items {
		if item.UserID == userID {
			count++
		}
	}
	return count, nil
}

// fakeGateway records payment intents in memory. Status is settable per
// intent to drive confirmation paths.
type fakeGateway struct {
	intents map[string]*service.PaymentIntent
	nextID  int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{intents: map[string]*service.PaymentIntent{}}
}

func (g *fakeGateway) CreatePaymentIntent(amount int64, currency string, metadata map[string]string) (*service.PaymentIntent, error) {
	g.nextID++
	intent := &service.PaymentIntent{
		ID:           fmt.Sprintf("pi_%d", g.nextID),
		ClientSecret: fmt.Sprintf("pi_%d_secret", g.nextID),
		Status:       "requires_payment_method",
		Amount:       amount,
		Currency:     currency,
		Metadata:     metadata,
	}
	g.intents[intent.ID] = intent
	return intent, nil
}

func (g *fakeGateway) GetPaymentIntent(id string) (*service.PaymentIntent, error) {
	intent, ok := g.intents[id]
	if !ok {
		return nil, fmt.Errorf("no such payment intent: %s", id)
	}
	return intent, nil
}

func (g *fakeGateway) markSucceeded(id string) {
	g.intents[id].Status = service.IntentStatusSucceeded
}
