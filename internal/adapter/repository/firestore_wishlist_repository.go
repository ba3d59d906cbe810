package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"avion/internal/domain/entity"
	"avion/internal/domain/repository"
	"avion/pkg/errors"
	"avion/pkg/logger"
)

type firestoreWishlistRepository struct {
	client *firestore.Client
}

func NewFirestoreWishlistRepository(client *firestore.Client) repository.WishlistRepository {
	return &firestoreWishlistRepository{client: client}
}

func wishlistDocID(userID, productID string) string {
	return fmt.Sprintf("%s_%s", userID, productID)
}

func (r *firestoreWishlistRepository) AddToWishlist(ctx context.Context, userID, productID string) (*entity.WishlistItem, error) {
	exists, err := r.IsInWishlist(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.Conflict("Product already in wishlist")
	}

	item := entity.WishlistItem{
		ID:        wishlistDocID(userID, productID),
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}

	_, err = r.client.Collection("wishlists").Doc(item.ID).Set(ctx, item)
	if err != nil {
		return nil, errors.Internal("Failed to add to wishlist", err)
	}

	logger.Debug("Added product %s to wishlist for user %s", productID, userID)
	return &item, nil
}

func (r *firestoreWishlistRepository) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	exists, err := r.IsInWishlist(ctx, userID, productID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NotFound("Wishlist item", nil)
	}

	_, err = r.client.Collection("wishlists").Doc(wishlistDocID(userID, productID)).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to remove from wishlist", err)
	}

	return nil
}

func (r *firestoreWishlistRepository) GetUserWishlist(ctx context.Context, userID string, limit, offset int) ([]*entity.WishlistItemWithProduct, int64, error) {
	query := r.client.Collection("wishlists").
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count wishlist items", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var items []*entity.WishlistItemWithProduct
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate wishlist", err)
		}

		var item entity.WishlistItem
		if err := doc.DataTo(&item); err != nil {
			return nil, 0, errors.Internal("Failed to parse wishlist data", err)
		}

		withProduct := &entity.WishlistItemWithProduct{
			ID:        item.ID,
			UserID:    item.UserID,
			ProductID: item.ProductID,
			CreatedAt: item.CreatedAt,
		}

		// Join the product; a missing product leaves the entry with a nil
		// product rather than failing the whole listing
		productDoc, err := r.client.Collection("products").Doc(item.ProductID).Get(ctx)
		if err == nil {
			var product entity.Product
			if err := productDoc.DataTo(&product); err == nil && product.DeletedAt == nil {
				withProduct.Product = &product
			}
		}

		items = append(items, withProduct)
	}

	return items, total, nil
}

func (r *firestoreWishlistRepository) IsInWishlist(ctx context.Context, userID, productID string) (bool, error) {
	doc, err := r.client.Collection("wishlists").Doc(wishlistDocID(userID, productID)).Get(ctx)
	if err != nil {
		return false, nil
	}
	return doc.Exists(), nil
}

func (r *firestoreWishlistRepository) GetWishlistCount(ctx context.Context, userID string) (int64, error) {
	docs, err := r.client.Collection("wishlists").Where("userId", "==", userID).Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count wishlist items", err)
	}
	return int64(len(docs)), nil
}
