package entity

import (
	"time"
)

type OrderItem struct {
	ProductID string  `json:"product_id" firestore:"productId"`
	Name      string  `json:"name" firestore:"name"`
	Price     float64 `json:"price" firestore:"price"`
	ImageURL  string  `json:"image_url" firestore:"imageUrl"`
	Quantity  int     `json:"quantity" firestore:"quantity"`
}

type Order struct {
	ID              string      `json:"id" firestore:"id"`
	UserID          string      `json:"user_id" firestore:"userId"`
	Items           []OrderItem `json:"items" firestore:"items"`
	Amount          int64       `json:"amount" firestore:"amount"` // minor units
	Currency        string      `json:"currency" firestore:"currency"`
	PaymentIntentID string      `json:"payment_intent_id" firestore:"paymentIntentId"`
	Status          string      `json:"status" firestore:"status"`
	CreatedAt       time.Time   `json:"created_at" firestore:"createdAt"`
}
