package entity

import (
	"time"
)

type Dimensions struct {
	Width  string `json:"width" firestore:"width"`
	Height string `json:"height" firestore:"height"`
	Depth  string `json:"depth" firestore:"depth"`
}

type Product struct {
	ID          string     `json:"id" firestore:"id"`
	Name        string     `json:"name" firestore:"name"`
	Description string     `json:"description" firestore:"description"`
	ImageURL    string     `json:"image_url" firestore:"imageUrl"`
	Price       float64    `json:"price" firestore:"price"`
	Features    []string   `json:"features" firestore:"features"`
	Dimensions  Dimensions `json:"dimensions" firestore:"dimensions"`
	CategoryID  string     `json:"category_id" firestore:"categoryId"`
	Category    *Category  `json:"category,omitempty" firestore:"category,omitempty"`
	Tags        []string   `json:"tags" firestore:"tags"`
	Quantity    int        `json:"quantity" firestore:"quantity"`

	CreatedAt time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time  `json:"updated_at" firestore:"updatedAt"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" firestore:"deletedAt,omitempty"`
}
