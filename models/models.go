package models

import "time"

// ProductCategory tags every catalog product
type ProductCategory string

const (
	CategoryRolee     ProductCategory = "rolee"
	CategoryCestas    ProductCategory = "cestas"
	CategoryCafe      ProductCategory = "cafe"
	CategoryNamorados ProductCategory = "namorados"
	CategoryFit       ProductCategory = "fit"
	CategoryVegan     ProductCategory = "vegan"
	CategoryChurrasco ProductCategory = "churrasco"
)

// Product represents a kit or basket in the static catalog
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Price       float64         `json:"price"`
	Category    ProductCategory `json:"category"`
	Description string          `json:"description,omitempty"`
	ImageURL    string          `json:"image,omitempty"`
}

// CartItem is one cart line. At most one line exists per product id;
// re-adding a product increments Quantity instead of duplicating the line.
type CartItem struct {
	ProductID   int             `json:"id"`
	Name        string          `json:"name"`
	UnitPrice   float64         `json:"price"`
	Category    ProductCategory `json:"category"`
	Quantity    int             `json:"quantity"`
	Description string          `json:"description,omitempty"`
}

// FavoriteItem is a favorited product summary, keyed by product id
type FavoriteItem struct {
	ProductID   int             `json:"id"`
	Name        string          `json:"name"`
	UnitPrice   float64         `json:"price"`
	Category    ProductCategory `json:"category"`
	Description string          `json:"description,omitempty"`
}

// CustomerInfo carries the checkout form fields into order creation
type CustomerInfo struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
	DeliveryTier  string `json:"delivery_tier,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// User represents a registered customer
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UserRecord is the persisted shape of a user. The hash lives only in the
// user table serialization, never in API responses.
type UserRecord struct {
	User
	PasswordHash string `json:"password_hash"`
}
