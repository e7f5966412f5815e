package domain

// Product is a catalog entry. ImageURL is the primary image; Images is
// the full display set (main image plus gallery), filled in by the
// catalog service, never stored directly.
type Product struct {
	ID          string   `db:"id" json:"id"`
	Name        string   `db:"name" json:"name"`
	Description string   `db:"description" json:"description"`
	Price       float64  `db:"price" json:"price"`
	Category    string   `db:"category" json:"category"`
	IsFeatured  bool     `db:"is_featured" json:"is_featured"`
	IsNew       bool     `db:"is_new" json:"is_new"`
	IsLuxury    bool     `db:"is_luxury" json:"is_luxury"`
	ImageURL    string   `db:"image_url" json:"image_url"`
	CreatedAt   string   `db:"created_at" json:"created_at"`
	Images      []string `db:"-" json:"images"`
}

// ProductImage is one gallery row. Name is a denormalized copy of the
// product's name at insertion time.
type ProductImage struct {
	ID        int64  `db:"id" json:"id"`
	ProductID string `db:"product_id" json:"product_id"`
	ImageURL  string `db:"image_url" json:"image_url"`
	Name      string `db:"name" json:"name"`
}

// Contact is a contact-form submission. Rows are immutable after
// creation. Phone is nullable.
type Contact struct {
	ID        string  `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Email     string  `db:"email" json:"email"`
	Phone     *string `db:"phone" json:"phone,omitempty"`
	Message   string  `db:"message" json:"message"`
	CreatedAt string  `db:"created_at" json:"created_at"`
}

// ContactSummary is the admin listing shape with phone stripped.
type ContactSummary struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Email     string `db:"email" json:"email"`
	Message   string `db:"message" json:"message"`
	CreatedAt string `db:"created_at" json:"created_at"`
}
