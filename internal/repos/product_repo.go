package repos

import (
	"luxelane/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) ListAll() ([]domain.Product, error) {
	// Non-nil so an empty catalog serializes as [] rather than null.
	out := []domain.Product{}
	err := r.db.Select(&out, `
	  SELECT id, name, COALESCE(description,'') AS description, price,
	         COALESCE(category,'') AS category, is_featured, is_new, is_luxury,
	         COALESCE(image_url,'') AS image_url, created_at
	  FROM products
	  ORDER BY datetime(created_at) DESC, id
	`)
	return out, err
}

func (r *ProductRepo) ListFeatured(limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 5
	}
	out := []domain.Product{}
	err := r.db.Select(&out, `
	  SELECT id, name, COALESCE(description,'') AS description, price,
	         COALESCE(category,'') AS category, is_featured, is_new, is_luxury,
	         COALESCE(image_url,'') AS image_url, created_at
	  FROM products
	  WHERE is_featured = 1
	  ORDER BY datetime(created_at) DESC, id
	  LIMIT ?
	`, limit)
	return out, err
}

// Get returns sql.ErrNoRows when the id is unknown.
func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT id, name, COALESCE(description,'') AS description, price,
	         COALESCE(category,'') AS category, is_featured, is_new, is_luxury,
	         COALESCE(image_url,'') AS image_url, created_at
	  FROM products
	  WHERE id = ?
	`, id)
	return p, err
}

// Gallery returns a product's gallery URLs in insertion order.
func (r *ProductRepo) Gallery(productID string) ([]string, error) {
	var urls []string
	err := r.db.Select(&urls, `
	  SELECT image_url FROM product_images WHERE product_id = ? ORDER BY id
	`, productID)
	return urls, err
}

// GalleryByProduct returns gallery URLs keyed by product id, each list in
// insertion order. Used by the list endpoints to aggregate in one query.
func (r *ProductRepo) GalleryByProduct(ids []string) (map[string][]string, error) {
	out := make(map[string][]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	query, args, err := sqlx.In(`
	  SELECT product_id, image_url FROM product_images
	  WHERE product_id IN (?)
	  ORDER BY id
	`, ids)
	if err != nil {
		return nil, err
	}
	var rows []struct {
		ProductID string `db:"product_id"`
		ImageURL  string `db:"image_url"`
	}
	if err := r.db.Select(&rows, query, args...); err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ProductID] = append(out[row.ProductID], row.ImageURL)
	}
	return out, nil
}

// Create inserts the product row and its gallery in one transaction, so a
// failed image insert never leaves a half-created product behind.
func (r *ProductRepo) Create(p domain.Product, gallery []string) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
	  INSERT INTO products(id, name, description, price, category, is_featured, is_new, is_luxury, image_url)
	  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Name, p.Description, p.Price, p.Category, p.IsFeatured, p.IsNew, p.IsLuxury, p.ImageURL); err != nil {
		return err
	}
	if err := insertGallery(tx, p.ID, p.Name, gallery); err != nil {
		return err
	}
	return tx.Commit()
}

// Update overwrites all scalar fields and replaces the gallery wholesale,
// in one transaction. Returns false when the id does not exist.
func (r *ProductRepo) Update(p domain.Product, gallery []string) (bool, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
	  UPDATE products SET
	    name = ?, description = ?, price = ?, category = ?,
	    is_featured = ?, is_new = ?, is_luxury = ?, image_url = ?
	  WHERE id = ?
	`, p.Name, p.Description, p.Price, p.Category, p.IsFeatured, p.IsNew, p.IsLuxury, p.ImageURL, p.ID)
	if err != nil {
		return false, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return false, nil
	}
	if _, err := tx.Exec(`DELETE FROM product_images WHERE product_id = ?`, p.ID); err != nil {
		return false, err
	}
	if err := insertGallery(tx, p.ID, p.Name, gallery); err != nil {
		return false, err
	}
	return true, tx.Commit()
}

// Delete removes the product row; gallery rows go with it via the
// ON DELETE CASCADE rule. Returns false when nothing was deleted.
func (r *ProductRepo) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func insertGallery(tx *sqlx.Tx, productID, name string, urls []string) error {
	for _, u := range urls {
		if _, err := tx.Exec(`
		  INSERT INTO product_images(product_id, image_url, name) VALUES (?, ?, ?)
		`, productID, u, name); err != nil {
			return err
		}
	}
	return nil
}
