package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// One connection: the FK pragma is per-connection, and a pooled
	// ":memory:" DSN would otherwise open a fresh empty database per
	// connection.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed a demo catalog if the DB is empty (idempotent; safe on every start)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Products
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  price NUMERIC NOT NULL CHECK (price >= 0),
  category TEXT,
  is_featured INTEGER NOT NULL DEFAULT 0,
  is_new INTEGER NOT NULL DEFAULT 0,
  is_luxury INTEGER NOT NULL DEFAULT 0,
  image_url TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at);
CREATE INDEX IF NOT EXISTS idx_products_featured   ON products(is_featured);

-- Gallery rows. Product deletion removes them through the cascade rule;
-- no handler issues the delete itself.
CREATE TABLE IF NOT EXISTS product_images(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  image_url TEXT NOT NULL,
  name TEXT
);
CREATE INDEX IF NOT EXISTS idx_product_images_product ON product_images(product_id);

-- Contact submissions (immutable after insert)
CREATE TABLE IF NOT EXISTS contacts(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone TEXT,
  message TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_contacts_created_at ON contacts(created_at);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo catalog")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO products(id, name, description, price, category, is_featured, is_new, is_luxury, image_url) VALUES
	  ('lx-watch-chrono', 'Meridian Chronograph', 'Hand-finished steel chronograph with a sapphire caseback.', 4890.00, 'watches', 1, 0, 1, '/static/img/watch-chrono-front.svg'),
	  ('lx-bag-verona',   'Verona Leather Tote',  'Full-grain calfskin tote, saddle-stitched.',                1250.00, 'bags',    1, 1, 1, '/static/img/bag-verona-front.svg'),
	  ('lx-scarf-silk',   'Firenze Silk Scarf',   'Hand-rolled silk twill, archival print.',                    280.00, 'accessories', 0, 1, 0, '/static/img/scarf-silk.svg')`)
	tx.MustExec(`INSERT INTO product_images(product_id, image_url, name) VALUES
	  ('lx-watch-chrono', '/static/img/watch-chrono-front.svg', 'Meridian Chronograph'),
	  ('lx-watch-chrono', '/static/img/watch-chrono-back.svg',  'Meridian Chronograph'),
	  ('lx-bag-verona',   '/static/img/bag-verona-front.svg',   'Verona Leather Tote'),
	  ('lx-bag-verona',   '/static/img/bag-verona-detail.svg',  'Verona Leather Tote')`)
	return tx.Commit()
}
