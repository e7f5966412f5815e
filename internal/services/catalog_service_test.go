package services_test

import (
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"luxelane/internal/repos"
	"luxelane/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	db.SetMaxOpenConns(1)
	schema := `
	PRAGMA foreign_keys = ON;
	CREATE TABLE products(
	  id TEXT PRIMARY KEY,
	  name TEXT NOT NULL,
	  description TEXT,
	  price NUMERIC NOT NULL,
	  category TEXT,
	  is_featured INTEGER NOT NULL DEFAULT 0,
	  is_new INTEGER NOT NULL DEFAULT 0,
	  is_luxury INTEGER NOT NULL DEFAULT 0,
	  image_url TEXT,
	  created_at TEXT DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE product_images(
	  id INTEGER PRIMARY KEY AUTOINCREMENT,
	  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
	  image_url TEXT NOT NULL,
	  name TEXT
	);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return db
}

func newCatalog(t *testing.T) (*services.CatalogService, *sqlx.DB) {
	t.Helper()
	db := memdb(t)
	return services.NewCatalogService(repos.NewProductRepo(db)), db
}

func galleryRows(t *testing.T, db *sqlx.DB, productID string) []string {
	t.Helper()
	var urls []string
	if err := db.Select(&urls, `SELECT image_url FROM product_images WHERE product_id = ? ORDER BY id`, productID); err != nil {
		t.Fatal(err)
	}
	return urls
}

func TestListImageFallbacks(t *testing.T) {
	svc, _ := newCatalog(t)

	bare, err := svc.Create(services.ProductInput{Name: "Bare", Price: 10})
	if err != nil {
		t.Fatalf("create bare: %v", err)
	}
	mainOnly, err := svc.Create(services.ProductInput{Name: "Main only", Price: 20, ImageURL: "/img/main.jpg"})
	if err != nil {
		t.Fatalf("create main-only: %v", err)
	}

	ps, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	byID := map[string][]string{}
	for _, p := range ps {
		byID[p.ID] = p.Images
	}

	if imgs := byID[bare.ID]; len(imgs) != 0 {
		t.Fatalf("bare product images = %v, want empty", imgs)
	}
	if imgs := byID[mainOnly.ID]; len(imgs) != 1 || imgs[0] != "/img/main.jpg" {
		t.Fatalf("main-only images = %v, want [/img/main.jpg]", imgs)
	}
}

func TestCreateDeduplicatesGallery(t *testing.T) {
	svc, db := newCatalog(t)

	// Main image repeated in the images array must yield a single row.
	p, err := svc.Create(services.ProductInput{
		Name:     "Watch",
		Price:    100,
		ImageURL: "/img/a.jpg",
		Images:   []string{"/img/a.jpg", "/img/b.jpg", ""},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	rows := galleryRows(t, db, p.ID)
	if len(rows) != 2 || rows[0] != "/img/a.jpg" || rows[1] != "/img/b.jpg" {
		t.Fatalf("gallery rows = %v, want [/img/a.jpg /img/b.jpg]", rows)
	}
	if len(p.Images) != 2 || p.Images[0] != "/img/a.jpg" || p.Images[1] != "/img/b.jpg" {
		t.Fatalf("images = %v, want main first then gallery", p.Images)
	}
}

func TestGetMergesMainAndGallery(t *testing.T) {
	svc, db := newCatalog(t)

	p, err := svc.Create(services.ProductInput{Name: "Bag", Price: 50, ImageURL: "/img/x.jpg", Images: []string{"/img/y.jpg"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	// A legacy gallery row duplicating the main image must not surface twice.
	if _, err := db.Exec(`INSERT INTO product_images(product_id, image_url, name) VALUES (?, '/img/x.jpg', 'Bag')`, p.ID); err != nil {
		t.Fatal(err)
	}

	got, err := svc.Get(p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Images) != 2 || got.Images[0] != "/img/x.jpg" || got.Images[1] != "/img/y.jpg" {
		t.Fatalf("images = %v, want [/img/x.jpg /img/y.jpg]", got.Images)
	}
}

func TestGetUnknownProduct(t *testing.T) {
	svc, _ := newCatalog(t)
	if _, err := svc.Get("nope"); !errors.Is(err, services.ErrProductNotFound) {
		t.Fatalf("err = %v, want ErrProductNotFound", err)
	}
}

func TestUpdateReplacesGalleryWholesale(t *testing.T) {
	svc, db := newCatalog(t)

	p, err := svc.Create(services.ProductInput{Name: "Scarf", Price: 30, ImageURL: "/img/old.jpg", Images: []string{"/img/stale.jpg"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Update(p.ID, services.ProductInput{
		Name:     "Scarf v2",
		Price:    35,
		ImageURL: "/img/new.jpg",
		Images:   []string{"/img/new.jpg", "/img/extra.jpg"},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != "Scarf v2" || got.Price != 35 {
		t.Fatalf("scalar fields not overwritten: %+v", got)
	}

	rows := galleryRows(t, db, p.ID)
	if len(rows) != 2 || rows[0] != "/img/new.jpg" || rows[1] != "/img/extra.jpg" {
		t.Fatalf("gallery rows = %v, want stale rows gone and new set in order", rows)
	}
}

func TestUpdateUnknownProduct(t *testing.T) {
	svc, db := newCatalog(t)
	if _, err := svc.Update("nope", services.ProductInput{Name: "X", Price: 1}); !errors.Is(err, services.ErrProductNotFound) {
		t.Fatalf("err = %v, want ErrProductNotFound", err)
	}
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM product_images`); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("update of unknown id wrote %d gallery rows", n)
	}
}

func TestDeleteCascadesGallery(t *testing.T) {
	svc, db := newCatalog(t)

	p, err := svc.Create(services.ProductInput{Name: "Ring", Price: 900, ImageURL: "/img/r.jpg", Images: []string{"/img/r2.jpg"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rows := galleryRows(t, db, p.ID); len(rows) != 0 {
		t.Fatalf("gallery rows survived the cascade: %v", rows)
	}
	if err := svc.Delete(p.ID); !errors.Is(err, services.ErrProductNotFound) {
		t.Fatalf("second delete err = %v, want ErrProductNotFound", err)
	}
}

func TestFeaturedLimit(t *testing.T) {
	svc, _ := newCatalog(t)
	for i := 0; i < 7; i++ {
		if _, err := svc.Create(services.ProductInput{Name: "F", Price: 1, IsFeatured: true}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	ps, err := svc.Featured()
	if err != nil {
		t.Fatalf("featured: %v", err)
	}
	if len(ps) != 5 {
		t.Fatalf("featured returned %d products, want 5", len(ps))
	}
}
