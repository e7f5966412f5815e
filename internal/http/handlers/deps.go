package handlers

import (
	"luxelane/internal/repos"
	"luxelane/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	ProductHandler *ProductHandler
	ContactHandler *ContactHandler
	PageHandler    *PageHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	prodRepo := repos.NewProductRepo(db)
	contactRepo := repos.NewContactRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo)
	contactSvc := services.NewContactService(contactRepo)

	return &Deps{
		ProductHandler: &ProductHandler{Catalog: catalogSvc},
		ContactHandler: &ContactHandler{Contact: contactSvc},
		PageHandler:    &PageHandler{},
	}
}
