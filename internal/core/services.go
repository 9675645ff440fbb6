package core

import (
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

type Services struct {
	Catalog        *CatalogService
	Search         *SearchService
	Ledger         *LedgerService
	Reconciliation *ReconciliationService
}

func NewServices(db DB, clock clockwork.Clock, logger zerolog.Logger) *Services {
	catalog := NewCatalogService(db)
	return &Services{
		Catalog:        catalog,
		Search:         NewSearchService(catalog, logger),
		Ledger:         NewLedgerService(db, clock, logger),
		Reconciliation: NewReconciliationService(db),
	}
}
