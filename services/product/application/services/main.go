package services

import (
	"github.com/Douglascrc/AutoFlex/pkg/app"
	"github.com/Douglascrc/AutoFlex/pkg/cache"
	"github.com/Douglascrc/AutoFlex/services/product/infrastructure/persistence/postgres"
	materialpg "github.com/Douglascrc/AutoFlex/services/rawmaterial/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Product *ProductService
}

// New wires all product application services with infrastructure from the
// Application container. The raw material repository is shared read-only for
// attach checks and the producibility query.
func New(a *app.Application) *Services {
	products := postgres.NewProductRepository(a.Db, a.EventBus)
	bom := postgres.NewBOMRepository(a.Db)
	materials := materialpg.NewRawMaterialRepository(a.Db, a.EventBus)
	productCache := cache.NewProductCache(a.Redis)
	return &Services{
		Product: NewProductService(products, bom, materials, productCache),
	}
}
