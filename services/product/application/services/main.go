package services

import (
	"github.com/ghuser/labelpress/pkg/app"
	"github.com/ghuser/labelpress/pkg/cache"
	"github.com/ghuser/labelpress/services/label/domain/barcode"
	"github.com/ghuser/labelpress/services/label/infrastructure/registry"
	"github.com/ghuser/labelpress/services/product/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Product *ProductService
}

// New wires all product application services with infrastructure from the
// Application container. The internal-code generator shares its registry
// backend with the label service: Redis when SHARED_CODE_REGISTRY is set,
// in-process otherwise.
func New(a *app.Application) *Services {
	repo := postgres.NewProductRepository(a.Db, a.EventBus)
	productCache := cache.NewProductCache(a.Redis)

	var reg barcode.Registry
	if a.Config.SharedCodeRegistry {
		reg = registry.NewRedis(a.Redis)
	} else {
		reg = registry.Default()
	}
	minter := barcode.NewGenerator(reg)

	return &Services{
		Product: NewProductService(repo, productCache, minter, a.Config.InternalCodePrefix),
	}
}
