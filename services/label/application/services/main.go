package services

import (
	"github.com/ghuser/labelpress/pkg/app"
	"github.com/ghuser/labelpress/pkg/cache"
	"github.com/ghuser/labelpress/services/label/domain/barcode"
	"github.com/ghuser/labelpress/services/label/domain/render"
	"github.com/ghuser/labelpress/services/label/infrastructure/registry"
	"github.com/ghuser/labelpress/services/product/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Label *LabelService
}

// New wires all label application services with infrastructure from the
// Application container. The registry backend is Redis when
// SHARED_CODE_REGISTRY is set (multi-instance deployments), a process-wide
// in-memory set otherwise.
func New(a *app.Application) *Services {
	var reg barcode.Registry
	if a.Config.SharedCodeRegistry {
		reg = registry.NewRedis(a.Redis)
	} else {
		reg = registry.Default()
	}

	renderer := render.NewRenderer(render.CurrencyFormatter{
		Symbol:       a.Config.CurrencySymbol,
		GroupSep:     a.Config.CurrencyGroupSep,
		SymbolBefore: a.Config.CurrencySymbolBefore,
	})

	return &Services{
		Label: NewLabelService(
			renderer,
			barcode.NewGenerator(reg),
			a.Config.InternalCodePrefix,
			cache.NewDocumentCache(a.Redis),
			a.EventBus,
			postgres.NewProductRepository(a.Db, a.EventBus),
			a.Logger,
		),
	}
}
