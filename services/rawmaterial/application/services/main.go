package services

import (
	"github.com/Douglascrc/AutoFlex/pkg/app"
	"github.com/Douglascrc/AutoFlex/pkg/cache"
	"github.com/Douglascrc/AutoFlex/services/rawmaterial/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	RawMaterial *RawMaterialService
}

// New wires all raw material application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewRawMaterialRepository(a.Db, a.EventBus)
	materialCache := cache.NewMaterialCache(a.Redis)
	return &Services{
		RawMaterial: NewRawMaterialService(repo, materialCache),
	}
}
