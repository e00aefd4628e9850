package registrations_fx

import (
	"os"

	"go.uber.org/fx"
	"yellbook/internal/services"
	"yellbook/pkg/filestore"
)

var Module = fx.Provide(
	provideFileStore, provideRegistrationService)

func provideFileStore() *filestore.Store {
	dir := os.Getenv("DATA_DIR")
	if dir == "" {
		dir = "data"
	}
	return filestore.New(dir)
}

func provideRegistrationService(store *filestore.Store) services.RegistrationServiceInterface {
	return services.NewRegistrationService(store)
}
