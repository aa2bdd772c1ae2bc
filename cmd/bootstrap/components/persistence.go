package components

import (
	"hotelier-hub/internal/infra/uow"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)
