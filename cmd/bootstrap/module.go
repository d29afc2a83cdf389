package bootstrap

import (
	"salones-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module is the production dependency graph. The e2e harness builds its
// own variant with the config and DB providers swapped out.
var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
