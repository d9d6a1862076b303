package main

import (
	"context"
	"database/sql"

	"doppelkopf/internal/ports/nakama"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule is the Nakama plugin entrypoint for the Doppelkopf server
// module. It proxies initialization to the nakama adapter package.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	return nakama.InitModule(ctx, logger, db, nk, initializer)
}

// main is unused: Nakama loads this package as a shared-object plugin and
// calls InitModule directly. It exists so the package builds as a normal
// main package too.
func main() {}
