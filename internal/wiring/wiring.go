// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/whencanirun/internal/adapters/config"
	_ "go.trai.ch/whencanirun/internal/adapters/dist"
	_ "go.trai.ch/whencanirun/internal/adapters/fs"
	_ "go.trai.ch/whencanirun/internal/adapters/logger"
	_ "go.trai.ch/whencanirun/internal/adapters/requirements"
	// Register app nodes.
	_ "go.trai.ch/whencanirun/internal/app"
)
