//go:build wireinject
// +build wireinject

package main

import (
	"fxmacro/internal/app"
	"fxmacro/internal/saver"

	"github.com/google/wire"
)

// App holds application dependencies built by Wire.
type App struct {
	Config *app.Config
	Saver  saver.PacketSaver
}

// InitializeApp builds App (Config + PacketSaver) via Wire.
func InitializeApp() (*App, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvidePacketSaver,
		wire.Struct(new(App), "Config", "Saver"),
	)
	return nil, nil
}
