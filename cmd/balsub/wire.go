//go:build wireinject

package main

import (
	"github.com/google/wire"
)

func InitApp(args *Args) (*App, error) {
	panic(wire.Build(Wires))
}
