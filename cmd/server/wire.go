//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"ravelpix.com/photo-download-gateway/app/domain"
	"ravelpix.com/photo-download-gateway/app/infrastructure"
	"ravelpix.com/photo-download-gateway/app/interfaces/http"
	"ravelpix.com/photo-download-gateway/app/interfaces/http/routes"
)

func CreateApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		infrastructure.InfrastructureProvider,
		domain.ServiceProvider,
		routes.RouteProvider,
		http.NewHttpServer,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
