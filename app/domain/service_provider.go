package domain

import (
	"github.com/google/wire"
	"ravelpix.com/photo-download-gateway/app/domain/healthcheck"
	"ravelpix.com/photo-download-gateway/app/domain/notification"
	"ravelpix.com/photo-download-gateway/app/domain/photo"
	"ravelpix.com/photo-download-gateway/app/domain/resize"
)

var ServiceProvider = wire.NewSet(
	photo.NewService,
	notification.NewService,
	resize.NewService,
	healthcheck.NewService,
	wire.Bind(new(resize.Notifier), new(*notification.Service)),
)
