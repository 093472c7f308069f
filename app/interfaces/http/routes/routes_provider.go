package routes

import (
	"github.com/google/wire"
	"ravelpix.com/photo-download-gateway/app/domain/photo"
	"ravelpix.com/photo-download-gateway/app/domain/resize"
	v1 "ravelpix.com/photo-download-gateway/app/interfaces/http/routes/v1"
	"ravelpix.com/photo-download-gateway/app/interfaces/http/routes/v1/photos"
)

var RouteProvider = wire.NewSet(
	photos.NewPhotosAPI,
	v1.NewV1Route,
	wire.Bind(new(photos.Locator), new(*photo.Service)),
	wire.Bind(new(photos.Filler), new(*resize.Service)),
)
