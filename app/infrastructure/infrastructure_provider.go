package infrastructure

import (
	"github.com/google/wire"
	"ravelpix.com/photo-download-gateway/app/domain/photo"
	"ravelpix.com/photo-download-gateway/app/infrastructure/cache"
	"ravelpix.com/photo-download-gateway/app/infrastructure/objectstore"
	"ravelpix.com/photo-download-gateway/app/infrastructure/secrets"
	"ravelpix.com/photo-download-gateway/app/utils/httpclients/photoapi"
)

var InfrastructureProvider = wire.NewSet(
	objectstore.NewMinioStore,
	secrets.NewSSMStore,
	cache.NewCacheService,
	photoapi.NewClient,
	wire.Bind(new(objectstore.Store), new(*objectstore.MinioStore)),
	wire.Bind(new(secrets.Store), new(*secrets.SSMStore)),
	wire.Bind(new(photo.API), new(*photoapi.Client)),
)
