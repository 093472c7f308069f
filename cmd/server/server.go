package main

import (
	"context"

	"github.com/mileusna/crontab"
	"ravelpix.com/photo-download-gateway/app/domain/healthcheck"
	"ravelpix.com/photo-download-gateway/app/interfaces/http"
	"ravelpix.com/photo-download-gateway/app/utils/httpclients/photoapi"
	"ravelpix.com/photo-download-gateway/config/environment_variables"
)

type Application struct {
	HttpServer         *http.HttpServer
	HealthcheckService *healthcheck.HealthcheckCrontabService
}

func (application *Application) Start() {
	if err := application.HttpServer.Run(); err != nil {
		panic(err)
	}
}

func init() {
	environment_variables.EnvironmentVariables.LoadFromEnv()
	photoapi.Init()
}

func main() {
	application, err := CreateApplication(context.Background())
	if err != nil {
		panic(err)
	}
	ctab := crontab.New()
	application.HealthcheckService.Start(context.Background(), ctab)
	application.Start()
}
