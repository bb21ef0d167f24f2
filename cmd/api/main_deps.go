package main

import (
	"context"
	"log"

	apihandler "backend/internal/adapter/http/handler"
	"backend/internal/app"
)

// main.go で使用する依存の差し替えポイントを集約したファイル

type containerFactory func(ctx context.Context) (*app.Container, error)

type routerFactory func(platformHandler *apihandler.PlatformHandler, generateHandler *apihandler.GenerateHandler, validateHandler *apihandler.ValidateHandler) routerRunner

type routerRunner interface {
	Run(...string) error
}

type containerCloser func(container *app.Container) error

var (
	newContainer containerFactory = app.NewContainer
	newRouter    routerFactory    = func(platformHandler *apihandler.PlatformHandler, generateHandler *apihandler.GenerateHandler, validateHandler *apihandler.ValidateHandler) routerRunner {
		return apihandler.NewRouter(platformHandler, generateHandler, validateHandler)
	}
	closeContainer containerCloser = func(container *app.Container) error {
		return container.Close()
	}
	runFunc = run
	fatalf  = log.Fatalf
)
