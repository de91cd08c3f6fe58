package main

import (
	"github.com/mybasket/basket-svc/internal/app"
	"github.com/mybasket/basket-svc/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
