package main

import (
	"flag"
	_ "net/http/pprof"

	"github.com/ojohpeters/ecocoin-back/api/router"
	"github.com/ojohpeters/ecocoin-back/app"
	"github.com/ojohpeters/ecocoin-back/config"
	"github.com/ojohpeters/ecocoin-back/logger/xzap"
	"github.com/ojohpeters/ecocoin-back/service/svc"
	service "github.com/ojohpeters/ecocoin-back/service/v1"
)

const defaultConfigPath = "./config/config.toml"

func main() {
	conf := flag.String("conf", defaultConfigPath, "conf file path")
	flag.Parse()

	c, err := config.UnmarshalConfig(*conf)
	if err != nil {
		panic(err)
	}

	serverCtx, err := svc.NewServiceContext(c)
	if err != nil {
		panic(err)
	}
	defer xzap.Sync()

	r := router.NewRouter(serverCtx)

	// Watch treasury transfers so claim fees are known before claims arrive.
	go service.StartFeeMonitor(serverCtx)

	app, err := app.NewPlatform(c, r, serverCtx)
	if err != nil {
		panic(err)
	}
	app.Start()
}
