package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	cfg "github.com/mirefield/discord-quote/config"
	statushttp "github.com/mirefield/discord-quote/http"
	"github.com/mirefield/discord-quote/integrations/pluralkit"
	"github.com/mirefield/discord-quote/logger/dlog"
	"github.com/mirefield/discord-quote/platform"
)

var config *cfg.Config = &cfg.Config{}

func main() {
	configPath := flag.String("config", "config.toml", "path to the config file")
	flag.Parse()

	config.Load(*configPath)
	pluralkit.Configure(config.PluralKit.BaseURL, config.PluralKit.Token)

	platform.Setup(config)
	go statushttp.Setup(config.Status.Port)

	dlog.Info("Bot is now running. Press CTRL-C to exit.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	platform.Close()
	dlog.Info("Graceful shutdown")
}
