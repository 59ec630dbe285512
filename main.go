package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/safehaven-app/safehaven-api/api"
	"github.com/safehaven-app/safehaven-api/fixture"
	"github.com/safehaven-app/safehaven-api/session"
	"github.com/safehaven-app/safehaven-api/store"
)

var (
	server *api.Server
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("safehaven")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("data.dir", "./data")
	viper.SetDefault("session.file", "./data/session.json")
}

func main() {
	var configFile string

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown mobile api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	// Load seed collections
	data, err := fixture.Load(viper.GetString("data.dir"))
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Infof(
		"Loaded seed data: %d users, %d requests, %d donations",
		len(data.Users), len(data.Requests), len(data.Donations))

	// Session directory with its durable slot
	slot := session.NewFileSlot(viper.GetString("session.file"))
	sessions := session.NewDirectory(data.Users, slot)
	log.WithField("prefix", "init").Info("Initialized session directory")

	// In-memory record store
	supportStore := store.NewSupportStore(data)

	// Init http server
	server = api.NewServer(supportStore, sessions)
	log.WithField("prefix", "init").Info("Initialized http server")

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
