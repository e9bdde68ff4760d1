package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/jasonlvhit/gocron"
	"github.com/peterbourgon/ff"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/nav-tools/api"
	"github.com/a-bouts/nav-tools/land"
	"github.com/a-bouts/nav-tools/voyage"
	"github.com/a-bouts/nav-tools/xmpp"
)

func main() {

	fs := flag.NewFlagSet("nav-tools", flag.ExitOnError)
	var (
		port         = fs.Int("port", 8888, "listen port")
		debug        = fs.Bool("debug", false, "debug logs")
		cpuprofile   = fs.Bool("cpuprofile", false, "profile route requests")
		voyagesFile  = fs.String("voyages", "", "voyages yaml file")
		voyagesEvery = fs.Uint64("voyages-refresh", 0, "voyages reload period in minutes, 0 to load once")
		landFile     = fs.String("land", "", "land mask file")
		landStep     = fs.Float64("land-step", 360.0/43200.0, "land mask cell size in degrees")
		xmppHost     = fs.String("xmpp-host", "", "")
		xmppJid      = fs.String("xmpp-jid", "", "")
		xmppPassword = fs.String("xmpp-password", "", "")
		xmppTo       = fs.String("xmpp-to", "", "")
		_            = fs.String("config", "", "config file")
	)
	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarNoPrefix(),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	); err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	x := &xmpp.Xmpp{Config: xmpp.Config{Host: *xmppHost, Jid: *xmppJid, Password: *xmppPassword, To: *xmppTo}}
	if !x.Enabled() {
		log.Info("Xmpp notifications disabled")
	}

	var l *land.Land
	if *landFile != "" {
		log.Info("Load lands")
		var err error
		l, err = land.Load(*landFile, *landStep)
		if err != nil {
			log.WithError(err).Fatal("Cannot load lands")
		}
	}

	voyages, err := voyage.NewStore(*voyagesFile)
	if err != nil {
		log.WithError(err).Fatal("Cannot load voyages")
	}

	if *voyagesFile != "" && *voyagesEvery > 0 {
		s := gocron.NewScheduler()
		s.Every(*voyagesEvery).Minutes().Do(voyages.Reload)
		go s.Start()
		log.WithField("minutes", *voyagesEvery).Info("Voyages reload scheduled")
	}

	router := api.InitServer(*cpuprofile, l, voyages, x)

	h := handlers.RecoveryHandler(handlers.PrintRecoveryStack(*debug))(router)
	h = handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(h)

	addr := fmt.Sprintf(":%d", *port)
	log.WithField("addr", addr).Info("Start server")
	log.Fatal(http.ListenAndServe(addr, h))
}
