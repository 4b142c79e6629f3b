package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/withmandala/go-log"

	"github.com/anshulyadav32/dns-status-api/config"
	"github.com/anshulyadav32/dns-status-api/server"
	"github.com/anshulyadav32/dns-status-api/sqlmodel"
	"github.com/anshulyadav32/dns-status-api/status"
)

// set up a global logger...
// see: https://stackoverflow.com/a/43827612/57626
var logger *log.Logger

func main() {
	logger = log.New(os.Stderr).WithColor()
	status.SetLogger(logger)
	server.SetLogger(logger)

	configFile := flag.String("config", "", "Filename with configuration")
	seed := flag.Bool("seed", false, "Load static sample data and exit")
	domain := flag.String("domain", "", "Run a one-shot status check for this domain and exit")
	owner := flag.String("owner", "", "Owner label for the one-shot status check")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		logger.Fatalf("Fatal error loading configuration: %s", err)
	}

	if *domain != "" {
		runCheck(cfg, *domain, *owner)
		return
	}

	db, err := sqlmodel.OpenDatabase(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logger.Fatalf("Fatal error opening database: %s", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatalf("Error trying to get underlying database connection: %s", err)
	}
	defer sqlDB.Close()
	logger.Infof("Database connection opened driver=%s", cfg.Database.Driver)

	if *seed {
		if err := sqlmodel.Seed(db); err != nil {
			logger.Fatalf("Fatal error seeding database: %s", err)
		}
		logger.Info("Seed data loaded")
		return
	}

	resolver := status.NewDoHResolver(cfg.DoH.Endpoint)
	srv := server.New(cfg, db, resolver)
	if err := srv.Listen(); err != nil {
		logger.Fatalf("Fatal error running server: %s", err)
	}
}

// runCheck prints one live status snapshot to the log, the same
// aggregation the /api/dns/status endpoint performs.
func runCheck(cfg config.TomlConfig, domain, owner string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	aggregator := status.NewAggregator(status.NewDoHResolver(cfg.DoH.Endpoint))
	st := aggregator.Check(ctx, domain, owner)

	logger.Infof("domain=%s reachable=%t records=%d", st.Domain, st.IsReachable, len(st.Records))
	if st.ResponseTime != nil {
		logger.Infof("response time: %dms", *st.ResponseTime)
	}
	for _, r := range st.Records {
		logger.Infof("  %-6s %s -> %s (ttl %d)", r.Type, r.Name, r.Value, r.TTL)
	}
}
