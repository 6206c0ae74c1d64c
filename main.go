package main

import (
	"Recipe-Hub/cmd/config"
	migration "Recipe-Hub/cmd/database/migrate"
	"Recipe-Hub/cmd/database/seed"
	"Recipe-Hub/internal/utils"
	"Recipe-Hub/internal/utils/logger"
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	migrate := flag.Bool("migrate", false, "run database migrations before serving")
	seedData := flag.Bool("seed", false, "migrate, load demo data and exit")
	flag.Parse()

	utils.LoadConfig()
	appLog, err := logger.New(utils.GetConfig("APP_ENV"))
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer appLog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.ConnectDB()
	if err != nil {
		appLog.Fatal("database unavailable", "error", err)
	}

	if *migrate || *seedData {
		if err := migration.Migrate(db); err != nil {
			appLog.Fatal("migration failed", "error", err)
		}
		appLog.Info("migration complete")
	}
	if *seedData {
		if err := seed.Run(ctx, db, appLog); err != nil {
			appLog.Fatal("seeding failed", "error", err)
		}
		return
	}

	rdb, err := config.ConnectRedis(ctx)
	if err != nil {
		appLog.Fatal("redis unavailable", "error", err)
	}

	app, err := config.NewApp(db, rdb, appLog)
	if err != nil {
		appLog.Fatal("failed to build app", "error", err)
	}

	go func() {
		addr := ":" + utils.GetConfig("APP_PORT")
		appLog.Info("listening", "addr", addr)
		if err := app.Listen(addr); err != nil {
			appLog.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	appLog.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		appLog.Error("shutdown failed", "error", err)
	}
	if rdb != nil {
		_ = rdb.Close()
	}
}
