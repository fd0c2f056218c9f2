package main

import (
	"auction-settlement/internal/clock"
	"auction-settlement/internal/config"
	model "auction-settlement/internal/models"
	"auction-settlement/internal/notifier"
	"auction-settlement/internal/server"
	"auction-settlement/utils"
	"time"
)

func main() {
	cfg := config.Load()
	utils.SetLevel(cfg.LogLevel)

	app := server.NewApp(clock.SystemClock{}, notifier.NewLogEmailSender(cfg.MailFrom), cfg.CloseAfter)

	prepopulateAuctions(app)

	if cfg.JobsInterval > 0 {
		go runJobs(app, cfg.JobsInterval)
	}

	router := server.SetupRouter(app.Service)

	utils.Info("starting auction settlement server", map[string]any{
		"port":          cfg.Port,
		"close_after":   cfg.CloseAfter.String(),
		"jobs_interval": cfg.JobsInterval.String(),
	})
	if err := router.Run(cfg.Port); err != nil {
		utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
	}
}

// runJobs closes expired auctions and then generates their payments on every tick
func runJobs(app *server.App, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		app.Closer.Close()
		if _, err := app.Generator.Generate(); err != nil {
			utils.Error("scheduled payment generation failed", map[string]any{"error": err.Error()})
		}
	}
}

// prepopulateAuctions adds sample auctions to the in-memory repo
func prepopulateAuctions(app *server.App) {
	now := time.Now().UTC()
	auctions := []model.Auction{
		{AuctionID: "auction1", Description: "Tv", CreatedAt: now.AddDate(0, 0, -10)},
		{AuctionID: "auction2", Description: "Fridge", CreatedAt: now.AddDate(0, 0, -1)},
		{AuctionID: "auction3", Description: "Video game", CreatedAt: now},
	}

	for _, a := range auctions {
		app.Auctions.AddAuction(a)
	}
	if err := app.Auctions.RecordBid("auction1", model.Bid{BidID: utils.GenerateID(), UserID: "user1", Amount: 2000, CreatedAt: now}); err != nil {
		utils.Warn("failed to seed bid", map[string]any{"error": err.Error()})
	}
}
