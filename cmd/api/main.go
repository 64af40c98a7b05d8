package main

import (
	"log"
	"os"

	"github.com/agrimarket/marketplace-backend/internal/config"
	"github.com/agrimarket/marketplace-backend/internal/db"
	"github.com/agrimarket/marketplace-backend/internal/model"
	"github.com/agrimarket/marketplace-backend/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	srv := server.New(nil)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	errCh := make(chan error, 1)

	go func() {
		log.Printf("starting server on %s", addr)
		errCh <- srv.Start(addr)
	}()

	// Attach the DB after the server is up so /api/health can report a
	// disconnected database instead of the process failing to boot.
	go func() {
		cfg, err := config.Load()
		if err != nil {
			log.Printf("config load error: %v", err)
			return
		}
		conn, err := db.Connect(cfg)
		if err != nil {
			log.Printf("db connect error: %v", err)
			return
		}
		srv.SetDB(conn)
		if err := conn.AutoMigrate(
			&model.User{},
			&model.Product{},
			&model.Payment{},
			&model.Dispute{},
			&model.GraduateProfile{},
			&model.PlatformConfig{},
			&model.AuditLog{},
		); err != nil {
			log.Printf("auto migrate error: %v", err)
		}
	}()

	if err := <-errCh; err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
