package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-BarberBooking/internal/config"
	adminUserRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/adminuser"
	authService "github.com/m04kA/SMC-BarberBooking/internal/service/auth"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

// create-admin заводит учетную запись администратора панели.
// Пароль берется из флага или из переменной ADMIN_PASSWORD
func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password (or ADMIN_PASSWORD env)")
	flag.Parse()

	if *password == "" {
		*password = os.Getenv("ADMIN_PASSWORD")
	}
	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New("", cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	// Сессии не нужны: сервис используется только для создания пользователя
	svc := authService.NewService(
		adminUserRepo.NewRepository(db),
		nil,
		time.Duration(cfg.Auth.SessionTTL)*time.Second,
		cfg.Auth.BcryptCost,
		log,
	)

	user, err := svc.CreateAdmin(ctx, *email, *password)
	if err != nil {
		log.Fatal("Failed to create admin %s: %v", *email, err)
	}

	log.Info("Admin created: id=%s, email=%s", user.ID, user.Email)
}
