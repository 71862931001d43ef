package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/xezo360hye/DIP392-1337/internal/config"
	"github.com/xezo360hye/DIP392-1337/internal/database"
	"github.com/xezo360hye/DIP392-1337/internal/logger"
	"github.com/xezo360hye/DIP392-1337/internal/model"
	"github.com/xezo360hye/DIP392-1337/internal/repository"
	"github.com/xezo360hye/DIP392-1337/internal/service"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

// Seeds the administrator account. Upserts by login, so re-running is safe.
// Defaults match the development credentials (admin / admin123); use -prompt
// to type a real password instead of passing it on the command line.
func main() {
	var (
		login    string
		password string
		prompt   bool
	)
	flag.StringVar(&login, "login", "admin", "Administrator login")
	flag.StringVar(&password, "password", "admin123", "Administrator password")
	flag.BoolVar(&prompt, "prompt", false, "Read the password interactively instead of from -password")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if prompt {
		fmt.Print("Enter Password: ")
		bytePassword, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			fmt.Println("Error reading password")
			os.Exit(1)
		}
		password = string(bytePassword)
	}

	if login == "" || len(password) < 6 {
		fmt.Println("Error: login is required and password must be at least 6 characters")
		os.Exit(1)
	}

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	adminService := service.NewAdminService(repository.NewAdminRepository(pool))

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	admin := &model.Admin{
		Login:        login,
		PasswordHash: string(hash),
	}

	if err := adminService.Upsert(ctx, admin); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed admin")
	}

	fmt.Printf("Admin '%s' ready with ID: %d\n", admin.Login, admin.ID)
}
