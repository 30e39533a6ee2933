package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"solar-dispatch/internal/domain/user"
	"solar-dispatch/internal/infra"
	"solar-dispatch/internal/infra/db"
	"solar-dispatch/internal/infra/repository"
	"solar-dispatch/internal/pkg/config"
	"solar-dispatch/internal/pkg/password"

	"github.com/kelseyhightower/envconfig"
)

// Creates a staff account. The password is read from ADDUSER_PASSWORD so it
// stays out of shell history.
//
//	ADDUSER_PASSWORD=... go run ./cmd/adduser -email team1@example.com -role construction_team -name 北城施工队
func main() {
	email := flag.String("email", "", "login email")
	role := flag.String("role", "", "admin, dispatch_manager, construction_team or warehouse")
	name := flag.String("name", "", "display name")
	flag.Parse()

	if err := run(*email, *role, *name, os.Getenv("ADDUSER_PASSWORD")); err != nil {
		slog.Error("Failed to create user", "error", err)
		os.Exit(1)
	}
}

func run(emailArg, roleArg, name, pass string) error {
	email, err := user.NewEmail(emailArg)
	if err != nil {
		return err
	}
	role, err := user.NewRole(roleArg)
	if err != nil {
		return err
	}
	if _, err := user.NewPassword(pass); err != nil {
		return err
	}
	hash, err := password.HashPassword(pass)
	if err != nil {
		return err
	}
	u, err := user.NewUser(email, hash, role, name)
	if err != nil {
		return err
	}

	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, closePool, err := db.Connect(ctx, dbCfg)
	if err != nil {
		return err
	}
	defer closePool()

	if err := repository.NewUserRepository(pool).Create(ctx, u); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			slog.Warn("User already exists", "email", email.Value())
			return nil
		}
		return err
	}

	slog.Info("User created", "id", u.ID(), "email", email.Value(), "role", role.String())
	return nil
}
