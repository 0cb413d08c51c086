// Command adduser creates an account that can sign in to the HR records app.
//
//	adduser -username anna -password s3cret -role HR
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"hr-records/internal/app"
	"hr-records/internal/auth"
	"hr-records/internal/config"
	"hr-records/internal/rbac"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	username := flag.String("username", "", "login name")
	password := flag.String("password", "", "password, stored as a bcrypt hash")
	role := flag.String("role", rbac.RoleViewer, "ADMIN, HR or VIEWER")
	flag.Parse()

	if *username == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	user, err := app.AddUser(context.Background(), cfg, auth.CreateUserRequest{
		Username: *username,
		Password: *password,
		Role:     *role,
	})
	if err != nil {
		logger.Fatal("create user failed", zap.Error(err))
	}
	fmt.Printf("created user %s (%s) with role %s\n", user.Username, user.ID, user.Role)
}
