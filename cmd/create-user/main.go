package main

import (
	"flag"
	"log"

	"go-mof-tracker/internal/model"
	"go-mof-tracker/pkg/database"

	"github.com/joho/godotenv"
)

// Small operator CLI to register a picker or requester account without going
// through the HTTP API.
func main() {
	username := flag.String("username", "", "login username")
	email := flag.String("email", "", "email address")
	fullName := flag.String("name", "", "full name")
	role := flag.String("role", string(model.RolePicking), "role: ADMIN, PICKING or REQUESTER")
	password := flag.String("password", "", "initial password")
	flag.Parse()

	if *username == "" || *email == "" || *password == "" {
		log.Fatal("❌ -username, -email and -password are required")
	}
	if !model.Role(*role).Valid() {
		log.Fatalf("❌ Unknown role %q", *role)
	}

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()

	// 3. Create user
	user := &model.User{
		Username: *username,
		Email:    *email,
		FullName: *fullName,
		Role:     model.Role(*role),
		IsActive: true,
	}
	if err := user.SetPassword(*password); err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}

	if err := db.Create(user).Error; err != nil {
		log.Fatalf("❌ Failed to create user: %v", err)
	}

	log.Printf("✅ Success! User %s (%s) created with role %s", user.Username, user.Email, user.Role)
}
