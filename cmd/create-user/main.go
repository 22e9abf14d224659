// CLI tool to create a user with a bcrypt-hashed password, a random auth
// token, and an empty profile row ready for the BMR calculator.
// Usage: go run ./cmd/create-user
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type newUser struct {
	Username string
	Email    string
	Password string
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		os.Exit(1)
	}

	u, err := promptUser(bufio.NewReader(os.Stdin), os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, os.Getenv("DB_URL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	userID, token, err := createUser(ctx, conn, u)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nUser created successfully!\n")
	fmt.Printf("  ID:         %d\n", userID)
	fmt.Printf("  Username:   %s\n", u.Username)
	fmt.Printf("  Auth Token: %s\n", token)
}

// promptUser reads username, email and password, one per line.
func promptUser(r *bufio.Reader, w io.Writer) (newUser, error) {
	var u newUser
	fields := []struct {
		label string
		dst   *string
	}{
		{"Username", &u.Username},
		{"Email", &u.Email},
		{"Password", &u.Password},
	}
	for _, f := range fields {
		fmt.Fprintf(w, "%s: ", f.label)
		line, err := r.ReadString('\n')
		if err != nil && err != io.EOF {
			return newUser{}, fmt.Errorf("read %s: %w", strings.ToLower(f.label), err)
		}
		*f.dst = strings.TrimSpace(line)
		if *f.dst == "" {
			return newUser{}, fmt.Errorf("%s is required", strings.ToLower(f.label))
		}
	}
	return u, nil
}

// createUser inserts the user and an empty profile in one transaction.
func createUser(ctx context.Context, conn *pgx.Conn, u newUser) (int, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, "", fmt.Errorf("hash password: %w", err)
	}
	token := uuid.NewString()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return 0, "", fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	var userID int
	err = tx.QueryRow(ctx,
		`INSERT INTO users (username, email, password, auth_token)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		u.Username, u.Email, string(hash), token,
	).Scan(&userID)
	if err != nil {
		return 0, "", fmt.Errorf("create user: %w", err)
	}

	if _, err := tx.Exec(ctx, `INSERT INTO user_profiles (user_id) VALUES ($1)`, userID); err != nil {
		return 0, "", fmt.Errorf("create profile: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, "", fmt.Errorf("commit: %w", err)
	}
	return userID, token, nil
}
