// Command verify-sync reconciles the email_verified flag on auth
// accounts against the verification token table. Accounts holding a
// consumed token but still flagged unverified are fixed up; with -dry-run
// the tool only reports them.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"alumni-connect.backend/internal/config"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "report mismatches without fixing them")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.Database.URL())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("database not reachable: %v", err)
	}

	fixed, err := run(db, *dryRun)
	if err != nil {
		log.Fatalf("verify-sync failed: %v", err)
	}

	if *dryRun {
		fmt.Printf("%d account(s) would be marked verified\n", fixed)
	} else {
		fmt.Printf("%d account(s) marked verified\n", fixed)
	}
	os.Exit(0)
}

func run(db *sql.DB, dryRun bool) (int64, error) {
	if dryRun {
		var count int64
		err := db.QueryRow(`
			SELECT COUNT(DISTINCT a.id)
			FROM auth_accounts a
			JOIN email_verifications v ON v.account_id = a.id
			WHERE v.verified_at IS NOT NULL AND a.email_verified = false`).Scan(&count)
		return count, err
	}

	res, err := db.Exec(`
		UPDATE auth_accounts a
		SET email_verified = true
		FROM email_verifications v
		WHERE v.account_id = a.id
		  AND v.verified_at IS NOT NULL
		  AND a.email_verified = false`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
