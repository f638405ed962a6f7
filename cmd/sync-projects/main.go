package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bikalpokharel/portfolio-backend/config"
	"github.com/bikalpokharel/portfolio-backend/database"
	"github.com/bikalpokharel/portfolio-backend/services"
)

var (
	username string
	token    string
	force    bool
)

var rootCmd = &cobra.Command{
	Use:   "sync-projects",
	Short: "Sync portfolio projects from GitHub repositories",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			fmt.Println("No .env file found, using existing environment variables")
		}

		cfg := config.New()

		db, err := database.Open(cfg)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("migrate database schema: %w", err)
		}

		fmt.Printf("Syncing projects from GitHub user: %s\n", username)

		repos, err := services.FetchUserRepos(username, token)
		if err != nil {
			return fmt.Errorf("fetch repositories: %w", err)
		}
		fmt.Printf("Found %d repositories\n", len(repos))

		syncer := services.NewRepoSyncer(database.New(db).ProjectRepo())

		// A token widens visibility to private repositories
		stats, err := syncer.SyncBatch(repos, token != "", force)
		if err != nil {
			return fmt.Errorf("sync projects: %w", err)
		}

		fmt.Printf("Successfully synced projects from GitHub: %d created, %d updated, %d skipped\n",
			stats.Created, stats.Updated, stats.Skipped)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&username, "username", "bikalpokharel", "GitHub username to fetch repositories from")
	rootCmd.Flags().StringVar(&token, "token", "", "GitHub personal access token (optional, for private repos)")
	rootCmd.Flags().BoolVar(&force, "force", false, "Force update existing projects")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
