package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AjayKumbham/ctrl-plus-blog/database"
	"github.com/AjayKumbham/ctrl-plus-blog/internal/models"
	"github.com/AjayKumbham/ctrl-plus-blog/internal/repository"
	"github.com/AjayKumbham/ctrl-plus-blog/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	numPosts := seedCmd.Int("posts", utils.DefaultNumPosts, "Number of demo posts to create")
	authorID := seedCmd.Uint("author", 1, "Author ID to own the seeded posts")

	clearCmd := flag.NewFlagSet("clear", flag.ExitOnError)
	clearAuthorID := clearCmd.Uint("author", 0, "Only clear demo posts owned by this author (0 means all)")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "seed":
		seedCmd.Parse(os.Args[2:])
		database.ConnectDatabase()
		if err := database.MigrateDatabase(); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		if err := seedPosts(*numPosts, *authorID); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}

	case "clear":
		clearCmd.Parse(os.Args[2:])
		database.ConnectDatabase()
		if err := clearPosts(*clearAuthorID); err != nil {
			log.Fatalf("Clear failed: %v", err)
		}

	default:
		printHelp()
		os.Exit(1)
	}
}

// seedPosts goes through the repository so every demo post gets a properly
// uniquified slug (Demo Post 1 → demo-post-1, collisions → demo-post-1-1, …).
func seedPosts(numPosts int, authorID uint) error {
	repo := repository.NewBlogPostRepository(database.DB)

	created := 0
	for _, req := range utils.GenerateDemoPosts(numPosts) {
		if _, err := repo.Create(&req, authorID); err != nil {
			return fmt.Errorf("failed to create %q: %w", req.Title, err)
		}
		created++
	}

	log.Printf("Seeded %d demo posts for author %d", created, authorID)
	return nil
}

func clearPosts(authorID uint) error {
	query := database.DB.Where("title LIKE ?", utils.DemoTitlePrefix+" %")
	if authorID != 0 {
		query = query.Where("author_id = ?", authorID)
	}

	result := query.Delete(&models.BlogPost{})
	if result.Error != nil {
		return result.Error
	}

	log.Printf("Deleted %d demo posts", result.RowsAffected)
	return nil
}

func printHelp() {
	fmt.Println("Usage:")
	fmt.Println("  seed  -posts N -author ID    Create N demo blog posts owned by author ID")
	fmt.Println("  clear -author ID             Delete demo posts (all authors when ID is 0)")
}
