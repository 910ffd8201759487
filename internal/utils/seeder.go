package utils

import (
	"fmt"
	mathrand "math/rand"
	"time"

	"github.com/AjayKumbham/ctrl-plus-blog/internal/models"
)

const DefaultNumPosts = 25

// DemoTitlePrefix marks seeded posts so the clear subcommand can find them.
const DemoTitlePrefix = "Demo Post"

var demoCategories = []string{"go", "web", "databases", "tooling", "opinion"}

var demoTags = []string{"gin", "gorm", "postgres", "redis", "rest", "testing", "deployment"}

func pickSome(r *mathrand.Rand, values []string, max int) []string {
	n := 1 + r.Intn(max)
	picked := make([]string, 0, n)
	seen := map[string]bool{}
	for len(picked) < n {
		v := values[r.Intn(len(values))]
		if !seen[v] {
			seen[v] = true
			picked = append(picked, v)
		}
	}
	return picked
}

// GenerateDemoPosts builds create requests for seeding. Roughly two thirds
// are published; the rest stay drafts so the drafts listing has data too.
func GenerateDemoPosts(numPosts int) []models.CreateBlogPostRequest {
	r := mathrand.New(mathrand.NewSource(time.Now().UnixNano()))

	requests := make([]models.CreateBlogPostRequest, 0, numPosts)
	for i := 1; i <= numPosts; i++ {
		excerpt := fmt.Sprintf("A short excerpt for demo post number %d.", i)
		requests = append(requests, models.CreateBlogPostRequest{
			Title:       fmt.Sprintf("%s %d", DemoTitlePrefix, i),
			Content:     fmt.Sprintf("This is the generated body of demo post number %d. It exists so listings, search and pagination have something to chew on.", i),
			Excerpt:     &excerpt,
			Categories:  pickSome(r, demoCategories, 2),
			Tags:        pickSome(r, demoTags, 3),
			IsPublished: r.Intn(3) != 0,
		})
	}
	return requests
}
