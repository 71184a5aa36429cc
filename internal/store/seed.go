package store

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	"easyapply-engine/internal/domain"
)

var (
	seedCompanies = []string{"Google", "Microsoft", "Amazon", "Apple", "Meta", "Netflix", "Tesla", "Spotify", "Airbnb", "Uber"}
	seedTitles    = []string{"Software Engineer", "Backend Developer", "Full Stack Developer", "Frontend Developer", "DevOps Engineer"}
	seedLocations = []string{"Remote", "San Francisco, CA", "New York, NY", "Seattle, WA", "Austin, TX", "Boston, MA"}
	seedLevels    = []string{"Junior", "Mid-Level", "Senior"}
	seedJobTypes  = []string{"Full-time", "Contract", "Internship"}
)

// SeedApplication inserts one synthetic record so the UI and export paths can
// be exercised without driving a browser.
func SeedApplication(ctx context.Context, db *sql.DB) (domain.Application, error) {
	status := "successful"
	if rand.Float64() <= 0.1 {
		status = "failed"
	}

	app := domain.Application{
		Title:     fmt.Sprintf("%s - %s", seedTitles[rand.Intn(len(seedTitles))], seedLevels[rand.Intn(len(seedLevels))]),
		Company:   seedCompanies[rand.Intn(len(seedCompanies))],
		Location:  seedLocations[rand.Intn(len(seedLocations))],
		Salary:    fmt.Sprintf("$%dK - $%dK", 80+rand.Intn(100), 120+rand.Intn(130)),
		Status:    status,
		URL:       fmt.Sprintf("https://www.linkedin.com/jobs/view/%d", 1000000+rand.Intn(9000000)),
		AppliedAt: time.Now().UTC().Format(time.RFC3339),
		Keywords:  "software engineer, python, javascript",
		JobType:   seedJobTypes[rand.Intn(len(seedJobTypes))],
	}

	id, err := InsertApplication(ctx, db, app)
	if err != nil {
		return domain.Application{}, err
	}
	app.ID = id
	return app, nil
}
