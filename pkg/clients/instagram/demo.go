package instagram

import (
	"fmt"
	"math/rand"
	"time"

	"socialscope/pkg/models"
)

var demoMediaTypes = []string{"IMAGE", "VIDEO", "CAROUSEL_ALBUM"}

var demoCaptions = []string{
	"Beautiful sunset today! #photography #nature",
	"New recipe tried! #cooking #foodie",
	"Weekend vibes #weekend #relaxation",
	"Coffee and books #coffeetime #reading",
	"Workout complete! #fitness #health",
	"Amazing concert last night! #music #concert",
	"Travel memories #travel #adventure",
	"Friends gathering #friends #goodtimes",
	"Art inspiration #art #creativity",
	"Morning routine #morning #mindfulness",
}

// DemoData fabricates a profile and twenty recent media posts, one per day
// going back from now, for running the pipeline without Graph API access.
func DemoData() (*models.InstagramUser, []models.InstagramMedia) {
	user := &models.InstagramUser{
		ID:          "demo_user_id",
		Username:    "demo_user",
		AccountType: "PERSONAL",
		MediaCount:  50,
	}

	now := time.Now()
	media := make([]models.InstagramMedia, 0, 20)
	for i := 0; i < 20; i++ {
		postedAt := now.AddDate(0, 0, -i).Add(-time.Duration(rand.Intn(24)) * time.Hour)
		media = append(media, models.InstagramMedia{
			ID:            fmt.Sprintf("demo_media_%d", i),
			MediaType:     demoMediaTypes[rand.Intn(len(demoMediaTypes))],
			MediaURL:      fmt.Sprintf("https://example.com/demo_image_%d.jpg", i),
			ThumbnailURL:  fmt.Sprintf("https://example.com/demo_thumb_%d.jpg", i),
			Permalink:     fmt.Sprintf("https://instagram.com/p/demo_%d", i),
			Caption:       demoCaptions[rand.Intn(len(demoCaptions))],
			Timestamp:     postedAt.UTC().Format("2006-01-02T15:04:05-0700"),
			LikeCount:     10 + rand.Intn(491),
			CommentsCount: rand.Intn(51),
		})
	}

	return user, media
}
