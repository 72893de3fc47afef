// Command event-seeder floods a running statistics service with realistic
// activity events. Useful for exercising dashboards and reports against
// non-trivial data.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

var (
	serverURL  = flag.String("server-url", "http://localhost:3005", "statistics service URL")
	count      = flag.Int("count", 200, "number of events to generate")
	users      = flag.Int("users", 20, "size of the simulated user pool")
	interval   = flag.Duration("interval", 50*time.Millisecond, "interval between events")
	eventTypes = flag.String("types", "login,lesson_started,lesson_completed,lesson_cancelled,word_learned", "comma-separated list of event types")
)

func main() {
	flag.Parse()

	gofakeit.Seed(time.Now().UnixNano())

	types := strings.Split(*eventTypes, ",")
	pool := make([]string, *users)
	for i := range pool {
		pool[i] = gofakeit.UUID()
	}

	log.Printf("Starting event seeder:")
	log.Printf("  Server URL: %s", *serverURL)
	log.Printf("  Event count: %d", *count)
	log.Printf("  User pool: %d", *users)
	log.Printf("  Event types: %v", types)

	client := &http.Client{Timeout: 10 * time.Second}

	successCount := 0
	failCount := 0

	for i := 0; i < *count; i++ {
		userID := pool[rand.Intn(len(pool))]
		kind := strings.TrimSpace(types[rand.Intn(len(types))])

		var err error
		if kind == "login" {
			err = recordLogin(client, userID)
		} else {
			err = sendEvent(client, userID, kind)
		}
		if err != nil {
			log.Printf("Failed to send event: %v", err)
			failCount++
		} else {
			successCount++
			if successCount%50 == 0 {
				log.Printf("Progress: %d/%d events sent", successCount, *count)
			}
		}

		if *interval > 0 && i < *count-1 {
			time.Sleep(*interval)
		}
	}

	log.Printf("Seeding complete:")
	log.Printf("  Success: %d events", successCount)
	log.Printf("  Failed: %d events", failCount)
}

func recordLogin(client *http.Client, userID string) error {
	return post(client, "/statistics/login", map[string]interface{}{
		"userId": userID,
	})
}

func sendEvent(client *http.Client, userID, kind string) error {
	return post(client, "/statistics", map[string]interface{}{
		"userId": userID,
		"type":   kind,
		"data":   generatePayload(kind),
	})
}

func generatePayload(kind string) map[string]interface{} {
	switch kind {
	case "lesson_started", "lesson_completed", "lesson_cancelled":
		return map[string]interface{}{
			"lessonId": gofakeit.UUID(),
			"language": gofakeit.LanguageAbbreviation(),
			"teacher":  gofakeit.Username(),
		}
	case "word_learned":
		return map[string]interface{}{
			"word":     gofakeit.Word(),
			"language": gofakeit.LanguageAbbreviation(),
		}
	default:
		return map[string]interface{}{
			"device": gofakeit.RandomString([]string{"web", "mobile", "tablet"}),
			"ip":     gofakeit.IPv4Address(),
		}
	}
}

func post(client *http.Client, path string, payload map[string]interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := client.Post(*serverURL+path, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}
	return nil
}
