// seed_favorites.go: standalone script to seed a user's favorite locations
// and settings via the baro API.
//
// Usage:
//
//	go run scripts/seed_favorites.go -api http://localhost:8700 -user demo -places places.csv
//
// The places file is CSV: name,lat,lon,country_code (one per line, # comments
// allowed). Without -places a built-in set of Dutch locations is used.
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
)

type favorite struct {
	UserID      string  `json:"user_id"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	CountryCode string  `json:"country_code,omitempty"`
}

type settings struct {
	Language          string   `json:"language"`
	TemperatureUnit   string   `json:"temperature_unit"`
	WindUnit          string   `json:"wind_unit"`
	DefaultActivities []string `json:"default_activities"`
}

var defaultPlaces = []favorite{
	{Name: "Amsterdam", Lat: 52.3728, Lon: 4.8936, CountryCode: "NL"},
	{Name: "Zandvoort", Lat: 52.3713, Lon: 4.5331, CountryCode: "NL"},
	{Name: "Texel", Lat: 53.0546, Lon: 4.7997, CountryCode: "NL"},
	{Name: "Utrecht", Lat: 52.0908, Lon: 5.1222, CountryCode: "NL"},
	{Name: "Maastricht", Lat: 50.8514, Lon: 5.6910, CountryCode: "NL"},
}

func main() {
	apiURL := flag.String("api", "http://localhost:8700", "baro API base URL")
	userID := flag.String("user", "demo", "user id to seed")
	placesPath := flag.String("places", "", "CSV file with name,lat,lon,country_code")
	lang := flag.String("lang", "nl", "default language for the seeded user")
	dryRun := flag.Bool("dry-run", false, "print without posting")
	flag.Parse()

	places := defaultPlaces
	if *placesPath != "" {
		var err error
		places, err = loadPlaces(*placesPath)
		if err != nil {
			log.Fatalf("load places: %v", err)
		}
	}
	log.Printf("seeding %d favorites for user %s", len(places), *userID)

	if *dryRun {
		for _, p := range places {
			log.Printf("would create: %s (%.4f, %.4f)", p.Name, p.Lat, p.Lon)
		}
		return
	}

	for _, p := range places {
		p.UserID = *userID
		if err := post(*apiURL+"/api/v1/locations/favorites", p); err != nil {
			log.Fatalf("create favorite %s: %v", p.Name, err)
		}
		log.Printf("created favorite: %s", p.Name)
	}

	s := settings{
		Language:          *lang,
		TemperatureUnit:   "celsius",
		WindUnit:          "kmh",
		DefaultActivities: []string{"walking", "cycling", "bbq"},
	}
	if err := put(*apiURL+"/api/v1/settings/"+*userID, s); err != nil {
		log.Fatalf("save settings: %v", err)
	}
	log.Printf("saved settings for user %s", *userID)
}

func loadPlaces(path string) ([]favorite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []favorite
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) < 3 {
			return nil, fmt.Errorf("malformed line: %q", line)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("bad lat in %q: %w", line, err)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("bad lon in %q: %w", line, err)
		}
		p := favorite{Name: strings.TrimSpace(parts[0]), Lat: lat, Lon: lon}
		if len(parts) > 3 {
			p.CountryCode = strings.TrimSpace(parts[3])
		}
		out = append(out, p)
	}
	return out, scanner.Err()
}

func post(url string, v interface{}) error {
	return send(http.MethodPost, url, v, http.StatusCreated)
}

func put(url string, v interface{}) error {
	return send(http.MethodPut, url, v, http.StatusOK)
}

func send(method, url string, v interface{}, want int) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != want {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
