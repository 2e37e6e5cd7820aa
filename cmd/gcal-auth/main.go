// gcal-auth authorizes Google Calendar access for an OAuth desktop client
// and saves the token used by the calendar mirror.
//
// Usage:
//
//	go run ./cmd/gcal-auth [-credentials google-credentials.json] [-token token.json]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"smart-todo/pkg/gcalendar"
)

func main() {
	credsPath := flag.String("credentials", "google-credentials.json", "OAuth desktop app credentials file")
	tokenPath := flag.String("token", gcalendar.DefaultTokenPath, "where to save the token")
	flag.Parse()

	data, err := os.ReadFile(*credsPath)
	if err != nil {
		log.Fatalf("read credentials file %q: %v", *credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		log.Fatalf("parse credentials: %v\n%q must be an OAuth desktop app credentials file.", err, *credsPath)
	}

	fmt.Println("1. Open this URL and sign in with the Google account that owns the calendar:")
	fmt.Println()
	fmt.Println(config.AuthCodeURL("smart-todo", oauth2.AccessTypeOffline))
	fmt.Println()
	fmt.Print("2. Paste the authorization code and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("read authorization code: %v", err)
	}

	tok, err := config.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("exchange authorization code: %v", err)
	}

	if err := gcalendar.SaveToken(*tokenPath, tok); err != nil {
		log.Fatalf("save token: %v", err)
	}
	fmt.Printf("\nToken saved to %s. Set google_calendar.token_path if you moved it, then restart the API.\n", *tokenPath)
}
