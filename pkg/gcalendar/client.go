package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// DefaultTokenPath is where cmd/gcal-auth stores the desktop-app OAuth token.
const DefaultTokenPath = "token.json"

// Client creates events in one Google account.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile reads a service account key or OAuth desktop
// credentials. The latter also need the token saved at tokenPath.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	ts, err := tokenSource(ctx, credentialsJSON, tokenPath)
	if err != nil {
		return nil, err
	}
	return newClient(ctx, option.WithTokenSource(ts))
}

// NewClientFromHTTP uses an already authorised HTTP client. Extra options
// such as option.WithEndpoint are passed to the service.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, opts ...option.ClientOption) (*Client, error) {
	return newClient(ctx, append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)...)
}

func newClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

func tokenSource(ctx context.Context, credentialsJSON []byte, tokenPath string) (oauth2.TokenSource, error) {
	if jwt, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope); err == nil {
		return jwt.TokenSource(ctx), nil
	}

	conf, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}
	if tokenPath == "" {
		tokenPath = DefaultTokenPath
	}
	tok, err := LoadToken(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("oauth credentials need a saved token, run gcal-auth: %w", err)
	}
	return conf.TokenSource(ctx, tok), nil
}

// LoadToken reads a token written by SaveToken.
func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tok := new(oauth2.Token)
	if err := json.Unmarshal(data, tok); err != nil {
		return nil, fmt.Errorf("decode token %s: %w", path, err)
	}
	return tok, nil
}

// SaveToken writes tok to path with owner-only permissions.
func SaveToken(path string, tok *oauth2.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// CreateEvent inserts req as a timed event.
func (c *Client) CreateEvent(ctx context.Context, req EventRequest) (*Event, error) {
	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}
	end := req.Start.Add(req.duration())

	created, err := c.service.Events.Insert(calendarID, req.toAPI(end)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("insert event into %s: %w", calendarID, err)
	}
	return &Event{ID: created.Id, Link: created.HtmlLink, Start: req.Start, End: end}, nil
}

func (r EventRequest) duration() time.Duration {
	if r.Duration <= 0 {
		return DefaultDuration
	}
	return r.Duration
}

func (r EventRequest) toAPI(end time.Time) *calendar.Event {
	zone := r.Start.Location().String()
	if zone == "Local" {
		zone = ""
	}
	ev := &calendar.Event{
		Summary:     r.Title,
		Description: r.Notes,
		Start:       &calendar.EventDateTime{DateTime: r.Start.Format(time.RFC3339), TimeZone: zone},
		End:         &calendar.EventDateTime{DateTime: end.Format(time.RFC3339), TimeZone: zone},
	}
	if r.PopupMinutes == nil {
		return ev
	}

	overrides := make([]*calendar.EventReminder, 0, len(r.PopupMinutes))
	for _, m := range r.PopupMinutes {
		// Minutes=0 would be dropped as a zero value without ForceSendFields.
		overrides = append(overrides, &calendar.EventReminder{Method: "popup", Minutes: m, ForceSendFields: []string{"Minutes"}})
	}
	ev.Reminders = &calendar.EventReminders{
		UseDefault:      false,
		Overrides:       overrides,
		ForceSendFields: []string{"UseDefault"},
	}
	return ev
}
