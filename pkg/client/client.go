// Package client is a small read-only API client for the portfolio backend.
// It fetches the public collections and is what the site frontend builds on.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Project mirrors the project resource as served by the API.
type Project struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LongDescription string    `json:"longDescription,omitempty"`
	Technologies    []string  `json:"technologies"`
	GithubURL       string    `json:"githubUrl"`
	LiveURL         string    `json:"liveUrl,omitempty"`
	Image           string    `json:"image,omitempty"`
	Featured        bool      `json:"featured"`
	Order           int       `json:"order"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Skill mirrors the skill resource as served by the API.
type Skill struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Level     int       `json:"level"`
	Icon      string    `json:"icon,omitempty"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Education mirrors the education resource as served by the API.
type Education struct {
	ID          string     `json:"id"`
	Institution string     `json:"institution"`
	Degree      string     `json:"degree"`
	Field       string     `json:"field,omitempty"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location,omitempty"`
	Order       int        `json:"order"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Client talks to a portfolio API instance. The zero value is not usable;
// construct with New.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the API rooted at baseURL, e.g.
// "https://example.com/api". A nil httpClient falls back to a client with a
// 10 second timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Projects lists all projects. When featured is non-nil the list is filtered
// on the featured flag.
func (c *Client) Projects(ctx context.Context, featured *bool) ([]Project, error) {
	q := url.Values{}
	if featured != nil {
		q.Set("featured", strconv.FormatBool(*featured))
	}
	var out []Project
	if err := c.get(ctx, "/projects", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Skills lists all skills, optionally filtered by category.
func (c *Client) Skills(ctx context.Context, category string) ([]Skill, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	var out []Skill
	if err := c.get(ctx, "/skills", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SkillCategories lists the distinct skill categories in use.
func (c *Client) SkillCategories(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.get(ctx, "/skills/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Education lists all education records.
func (c *Client) Education(ctx context.Context) ([]Education, error) {
	var out []Education
	if err := c.get(ctx, "/education", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
