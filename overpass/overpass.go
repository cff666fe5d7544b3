// Package overpass fetches vector features from the Overpass API and
// turns them into categorized feature lists.
package overpass

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/ashesandaether/worldbuilder/geo"
)

const DefaultServer = "https://overpass-api.de/api/interpreter"

const userAgent = "AshesAndAether-WorldBuilder/0.1"

// Overpass rate-limits aggressively; a handful of spaced retries is
// usually enough to get through.
const (
	maxRetries = 3
	retryDelay = 5 * time.Second
)

type Client struct {
	Server string
	HTTP   *http.Client
}

func NewClient() *Client {
	return &Client{
		Server: DefaultServer,
		HTTP: &http.Client{
			Timeout: 180 * time.Second,
		},
	}
}

// Element is one raw Overpass element: a node with coordinates or a
// way with node references.
type Element struct {
	Type  string            `json:"type"`
	ID    int64             `json:"id"`
	Lat   float64           `json:"lat,omitempty"`
	Lon   float64           `json:"lon,omitempty"`
	Nodes []int64           `json:"nodes,omitempty"`
	Tags  map[string]string `json:"tags,omitempty"`
}

type Response struct {
	Elements []Element `json:"elements"`
}

// Query builds the Overpass QL query for everything the world builder
// consumes around a center point.
func Query(center geo.Point, radiusMeters float64) string {
	around := fmt.Sprintf("(around:%.0f,%f,%f)", radiusMeters, center.Lat, center.Lon)

	var b strings.Builder
	b.WriteString("[out:json][timeout:120];\n(\n")
	for _, selector := range []string{
		`way["building"]`,
		`relation["building"]`,
		`way["highway"]`,
		`way["landuse"]`,
		`relation["landuse"]`,
		`way["natural"]`,
		`relation["natural"]`,
		`way["water"]`,
		`way["waterway"]`,
		`relation["water"]`,
		`way["amenity"]`,
		`node["amenity"]`,
	} {
		b.WriteString("  " + selector + around + ";\n")
	}
	b.WriteString(");\nout body;\n>;\nout skel qt;\n")
	return b.String()
}

// Fetch runs a query against the server, retrying on transport errors
// and rate-limit responses.
func (c *Client) Fetch(query string) (*Response, error) {
	var resp *Response

	op := func() error {
		r, err := c.fetchOnce(query)
		if err != nil {
			return err
		}
		resp = r
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(retryDelay), maxRetries)
	err := backoff.Retry(op, policy)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) fetchOnce(query string) (*Response, error) {
	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequest("POST", c.Server, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)

	httpResp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != 200 {
		return nil, fmt.Errorf("Unexpected status code: %d", httpResp.StatusCode)
	}

	data, err := ioutil.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	resp := &Response{}
	err = json.Unmarshal(data, resp)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	return resp, nil
}
