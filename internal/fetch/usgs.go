// Package fetch downloads earthquake events from the USGS fdsnws catalog.
package fetch

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/hawkarabdulhaq/quakescope/internal/model"
)

// DefaultEndpoint is the USGS earthquake catalog query API.
const DefaultEndpoint = "https://earthquake.usgs.gov/fdsnws/event/1/query"

// Query selects the events to download.
type Query struct {
	Start        string // YYYY-MM-DD
	End          string // YYYY-MM-DD
	MinMagnitude float64
}

// Client fetches earthquake events as GeoJSON and converts them to records.
type Client struct {
	Endpoint   string
	HTTPClient *http.Client
}

// NewClient returns a Client against the given endpoint, or the USGS
// catalog when endpoint is empty.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		Endpoint:   endpoint,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// geoJSON mirrors the subset of the USGS response we consume. The geometry
// coordinates are [longitude, latitude, depth].
type geoJSON struct {
	Features []struct {
		Properties struct {
			Time  *int64   `json:"time"` // epoch milliseconds
			Mag   *float64 `json:"mag"`
			Place string   `json:"place"`
		} `json:"properties"`
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Events queries the catalog and returns one record per event.
func (c *Client) Events(ctx context.Context, q Query) ([]model.Record, error) {
	params := url.Values{}
	params.Set("format", "geojson")
	params.Set("starttime", q.Start)
	params.Set("endtime", q.End)
	params.Set("minmagnitude", strconv.FormatFloat(q.MinMagnitude, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query USGS catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("USGS catalog returned %s", resp.Status)
	}

	var data geoJSON
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}
	if len(data.Features) == 0 {
		return nil, fmt.Errorf("no earthquake events found for %s..%s (min magnitude %g)", q.Start, q.End, q.MinMagnitude)
	}

	recs := make([]model.Record, 0, len(data.Features))
	for _, f := range data.Features {
		rec := model.Record{
			Magnitude: math.NaN(),
			Depth:     math.NaN(),
			Latitude:  math.NaN(),
			Longitude: math.NaN(),
			Place:     f.Properties.Place,
		}
		if f.Properties.Time != nil {
			rec.Time = time.UnixMilli(*f.Properties.Time).UTC()
			rec.RawTime = rec.Time.Format("2006-01-02 15:04:05")
		}
		if f.Properties.Mag != nil {
			rec.Magnitude = *f.Properties.Mag
		}
		if len(f.Geometry.Coordinates) >= 3 {
			rec.Longitude = f.Geometry.Coordinates[0]
			rec.Latitude = f.Geometry.Coordinates[1]
			rec.Depth = f.Geometry.Coordinates[2]
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// csvHeader is the column order the dataset loader expects back.
var csvHeader = []string{"time", "magnitude", "place", "longitude", "latitude", "depth"}

// WriteCSV writes the records to path in the downloadable dataset format.
// Missing numeric values are written as empty cells.
func WriteCSV(path string, recs []model.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range recs {
		row := []string{
			r.RawTime,
			csvFloat(r.Magnitude),
			r.Place,
			csvFloat(r.Longitude),
			csvFloat(r.Latitude),
			csvFloat(r.Depth),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func csvFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
