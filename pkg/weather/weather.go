package weather

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"math"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"github.com/kmaina/sokoboard/internal/utils"
)

const DefaultBaseURL = "https://api.open-meteo.com"

// Nairobi, the default farm location.
const (
	DefaultLatitude  = -1.2921
	DefaultLongitude = 36.8219
)

// Report is the current conditions summary shown on the dashboard.
type Report struct {
	TemperatureC    int     `json:"temperature_c"`
	Description     string  `json:"description"`
	PrecipitationMM float64 `json:"precipitation_mm"`
}

var weatherCodes = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Foggy",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
}

// Describe maps a WMO weather code to a label. Unmapped codes are
// "Unknown", never an error.
func Describe(code int) string {
	if desc, ok := weatherCodes[code]; ok {
		return desc
	}
	return "Unknown"
}

// Client fetches current conditions. Like the rate fetcher it is
// best-effort: no retries, failures reported only through the ok flag.
type Client struct {
	http      *retryablehttp.Client
	baseURL   string
	latitude  float64
	longitude float64
}

func NewClient(baseURL string, latitude, longitude float64) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if latitude == 0 && longitude == 0 {
		latitude, longitude = DefaultLatitude, DefaultLongitude
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = 0
	rc.Logger = stdlog.New(io.Discard, "", 0)
	rc.HTTPClient.Timeout = 10 * time.Second

	return &Client{http: rc, baseURL: baseURL, latitude: latitude, longitude: longitude}
}

// Current returns the conditions report, or ok=false when the upstream
// failed or the response lacked a current_weather block.
func (c *Client) Current(ctx context.Context) (Report, bool) {
	url := fmt.Sprintf(
		"%s/v1/forecast?latitude=%.4f&longitude=%.4f&current_weather=true&daily=temperature_2m_max,temperature_2m_min,precipitation_sum&timezone=Africa/Nairobi",
		c.baseURL, c.latitude, c.longitude,
	)
	req, err := retryablehttp.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		utils.Log.Debugf("weather request build failed: %v", err)
		return Report{}, false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		utils.Log.Debug("Weather data unavailable")
		return Report{}, false
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.Log.Debug("Weather data unavailable")
		return Report{}, false
	}

	current := gjson.GetBytes(body, "current_weather")
	if !current.Exists() {
		utils.Log.Debug("weather response missing current_weather")
		return Report{}, false
	}

	report := Report{
		TemperatureC: int(math.Round(current.Get("temperature").Float())),
		Description:  Describe(int(current.Get("weathercode").Int())),
	}
	if sums := gjson.GetBytes(body, "daily.precipitation_sum").Array(); len(sums) > 0 {
		report.PrecipitationMM = sums[0].Float()
	}
	return report, true
}
