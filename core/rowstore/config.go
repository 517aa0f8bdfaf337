package rowstore

// Config holds configuration for the remote row-store API.
type Config struct {
	// BaseURL is the endpoint of the row-store web API.
	BaseURL string `mapstructure:"base_url" default:""`
	// TimeoutSeconds is the wall-clock timeout per attempt (not cumulative across retries).
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int `mapstructure:"max_retries" default:"2"`
}
