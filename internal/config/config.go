package config

import (
	"os"
	"strings"
)

// Config holds process settings loaded from environment variables.
type Config struct {
	GitHubToken string
	APIURL      string
	DebugMode   bool
	S3Bucket    string
	S3ObjectKey string
	AWSRegion   string
}

// FromEnvironment creates a Config from environment variables.
func FromEnvironment() Config {
	debug := os.Getenv("DEBUG")
	debugMode := debug != "" && debug != "0" && strings.ToLower(debug) != "false"

	return Config{
		GitHubToken: os.Getenv("GITHUB_TOKEN"),
		APIURL:      os.Getenv("GITHUB_API_URL"),
		DebugMode:   debugMode,
		S3Bucket:    os.Getenv("S3_BUCKET_NAME"),
		S3ObjectKey: os.Getenv("S3_OBJECT_KEY"),
		AWSRegion:   os.Getenv("AWS_REGION"),
	}
}
