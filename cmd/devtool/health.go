package main

import (
	"fmt"
	"net/http"
	"os"
	"time"
)

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check liveness and readiness of a running server"
}

func (c *HealthCheckCommand) Run(args []string) error {
	apiURL := apiURLFromEnv()
	PrintHeader(fmt.Sprintf("Health Check (%s)", apiURL))

	client := &http.Client{Timeout: 5 * time.Second}
	for _, path := range []string{"/healthz", "/readyz"} {
		start := time.Now()
		if err := checkEndpoint(client, apiURL+path); err != nil {
			PrintError("%s failed: %v", path, err)
			return err
		}

		if duration := time.Since(start); duration > time.Second {
			PrintWarning("%s slow response time (%v)", path, duration)
		} else {
			PrintSuccess("%s passed (response time: %v)", path, duration)
		}
	}
	return nil
}

func checkEndpoint(client *http.Client, url string) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status code %d", resp.StatusCode)
	}
	return nil
}

func apiURLFromEnv() string {
	if u := os.Getenv("API_URL"); u != "" {
		return u
	}
	return defaultAPIURL
}
