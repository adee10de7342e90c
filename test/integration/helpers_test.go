package integration

import (
	"os"
	"testing"

	"github.com/spf13/afero"
)

// Test configuration from environment or defaults
type TestConfig struct {
	// NTP leap-seconds.list, shipped with most tzdata installations
	LeapList string
	// tz database leapseconds file
	LeapSeconds string
}

func getTestConfig() TestConfig {
	return TestConfig{
		LeapList:    getEnv("TEST_LEAP_LIST", "/usr/share/zoneinfo/leap-seconds.list"),
		LeapSeconds: getEnv("TEST_LEAPSECONDS", "/usr/share/zoneinfo/leapseconds"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// skipIfFileUnavailable skips the test if path cannot be read
func skipIfFileUnavailable(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	if ok, _ := afero.Exists(fs, path); !ok {
		t.Skipf("Skipping: %s not available", path)
	}
}

// logTestStart logs the start of a test
func logTestStart(t *testing.T, area, scenario string) {
	t.Helper()
	t.Logf("=== %s: %s ===", area, scenario)
}

// requireNoError fails the test if err is not nil
func requireNoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: %v", msg, err)
	}
}

// requireTrue fails the test if condition is false
func requireTrue(t *testing.T, condition bool, msg string) {
	t.Helper()
	if !condition {
		t.Fatalf("Expected true: %s", msg)
	}
}

// requireEqual fails the test if expected != actual
func requireEqual(t *testing.T, expected, actual interface{}, msg string) {
	t.Helper()
	if expected != actual {
		t.Fatalf("%s: expected %v, got %v", msg, expected, actual)
	}
}
