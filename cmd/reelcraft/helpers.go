package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// parseDimensions parses a "WIDTHxHEIGHT" string such as "1920x1080".
func parseDimensions(value string) (int, int, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	parts := strings.Split(value, "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid dimensions %q: expected WIDTHxHEIGHT", value)
	}
	width, errW := strconv.Atoi(strings.TrimSpace(parts[0]))
	height, errH := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errW != nil || errH != nil || width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("invalid dimensions %q: expected positive integers", value)
	}
	return width, height, nil
}

// secondsToDuration converts a seconds value from a CLI flag to a duration.
func secondsToDuration(seconds float64) time.Duration {
	if seconds <= 0 {
		return 0
	}
	return time.Duration(seconds * float64(time.Second))
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
