package handlers

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/wonny/spacexdash/backend/internal/contracts"
)

// parseSelector reads site, low and high from query parameters.
// Missing values fall back to defaults; clamping happens in the service.
func parseSelector(q url.Values, defaults contracts.SelectorState) (contracts.SelectorState, error) {
	state := defaults

	if site := strings.TrimSpace(q.Get("site")); site != "" {
		state.Site = site
	}

	low, err := parseBound(q, "low", defaults.Payload.Low)
	if err != nil {
		return state, err
	}
	high, err := parseBound(q, "high", defaults.Payload.High)
	if err != nil {
		return state, err
	}
	state.Payload = contracts.PayloadRange{Low: low, High: high}

	return state, nil
}

func parseBound(q url.Values, name string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid %s payload bound %q", name, raw)
	}
	return v, nil
}
