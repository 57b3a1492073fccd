// Package osrm implements the route planner port against an OSRM routing
// server, with a deterministic great-circle fallback. Provider failures are
// contained here: callers always get an estimate for valid coordinates.
package osrm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/route"
)

const (
	// DefaultBaseURL points at the public OSRM demo server.
	DefaultBaseURL = "http://router.project-osrm.org"

	// requestTimeout bounds one provider round trip. The fallback answers
	// instead of the caller waiting on a slow provider.
	requestTimeout = 5 * time.Second

	breakerFailureThreshold = 3
	breakerCooldown         = 30 * time.Second

	// earthRadiusKm is the mean Earth radius used by the haversine fallback.
	earthRadiusKm = 6371.0

	// fallbackMinutesPerKm converts great-circle distance into a rough
	// urban driving duration.
	fallbackMinutesPerKm = 2.5
)

// ErrRoutingUnavailable marks provider failures internally. It never leaves
// EstimateRoute; the fallback estimate is returned instead.
var ErrRoutingUnavailable = errors.New("routing provider unavailable")

// Client is an OSRM-backed implementation of ports.RoutePlanner.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *circuitBreaker
	logger     *slog.Logger
}

// NewClient creates a routing client for the given OSRM base URL.
// An empty baseURL selects the public demo server.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
		breaker:    newCircuitBreaker(breakerFailureThreshold, breakerCooldown, time.Now),
		logger:     logger.With("component", "osrm_client"),
	}
}

// EstimateRoute asks OSRM for the driving route between two coordinates.
// When the provider is down, slow, or returns garbage, the estimate degrades
// to the deterministic great-circle fallback and the error is only logged.
func (c *Client) EstimateRoute(
	ctx context.Context,
	origin, destination kernel.Coordinate,
) (route.Estimate, error) {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return route.Estimate{}, err
	}

	if !c.breaker.allow() {
		c.logger.Debug("routing circuit open, using fallback estimate")
		return fallbackEstimate(origin, destination), nil
	}

	estimate, err := c.queryProvider(ctx, origin, destination)
	if err != nil {
		c.breaker.recordFailure()
		c.logger.Warn("routing provider failed, using fallback estimate", "error", err)
		return fallbackEstimate(origin, destination), nil
	}

	c.breaker.recordSuccess()
	return estimate, nil
}

type osrmResponse struct {
	Code   string      `json:"code"`
	Routes []osrmRoute `json:"routes"`
}

type osrmRoute struct {
	Distance float64      `json:"distance"`
	Duration float64      `json:"duration"`
	Geometry osrmGeometry `json:"geometry"`
	Legs     []osrmLeg    `json:"legs"`
}

type osrmGeometry struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type osrmLeg struct {
	Steps []osrmStep `json:"steps"`
}

type osrmStep struct {
	Name     string       `json:"name"`
	Maneuver osrmManeuver `json:"maneuver"`
}

type osrmManeuver struct {
	Type     string `json:"type"`
	Modifier string `json:"modifier"`
}

func (c *Client) queryProvider(
	ctx context.Context,
	origin, destination kernel.Coordinate,
) (route.Estimate, error) {
	// OSRM expects lon,lat pairs
	url := fmt.Sprintf(
		"%s/route/v1/driving/%f,%f;%f,%f?overview=full&steps=true&geometries=geojson",
		c.baseURL,
		origin.Longitude(), origin.Latitude(),
		destination.Longitude(), destination.Latitude(),
	)

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return route.Estimate{}, fmt.Errorf("%w: %w", ErrRoutingUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return route.Estimate{}, fmt.Errorf("%w: %w", ErrRoutingUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return route.Estimate{}, fmt.Errorf("%w: status %d", ErrRoutingUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return route.Estimate{}, fmt.Errorf("%w: %w", ErrRoutingUnavailable, err)
	}

	var parsed osrmResponse
	if err = json.Unmarshal(body, &parsed); err != nil {
		return route.Estimate{}, fmt.Errorf("%w: %w", ErrRoutingUnavailable, err)
	}

	if parsed.Code != "Ok" || len(parsed.Routes) == 0 {
		return route.Estimate{}, fmt.Errorf("%w: provider code %q", ErrRoutingUnavailable, parsed.Code)
	}

	best := parsed.Routes[0]

	path := make([]kernel.Coordinate, 0, len(best.Geometry.Coordinates))
	for _, pair := range best.Geometry.Coordinates {
		if len(pair) < 2 {
			return route.Estimate{}, fmt.Errorf("%w: malformed geometry", ErrRoutingUnavailable)
		}
		point, pointErr := kernel.NewCoordinate(pair[1], pair[0])
		if pointErr != nil {
			return route.Estimate{}, fmt.Errorf("%w: %w", ErrRoutingUnavailable, pointErr)
		}
		path = append(path, point)
	}

	instructions := make([]string, 0)
	for _, leg := range best.Legs {
		for _, step := range leg.Steps {
			instructions = append(instructions, describeStep(step))
		}
	}

	return route.Estimate{
		DistanceKm:      best.Distance / 1000.0,
		DurationMinutes: int(best.Duration / 60.0),
		Path:            path,
		Instructions:    instructions,
	}, nil
}

func describeStep(step osrmStep) string {
	parts := make([]string, 0, 3)
	if step.Maneuver.Type != "" {
		parts = append(parts, step.Maneuver.Type)
	}
	if step.Maneuver.Modifier != "" {
		parts = append(parts, step.Maneuver.Modifier)
	}
	if step.Name != "" {
		parts = append(parts, "onto "+step.Name)
	}
	if len(parts) == 0 {
		return "continue"
	}
	return strings.Join(parts, " ")
}

// fallbackEstimate computes a deterministic estimate from the great-circle
// distance: same inputs always produce the same output. The path holds just
// the two endpoints and the duration assumes a flat urban driving pace.
func fallbackEstimate(origin, destination kernel.Coordinate) route.Estimate {
	distanceKm := haversineKm(origin, destination)

	return route.Estimate{
		DistanceKm:      distanceKm,
		DurationMinutes: int(math.Round(distanceKm * fallbackMinutesPerKm)),
		Path:            []kernel.Coordinate{origin, destination},
		Instructions:    []string{"Follow the most direct route to the destination"},
	}
}

func haversineKm(origin, destination kernel.Coordinate) float64 {
	lat1 := origin.Latitude() * math.Pi / 180
	lat2 := destination.Latitude() * math.Pi / 180
	dLat := (destination.Latitude() - origin.Latitude()) * math.Pi / 180
	dLon := (destination.Longitude() - origin.Longitude()) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
