package notification

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"weathersvc.app/internal/core/weather"
	"weathersvc.app/internal/ports"
	"weathersvc.app/pkg/errors"
	"weathersvc.app/pkg/validation"
)

// WeatherResolver is the part of the resolution engine the fan-out needs
type WeatherResolver interface {
	Resolve(ctx context.Context, city string) (*weather.Weather, bool)
}

type UseCase struct {
	source   ports.SubscriptionSource
	email    ports.EmailProvider
	resolver WeatherResolver
	logger   ports.Logger
	now      func() time.Time

	mu        sync.RWMutex
	lastRun   DispatchResult
	lastRunAt time.Time
}

type UseCaseDependencies struct {
	SubscriptionSource ports.SubscriptionSource
	EmailProvider      ports.EmailProvider
	Resolver           WeatherResolver
	Logger             ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.SubscriptionSource == nil {
		return nil, errors.NewValidationError("subscription source is required")
	}
	if deps.EmailProvider == nil {
		return nil, errors.NewValidationError("email provider is required")
	}
	if deps.Resolver == nil {
		return nil, errors.NewValidationError("weather resolver is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		source:   deps.SubscriptionSource,
		email:    deps.EmailProvider,
		resolver: deps.Resolver,
		logger:   deps.Logger,
		now:      time.Now,
	}, nil
}

// SendWeatherUpdates mails the current weather to every confirmed subscriber
// of the given frequency. Cities that cannot be resolved are skipped and
// logged. The error reports failed sends; the result is filled in either way.
func (uc *UseCase) SendWeatherUpdates(ctx context.Context, frequency Frequency) (DispatchResult, error) {
	result := DispatchResult{Frequency: frequency}
	if !frequency.IsValid() {
		return result, errors.NewValidationError("frequency must be hourly or daily")
	}

	start := uc.now()

	subscriptions, err := uc.source.GetConfirmedByFrequency(ctx, frequency.String())
	if err != nil {
		return result, fmt.Errorf("get subscriptions for frequency %s: %w", frequency, err)
	}
	result.Total = len(subscriptions)

	if len(subscriptions) == 0 {
		uc.logger.Debug("No subscriptions found for frequency", ports.F("frequency", frequency.String()))
		return uc.remember(result, start), nil
	}

	uc.logger.Info("Processing weather updates",
		ports.F("frequency", frequency.String()),
		ports.F("count", len(subscriptions)))

	// subscribers of the same city share one resolution per run
	resolved := make(map[string]*weather.Weather)

	for _, sub := range subscriptions {
		if ctx.Err() != nil {
			break
		}

		city := strings.TrimSpace(sub.City)
		key := strings.ToLower(city)

		if !validation.IsValidEmail(sub.Email) {
			uc.logger.Warn("Skipping weather update, invalid recipient",
				ports.F("subscription_id", sub.ID))
			result.Skipped++
			continue
		}

		current, seen := resolved[key]
		if !seen {
			current, _ = uc.resolver.Resolve(ctx, city)
			resolved[key] = current
		}
		if current == nil {
			uc.logger.Warn("Skipping weather update, city not resolved",
				ports.F("city", city),
				ports.F("subscription_id", sub.ID))
			result.Skipped++
			continue
		}

		if err := uc.email.SendEmail(ctx, BuildWeatherEmail(sub, current)); err != nil {
			uc.logger.Error("Failed to send weather update",
				ports.F("error", err),
				ports.F("subscription_id", sub.ID),
				ports.F("city", city))
			result.Failed++
			continue
		}
		result.Sent++
	}

	result = uc.remember(result, start)

	uc.logger.Info("Weather update notifications completed",
		ports.F("frequency", frequency.String()),
		ports.F("total", result.Total),
		ports.F("sent", result.Sent),
		ports.F("skipped", result.Skipped),
		ports.F("failed", result.Failed))

	if err := ctx.Err(); err != nil {
		return result, err
	}
	if result.Failed > 0 {
		return result, fmt.Errorf("failed to send %d out of %d weather updates", result.Failed, result.Total)
	}
	return result, nil
}

// BuildWeatherEmail renders the plain-text update for one subscription
func BuildWeatherEmail(sub *ports.SubscriptionData, current *weather.Weather) ports.EmailParams {
	var body strings.Builder
	fmt.Fprintf(&body, "Weather update for %s\n\n", current.City)
	fmt.Fprintf(&body, "Temperature: %.1f°C\n", current.Temperature)
	fmt.Fprintf(&body, "Humidity: %d%%\n", current.Humidity)
	fmt.Fprintf(&body, "Description: %s\n", current.Description)
	if !current.Timestamp.IsZero() {
		fmt.Fprintf(&body, "Observed at: %s\n", current.Timestamp.UTC().Format("2006-01-02 15:04 MST"))
	}
	fmt.Fprintf(&body, "\nYou receive %s updates because you subscribed for %s.\n",
		FrequencyFromString(sub.Frequency), strings.TrimSpace(sub.City))

	return ports.EmailParams{
		To:      sub.Email,
		Subject: fmt.Sprintf("Weather update for %s", current.City),
		Body:    body.String(),
	}
}

// GetNotificationStats reports the confirmed subscription count and the last run
func (uc *UseCase) GetNotificationStats(ctx context.Context) (NotificationStats, error) {
	count, err := uc.source.CountConfirmed(ctx)
	if err != nil {
		return NotificationStats{}, fmt.Errorf("count confirmed subscriptions: %w", err)
	}

	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return NotificationStats{
		ConfirmedSubscriptions: count,
		LastRun:                uc.lastRun,
		LastRunAt:              uc.lastRunAt,
	}, nil
}

func (uc *UseCase) remember(result DispatchResult, start time.Time) DispatchResult {
	result.Duration = uc.now().Sub(start)

	uc.mu.Lock()
	uc.lastRun = result
	uc.lastRunAt = start
	uc.mu.Unlock()

	return result
}
