package external

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"weathersvc.app/internal/mocks"
)

// newLoggerMock returns a logger mock that accepts any log call
func newLoggerMock(t *testing.T) *mocks.Logger {
	mockLogger := mocks.NewLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return mockLogger
}

// newMetricsMock returns a metrics mock that accepts any recording
func newMetricsMock(t *testing.T) *mocks.WeatherMetrics {
	mockMetrics := mocks.NewWeatherMetrics(t)
	mockMetrics.EXPECT().RecordProviderRequest(mock.Anything, mock.Anything, mock.Anything).Maybe()
	return mockMetrics
}
