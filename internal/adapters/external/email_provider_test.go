package external

import (
	"bufio"
	"context"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathersvc.app/internal/ports"
	"weathersvc.app/pkg/errors"
)

// fakeSMTPServer accepts one session and records the DATA payload
type fakeSMTPServer struct {
	listener net.Listener
	mu       sync.Mutex
	data     string
	rcpt     string
	done     chan struct{}
}

func startFakeSMTPServer(t *testing.T) *fakeSMTPServer {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := &fakeSMTPServer{listener: listener, done: make(chan struct{})}
	t.Cleanup(func() { _ = listener.Close() })

	go srv.serve()
	return srv
}

func (s *fakeSMTPServer) serve() {
	defer close(s.done)

	conn, err := s.listener.Accept()
	if err != nil {
		return
	}
	defer func() { _ = conn.Close() }()

	reader := bufio.NewReader(conn)
	write := func(line string) { _, _ = conn.Write([]byte(line + "\r\n")) }

	write("220 fake.smtp ready")
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		cmd := strings.ToUpper(strings.TrimSpace(line))
		switch {
		case strings.HasPrefix(cmd, "EHLO"), strings.HasPrefix(cmd, "HELO"):
			write("250 fake.smtp")
		case strings.HasPrefix(cmd, "MAIL FROM"):
			write("250 OK")
		case strings.HasPrefix(cmd, "RCPT TO"):
			s.mu.Lock()
			s.rcpt = strings.TrimSpace(line)
			s.mu.Unlock()
			write("250 OK")
		case cmd == "DATA":
			write("354 End data with <CR><LF>.<CR><LF>")
			var body strings.Builder
			for {
				dataLine, err := reader.ReadString('\n')
				if err != nil {
					return
				}
				if dataLine == ".\r\n" {
					break
				}
				body.WriteString(dataLine)
			}
			s.mu.Lock()
			s.data = body.String()
			s.mu.Unlock()
			write("250 OK queued")
		case cmd == "QUIT":
			write("221 Bye")
			return
		default:
			write("250 OK")
		}
	}
}

func (s *fakeSMTPServer) port() int {
	return s.listener.Addr().(*net.TCPAddr).Port
}

func TestSMTPEmailProviderAdapter_SendEmail_DeliversMessage(t *testing.T) {
	srv := startFakeSMTPServer(t)

	provider := NewSMTPEmailProviderAdapter(EmailProviderConfig{
		Host:     "127.0.0.1",
		Port:     srv.port(),
		FromName: "Weather Service",
		FromAddr: "no-reply@weathersvc.app",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := provider.SendEmail(ctx, ports.EmailParams{
		To:      "user@example.com",
		Subject: "Hourly weather for Kyiv",
		Body:    "Kyiv: 15.0°C, 76% humidity, Partly cloudy",
	})
	require.NoError(t, err)

	<-srv.done
	srv.mu.Lock()
	defer srv.mu.Unlock()
	assert.Contains(t, srv.rcpt, "user@example.com")
	assert.Contains(t, srv.data, "Subject: Hourly weather for Kyiv")
	assert.Contains(t, srv.data, "Content-Type: text/plain; charset=UTF-8")
	assert.Contains(t, srv.data, "Partly cloudy")
}

func TestSMTPEmailProviderAdapter_SendEmailValidation(t *testing.T) {
	provider := NewSMTPEmailProviderAdapter(EmailProviderConfig{
		Host:     "127.0.0.1",
		Port:     1,
		FromName: "Test",
		FromAddr: "test@example.com",
	})

	tests := []struct {
		name   string
		params ports.EmailParams
	}{
		{"MissingTo", ports.EmailParams{Subject: "s", Body: "b"}},
		{"MissingSubject", ports.EmailParams{To: "r@example.com", Body: "b"}},
		{"MissingBody", ports.EmailParams{To: "r@example.com", Subject: "s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := provider.SendEmail(context.Background(), tt.params)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestSMTPEmailProviderAdapter_SendEmail_ConnectionRefused(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	provider := NewSMTPEmailProviderAdapter(EmailProviderConfig{
		Host:     "127.0.0.1",
		Port:     port,
		FromName: "Test",
		FromAddr: "test@example.com",
	})

	err = provider.SendEmail(context.Background(), ports.EmailParams{To: "r@example.com", Subject: "s", Body: "b"})

	require.Error(t, err)
	assert.True(t, errors.IsEmailError(err))
	assert.Contains(t, err.Error(), "failed to connect")
}

func TestSMTPEmailProviderAdapter_ValidateConfiguration(t *testing.T) {
	tests := []struct {
		name        string
		config      EmailProviderConfig
		expectError bool
	}{
		{
			name:   "ValidLocalRelay",
			config: EmailProviderConfig{Host: "mailhog", Port: 1025, FromName: "Weather", FromAddr: "a@b.c"},
		},
		{
			name:        "MissingHost",
			config:      EmailProviderConfig{Port: 587, FromName: "Weather", FromAddr: "a@b.c"},
			expectError: true,
		},
		{
			name:        "InvalidPort",
			config:      EmailProviderConfig{Host: "smtp", Port: 0, FromName: "Weather", FromAddr: "a@b.c"},
			expectError: true,
		},
		{
			name:        "MissingFromAddress",
			config:      EmailProviderConfig{Host: "smtp", Port: 587, FromName: "Weather"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewSMTPEmailProviderAdapter(tt.config).ValidateConfiguration()
			if tt.expectError {
				assert.True(t, errors.IsConfigurationError(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSMTPEmailProviderAdapter_BuildMessage(t *testing.T) {
	provider := NewSMTPEmailProviderAdapter(EmailProviderConfig{
		Host:     "smtp.example.com",
		Port:     587,
		FromName: "Test App",
		FromAddr: "test@example.com",
	})

	msg := provider.buildMessage(ports.EmailParams{
		To:      "recipient@example.com",
		Subject: "HTML Test",
		Body:    "<h1>HTML Body</h1>",
		IsHTML:  true,
	})

	assert.Contains(t, msg, "From: Test App <test@example.com>\r\n")
	assert.Contains(t, msg, "To: recipient@example.com\r\n")
	assert.Contains(t, msg, "Content-Type: text/html; charset=UTF-8\r\n\r\n<h1>HTML Body</h1>")
	assert.Equal(t, "127.0.0.1:2525", NewSMTPEmailProviderAdapter(EmailProviderConfig{Host: "127.0.0.1", Port: 2525}).Address())
}
