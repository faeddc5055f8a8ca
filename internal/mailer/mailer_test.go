package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abdullah3034/portfolio-api/internal/contact"
)

func TestBuildMessageHeaders(t *testing.T) {
	c := &contact.Contact{
		Name:    "Jo",
		Email:   "a@b.co",
		Subject: "Hello there",
		Message: "line one\nline two",
	}
	msg := string(buildMessage("me@example.com", "me@example.com", c))

	require.Contains(t, msg, "From: me@example.com\r\n")
	require.Contains(t, msg, "To: me@example.com\r\n")
	require.Contains(t, msg, "Reply-To: a@b.co\r\n")
	require.Contains(t, msg, "Subject: Portfolio Contact: Hello there\r\n")
	require.Contains(t, msg, "Content-Type: text/html")

	// body follows the blank line and has newlines converted for HTML
	parts := strings.SplitN(msg, "\r\n\r\n", 2)
	require.Len(t, parts, 2)
	require.Contains(t, parts[1], "line one<br>line two")
	require.Contains(t, parts[1], "<strong>Name:</strong> Jo")
}

func TestBuildMessageStripsHeaderBreaks(t *testing.T) {
	c := &contact.Contact{
		Name:    "Jo",
		Email:   "a@b.co\r\nCc: victim@example.com",
		Subject: "Hi\r\nBcc: victim@example.com",
		Message: "This is a test message.",
	}
	msg := string(buildMessage("me@example.com", "me@example.com", c))

	headers := strings.SplitN(msg, "\r\n\r\n", 2)[0]
	for _, line := range strings.Split(headers, "\r\n") {
		require.False(t, strings.HasPrefix(line, "Bcc:"), "injected header line: %q", line)
		require.False(t, strings.HasPrefix(line, "Cc:"), "injected header line: %q", line)
	}
	require.Contains(t, headers, "Subject: Portfolio Contact: HiBcc: victim@example.com\r\n")
	require.Contains(t, headers, "Reply-To: a@b.coCc: victim@example.com\r\n")
}
