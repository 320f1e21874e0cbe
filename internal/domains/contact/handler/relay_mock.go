package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// =====================================================
// RELAY MOCK (non-production only)
// =====================================================

// Trigger addresses understood by the mock. These exist to exercise the
// form client's error and loading states end to end.
const (
	MockErrorEmail     = "error@test.com"     // forces 500
	MockRateLimitEmail = "ratelimit@test.com" // forces 429
	MockSlowEmail      = "slow@test.com"      // delays 1.5s, then succeeds
)

// MockSlowDelay is how long the slow trigger stalls before answering.
const MockSlowDelay = 1500 * time.Millisecond

// RelayMock mimics the third-party form relay. The router registers it
// only outside production, and config points CONTACT_TEST_RELAY_URL at
// it when CONTACT_TEST_MODE is set.
// POST /api/v1/test/relay-mock
func RelayMock() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Message string `json:"message"`
		}

		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
			return
		}

		if body.Name == "" || body.Email == "" || body.Message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}

		switch body.Email {
		case MockErrorEmail:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		case MockRateLimitEmail:
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			return
		case MockSlowEmail:
			// Delay for loading-state testing, then fall through to
			// the success response.
			time.Sleep(MockSlowDelay)
		}

		c.JSON(http.StatusOK, gin.H{
			"ok":             true,
			"next":           "https://formspree.io/thanks",
			"submissionText": "Thank you!",
		})
	}
}
