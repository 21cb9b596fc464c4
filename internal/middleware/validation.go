package middleware

import (
	"net/http"
	"regexp"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kingrain94/bhms-api/pkg/logger"
)

// Headers whose values legitimately contain pattern characters.
var uncheckedHeaders = []string{"authorization", "content-type", "cookie", "stripe-signature"}

type ValidationMiddleware struct {
	logger   *logger.Logger
	patterns []*regexp.Regexp
}

func NewValidationMiddleware(logger *logger.Logger) *ValidationMiddleware {
	return &ValidationMiddleware{
		logger:   logger,
		patterns: compilePatterns(),
	}
}

func compilePatterns() []*regexp.Regexp {
	sqlInjectionPatterns := []string{
		`(?i)(\bUNION\b.*\bSELECT\b)`,
		`(?i)(\bINSERT\b.*\bINTO\b)`,
		`(?i)(\bDELETE\b.*\bFROM\b)`,
		`(?i)(\bDROP\b.*\bTABLE\b)`,
		`(?i)(\bALTER\b.*\bTABLE\b)`,
		`/\*.*\*/`,
	}
	xssPatterns := []string{
		`(?i)<script.*?>`,
		`(?i)javascript:`,
		`(?i)onload=`,
		`(?i)onerror=`,
		`(?i)<iframe.*?>`,
	}
	pathTraversalPatterns := []string{
		`\.\.\/`,
		`\.\.\\`,
		`(?i)%2e%2e%2f`,
		`(?i)%2e%2e%5c`,
	}

	all := append(sqlInjectionPatterns, xssPatterns...)
	all = append(all, pathTraversalPatterns...)
	compiled := make([]*regexp.Regexp, len(all))
	for i, p := range all {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

// SanitizeInput strips control characters from query parameters
func (m *ValidationMiddleware) SanitizeInput() gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Request.URL.Query()
		changed := false
		for key, values := range query {
			for i, value := range values {
				if sanitized := sanitizeString(value); sanitized != value {
					m.logger.Info("Sanitized query parameter", zap.String("key", key))
					query[key][i] = sanitized
					changed = true
				}
			}
		}
		if changed {
			c.Request.URL.RawQuery = query.Encode()
		}
		c.Next()
	}
}

// ValidateContentType ensures requests with a body use an allowed content type
func (m *ValidationMiddleware) ValidateContentType(allowedTypes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodDelete || c.Request.ContentLength == 0 {
			c.Next()
			return
		}

		contentType := strings.TrimSpace(strings.Split(c.GetHeader("Content-Type"), ";")[0])
		if contentType == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Content-Type header is required"})
			return
		}
		if !slices.Contains(allowedTypes, contentType) {
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{
				"error":         "Unsupported Content-Type",
				"allowed_types": allowedTypes,
			})
			return
		}
		c.Next()
	}
}

// ValidateRequestSize limits request body size
func (m *ValidationMiddleware) ValidateRequestSize(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"error":    "Request body too large",
				"max_size": maxSize,
			})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}

// BlockSuspiciousPatterns rejects injection and traversal attempts in the
// path, query and headers. Bodies are bound and validated by handlers.
func (m *ValidationMiddleware) BlockSuspiciousPatterns() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.matches(c.Request.URL.Path) {
			m.block(c, "path", c.Request.URL.Path)
			return
		}

		for key, values := range c.Request.URL.Query() {
			for _, value := range values {
				if m.matches(value) {
					m.block(c, "query:"+key, value)
					return
				}
			}
		}

		for key, values := range c.Request.Header {
			if slices.Contains(uncheckedHeaders, strings.ToLower(key)) {
				continue
			}
			for _, value := range values {
				if m.matches(value) {
					m.block(c, "header:"+key, value)
					return
				}
			}
		}

		c.Next()
	}
}

func (m *ValidationMiddleware) block(c *gin.Context, where, value string) {
	m.logger.Warn("Blocked suspicious request",
		zap.String("where", where),
		zap.String("value", value),
		zap.String("ip", c.ClientIP()))
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
}

func (m *ValidationMiddleware) matches(input string) bool {
	for _, pattern := range m.patterns {
		if pattern.MatchString(input) {
			return true
		}
	}
	return false
}

// sanitizeString drops null bytes and control characters except newline,
// carriage return and tab.
func sanitizeString(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if r >= 32 || r == '\n' || r == '\r' || r == '\t' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
