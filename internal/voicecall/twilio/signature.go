package twilio

import (
	"net/http"

	"callcenter-webhooks/internal/apierrors"
	"callcenter-webhooks/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/twilio/twilio-go/client"
)

const SignatureHeader = "X-Twilio-Signature"

// SignatureVerifier rejects callbacks that were not signed with the account's auth token.
type SignatureVerifier struct {
	validator client.RequestValidator
	baseURL   string
	logger    *observability.Logger
}

// NewSignatureVerifier builds a verifier. baseURL is the externally visible
// scheme and host the provider was configured with, e.g. https://calls.example.com.
func NewSignatureVerifier(authToken, baseURL string, logger *observability.Logger) *SignatureVerifier {
	return &SignatureVerifier{
		validator: client.NewRequestValidator(authToken),
		baseURL:   baseURL,
		logger:    logger,
	}
}

// Verify reports whether the request carries a valid signature.
func (s *SignatureVerifier) Verify(r *http.Request) bool {
	signature := r.Header.Get(SignatureHeader)
	if signature == "" {
		return false
	}

	params := map[string]string{}
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			return false
		}
		for key, values := range r.PostForm {
			if len(values) > 0 {
				params[key] = values[0]
			}
		}
	}

	return s.validator.Validate(s.baseURL+r.URL.RequestURI(), params, signature)
}

// Middleware aborts unsigned or forged callbacks with 403.
func (s *SignatureVerifier) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.Verify(c.Request) {
			s.logger.Warn(c.Request.Context(), "rejected callback with invalid signature")
			apierrors.Forbidden(c, "INVALID_SIGNATURE", "Invalid request signature")
			c.Abort()
			return
		}
		c.Next()
	}
}
