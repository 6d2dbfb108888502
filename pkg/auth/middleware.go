package auth

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/custody-bridge/pkg/app/errors"
	apphttp "github.com/chainsafe/custody-bridge/pkg/app/http"
)

// Request headers carrying an EIP-191 signed caller identity. The message
// must be built with RequestMessage for the request it accompanies.
const (
	HeaderSignature = "X-Signature"
	HeaderMessage   = "X-Message"
)

const maxSignedBodySize = 1 << 20

var errBodyTooLarge = errors.New("request body too large")

// Authenticator resolves the caller of a request from signed headers or a bearer token.
type Authenticator struct {
	jwt    *JWTValidator
	logger *zap.Logger
	now    func() time.Time

	mu   sync.Mutex
	seen map[common.Hash]time.Time
}

// AuthenticatorOption configures an Authenticator.
type AuthenticatorOption func(*Authenticator)

// WithClock overrides the time source used for message expiry.
func WithClock(now func() time.Time) AuthenticatorOption {
	return func(a *Authenticator) { a.now = now }
}

func NewAuthenticator(jwt *JWTValidator, logger *zap.Logger, opts ...AuthenticatorOption) *Authenticator {
	a := &Authenticator{
		jwt:    jwt,
		logger: logger,
		now:    time.Now,
		seen:   make(map[common.Hash]time.Time),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Middleware stores the caller in the request context when credentials are
// present. Requests without credentials pass through anonymously; invalid
// credentials are rejected.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, found, err := a.resolve(r)
		if err != nil {
			a.logger.Debug("rejected credentials", zap.String("path", r.URL.Path), zap.Error(err))
			apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "invalid credentials"))
			return
		}
		if found {
			r = r.WithContext(WithCaller(r.Context(), caller))
		}
		next.ServeHTTP(w, r)
	})
}

func (a *Authenticator) resolve(r *http.Request) (addr common.Address, found bool, err error) {
	if bearer, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		caller, err := a.jwt.ValidateToken(strings.TrimSpace(bearer))
		return caller, err == nil, err
	}

	sig, msg := r.Header.Get(HeaderSignature), r.Header.Get(HeaderMessage)
	if sig == "" && msg == "" {
		return addr, false, nil
	}
	if sig == "" || msg == "" {
		return addr, false, apperrors.UnAuthorizedError(nil, "signature and message required")
	}

	bound, err := parseRequestMessage(msg)
	if err != nil {
		return addr, false, err
	}
	body, err := readBody(r)
	if err != nil {
		return addr, false, err
	}
	now := a.now()
	if err := bound.check(r.Method, r.URL.RequestURI(), body, now); err != nil {
		return addr, false, err
	}

	caller, err := VerifyEIP191Signature(msg, sig)
	if err != nil {
		return addr, false, err
	}
	if err := a.consume(caller, msg, bound.expires, now); err != nil {
		return addr, false, err
	}
	return caller, true, nil
}

// consume accepts each signed message once per signer while it is valid.
func (a *Authenticator) consume(signer common.Address, msg string, expires, now time.Time) error {
	key := crypto.Keccak256Hash(signer.Bytes(), []byte(msg))

	a.mu.Lock()
	defer a.mu.Unlock()
	for k, exp := range a.seen {
		if !now.Before(exp) {
			delete(a.seen, k)
		}
	}
	if _, ok := a.seen[key]; ok {
		return ErrMessageReplayed
	}
	a.seen[key] = expires
	return nil
}

// readBody buffers the body for hashing and puts it back for the handler.
func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxSignedBodySize+1))
	_ = r.Body.Close()
	if err != nil {
		return nil, err
	}
	if len(body) > maxSignedBodySize {
		return nil, errBodyTooLarge
	}
	r.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}
