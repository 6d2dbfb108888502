package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
)

// MessagePrefix opens every signed request message:
//
//	custody-bridge <METHOD> <request-uri> body=<keccak256(body)> expires=<unix seconds> nonce=<uuid>
const MessagePrefix = "custody-bridge"

// MaxMessageLifetime bounds how far in the future a message may expire.
const MaxMessageLifetime = 5 * time.Minute

var (
	ErrMalformedMessage = errors.New("malformed request message")
	ErrMessageMismatch  = errors.New("message does not match request")
	ErrMessageExpired   = errors.New("request message expired")
	ErrMessageReplayed  = errors.New("request message already used")
)

// RequestMessage builds the message a caller signs for one request, with a
// fresh nonce.
func RequestMessage(method, requestURI string, body []byte, expires time.Time) string {
	return fmt.Sprintf("%s %s %s body=%s expires=%d nonce=%s",
		MessagePrefix, method, requestURI, crypto.Keccak256Hash(body).Hex(), expires.Unix(), uuid.NewString())
}

type requestMessage struct {
	method     string
	requestURI string
	bodyHash   common.Hash
	expires    time.Time
}

func parseRequestMessage(msg string) (requestMessage, error) {
	fields := strings.Fields(msg)
	if len(fields) != 6 || fields[0] != MessagePrefix {
		return requestMessage{}, ErrMalformedMessage
	}

	body, ok := strings.CutPrefix(fields[3], "body=")
	if !ok || len(body) != 2+2*common.HashLength || !strings.HasPrefix(body, "0x") {
		return requestMessage{}, fmt.Errorf("%w: body hash", ErrMalformedMessage)
	}
	expires, ok := strings.CutPrefix(fields[4], "expires=")
	if !ok {
		return requestMessage{}, fmt.Errorf("%w: expiry", ErrMalformedMessage)
	}
	unix, err := strconv.ParseInt(expires, 10, 64)
	if err != nil {
		return requestMessage{}, fmt.Errorf("%w: expiry: %v", ErrMalformedMessage, err)
	}
	nonce, ok := strings.CutPrefix(fields[5], "nonce=")
	if !ok || nonce == "" {
		return requestMessage{}, fmt.Errorf("%w: nonce", ErrMalformedMessage)
	}

	return requestMessage{
		method:     fields[1],
		requestURI: fields[2],
		bodyHash:   common.HexToHash(body),
		expires:    time.Unix(unix, 0),
	}, nil
}

// check matches m against the request it arrived with at time now.
func (m requestMessage) check(method, requestURI string, body []byte, now time.Time) error {
	if m.method != method || m.requestURI != requestURI {
		return fmt.Errorf("%w: signed for %s %s", ErrMessageMismatch, m.method, m.requestURI)
	}
	if m.bodyHash != crypto.Keccak256Hash(body) {
		return fmt.Errorf("%w: body", ErrMessageMismatch)
	}
	if !now.Before(m.expires) {
		return ErrMessageExpired
	}
	if m.expires.Sub(now) > MaxMessageLifetime {
		return fmt.Errorf("%w: expiry more than %s ahead", ErrMalformedMessage, MaxMessageLifetime)
	}
	return nil
}
