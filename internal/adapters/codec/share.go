package codec

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/Spaaern/pubcrawl-cli/internal/domain"
)

// FragmentMarker precedes the share token in a share link URL.
const FragmentMarker = "#data="

// Share links carry a list payload as base64 over percent-encoded
// JSON, matching the web app's btoa(encodeURIComponent(json)).

func EncodeShareToken(l *domain.List) (string, error) {
	data, err := EncodeListPayload(l)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString([]byte(url.PathEscape(string(data)))), nil
}

// DecodeShareToken reverses both encodings and decodes the payload.
// It accepts a bare token, a "#data=..." fragment, or a full URL.
func DecodeShareToken(token string) (Payload, error) {
	if idx := strings.Index(token, FragmentMarker); idx >= 0 {
		token = token[idx+len(FragmentMarker):]
	}

	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: decode base64: %v", ErrInvalidPayload, err)
	}

	unescaped, err := url.PathUnescape(string(decoded))
	if err != nil {
		return Payload{}, fmt.Errorf("%w: decode percent encoding: %v", ErrInvalidPayload, err)
	}

	return DecodePayload([]byte(unescaped))
}
