package siteconfig

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"mime"
	"reflect"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

var errNotObject = errors.New("request body must be an object")

var cborDecMode = func() cbor.DecMode {
	dm, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}()

// decodeRecord decodes an update payload into a generic record, as CBOR when
// the content type says so and as JSON otherwise.
func decodeRecord(contentType string, raw []byte) (map[string]any, error) {
	var v any
	if isCBOR(contentType) {
		if err := cborDecMode.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
	} else if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	record, ok := v.(map[string]any)
	if !ok {
		return nil, errNotObject
	}
	return record, nil
}

func isCBOR(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/cbor" || strings.HasSuffix(mt, "+cbor")
}

// computeETag returns a strong ETag over the JSON form of body.
func computeETag(body any) string {
	b, err := json.Marshal(body)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(b)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}

// etagMatches implements the weak comparison of If-None-Match.
func etagMatches(ifNoneMatch, etag string) bool {
	if etag == "" {
		return false
	}
	for candidate := range strings.SplitSeq(ifNoneMatch, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
