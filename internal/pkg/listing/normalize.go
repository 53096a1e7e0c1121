package listing

import (
	"bytes"
	"encoding/json"

	"github.com/gofiber/fiber/v2/log"
)

// Normalize extracts the record list from a backend response body. The
// backend does not use one envelope shape across endpoints, so the list is
// looked up in resolution order, first match wins:
//
//  1. response.<pluralKey> when it is an array
//  2. response.data when it is an array
//  3. the response itself when it is a bare array
//  4. response.data.<pluralKey> when it is an array
//  5. otherwise an empty list
//
// An unrecognized shape never fails; it degrades to an empty list. That makes
// an empty result ambiguous (no records vs. a new envelope variant), so the
// fallthrough logs the envelope's top-level keys to keep the two cases
// distinguishable in the logs.
func Normalize(body []byte, pluralKey string) []json.RawMessage {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err == nil {
		if items, ok := asArray(envelope[pluralKey]); ok {
			return items
		}
		if items, ok := asArray(envelope["data"]); ok {
			return items
		}
		// The body parsed as an object, so the bare-array branch cannot
		// match; fall through to data.<pluralKey>.
		var nested map[string]json.RawMessage
		if len(envelope["data"]) > 0 && json.Unmarshal(envelope["data"], &nested) == nil {
			if items, ok := asArray(nested[pluralKey]); ok {
				return items
			}
		}
		log.Warnf("unrecognized list envelope for %q, keys=%v", pluralKey, envelopeKeys(envelope))
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err == nil {
		return items
	}
	log.Warnf("unrecognized list response for %q: not an object or array", pluralKey)
	return nil
}

// DecodeList normalizes the body and decodes every record into T. Records
// that fail to decode are skipped rather than failing the whole list.
func DecodeList[T any](body []byte, pluralKey string) []T {
	raw := Normalize(body, pluralKey)
	items := make([]T, 0, len(raw))
	for _, r := range raw {
		var item T
		if err := json.Unmarshal(r, &item); err != nil {
			log.Warnf("skipping malformed %q record: %v", pluralKey, err)
			continue
		}
		items = append(items, item)
	}
	return items
}

// DecodeOne decodes a single-record response: a wrapped record under one of
// the given envelope keys first, then the bare object itself.
func DecodeOne[T any](body []byte, keys ...string) (T, bool) {
	var zero T

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return zero, false
	}

	var candidates [][]byte
	for _, key := range keys {
		if raw, ok := envelope[key]; ok && isObject(raw) {
			candidates = append(candidates, raw)
		}
	}
	candidates = append(candidates, body)
	for _, candidate := range candidates {
		var item T
		if err := json.Unmarshal(candidate, &item); err == nil && !isEmptyRecord(candidate) {
			return item, true
		}
	}
	return zero, false
}

func asArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, false
	}
	if items == nil {
		items = []json.RawMessage{}
	}
	return items, true
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func isEmptyRecord(raw []byte) bool {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return true
	}
	return len(m) == 0
}

func envelopeKeys(envelope map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(envelope))
	for k := range envelope {
		keys = append(keys, k)
	}
	return keys
}
