// Copyright (C) 2025 The fastsnbt authors. All Rights Reserved.

package fastsnbt

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/tailscale/hujson"
)

// FromJSON converts JSON to an sNBT-ready Value. The input may contain
// comments and trailing commas (the JWCC dialect); it is standardized
// before decoding. JSON integers become int32 when representable and int64
// otherwise; any other number becomes float64. JSON null has no sNBT form
// and is reported as an error.
func FromJSON(data []byte) (Value, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(std))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return fromJSONValue(raw)
}

func fromJSONValue(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return nil, serializeErrf("JSON null has no sNBT representation")
	case bool, string:
		return t, nil
	case json.Number:
		if n, err := t.Int64(); err == nil {
			if n >= math.MinInt32 && n <= math.MaxInt32 {
				return int32(n), nil
			}
			return n, nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return f, nil
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			c, err := fromJSONValue(e)
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			c, err := fromJSONValue(e)
			if err != nil {
				return nil, err
			}
			out[k] = c
		}
		return out, nil
	}
	return nil, serializeErrf("unexpected JSON value %T", v)
}
