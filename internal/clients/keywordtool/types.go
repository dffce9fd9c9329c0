package keywordtool

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// SearchResponse is the subset of the Keyword Tool search response the bridge reads.
type SearchResponse struct {
	Results Results `json:"results"`
}

// Results groups keyword suggestions by search engine.
type Results struct {
	Google []*KeywordMetrics `json:"google"`
}

// KeywordMetrics holds the metrics of one keyword suggestion.
type KeywordMetrics struct {
	Keyword      string `json:"string"`
	SearchVolume Number `json:"search_volume"`
	CPC          CPC    `json:"cpc"`
	Competition  Number `json:"competition"`
}

// CPC is the cost per click keyed by currency.
type CPC struct {
	USD Number `json:"USD"`
}

// First returns the first Google result or nil when there is none.
func (r *SearchResponse) First() *KeywordMetrics {
	if r == nil || len(r.Results.Google) == 0 {
		return nil
	}
	return r.Results.Google[0]
}

// UnmarshalJSON implements json.Unmarshaler. A reply that is not an object
// has no results.
func (r *SearchResponse) UnmarshalJSON(data []byte) error {
	*r = SearchResponse{}
	fields := objectFields(data)
	if raw, ok := fields["results"]; ok {
		return json.Unmarshal(raw, &r.Results)
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. Results that are not an object, or a
// google list that is not an array, read as empty.
func (r *Results) UnmarshalJSON(data []byte) error {
	*r = Results{}
	raw := bytes.TrimSpace(objectFields(data)["google"])
	if len(raw) == 0 || raw[0] != '[' {
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	for _, item := range items {
		if bytes.Equal(bytes.TrimSpace(item), []byte("null")) {
			r.Google = append(r.Google, nil)
			continue
		}
		var m KeywordMetrics
		if err := json.Unmarshal(item, &m); err != nil {
			return err
		}
		r.Google = append(r.Google, &m)
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. Fields of the wrong type read as zero.
func (m *KeywordMetrics) UnmarshalJSON(data []byte) error {
	*m = KeywordMetrics{}
	fields := objectFields(data)
	if raw, ok := fields["string"]; ok {
		_ = json.Unmarshal(raw, &m.Keyword)
	}
	for name, dst := range map[string]any{
		"search_volume": &m.SearchVolume,
		"cpc":           &m.CPC,
		"competition":   &m.Competition,
	} {
		if raw, ok := fields[name]; ok {
			if err := json.Unmarshal(raw, dst); err != nil {
				return err
			}
		}
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. A cpc that is not an object reads as 0.
func (c *CPC) UnmarshalJSON(data []byte) error {
	*c = CPC{}
	if raw, ok := objectFields(data)["USD"]; ok {
		return json.Unmarshal(raw, &c.USD)
	}
	return nil
}

// objectFields splits a JSON object into its raw fields. Anything else yields nil.
func objectFields(data []byte) map[string]json.RawMessage {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	return fields
}

// Number is a metric value that reads as 0 when missing, null or not numeric.
// Quoted numbers are accepted.
type Number float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = 0
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		data = []byte(s)
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return nil
	}
	*n = Number(v)
	return nil
}

// String renders the value in its shortest form, e.g. 1000, 0.5, 0.3.
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}
