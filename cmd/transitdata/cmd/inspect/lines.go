package inspect

import (
	"bytes"
	"encoding/json"

	"github.com/agentstation/transitdata/pkg/constants"
	"github.com/agentstation/transitdata/pkg/dataset"
)

// Line summarizes one line record.
type Line struct {
	Key      string `json:"key" yaml:"key"`
	Name     string `json:"name" yaml:"name"`
	Outbound int    `json:"outbound_stops" yaml:"outbound_stops"`
	Return   int    `json:"return_stops" yaml:"return_stops"`
}

type route struct {
	Aller  []json.RawMessage `json:"aller"`
	Retour []json.RawMessage `json:"retour"`
}

// summarize builds a Line for every record. Records without the key field
// fail; a missing name or route is reported as empty.
func summarize(ds dataset.Dataset, keyField string) ([]Line, error) {
	lines := make([]Line, 0, len(ds))
	for i, rec := range ds {
		k, err := ds.KeyAt(i, keyField)
		if err != nil {
			return nil, err
		}

		line := Line{Key: k.String()}
		if raw, ok := rec.Field(constants.NameField); ok {
			line.Name = text(raw)
		}
		if raw, ok := rec.Field(constants.RouteField); ok {
			var r route
			if err := json.Unmarshal(raw, &r); err == nil {
				line.Outbound = len(r.Aller)
				line.Return = len(r.Retour)
			}
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// text returns a JSON string's value, or the raw JSON of any other value.
func text(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	if bytes.Equal(raw, []byte("null")) {
		return ""
	}
	return string(raw)
}
