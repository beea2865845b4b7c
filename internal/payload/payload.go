// Package payload centralizes parsing of scan/master payloads. Stored values
// may be the current {summary, structured} envelope, a legacy flat JSON
// object, or free text from a malformed LLM reply; every consumer goes
// through Parse instead of sniffing keys at call sites.
package payload

import (
	"encoding/json"
	"strings"
)

// Kind tags the detected shape of a stored payload.
type Kind int

const (
	KindStructured Kind = iota // {summary, structured} envelope
	KindLegacyFlat             // flat key/value object, no "structured" key
	KindRaw                    // not a JSON object at all
)

// Envelope is the normalized form used everywhere internally.
type Envelope struct {
	Summary    string            `json:"summary"`
	Structured map[string]string `json:"structured"`
}

// Payload is the tagged variant produced by Parse. Envelope is always
// populated; Raw holds the original text only for KindRaw.
type Payload struct {
	Kind     Kind
	Envelope Envelope
	Raw      string
}

// Parse classifies a stored payload and normalizes it to envelope form.
//   - envelope with a "structured" key: used as-is
//   - flat JSON object: an optional "summary" key is lifted out, the
//     remainder nests under "structured"
//   - anything else: KindRaw with the text preserved verbatim
//
// An empty input yields an empty KindStructured envelope.
func Parse(data string) Payload {
	trimmed := strings.TrimSpace(data)
	if trimmed == "" {
		return Payload{Kind: KindStructured, Envelope: Empty()}
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &top); err != nil {
		return Payload{Kind: KindRaw, Envelope: Empty(), Raw: data}
	}

	if rawStructured, ok := top["structured"]; ok {
		env := Envelope{Structured: map[string]string{}}
		if rawSummary, ok := top["summary"]; ok {
			_ = json.Unmarshal(rawSummary, &env.Summary)
		}
		var structured map[string]string
		if err := json.Unmarshal(rawStructured, &structured); err == nil && structured != nil {
			env.Structured = structured
		}
		return Payload{Kind: KindStructured, Envelope: env}
	}

	// Legacy flat object: every scalar becomes a structured field, the
	// optional summary key is lifted out. Non-string values are kept via
	// their JSON rendering so nothing is lost.
	env := Envelope{Structured: map[string]string{}}
	for k, raw := range top {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			s = strings.TrimSpace(string(raw))
		}
		if k == "summary" {
			env.Summary = s
			continue
		}
		env.Structured[k] = s
	}
	return Payload{Kind: KindLegacyFlat, Envelope: env}
}

// Empty returns the zero envelope used when no master data exists yet.
func Empty() Envelope {
	return Envelope{Summary: "", Structured: map[string]string{}}
}

// Encode serializes the envelope for storage. Key order is stable
// (encoding/json sorts map keys), so identical envelopes always produce
// identical stored bytes.
func (e Envelope) Encode() (string, error) {
	if e.Structured == nil {
		e.Structured = map[string]string{}
	}
	b, err := json.Marshal(e)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
