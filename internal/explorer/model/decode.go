package model

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/*.json
var schemaFS embed.FS

const (
	blockSchemaURL  = "https://blockinsight7000.local/schemas/block.json"
	latestSchemaURL = "https://blockinsight7000.local/schemas/latest.json"
)

var compiledSchemas = sync.OnceValues(func() (map[string]*jsonschema.Schema, error) {
	files := map[string]string{
		blockSchemaURL:  "schemas/block.schema.json",
		latestSchemaURL: "schemas/latest.schema.json",
	}

	compiler := jsonschema.NewCompiler()
	for url, name := range files {
		raw, err := schemaFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", name, err)
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("unmarshal schema %s: %w", name, err)
		}
		if err := compiler.AddResource(url, doc); err != nil {
			return nil, fmt.Errorf("add schema %s: %w", name, err)
		}
	}

	out := make(map[string]*jsonschema.Schema, len(files))
	for url := range files {
		sch, err := compiler.Compile(url)
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", url, err)
		}
		out[url] = sch
	}
	return out, nil
})

type blockDocument struct {
	Index        json.Number       `json:"index"`
	Height       json.Number       `json:"height"`
	Hash         string            `json:"hash"`
	PrevHash     string            `json:"prev_hash"`
	Reward       json.RawMessage   `json:"reward"`
	Amount       json.RawMessage   `json:"amount"`
	RewardTo     string            `json:"reward_to"`
	Timestamp    json.RawMessage   `json:"timestamp"`
	Message      string            `json:"message"`
	Network      string            `json:"network"`
	Difficulty   json.RawMessage   `json:"difficulty"`
	Nonce        json.RawMessage   `json:"nonce"`
	Transactions []json.RawMessage `json:"transactions"`
}

type latestDocument struct {
	LatestHeight json.Number `json:"latest_height"`
}

// DecodeBlock validates data against the block schema and decodes it.
func DecodeBlock(data []byte) (*Block, error) {
	if err := validate(blockSchemaURL, data); err != nil {
		return nil, err
	}

	var doc blockDocument
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode block: %w", err)
	}

	height, err := documentHeight(doc)
	if err != nil {
		return nil, err
	}

	return &Block{
		Height:       height,
		Hash:         doc.Hash,
		PrevHash:     doc.PrevHash,
		Reward:       scalarText(doc.Reward),
		Amount:       scalarText(doc.Amount),
		RewardTo:     doc.RewardTo,
		Timestamp:    parseTimestamp(doc.Timestamp),
		Message:      doc.Message,
		Network:      doc.Network,
		Difficulty:   scalarText(doc.Difficulty),
		Nonce:        scalarText(doc.Nonce),
		Transactions: doc.Transactions,
	}, nil
}

// DecodeLatest validates and decodes the latest index document.
func DecodeLatest(data []byte) (uint64, error) {
	if err := validate(latestSchemaURL, data); err != nil {
		return 0, err
	}

	var doc latestDocument
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return 0, fmt.Errorf("decode latest: %w", err)
	}
	return parseIndex(doc.LatestHeight)
}

func validate(url string, data []byte) error {
	schemas, err := compiledSchemas()
	if err != nil {
		return err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	if err := schemas[url].Validate(inst); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}

func documentHeight(doc blockDocument) (uint64, error) {
	switch {
	case doc.Index != "" && doc.Height != "":
		index, err := parseIndex(doc.Index)
		if err != nil {
			return 0, err
		}
		height, err := parseIndex(doc.Height)
		if err != nil {
			return 0, err
		}
		if index != height {
			return 0, fmt.Errorf("index %d disagrees with height %d", index, height)
		}
		return index, nil
	case doc.Index != "":
		return parseIndex(doc.Index)
	default:
		return parseIndex(doc.Height)
	}
}

func parseIndex(n json.Number) (uint64, error) {
	if v, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
		return v, nil
	}
	// 12.0 passes the integer schema check.
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil || f < 0 || f != math.Trunc(f) || f > math.MaxUint64 {
		return 0, fmt.Errorf("index %q is not a non-negative integer", n)
	}
	return uint64(f), nil
}

func scalarText(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return ""
		}
		return s
	}
	return string(trimmed)
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseTimestamp(raw json.RawMessage) time.Time {
	text := strings.TrimSpace(scalarText(raw))
	if text == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, text); err == nil {
			return ts.UTC()
		}
	}
	if secs, err := strconv.ParseInt(text, 10, 64); err == nil {
		if secs > 1e12 {
			return time.UnixMilli(secs).UTC()
		}
		return time.Unix(secs, 0).UTC()
	}
	return time.Time{}
}
