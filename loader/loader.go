// Package loader reads resourceid naming rules from YAML or JSON documents
// stored at any URL supported by afs.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/resourceid"
	"github.com/viant/resourceid/tracing"
	"gopkg.in/yaml.v3"
)

// Service loads configuration documents.
type Service struct {
	fs afs.Service
}

// New creates a loader backed by fs; a nil fs means afs.New().
func New(fs afs.Service) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{fs: fs}
}

// Load reads the document at URL on top of resourceid.DefaultConfig and
// validates the result. A URL without extension is treated as YAML with the
// .yaml extension appended.
func (s *Service) Load(ctx context.Context, URL string) (cfg *resourceid.Config, err error) {
	ctx, span := tracing.StartSpan(ctx, "loader.Load")
	defer func() { tracing.EndSpan(span, err) }()

	if path.Ext(URL) == "" {
		URL += ".yaml"
	}
	span.WithAttributes(map[string]string{"url": URL})

	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", URL, err)
	}
	return Decode(URL, data)
}

// Decode parses data as JSON when name ends with .json, otherwise as YAML.
// ${env.KEY} expressions are expanded first.
func Decode(name string, data []byte) (*resourceid.Config, error) {
	cfg := resourceid.DefaultConfig()
	expanded := []byte(expandEnv(string(data)))
	var err error
	if strings.EqualFold(path.Ext(name), ".json") {
		err = json.Unmarshal(expanded, cfg)
	} else {
		err = yaml.Unmarshal(expanded, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", name, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", name, err)
	}
	return cfg, nil
}
