package catalog

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DirSource reads <key>.json, <key>.yaml or <key>.yml from a directory.
type DirSource struct {
	Dir string
}

// Fetch implements Source.
func (s DirSource) Fetch(ctx context.Context, c Category) ([]Part, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		path := filepath.Join(s.Dir, c.Key()+ext)
		data, err := os.ReadFile(path)
		if err != nil {
			if stderrors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, err
		}
		if ext != ".json" {
			data, err = yamlToJSON(data)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
			}
		}
		parts, err := DecodeList(c, data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		return parts, nil
	}
	return nil, fmt.Errorf("no catalog file for %s in %s", c.Key(), s.Dir)
}

// yamlToJSON converts a YAML document into JSON so the JSON decoders of the
// part variants can be reused.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(doc)
}

// HTTPSource fetches <BaseURL>/<key>.json over HTTP.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

// Fetch implements Source.
func (s HTTPSource) Fetch(ctx context.Context, c Category) ([]Part, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	url := strings.TrimRight(s.BaseURL, "/") + "/" + c.Key() + ".json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return DecodeList(c, data)
}
