package seed

import (
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

/* Loader manages endpoint pre-registration from endpoints.yaml
 * Endpoints normally come into existence on first delivery; the seed file
 * lets operators create the well-known ones up front so dashboards are not
 * empty before the first webhook arrives.
 */

// Config represents the structure of endpoints.yaml
type Config struct {
	Endpoints []EndpointConfig `yaml:"endpoints"`
}

// EndpointConfig represents a single endpoint in the YAML file
type EndpointConfig struct {
	URL string `yaml:"url"`
}

// Validate checks if the endpoint entry is usable
func (e EndpointConfig) Validate() error {
	if e.URL == "" {
		return fmt.Errorf("url cannot be empty")
	}
	u, err := url.Parse(e.URL)
	if err != nil {
		return fmt.Errorf("parsing url %s: %w", e.URL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("url must be absolute: %s", e.URL)
	}
	return nil
}

// Loader holds the loaded endpoint URLs
type Loader struct {
	urls []string
}

// NewLoader creates a new endpoint seed loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses the endpoints.yaml file
func (l *Loader) Load(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading endpoints file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("parsing endpoints YAML: %w", err)
	}

	seen := make(map[string]bool)
	urls := make([]string, 0, len(config.Endpoints))
	for _, ec := range config.Endpoints {
		if err := ec.Validate(); err != nil {
			return fmt.Errorf("validating endpoint: %w", err)
		}
		// Duplicates in the file collapse to one registration
		if seen[ec.URL] {
			continue
		}
		seen[ec.URL] = true
		urls = append(urls, ec.URL)
	}

	l.urls = urls
	return nil
}

// List returns all loaded endpoint URLs in file order
func (l *Loader) List() []string {
	return l.urls
}
