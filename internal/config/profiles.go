package config

import (
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/surj/an-import/internal/core"
)

// Profiles maps profile names to Action Network API tokens. The file looks
// like:
//
//	profiles:
//	  "SURJ Action": "1234..."
//	  "SURJ Bay Area": "5678..."
type Profiles struct {
	Tokens map[string]string `yaml:"profiles"`
}

// LoadProfiles reads the profiles file at path.
func LoadProfiles(path string) (*Profiles, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.NewConfigurationError(path, "cannot read profiles file", err)
	}
	defer f.Close()

	p, err := ParseProfiles(f)
	if err != nil {
		return nil, core.NewConfigurationError(path, "invalid profiles file", err)
	}
	return p, nil
}

// ParseProfiles decodes a profiles document.
func ParseProfiles(r io.Reader) (*Profiles, error) {
	var p Profiles
	if err := yaml.NewDecoder(r).Decode(&p); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if p.Tokens == nil {
		p.Tokens = map[string]string{}
	}
	return &p, nil
}

// Token returns the API token for a profile.
func (p *Profiles) Token(name string) (string, error) {
	tok := p.Tokens[name]
	if tok == "" {
		return "", core.NewConfigurationError(name, "API Token not found", nil)
	}
	return tok, nil
}

// Names returns the profile names in sorted order.
func (p *Profiles) Names() []string {
	names := make([]string, 0, len(p.Tokens))
	for n := range p.Tokens {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
