package openapi

import (
	"fmt"
	"os"
	"path"
	"strings"
)

const (
	defaultTitle       = "Agent Registry API"
	defaultDescription = "Create, read, update, and delete agent configuration records."
	defaultPath        = "/openapi.json"
)

// Config describes the served OpenAPI document: its metadata, the module
// relative path it is served from, and the advertised server URLs.
type Config struct {
	Title       string   `toml:"title"`
	Description string   `toml:"description"`
	Path        string   `toml:"path"`
	Servers     []string `toml:"servers"`
}

// ConfigEnv names the environment variables that override Config.
// Servers is read as a comma-separated list.
type ConfigEnv struct {
	Title       string
	Description string
	Path        string
	Servers     string
}

// Finalize applies defaults, then environment overrides, then validates.
func (c *Config) Finalize(env *ConfigEnv) error {
	if c.Title == "" {
		c.Title = defaultTitle
	}
	if c.Description == "" {
		c.Description = defaultDescription
	}
	if c.Path == "" {
		c.Path = defaultPath
	}

	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overlays non-empty fields. A non-empty Servers list replaces the base list.
func (c *Config) Merge(overlay *Config) {
	for dst, src := range map[*string]string{
		&c.Title:       overlay.Title,
		&c.Description: overlay.Description,
		&c.Path:        overlay.Path,
	} {
		if src != "" {
			*dst = src
		}
	}
	if len(overlay.Servers) > 0 {
		c.Servers = overlay.Servers
	}
}

// Document builds an empty document carrying the configured metadata.
func (c *Config) Document(version string) *Spec {
	spec := NewSpec(c.Title, version)
	spec.SetDescription(c.Description)
	for _, url := range c.Servers {
		spec.AddServer(url)
	}
	return spec
}

// Pattern returns the ServeMux pattern the document is served on.
func (c *Config) Pattern() string {
	return "GET " + c.Path
}

func (c *Config) loadEnv(env *ConfigEnv) {
	lookup := func(name string) (string, bool) {
		if name == "" {
			return "", false
		}
		v := os.Getenv(name)
		return v, v != ""
	}

	if v, ok := lookup(env.Title); ok {
		c.Title = v
	}
	if v, ok := lookup(env.Description); ok {
		c.Description = v
	}
	if v, ok := lookup(env.Path); ok {
		c.Path = v
	}
	if v, ok := lookup(env.Servers); ok {
		var servers []string
		for _, url := range strings.Split(v, ",") {
			if url = strings.TrimSpace(url); url != "" {
				servers = append(servers, url)
			}
		}
		c.Servers = servers
	}
}

func (c *Config) validate() error {
	if !strings.HasPrefix(c.Path, "/") || path.Clean(c.Path) != c.Path || path.Ext(c.Path) != ".json" {
		return fmt.Errorf("path %q must be a clean absolute path ending in .json", c.Path)
	}
	return nil
}
