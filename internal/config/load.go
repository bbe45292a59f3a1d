package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// StyleFileName is the style file name looked up by Discover, without extension.
const StyleFileName = "radplot"

// SearchPaths returns the directories searched for a style file, in order:
// the working directory, then $XDG_CONFIG_HOME/radplot (or ~/.config/radplot).
func SearchPaths() []string {
	paths := []string{"."}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			configHome = filepath.Join(home, ".config")
		}
	}
	if configHome != "" {
		paths = append(paths, filepath.Join(configHome, StyleFileName))
	}

	return paths
}

// Discover looks for radplot.yaml in the given directories. It returns a nil
// style and an empty path when no file exists.
func Discover(paths ...string) (*Style, string, error) {
	v := viper.New()
	v.SetConfigName(StyleFileName)
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("reading style file: %w", err)
	}

	style := &Style{}
	if err := v.Unmarshal(style); err != nil {
		return nil, "", fmt.Errorf("decoding style file %s: %w", v.ConfigFileUsed(), err)
	}
	if err := style.Validate(); err != nil {
		return nil, "", fmt.Errorf("style file %s: %w", v.ConfigFileUsed(), err)
	}

	return style, v.ConfigFileUsed(), nil
}

// LoadStyle reads an explicit style file. Unknown keys are an error.
func LoadStyle(path string) (*Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	style := &Style{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(style); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding style file %s: %w", path, err)
	}
	if err := style.Validate(); err != nil {
		return nil, fmt.Errorf("style file %s: %w", path, err)
	}

	return style, nil
}

// MarshalStyle renders the effective style as YAML, suitable as a starting
// point for a style file.
func MarshalStyle(s *Style) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s.Resolved()); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
