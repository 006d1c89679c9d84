package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/DisposaBoy/JsonConfigReader"
	yaml "gopkg.in/yaml.v3"
)

// ConfigStructure is the structure of stunpack's main configuration, shared
// across the cmd package's subcommands.
type ConfigStructure struct {
	// General
	LogLevel  string `json:"logLevel"  yaml:"log_level"`
	LogFormat string `json:"logFormat" yaml:"log_format"`

	// Extensions recognized by decompress/inspect/batch for the soft
	// "unexpected extension" warning; decoding itself never relies on
	// this list.
	RecognizedExtensions []string `json:"recognizedExtensions" yaml:"recognized_extensions"`

	// DefaultArchiveFormat used by the decompress/batch commands when
	// --archive is not given explicitly: "none", "gzip", "xz" or "lzma".
	DefaultArchiveFormat string `json:"defaultArchiveFormat" yaml:"default_archive_format"`

	// DefaultJobs is the batch subcommand's worker pool size when --jobs
	// is not given; 0 means "use runtime.GOMAXPROCS(0)".
	DefaultJobs int `json:"defaultJobs" yaml:"default_jobs"`
}

// Config is the global configuration, shared by all modules.
var Config = ConfigStructure{
	LogLevel:  "info",
	LogFormat: "default",
	RecognizedExtensions: []string{
		".cmn", ".cod", ".dif", ".p3s", ".pes", ".pre", ".pvs",
	},
	DefaultArchiveFormat: "none",
	DefaultJobs:          0,
}

// LoadConfig loads configuration from a JSON-with-comments file, falling
// back to YAML if the file doesn't parse as JSONC.
func LoadConfig(filename string, config *ConfigStructure) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	decJSON := json.NewDecoder(JsonConfigReader.New(f))
	if err = decJSON.Decode(config); err != nil {
		_, _ = f.Seek(0, 0)
		decYAML := yaml.NewDecoder(f)
		if err2 := decYAML.Decode(config); err2 != nil {
			return fmt.Errorf("invalid yaml (%s) or json (%s)", err2, err)
		}
	}
	return nil
}

// HasRecognizedExtension reports whether path's extension is one of the
// game's known compressed-data extensions.
func (conf *ConfigStructure) HasRecognizedExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, known := range conf.RecognizedExtensions {
		if ext == known {
			return true
		}
	}
	return false
}
