package config

import (
	_ "embed"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed default_option.yml
var defaultOption []byte

// Settings is the jmcomic option document. Keys without a typed field are kept in
// Extra so that a load/save round trip does not lose them.
type Settings struct {
	DirRule  DirRule        `yaml:"dir_rule"`
	Download DownloadOption `yaml:"download"`
	Extra    map[string]any `yaml:",inline"`
}

// DirRule is the dir_rule section: where and how album folders are laid out.
type DirRule struct {
	BaseDir string         `yaml:"base_dir"`
	Extra   map[string]any `yaml:",inline"`
}

// DownloadOption is the download section.
type DownloadOption struct {
	DownloadDir string         `yaml:"download_dir"`
	Extra       map[string]any `yaml:",inline"`
}

// DefaultSettings returns the built-in jmcomic default option.
func DefaultSettings() (*Settings, error) {
	return Parse(defaultOption)
}

// Parse decodes an option document.
func Parse(data []byte) (*Settings, error) {
	s := &Settings{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, errors.Wrap(err, "decode option")
	}
	return s, nil
}

// Marshal encodes the option document as YAML.
func (s *Settings) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "encode option")
	}
	return data, nil
}

// SavePath returns the directory albums are saved to.
func (s *Settings) SavePath() string {
	return s.DirRule.BaseDir
}

// SetSavePath points both dir_rule.base_dir and download.download_dir at dir.
// The two are always changed together.
func (s *Settings) SetSavePath(dir string) {
	s.DirRule.BaseDir = dir
	s.Download.DownloadDir = dir
}

// Clone returns a deep copy that shares no maps or slices with s.
func (s *Settings) Clone() *Settings {
	if s == nil {
		return nil
	}
	return &Settings{
		DirRule: DirRule{
			BaseDir: s.DirRule.BaseDir,
			Extra:   copyMap(s.DirRule.Extra),
		},
		Download: DownloadOption{
			DownloadDir: s.Download.DownloadDir,
			Extra:       copyMap(s.Download.Extra),
		},
		Extra: copyMap(s.Extra),
	}
}

func copyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return copyMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = copyValue(e)
		}
		return out
	default:
		return v
	}
}
