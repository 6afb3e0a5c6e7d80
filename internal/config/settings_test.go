package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOption = `version: '2.1'
client:
  impl: html
  domain:
    - 18comic.vip
  postman:
    meta_data:
      proxies: 127.0.0.1:7890
download:
  cache: true
  download_dir: /data/manga
  threading:
    image: 10
dir_rule:
  rule: Bd_Aauthor_Ptitle
  base_dir: /data/manga
plugins:
  after_album:
    - plugin: zip
      kwargs:
        level: photo
`

func TestDefaultSettings(t *testing.T) {
	s, err := DefaultSettings()
	require.NoError(t, err)

	assert.Equal(t, ".", s.DirRule.BaseDir)
	assert.Equal(t, "Bd_Pname", s.DirRule.Extra["rule"])
	assert.Contains(t, s.Extra, "client")
	assert.Contains(t, s.Extra, "version")
	assert.Contains(t, s.Download.Extra, "threading")
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("dir_rule: [unclosed"))
	require.Error(t, err)
}

func TestSetSavePath_KeepsBothFieldsEqual(t *testing.T) {
	s, err := Parse([]byte(sampleOption))
	require.NoError(t, err)

	s.SetSavePath("/home/alice/manga")

	assert.Equal(t, "/home/alice/manga", s.DirRule.BaseDir)
	assert.Equal(t, "/home/alice/manga", s.Download.DownloadDir)
	assert.Equal(t, "/home/alice/manga", s.SavePath())
}

func TestMarshal_PreservesUnknownKeys(t *testing.T) {
	s, err := Parse([]byte(sampleOption))
	require.NoError(t, err)

	data, err := s.Marshal()
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, s, again)
	assert.Equal(t, "Bd_Aauthor_Ptitle", again.DirRule.Extra["rule"])

	client, ok := again.Extra["client"].(map[string]any)
	require.True(t, ok, "client section should survive round trip")
	assert.Equal(t, "html", client["impl"])
}

func TestClone_IsIndependent(t *testing.T) {
	s, err := Parse([]byte(sampleOption))
	require.NoError(t, err)

	c := s.Clone()
	require.Equal(t, s, c)

	s.SetSavePath("/elsewhere")
	s.Extra["client"].(map[string]any)["impl"] = "api"
	s.Extra["client"].(map[string]any)["domain"].([]any)[0] = "changed"

	assert.Equal(t, "/data/manga", c.DirRule.BaseDir)
	assert.Equal(t, "/data/manga", c.Download.DownloadDir)
	assert.Equal(t, "html", c.Extra["client"].(map[string]any)["impl"])
	assert.Equal(t, "18comic.vip", c.Extra["client"].(map[string]any)["domain"].([]any)[0])
}

func TestClone_Nil(t *testing.T) {
	var s *Settings
	assert.Nil(t, s.Clone())
}
