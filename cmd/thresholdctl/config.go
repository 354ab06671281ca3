package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// CommitteeConfig is the on-disk description of a (t, n) committee,
// produced by `thresholdctl setup` and consumed by the signing
// subcommands, the way key/keys.go round-trips key material through TOML
// in the teacher repository.
type CommitteeConfig struct {
	Scheme    string `toml:"scheme"`
	Threshold int    `toml:"threshold"`
	Parties   int    `toml:"parties"`
}

// LoadCommitteeConfig decodes a CommitteeConfig from path.
func LoadCommitteeConfig(path string) (*CommitteeConfig, error) {
	var cfg CommitteeConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save encodes cfg to path as TOML, creating or truncating the file.
func (c *CommitteeConfig) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(c)
}
