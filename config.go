package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/ttpr0/go-roadgraph/graph"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

func ReadConfig(file string) (Config, error) {
	slog.Info("Reading config file", "file", file)
	data, err := os.ReadFile(file)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read config file")
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse config")
	}
	config.SetDefaults()
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

type Config struct {
	Source    SourceOptions `yaml:"source"`
	Selectors struct {
		Highways []string `yaml:"highways"`
		Places   []string `yaml:"places"`
	} `yaml:"selectors"`
	Routing struct {
		Workers int    `yaml:"workers"`
		Index   string `yaml:"index"`
	} `yaml:"routing"`
	Output struct {
		Table   string `yaml:"table"`
		GeoJSON string `yaml:"geojson"`
	} `yaml:"output"`
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

type SourceOptions struct {
	Type      SourceType `yaml:"type"`
	OSM       string     `yaml:"osm"`
	Vertices  string     `yaml:"vertices"`
	Segments  string     `yaml:"segments"`
	POIs      string     `yaml:"pois"`
	Delimiter string     `yaml:"delimiter"`
}

func (self *Config) SetDefaults() {
	if self.Source.Delimiter == "" {
		self.Source.Delimiter = ";"
	}
	if self.Routing.Index == "" {
		self.Routing.Index = graph.QUADTREE.String()
	}
	if self.Output.Table == "" {
		self.Output.Table = "./output/table.json"
	}
	if self.Output.GeoJSON == "" {
		self.Output.GeoJSON = "./output/graph.geojson"
	}
	if self.Server.Address == "" {
		self.Server.Address = ":5002"
	}
	if self.Logging.Level == "" {
		self.Logging.Level = "info"
	}
}

func (self *Config) Validate() error {
	switch self.Source.Type {
	case OSM:
		if self.Source.OSM == "" {
			return errors.New("source.osm is required for osm sources")
		}
	case CSV:
		if self.Source.Vertices == "" || self.Source.Segments == "" {
			return errors.New("source.vertices and source.segments are required for csv sources")
		}
	}
	if len([]rune(self.Source.Delimiter)) != 1 {
		return errors.Errorf("invalid csv delimiter %q", self.Source.Delimiter)
	}
	if _, err := graph.IndexTypeFromString(self.Routing.Index); err != nil {
		return err
	}
	if self.Routing.Workers < 0 {
		return errors.New("routing.workers must not be negative")
	}
	return nil
}

func (self *Config) GetIndexType() graph.IndexType {
	typ, _ := graph.IndexTypeFromString(self.Routing.Index)
	return typ
}

func (self *Config) GetDelimiter() rune {
	return []rune(self.Source.Delimiter)[0]
}

//**********************************************************
// enums
//**********************************************************

type SourceType byte

const (
	OSM SourceType = 0
	CSV SourceType = 1
)

func (self SourceType) String() string {
	switch self {
	case OSM:
		return "osm"
	case CSV:
		return "csv"
	default:
		panic("unknown source type")
	}
}
func (self SourceType) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *SourceType) UnmarshalJSON(data []byte) error {
	var typ string
	err := json.Unmarshal(data, &typ)
	if err != nil {
		return err
	}
	*self, err = SourceTypeFromString(typ)
	return err
}
func (self SourceType) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *SourceType) UnmarshalYAML(value *yaml.Node) error {
	typ, err := SourceTypeFromString(value.Value)
	if err != nil {
		return err
	}
	*self = typ
	return nil
}

func SourceTypeFromString(s string) (SourceType, error) {
	switch s {
	case "osm":
		return OSM, nil
	case "csv":
		return CSV, nil
	default:
		return OSM, errors.Errorf("unknown source type %q", s)
	}
}
