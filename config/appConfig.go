package config

import (
	"gopkg.in/yaml.v3"
	"os"

	"natcatalog_api/config/values"
)

type Config interface {
}

type MoySkladConfig struct {
	BaseURL   string `yaml:"base_url"`
	Timeout   int    `yaml:"timeout"`
	PageLimit int    `yaml:"page_limit"`
}

type NatCatalogConfig struct {
	BaseURL       string               `yaml:"base_url"`
	Timeout       int                  `yaml:"timeout"`
	MappingFile   string               `yaml:"mapping_file"`
	CatalogValues values.CatalogValues `yaml:"default_values"`
}

type AppConfig struct {
	MoySklad   MoySkladConfig   `yaml:"moysklad"`
	NatCatalog NatCatalogConfig `yaml:"natcatalog"`
	ListenAddr string           `yaml:"listen_addr"`
}

func LoadConfig(filename string) (*AppConfig, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	config := defaultConfig()
	if err := decoder.Decode(config); err != nil {
		return nil, err
	}
	return config, nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		MoySklad: MoySkladConfig{
			BaseURL:   "https://api.moysklad.ru/api/remap/1.2",
			Timeout:   30,
			PageLimit: 1000,
		},
		NatCatalog: NatCatalogConfig{
			BaseURL:       "https://xn--80aqu.xn----7sbabas4ajkhfocclk9d3cvfsa.xn--p1ai",
			Timeout:       30,
			MappingFile:   "config/tnved_category_mapping.json",
			CatalogValues: values.Default(),
		},
		ListenAddr: ":8082",
	}
}
