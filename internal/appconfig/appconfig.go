package appconfig

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"text/template"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

const (
	DefaultCongressURL  = "https://api.congress.gov/v3"
	DefaultCivicInfoURL = "https://www.googleapis.com/civicinfo/v2"
	DefaultFECURL       = "https://api.open.fec.gov/v1"
	DefaultFECCycle     = 2024
	DefaultRadiusMiles  = 5.0
)

// Config holds all configuration details
type Config struct {
	Host     string         `yaml:"host"`
	BasePath string         `yaml:"basePath"`
	DocsPath string         `yaml:"docsPath"`
	Accounts AccountsConfig `yaml:"accounts"`
	Database DatabaseConfig `yaml:"database"`
	Pulsar   PulsarConfig   `yaml:"pulsar"`
	Keycloak KeycloakConfig `yaml:"keycloak"`
	AWS      AWSConfig      `yaml:"aws"`
	APIs     APIsConfig     `yaml:"apis"`
	Posts    PostsConfig    `yaml:"posts"`
}

// AccountsConfig defines the sender of account emails
type AccountsConfig struct {
	SenderEmail string `yaml:"senderEmail"`
}

// DatabaseConfig defines the database connection details
type DatabaseConfig struct {
	Driver string       `yaml:"driver"`
	Source string       `yaml:"source"`
	Tunnel TunnelConfig `yaml:"tunnel"`
}

// TunnelConfig describes an SSH bastion used to reach a private database
// from a developer machine.
type TunnelConfig struct {
	SSHUser        string `yaml:"sshUser"`
	SSHHost        string `yaml:"sshHost"`
	SSHPort        string `yaml:"sshPort"`
	RemoteHost     string `yaml:"remoteHost"`
	RemotePort     string `yaml:"remotePort"`
	LocalPort      string `yaml:"localPort"`
	PrivateKeyPath string `yaml:"privateKeyPath"`
	KnownHostsPath string `yaml:"knownHostsPath"`
}

// PulsarConfig defines the messaging system connection details
type PulsarConfig struct {
	URL           string `yaml:"url"`
	TopicProducer string `yaml:"topicProducer"`
	TopicConsumer string `yaml:"topicConsumer"`
	Subscription  string `yaml:"subscription"`
}

// KeycloakConfig defines authentication configuration
type KeycloakConfig struct {
	ClientId string `yaml:"clientId"`
	URL      string `yaml:"url"`
	Realm    string `yaml:"realm"`
}

type S3Config struct {
	Bucket string `yaml:"bucket"`
}

type AWSConfig struct {
	Region     string   `yaml:"region"`
	SecretName string   `yaml:"secretName"`
	S3         S3Config `yaml:"s3"`
}

type APIConfig struct {
	URL string `yaml:"url"`
	Key string `yaml:"key"`
}

type FECConfig struct {
	URL   string `yaml:"url"`
	Key   string `yaml:"key"`
	Cycle int    `yaml:"cycle"`
}

// APIsConfig holds the government and campaign finance API endpoints
type APIsConfig struct {
	Congress  APIConfig `yaml:"congress"`
	CivicInfo APIConfig `yaml:"civicInfo"`
	FEC       FECConfig `yaml:"fec"`
}

type PostsConfig struct {
	NeighborhoodRadiusMiles float64 `yaml:"neighborhoodRadiusMiles"`
}

// LoadConfig loads and parses the configuration from a given file path
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		err := errors.New("config file path is required")
		log.Error().Err(err).Msg("config file not provided")
		return nil, err
	}

	// Parse the template file
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		log.Error().Err(err).Msg("error parsing config file template")
		return nil, err
	}

	// Execute the template with environment variables
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, loadEnvVars()); err != nil {
		log.Error().Err(err).Msg("error executing config file template")
		return nil, err
	}

	// Load and unmarshal the YAML
	var config Config
	if err := yaml.Unmarshal(buf.Bytes(), &config); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal config YAML")
		return nil, err
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.Database.Source == "" {
		c.Database.Source = os.Getenv("DATABASE_URL")
	}
	if c.APIs.Congress.URL == "" {
		c.APIs.Congress.URL = DefaultCongressURL
	}
	if c.APIs.CivicInfo.URL == "" {
		c.APIs.CivicInfo.URL = DefaultCivicInfoURL
	}
	if c.APIs.FEC.URL == "" {
		c.APIs.FEC.URL = DefaultFECURL
	}
	if c.APIs.FEC.Cycle == 0 {
		c.APIs.FEC.Cycle = DefaultFECCycle
	}
	if c.Database.Tunnel.SSHPort == "" {
		c.Database.Tunnel.SSHPort = "22"
	}
	if c.Database.Tunnel.RemotePort == "" {
		c.Database.Tunnel.RemotePort = "5432"
	}
	if c.Database.Tunnel.LocalPort == "" {
		c.Database.Tunnel.LocalPort = "5433"
	}
	if c.Posts.NeighborhoodRadiusMiles <= 0 {
		c.Posts.NeighborhoodRadiusMiles = DefaultRadiusMiles
	}
}

// loadEnvVars loads environment variables into a map
func loadEnvVars() map[string]string {
	envVars := make(map[string]string)
	for _, env := range os.Environ() {
		kv := strings.SplitN(env, "=", 2)
		if len(kv) == 2 {
			envVars[kv[0]] = kv[1]
		}
	}
	return envVars
}
