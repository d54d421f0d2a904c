package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	UpstreamREST   = "rest"
	UpstreamGitHub = "github"
)

type Config struct {
	Env           string
	HTTPServer    HTTPServer
	Upstream      Upstream
	Repositories  []string
	CommentPolicy CommentPolicy
	Report        Report
}

type HTTPServer struct {
	Address        string
	Port           int
	RequestTimeout time.Duration
}

type Upstream struct {
	Kind            string
	BaseURL         string
	Token           string
	Timeout         time.Duration
	MembersCacheTTL time.Duration
	PRCacheTTL      time.Duration
	GitHubOrg       string
	GitHubBaseURL   string
}

type CommentPolicy struct {
	File string
}

type Report struct {
	Branding          string
	ChartReadyTimeout time.Duration
}

var defaultRepositories = []string{
	"bitdelta_web",
	"difx_exchange_rewamp",
	"ofza_web",
	"visiion_web",
	"doshx",
	"zenit",
	"webcore",
	"difx_web_reusable_libs",
	"delta_frontend_main",
	"delta_frontend_libs",
	"delta_frontend_derivative",
	"difx_web_wallet_app",
}

func MustLoad() *Config {
	cfg, err := Load("")
	if err != nil {
		log.Printf("Error reading config: %s", err)
		os.Exit(1)
	}
	return cfg
}

// Load reads config/config.yaml (or file, when given) and applies PRDASH_* env overrides.
// A missing default config file is not an error.
func Load(file string) (*Config, error) {
	v := viper.New()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("PRDASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", "dev")

	v.SetDefault("http_server.address", "0.0.0.0")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.request_timeout", 60*time.Second)

	v.SetDefault("upstream.kind", UpstreamREST)
	v.SetDefault("upstream.base_url", "http://localhost:5001")
	v.SetDefault("upstream.token", "")
	v.SetDefault("upstream.timeout", 30*time.Second)
	v.SetDefault("upstream.members_cache_ttl", 5*time.Minute)
	v.SetDefault("upstream.pr_cache_ttl", time.Minute)
	v.SetDefault("upstream.github_org", "")
	v.SetDefault("upstream.github_base_url", "")

	v.SetDefault("repositories", defaultRepositories)
	v.SetDefault("comment_policy.file", "")

	v.SetDefault("report.branding", "PR Dashboard - Performance Analytics")
	v.SetDefault("report.chart_ready_timeout", 10*time.Second)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Env: v.GetString("env"),
		HTTPServer: HTTPServer{
			Address:        v.GetString("http_server.address"),
			Port:           v.GetInt("http_server.port"),
			RequestTimeout: v.GetDuration("http_server.request_timeout"),
		},
		Upstream: Upstream{
			Kind:            strings.ToLower(v.GetString("upstream.kind")),
			BaseURL:         strings.TrimRight(v.GetString("upstream.base_url"), "/"),
			Token:           v.GetString("upstream.token"),
			Timeout:         v.GetDuration("upstream.timeout"),
			MembersCacheTTL: v.GetDuration("upstream.members_cache_ttl"),
			PRCacheTTL:      v.GetDuration("upstream.pr_cache_ttl"),
			GitHubOrg:       v.GetString("upstream.github_org"),
			GitHubBaseURL:   v.GetString("upstream.github_base_url"),
		},
		Repositories: v.GetStringSlice("repositories"),
		CommentPolicy: CommentPolicy{
			File: v.GetString("comment_policy.file"),
		},
		Report: Report{
			Branding:          v.GetString("report.branding"),
			ChartReadyTimeout: v.GetDuration("report.chart_ready_timeout"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Upstream.Kind {
	case UpstreamREST:
		if c.Upstream.BaseURL == "" {
			return errors.New("upstream.base_url is required for the rest upstream")
		}
	case UpstreamGitHub:
		if c.Upstream.GitHubOrg == "" {
			return errors.New("upstream.github_org is required for the github upstream")
		}
	default:
		return fmt.Errorf("unknown upstream.kind %q", c.Upstream.Kind)
	}
	if len(c.Repositories) == 0 {
		return errors.New("at least one repository must be configured")
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HTTPServer.Address, c.HTTPServer.Port)
}
