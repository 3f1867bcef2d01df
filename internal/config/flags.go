package config

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// BindCommonFlags registers the flags shared by both binaries on fs and
// returns the config they write into. Values are read after fs is parsed.
//
// Flags:
//
//	-c/--config        path to a .json or .toml config file
//	--log-level        zerolog level
//	--metrics-address  host:port to serve /metrics on
func BindCommonFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.ConfigFilePath, "config", "c", "", "Config file path (.json or .toml)")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Telemetry.MetricsAddress, "metrics-address", "", "Serve Prometheus metrics on host:port")

	return cfg
}

// BindClientFlags registers the memclip client flags on fs.
//
// Flags:
//
//	--hub              hub base URL
//	--poll-interval    clipboard poll interval (e.g. "1s")
//	--wait-timeout     publisher wait timeout
//	--request-timeout  hub request timeout
//	--log-file         client log file
//	--tui              show the status dashboard
func BindClientFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := BindCommonFlags(fs)

	fs.StringVar(&cfg.Adapter.HubAddress, "hub", "", "Hub base URL (e.g. http://127.0.0.1:8089)")
	fs.DurationVar(&cfg.Clipboard.PollInterval, "poll-interval", 0, "Clipboard poll interval (e.g. 1s, 500ms)")
	fs.DurationVar(&cfg.Sync.WaitTimeout, "wait-timeout", 0, "Publisher wait timeout (e.g. 5s)")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Hub request timeout (e.g. 15s)")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Log file path")
	fs.BoolVar(&cfg.App.Dashboard, "tui", false, "Show the live status dashboard")

	return cfg
}

// BindServerFlags registers the memclip-hub flags on fs.
//
// Flags:
//
//	-a/--address       listen address host:port
//	-d/--dsn           database DSN (SQLite path or postgres:// URL)
//	--request-timeout  request timeout
//	--peer-ttl         presence timeout
func BindServerFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := BindCommonFlags(fs)

	fs.VarP(&serverAddress{cfg: cfg}, "address", "a", "Net address host:port")
	fs.StringVarP(&cfg.Storage.DB.DSN, "dsn", "d", "", "Database DSN")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g. 15s)")
	fs.DurationVar(&cfg.Server.PeerTTL, "peer-ttl", 0, "Peer presence timeout (e.g. 60s)")

	return cfg
}

// serverAddress validates the listen address as a NetAddress and stores its
// canonical form in the bound config.
type serverAddress struct {
	addr NetAddress
	cfg  *StructuredConfig
}

func (s *serverAddress) String() string { return s.addr.String() }

func (s *serverAddress) Type() string { return s.addr.Type() }

func (s *serverAddress) Set(v string) error {
	if err := s.addr.Set(v); err != nil {
		return err
	}
	s.cfg.Server.HTTPAddress = s.addr.String()
	return nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Type names the flag value kind in help output.
func (a *NetAddress) Type() string {
	return "host:port"
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is a positive integer up to 65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
