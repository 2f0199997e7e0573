package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags holds the values of the command-line flags. Register the groups a
// command needs, then turn the parsed values into a config source with
// [Flags.StructuredConfig].
type Flags struct {
	environment    string
	basePath       string
	jsonConfigPath string
	logLevel       string
	logFormat      string

	outputPath    string
	outputFormat  string
	vendorModules []string
	devServerHost string
	devServerPort int

	serverAddress   NetAddress
	requestTimeout  time.Duration
	shutdownTimeout time.Duration

	runtimeAddress string
	runtimeTimeout time.Duration
}

// RegisterFlags registers the global flags on fs.
//
// Flags:
//
//	-e/--env        environment profile (development|production)
//	-b/--base       base configuration file
//	-c/--config     json file path with configs
//	--log-level     log level
//	--log-format    log format (json|console)
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringVarP(&f.environment, "env", "e", "", "Environment profile: development or production (default from NODE_ENV, else development)")
	fs.StringVarP(&f.basePath, "base", "b", "", "Base configuration file (.json, .yaml, .yml, .toml)")
	fs.StringVarP(&f.jsonConfigPath, "config", "c", "", "JSON config file path")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.logFormat, "log-format", "", "Log format (json, console)")

	return f
}

// RegisterBuildFlags registers the composition flags on fs.
//
// Flags:
//
//	-o/--out          output file, stdout when empty
//	-f/--format       output format (json|yaml)
//	--vendor          vendor bundle modules
//	--dev-host        dev server bind address
//	--dev-port        dev server port
func (f *Flags) RegisterBuildFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&f.outputPath, "out", "o", "", "Output file (default stdout)")
	fs.StringVarP(&f.outputFormat, "format", "f", "", "Output format: json or yaml")
	fs.StringSliceVar(&f.vendorModules, "vendor", nil, "Modules moved into the vendor bundle (default vue)")
	fs.StringVar(&f.devServerHost, "dev-host", "", "Dev server bind address (default 0.0.0.0)")
	fs.IntVar(&f.devServerPort, "dev-port", 0, "Dev server port (default 8000)")
}

// RegisterServerFlags registers the HTTP API flags on fs.
//
// Flags:
//
//	-a/--address          server address in format [host]:[port]
//	--request-timeout     request timeout (e.g., "30s", "1m")
//	--shutdown-timeout    graceful shutdown timeout
func (f *Flags) RegisterServerFlags(fs *pflag.FlagSet) {
	fs.VarP(&f.serverAddress, "address", "a", "Net address host:port")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&f.shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
}

// RegisterRuntimeFlags registers the bundler runtime flags on fs.
//
// Flags:
//
//	-r/--runtime          bundler runtime address
//	--runtime-timeout     handoff request timeout
func (f *Flags) RegisterRuntimeFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&f.runtimeAddress, "runtime", "r", "", "Bundler runtime address")
	fs.DurationVar(&f.runtimeTimeout, "runtime-timeout", 0, "Bundler runtime request timeout")
}

// StructuredConfig converts the parsed flag values into a config source.
func (f *Flags) StructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		Environment: f.environment,
		Build: Build{
			BasePath:      f.basePath,
			OutputPath:    f.outputPath,
			OutputFormat:  f.outputFormat,
			VendorModules: f.vendorModules,
			DevServerHost: f.devServerHost,
			DevServerPort: f.devServerPort,
		},
		Server: Server{
			HTTPAddress:     f.serverAddress.String(),
			RequestTimeout:  f.requestTimeout,
			ShutdownTimeout: f.shutdownTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    f.runtimeAddress,
			RequestTimeout: f.runtimeTimeout,
		},
		App: App{
			LogLevel:  f.logLevel,
			LogFormat: f.logFormat,
		},
		JSONFilePath: f.jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
