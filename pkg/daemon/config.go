package daemon

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/core-tools/hsu-sjw/pkg/detector"
	"github.com/core-tools/hsu-sjw/pkg/dispatcher"
	"github.com/core-tools/hsu-sjw/pkg/distributor"
	"github.com/core-tools/hsu-sjw/pkg/errors"
	"github.com/core-tools/hsu-sjw/pkg/logging"
	"github.com/core-tools/hsu-sjw/pkg/logtail"
	"github.com/core-tools/hsu-sjw/pkg/servicemanager"

	"gopkg.in/yaml.v3"
)

// DaemonConfig represents the top-level configuration file structure
type DaemonConfig struct {
	Server         ServerConfig              `yaml:"server"`
	Logging        logging.ZapConfig         `yaml:"logging"`
	ServiceManager ServiceManagerConfig      `yaml:"service_manager"`
	Units          []servicemanager.UnitSpec `yaml:"units"`
	UnitPatterns   []string                  `yaml:"unit_patterns,omitempty"`
	Detector       DetectorConfig            `yaml:"detector"`
	Distributor    distributor.Config        `yaml:"distributor"`
	Dispatcher     dispatcher.Config         `yaml:"dispatcher"`
	LogTail        logtail.Config            `yaml:"log_tail"`
	Metrics        MetricsConfig             `yaml:"metrics"`
	Tracing        TracingConfig             `yaml:"tracing"`
}

type ServerConfig struct {
	Port                 int           `yaml:"port"`
	ForceShutdownTimeout time.Duration `yaml:"force_shutdown_timeout,omitempty"`
}

// Backend selects the ServiceManager adapter implementation
type Backend string

const (
	BackendSystemd Backend = "systemd"
	BackendMemory  Backend = "memory"
)

type ServiceManagerConfig struct {
	Backend         Backend       `yaml:"backend"`
	UserBus         bool          `yaml:"user_bus,omitempty"`
	WatchSignals    *bool         `yaml:"watch_signals,omitempty"` // Pointer to distinguish unset from false
	UnitDirs        []string      `yaml:"unit_dirs,omitempty"`
	ConnectAttempts int           `yaml:"connect_attempts,omitempty"`
	ConnectDelay    time.Duration `yaml:"connect_delay,omitempty"`
}

// DetectorConfig extends the detector settings with the switch that widens
// the accepted poll interval range.
type DetectorConfig struct {
	detector.Config      `yaml:",inline"`
	PollIntervalOverride bool `yaml:"poll_interval_override,omitempty"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address,omitempty"`
}

type TracingConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Exporter string `yaml:"exporter,omitempty"` // "stdout"
	Output   string `yaml:"output,omitempty"`   // "stdout", "stderr", file path
	Pretty   bool   `yaml:"pretty,omitempty"`
}

const (
	defaultPort           = 50055
	defaultMetricsAddress = "127.0.0.1:9187"
	systemUnitDir         = "/etc/systemd/system"

	minPollInterval         = time.Second
	maxPollInterval         = 5 * time.Second
	minOverridePollInterval = 100 * time.Millisecond
	maxOverridePollInterval = time.Minute
)

// LoadConfigFromFile loads daemon configuration from a YAML file
func LoadConfigFromFile(filename string) (*DaemonConfig, error) {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.NewIOError("failed to read configuration file", err).WithContext("filename", filename)
	}

	var config DaemonConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.NewValidationError("failed to parse YAML configuration", err).WithContext("filename", filename)
	}

	if err := setConfigDefaults(&config); err != nil {
		return nil, errors.NewValidationError("failed to apply configuration defaults", err)
	}

	return &config, nil
}

// setConfigDefaults applies default values to configuration
func setConfigDefaults(config *DaemonConfig) error {
	if config.Server.Port == 0 {
		config.Server.Port = defaultPort
	}
	if config.Server.ForceShutdownTimeout == 0 {
		config.Server.ForceShutdownTimeout = 30 * time.Second
	}

	defaultLogging := logging.DefaultZapConfig()
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogging.Level
	}
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogging.Format
	}
	if config.Logging.Output == "" {
		config.Logging.Output = defaultLogging.Output
	}

	if err := setServiceManagerDefaults(&config.ServiceManager); err != nil {
		return err
	}

	defaultDetector := detector.DefaultConfig()
	if config.Detector.PollInterval == 0 {
		config.Detector.PollInterval = defaultDetector.PollInterval
	}
	if config.Detector.AdapterTimeout == 0 {
		config.Detector.AdapterTimeout = defaultDetector.AdapterTimeout
	}
	if config.Detector.MaxConcurrentQueries == 0 {
		config.Detector.MaxConcurrentQueries = defaultDetector.MaxConcurrentQueries
	}

	// max_consecutive_drops keeps its zero value, which disables eviction
	if config.Distributor.QueueSize == 0 {
		config.Distributor.QueueSize = distributor.DefaultConfig().QueueSize
	}

	defaultDispatcher := dispatcher.DefaultConfig()
	if config.Dispatcher.OperationTimeout == 0 {
		config.Dispatcher.OperationTimeout = defaultDispatcher.OperationTimeout
	}
	if config.Dispatcher.RecheckWait == 0 {
		config.Dispatcher.RecheckWait = defaultDispatcher.RecheckWait
	}

	defaultLogTail := logtail.DefaultConfig()
	if config.LogTail.JournalctlPath == "" {
		config.LogTail.JournalctlPath = defaultLogTail.JournalctlPath
	}
	if config.LogTail.OpenTimeout == 0 {
		config.LogTail.OpenTimeout = defaultLogTail.OpenTimeout
	}
	if config.LogTail.Buffer == 0 {
		config.LogTail.Buffer = defaultLogTail.Buffer
	}

	if config.Metrics.Address == "" {
		config.Metrics.Address = defaultMetricsAddress
	}

	if config.Tracing.Exporter == "" {
		config.Tracing.Exporter = "stdout"
	}
	if config.Tracing.Output == "" {
		config.Tracing.Output = "stdout"
	}

	return nil
}

func setServiceManagerDefaults(config *ServiceManagerConfig) error {
	if config.Backend == "" {
		config.Backend = BackendSystemd
	}
	if config.WatchSignals == nil {
		watch := true
		config.WatchSignals = &watch
	}
	if config.ConnectAttempts == 0 {
		config.ConnectAttempts = 5
	}
	if config.ConnectDelay == 0 {
		config.ConnectDelay = time.Second
	}

	if config.UnitDirs == nil && config.Backend == BackendSystemd {
		if !config.UserBus {
			config.UnitDirs = []string{systemUnitDir}
		} else {
			configDir, err := os.UserConfigDir()
			if err != nil {
				return errors.NewIOError("failed to resolve user unit directory", err)
			}
			config.UnitDirs = []string{filepath.Join(configDir, "systemd", "user")}
		}
	}

	return nil
}

// ValidateConfig validates the entire configuration structure
func ValidateConfig(config *DaemonConfig) error {
	if config == nil {
		return errors.NewValidationError("configuration cannot be nil", nil)
	}

	if err := validateServerConfig(&config.Server); err != nil {
		return errors.NewValidationError("invalid server configuration", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return errors.NewValidationError("invalid logging configuration", err)
	}

	if err := validateServiceManagerConfig(&config.ServiceManager); err != nil {
		return errors.NewValidationError("invalid service manager configuration", err)
	}

	if err := validateUnitsConfig(config.Units, config.UnitPatterns); err != nil {
		return errors.NewValidationError("invalid units configuration", err)
	}

	if err := validateDetectorConfig(&config.Detector); err != nil {
		return errors.NewValidationError("invalid detector configuration", err)
	}

	if config.Distributor.QueueSize < 1 {
		return errors.NewValidationError(
			fmt.Sprintf("invalid distributor queue size: %d", config.Distributor.QueueSize), nil)
	}
	if config.Distributor.MaxConsecutiveDrops < 0 {
		return errors.NewValidationError("distributor max consecutive drops cannot be negative", nil)
	}

	if err := ValidateTimeout(config.Dispatcher.OperationTimeout, "operation"); err != nil {
		return errors.NewValidationError("invalid dispatcher configuration", err)
	}
	if err := ValidateTimeout(config.Dispatcher.RecheckWait, "recheck"); err != nil {
		return errors.NewValidationError("invalid dispatcher configuration", err)
	}

	if err := validateLogTailConfig(&config.LogTail); err != nil {
		return errors.NewValidationError("invalid log tail configuration", err)
	}

	if config.Metrics.Enabled {
		if err := ValidateNetworkAddress(config.Metrics.Address); err != nil {
			return errors.NewValidationError("invalid metrics configuration", err)
		}
	}

	if config.Tracing.Enabled && config.Tracing.Exporter != "stdout" {
		return errors.NewValidationError(
			fmt.Sprintf("unsupported tracing exporter: %s", config.Tracing.Exporter),
			nil,
		).WithContext("supported_exporters", "stdout")
	}

	return nil
}

// Validation functions

func validateServerConfig(config *ServerConfig) error {
	if err := ValidatePort(config.Port); err != nil {
		return errors.NewValidationError(
			fmt.Sprintf("invalid port number: %d", config.Port),
			err,
		).WithContext("valid_range", "1-65535")
	}
	return ValidateTimeout(config.ForceShutdownTimeout, "force shutdown")
}

func validateLoggingConfig(config *logging.ZapConfig) error {
	if _, err := logging.ParseLogLevel(config.Level); err != nil {
		return errors.NewValidationError(
			fmt.Sprintf("invalid log level: %s", config.Level),
			nil,
		).WithContext("valid_levels", "debug, info, warn, error")
	}

	switch config.Format {
	case "json", "console":
		return nil
	default:
		return errors.NewValidationError(
			fmt.Sprintf("invalid log format: %s", config.Format),
			nil,
		).WithContext("valid_formats", "json, console")
	}
}

func validateServiceManagerConfig(config *ServiceManagerConfig) error {
	switch config.Backend {
	case BackendSystemd, BackendMemory:
	default:
		return errors.NewValidationError(
			fmt.Sprintf("unsupported service manager backend: %s", config.Backend),
			nil,
		).WithContext("supported_backends", "systemd, memory")
	}

	if config.ConnectAttempts < 1 {
		return errors.NewValidationError(
			fmt.Sprintf("invalid connect attempts: %d", config.ConnectAttempts), nil)
	}
	return ValidateTimeout(config.ConnectDelay, "connect delay")
}

func validateUnitsConfig(units []servicemanager.UnitSpec, patterns []string) error {
	for i, unit := range units {
		if err := ValidateUnitID(unit.ID); err != nil {
			return errors.NewValidationError(
				fmt.Sprintf("invalid unit ID at index %d", i),
				err,
			).WithContext("unit_id", unit.ID)
		}
		if unit.Name == "" {
			return errors.NewValidationError(
				fmt.Sprintf("unit name cannot be empty at index %d", i),
				nil,
			).WithContext("unit_id", unit.ID)
		}
	}

	// The catalog rejects duplicates, empty names and malformed patterns
	_, err := servicemanager.NewCatalog(units, patterns)
	return err
}

func validateDetectorConfig(config *DetectorConfig) error {
	minInterval, maxInterval := minPollInterval, maxPollInterval
	if config.PollIntervalOverride {
		minInterval, maxInterval = minOverridePollInterval, maxOverridePollInterval
	}
	if config.PollInterval < minInterval || config.PollInterval > maxInterval {
		return errors.NewValidationError(
			fmt.Sprintf("poll interval %s out of range", config.PollInterval),
			nil,
		).WithContext("valid_range", fmt.Sprintf("%s-%s", minInterval, maxInterval))
	}

	if err := ValidateTimeout(config.AdapterTimeout, "adapter"); err != nil {
		return err
	}

	if config.MaxConcurrentQueries < 1 {
		return errors.NewValidationError(
			fmt.Sprintf("invalid max concurrent queries: %d", config.MaxConcurrentQueries), nil)
	}
	return nil
}

func validateLogTailConfig(config *logtail.Config) error {
	if config.JournalctlPath == "" {
		return errors.NewValidationError("journalctl path cannot be empty", nil)
	}
	if config.Buffer < 1 {
		return errors.NewValidationError(fmt.Sprintf("invalid log buffer size: %d", config.Buffer), nil)
	}
	return ValidateTimeout(config.OpenTimeout, "open")
}

// ValidateConfigFile validates a configuration file without running the daemon
func ValidateConfigFile(configFile string) error {
	config, err := LoadConfigFromFile(configFile)
	if err != nil {
		return errors.NewIOError("failed to load configuration", err).WithContext("config_file", configFile)
	}

	if err := ValidateConfig(config); err != nil {
		return errors.NewValidationError("configuration validation failed", err).WithContext("config_file", configFile)
	}

	return nil
}
