package observability

import (
	"fmt"
	"net/url"

	"github.com/grafana/pyroscope-go"
	"github.com/riskibarqy/football-stats-web/internal/config"
	"github.com/riskibarqy/football-stats-web/internal/platform/logging"
)

// InitPyroscope starts continuous profiling when enabled. The returned stop
// func is never nil.
func InitPyroscope(cfg config.Config, logger *logging.Logger) (func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if !cfg.PyroscopeEnabled {
		logger.Info("pyroscope disabled", "reason", "PYROSCOPE_ENABLED=false")
		return func() error { return nil }, nil
	}

	profilerCfg := profilerConfig(cfg, logger)
	profiler, err := pyroscope.Start(profilerCfg)
	if err != nil {
		return nil, err
	}

	logger.Info("pyroscope enabled",
		"server_address", profilerCfg.ServerAddress,
		"application", profilerCfg.ApplicationName,
		"tags", profilerCfg.Tags,
	)
	return profiler.Stop, nil
}

// profilerConfig tags every profile with the release and the stats backend
// host, so a slow page can be matched to the backend it was talking to.
// Mutex and block profiles are collected only alongside pprof, which sets
// the sampling rates they need.
func profilerConfig(cfg config.Config, logger *logging.Logger) pyroscope.Config {
	tags := map[string]string{
		"env":     cfg.AppEnv,
		"service": cfg.ServiceName,
		"version": cfg.ServiceVersion,
	}
	if u, err := url.Parse(cfg.StatsAPIBaseURL); err == nil && u.Host != "" {
		tags["stats_api_host"] = u.Host
	}

	types := []pyroscope.ProfileType{
		pyroscope.ProfileCPU,
		pyroscope.ProfileAllocObjects,
		pyroscope.ProfileAllocSpace,
		pyroscope.ProfileInuseObjects,
		pyroscope.ProfileInuseSpace,
		pyroscope.ProfileGoroutines,
	}
	if cfg.PprofEnabled {
		types = append(types,
			pyroscope.ProfileMutexCount,
			pyroscope.ProfileMutexDuration,
			pyroscope.ProfileBlockCount,
			pyroscope.ProfileBlockDuration,
		)
	}

	return pyroscope.Config{
		ApplicationName:   cfg.PyroscopeAppName,
		ServerAddress:     cfg.PyroscopeServerAddress,
		AuthToken:         cfg.PyroscopeAuthToken,
		BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
		BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
		UploadRate:        cfg.PyroscopeUploadRate,
		Logger:            pyroscopeLogger{logger.Named("pyroscope")},
		Tags:              tags,
		ProfileTypes:      types,
	}
}

// pyroscopeLogger routes the agent's printf-style logs into the service logger.
type pyroscopeLogger struct{ logger *logging.Logger }

func (l pyroscopeLogger) Infof(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l pyroscopeLogger) Debugf(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l pyroscopeLogger) Errorf(format string, args ...any) {
	l.logger.Error(fmt.Sprintf(format, args...))
}
