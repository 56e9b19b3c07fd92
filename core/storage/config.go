package storage

import "time"

// Config holds the S3 compatible object storage settings.
type Config struct {
	// Endpoint is host:port of the service; a scheme prefix is stripped.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket holds the document snapshots addressed by storage: keys.
	Bucket string `mapstructure:"bucket" default:"snapshots"`
	// Region is used when the bucket has to be created.
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds dialing, TLS handshakes and the first response byte.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// CacheSeconds is how long the server reuses a loaded snapshot. Zero disables caching.
	CacheSeconds int `mapstructure:"cache_seconds" default:"300"`
}

// CacheTTL returns CacheSeconds as a duration.
func (c Config) CacheTTL() time.Duration {
	if c.CacheSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheSeconds) * time.Second
}
