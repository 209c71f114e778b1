package config

import "time"

const (
	BackendDynamo   = "dynamo"
	BackendPostgres = "postgres"

	PolicyHalt     = "halt"
	PolicyContinue = "continue"
)

type Config struct {
	Server   ServerConfig   `envPrefix:"SERVER_"`
	S3       S3Config       `envPrefix:"S3_"`
	Audit    AuditConfig    `envPrefix:"AUDIT_"`
	Database Database       `envPrefix:"DATABASE_"`
	Pipeline PipelineConfig `envPrefix:"PIPELINE_"`
	Sentry   SentryConfig   `envPrefix:"SENTRY_"`
	Log      LogConfig      `envPrefix:"LOG_"`
}

type ServerConfig struct {
	Port         int           `env:"PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"60s"`
}

type S3Config struct {
	Region      string `env:"REGION" envDefault:"us-east-1"`
	Endpoint    string `env:"ENDPOINT"` // set for MinIO/R2 style deployments
	AccessKeyID string `env:"ACCESS_KEY_ID"`
	SecretKey   string `env:"SECRET_KEY"`
	DestBucket  string `env:"DEST_BUCKET,required"`
}

type AuditConfig struct {
	Backend  string `env:"BACKEND" envDefault:"dynamo"`
	Table    string `env:"TABLE" envDefault:"hala-db"`
	Region   string `env:"REGION" envDefault:"us-east-1"`
	Endpoint string `env:"ENDPOINT"` // set for dynamodb-local
}

type Database struct {
	DSN string `env:"DSN"`
}

type PipelineConfig struct {
	TmpDir        string `env:"TMP_DIR" envDefault:"/tmp"`
	FailurePolicy string `env:"FAILURE_POLICY" envDefault:"halt"`
}

type SentryConfig struct {
	SentryDSN   string `env:"DSN"`
	Environment string `env:"ENVIRONMENT" envDefault:"production"`
}

type LogConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"json"`
}
