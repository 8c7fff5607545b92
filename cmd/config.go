package cmd

type Config struct {
	HTTPPort               string
	ServerURL              string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	SessionCleanupSchedule string
}
