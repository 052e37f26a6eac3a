package replicon

import "os"

type Config struct {
	// ValidateSchemas controls whether registration compares component
	// schemas against the attached schema storage. Disable only for local
	// single-process runs.
	ValidateSchemas bool
}

func GetConfig() Config {
	return Config{
		ValidateSchemas: getEnv("REPLICON_VALIDATE_SCHEMAS", "true") == "true",
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
