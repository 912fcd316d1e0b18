package config

import "os"

// Development is on unless DEVELOPMENT is unset or "0".
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0" && development != ""
}

// LogFile is where the board logger writes, in addition to stderr. Empty
// means no file.
func LogFile() string {
	return os.Getenv("BUSCAMINAS_LOG_FILE")
}
