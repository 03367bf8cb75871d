package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// FromEnv loads a .env file (if present, silently ignored otherwise, the
// same tolerant pattern the teacher's examples use around godotenv.Load)
// and overlays numeric limits and toggles onto a base Config from
// CLAWOME_-prefixed environment variables. Unset variables leave the base
// value untouched.
func FromEnv(base Config) Config {
	_ = godotenv.Load(".env")

	cfg := base
	if v, ok := envInt("CLAWOME_MAX_NODES"); ok {
		cfg.MaxNodes = v
	}
	if v, ok := envInt("CLAWOME_MAX_DEPTH"); ok {
		cfg.MaxDepth = v
	}
	if v, ok := envInt("CLAWOME_MAX_TEXT_LEN"); ok {
		cfg.MaxTextLen = v
	}
	if v, ok := envInt("CLAWOME_LITE_TEXT_MAX"); ok {
		cfg.LiteTextMax = v
	}
	if v, ok := envInt("CLAWOME_LITE_TEXT_HEAD"); ok {
		cfg.LiteTextHead = v
	}
	if v, ok := envBool("CLAWOME_DISABLE_OCCLUSION_FILTER"); ok {
		cfg.EnableOcclusionFilter = !v
	}
	if v, ok := envBool("CLAWOME_DISABLE_CONTAINMENT_FILTER"); ok {
		cfg.EnableContainmentFilter = !v
	}
	return cfg
}

func envInt(key string) (int, bool) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func envBool(key string) (bool, bool) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return false, false
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, false
	}
	return b, true
}
