package config

import (
	"os"
	"strconv"
)

type Runtime struct {
	HTTPAddr      string
	RuleMaxPasses int
	PathMaxDepth  int
	CacheMaxItems int
	ObsBuffer     int
}

func Load() Runtime {
	return Runtime{
		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
		RuleMaxPasses: getenvInt("RULE_MAX_PASSES", 10, 1),
		PathMaxDepth:  getenvInt("PATH_MAX_DEPTH", 20, 1),
		CacheMaxItems: getenvInt("CACHE_MAX_ITEMS", 1024, 1),
		ObsBuffer:     getenvInt("OBS_BUFFER", 4096, 1),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback, min int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < min {
		return fallback
	}
	return v
}
