package config

// Version is stamped at build time via -ldflags.
var Version = "dev"
