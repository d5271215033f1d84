package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"nupkg/pkg/cache"
	"nupkg/pkg/logger"
	"nupkg/pkg/nupkg"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables for logger and cache settings
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "INFO"
	}
	logger.Init(logLevel)

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: nupkg-inspect <package.nupkg>")
		os.Exit(2)
	}
	path := os.Args[1]

	store := cache.NewMemory(envInt("NUPKG_CACHE_SIZE", cache.DefaultSize),
		time.Duration(envInt("NUPKG_CACHE_TTL_SECONDS", int(cache.DefaultTTL/time.Second)))*time.Second)

	reader, err := nupkg.NewPackageReader(nupkg.OSFileSource(path), nupkg.WithCache(store))
	if err != nil {
		logger.Error("Failed to open package", "path", path, "err", err)
		os.Exit(1)
	}

	m := reader.Manifest().Metadata
	fmt.Printf("Package:     %s %s\n", m.ID, m.Version)
	if m.Description != "" {
		fmt.Printf("Description: %s\n", m.Description)
	}
	if deps := reader.Manifest().AllDependencies(); len(deps) > 0 {
		fmt.Println("Dependencies:")
		for _, d := range deps {
			fmt.Printf("  %s %s\n", d.ID, d.VersionRange)
		}
	}

	files, err := reader.Files()
	if err != nil {
		logger.Error("Failed to list files", "err", err)
		os.Exit(1)
	}
	fmt.Printf("Files (%d):\n", len(files))
	for _, f := range files {
		if fw := f.TargetFramework(); !fw.IsNone() {
			fmt.Printf("  %s (%s -> %s)\n", f.Path(), fw, f.EffectivePath())
		} else {
			fmt.Printf("  %s\n", f.Path())
		}
	}

	refs, err := reader.AssemblyReferences()
	if err != nil {
		logger.Error("Failed to list assemblies", "err", err)
		os.Exit(1)
	}
	fmt.Printf("Assemblies (%d):\n", len(refs))
	for _, a := range refs {
		fmt.Printf("  %s\n", a.Name())
	}

	fws, err := reader.SupportedFrameworks()
	if err != nil {
		logger.Error("Failed to compute frameworks", "err", err)
		os.Exit(1)
	}
	fmt.Print("Supported frameworks:")
	for _, fw := range fws {
		fmt.Printf(" %s", fw)
	}
	fmt.Println()
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
