// Package config reads operator- and worker-level configuration from the
// process environment. Neither binary accepts a config file; the deployed
// CronJob/manager Deployment sets these as plain environment variables
// (see internal/stackservice/workload.go for where OPERATOR_NAMESPACE is
// threaded into the generated workload).
package config

import (
	"os"

	"github.com/stromee/pulumi-operator/internal/apperrors"
)

// Config is the operator process's configuration.
type Config struct {
	// OperatorNamespace is the single namespace that hosts every per-stack
	// CronJob the Stack Service materializes.
	OperatorNamespace string
	// WorkerImage is the container image run by each stack's CronJob; it
	// carries cmd/worker and the pulumi CLI.
	WorkerImage string
}

// Load reads the operator's configuration from the environment.
func Load() (*Config, error) {
	ns := os.Getenv("OPERATOR_NAMESPACE")
	if ns == "" {
		return nil, apperrors.New(apperrors.ConfigMissing, "OPERATOR_NAMESPACE is required")
	}
	image := os.Getenv("WORKER_IMAGE")
	if image == "" {
		return nil, apperrors.New(apperrors.ConfigMissing, "WORKER_IMAGE is required")
	}
	return &Config{OperatorNamespace: ns, WorkerImage: image}, nil
}

// WorkerConfig is the worker process's configuration, read from the
// environment variables set on its generated container (see
// internal/stackservice.workload.go).
type WorkerConfig struct {
	PulumiStack       string
	WatchNamespace    string
	OperatorNamespace string
}

// LoadWorker reads the worker's configuration from the environment.
func LoadWorker() (*WorkerConfig, error) {
	cfg := WorkerConfig{
		PulumiStack:       os.Getenv("PULUMI_STACK"),
		WatchNamespace:    os.Getenv("WATCH_NAMESPACE"),
		OperatorNamespace: os.Getenv("OPERATOR_NAMESPACE"),
	}
	switch {
	case cfg.PulumiStack == "":
		return nil, apperrors.New(apperrors.ConfigMissing, "PULUMI_STACK is required")
	case cfg.WatchNamespace == "":
		return nil, apperrors.New(apperrors.ConfigMissing, "WATCH_NAMESPACE is required")
	case cfg.OperatorNamespace == "":
		return nil, apperrors.New(apperrors.ConfigMissing, "OPERATOR_NAMESPACE is required")
	}
	return &cfg, nil
}
