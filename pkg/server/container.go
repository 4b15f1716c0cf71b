package server

import (
	"context"
	"fmt"
	"io"
	"os"

	"lambda-workloads/internal/config"
	"lambda-workloads/internal/handlers"
	"lambda-workloads/internal/identity"
	"lambda-workloads/internal/logging"

	"github.com/sirupsen/logrus"
)

// Container holds all application dependencies
type Container struct {
	Config    *config.Config
	Logger    *logrus.Logger
	Accounts  identity.Resolver
	SampleOne *handlers.SampleOne
	SampleTwo *handlers.SampleTwo
}

// ContainerOption customises container construction
type ContainerOption func(*containerOptions)

type containerOptions struct {
	logOutput io.Writer
	accounts  identity.Resolver
}

// WithLogOutput redirects the process logger
func WithLogOutput(w io.Writer) ContainerOption {
	return func(o *containerOptions) { o.logOutput = w }
}

// WithAccounts replaces the identity resolver
func WithAccounts(r identity.Resolver) ContainerOption {
	return func(o *containerOptions) { o.accounts = r }
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config, opts ...ContainerOption) (*Container, error) {
	options := containerOptions{logOutput: os.Stdout}
	for _, opt := range opts {
		opt(&options)
	}

	logger := logging.New(cfg.LogLevel, options.logOutput)

	accounts := options.accounts
	if accounts == nil {
		var err error
		accounts, err = newAccountResolver(ctx, cfg)
		if err != nil {
			return nil, err
		}
	}

	logger.WithFields(logrus.Fields{
		"environment":     cfg.Environment,
		"region":          cfg.Region,
		"deployment_mode": cfg.DeploymentMode(),
	}).Debug("Container initialized")

	return &Container{
		Config:    cfg,
		Logger:    logger,
		Accounts:  accounts,
		SampleOne: handlers.NewSampleOne(cfg, logger),
		SampleTwo: handlers.NewSampleTwo(cfg, accounts, logger),
	}, nil
}

func newAccountResolver(ctx context.Context, cfg *config.Config) (identity.Resolver, error) {
	if cfg.AccountID != "" {
		return identity.Static(cfg.AccountID), nil
	}
	resolver, err := identity.NewSTSResolver(ctx, cfg.Region)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize identity resolver: %w", err)
	}
	return resolver, nil
}
