package config

import (
	"os"
	"testing"
	"time"
)

var envVars = []string{
	"ENVIRONMENT",
	"CUSTOM_MESSAGE",
	"AWS_REGION",
	"LOG_LEVEL",
	"ACCOUNT_ID",
	"PORT",
	"INVOKE_TIMEOUT",
	"AWS_LAMBDA_FUNCTION_NAME",
}

func TestLoad(t *testing.T) {
	// Save original environment
	originalEnv := make(map[string]string)
	for _, key := range envVars {
		originalEnv[key] = os.Getenv(key)
		os.Unsetenv(key)
	}

	// Restore environment after test
	defer func() {
		for key, value := range originalEnv {
			if value != "" {
				os.Setenv(key, value)
			} else {
				os.Unsetenv(key)
			}
		}
	}()

	tests := []struct {
		name    string
		envVars map[string]string
		wantErr bool
		check   func(*Config)
	}{
		{
			name:    "default configuration",
			envVars: map[string]string{},
			check: func(config *Config) {
				if config.Environment != "dev" {
					t.Errorf("Expected default environment dev, got %s", config.Environment)
				}
				if config.Region != "us-east-1" {
					t.Errorf("Expected default region us-east-1, got %s", config.Region)
				}
				if config.LogLevel != "info" {
					t.Errorf("Expected default log level info, got %s", config.LogLevel)
				}
				if config.CustomMessage != nil {
					t.Errorf("Expected unset custom message, got %q", *config.CustomMessage)
				}
				if config.MessageOr("fallback") != "fallback" {
					t.Errorf("Expected fallback message, got %q", config.MessageOr("fallback"))
				}
				if config.Server.Port != "8080" {
					t.Errorf("Expected default port 8080, got %s", config.Server.Port)
				}
				if config.Server.InvokeTimeout != 3*time.Second {
					t.Errorf("Expected default invoke timeout 3s, got %v", config.Server.InvokeTimeout)
				}
				if config.DeploymentMode() != "local" {
					t.Errorf("Expected local deployment mode, got %s", config.DeploymentMode())
				}
			},
		},
		{
			name: "custom configuration",
			envVars: map[string]string{
				"ENVIRONMENT":              "prod",
				"CUSTOM_MESSAGE":           "hi there",
				"AWS_REGION":               "eu-west-1",
				"LOG_LEVEL":                "debug",
				"ACCOUNT_ID":               "123456789012",
				"PORT":                     "9000",
				"INVOKE_TIMEOUT":           "15s",
				"AWS_LAMBDA_FUNCTION_NAME": "sample-two",
			},
			check: func(config *Config) {
				if config.Environment != "prod" {
					t.Errorf("Expected environment prod, got %s", config.Environment)
				}
				if config.MessageOr("fallback") != "hi there" {
					t.Errorf("Expected custom message, got %q", config.MessageOr("fallback"))
				}
				if config.Region != "eu-west-1" {
					t.Errorf("Expected region eu-west-1, got %s", config.Region)
				}
				if config.AccountID != "123456789012" {
					t.Errorf("Expected account id override, got %s", config.AccountID)
				}
				if config.Server.InvokeTimeout != 15*time.Second {
					t.Errorf("Expected invoke timeout 15s, got %v", config.Server.InvokeTimeout)
				}
				if !config.Lambda.IsLambda || config.Lambda.FunctionName != "sample-two" {
					t.Errorf("Expected lambda mode for sample-two, got %+v", config.Lambda)
				}
				if config.DeploymentMode() != "serverless" {
					t.Errorf("Expected serverless deployment mode, got %s", config.DeploymentMode())
				}
			},
		},
		{
			name:    "explicitly empty custom message",
			envVars: map[string]string{"CUSTOM_MESSAGE": ""},
			check: func(config *Config) {
				if config.CustomMessage == nil {
					t.Fatal("Expected custom message to be set")
				}
				if got := config.MessageOr("fallback"); got != "" {
					t.Errorf("Expected empty message to be kept, got %q", got)
				}
			},
		},
		{
			name:    "invalid log level",
			envVars: map[string]string{"LOG_LEVEL": "verbose"},
			wantErr: true,
		},
		{
			name:    "invalid port",
			envVars: map[string]string{"PORT": "http"},
			wantErr: true,
		},
		{
			name:    "non-positive invoke timeout",
			envVars: map[string]string{"INVOKE_TIMEOUT": "0s"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range envVars {
				os.Unsetenv(key)
			}
			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}

			config, err := Load()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil && config != nil {
				tt.check(config)
			}
		})
	}
}

func TestMessageOr(t *testing.T) {
	config := &Config{}
	if got := config.MessageOr("Hello"); got != "Hello" {
		t.Errorf("Expected fallback, got %q", got)
	}
}
