package config

import "os"

// ServerlessConfig holds values the Lambda runtime exposes through the environment
type ServerlessConfig struct {
	IsLambda     bool
	FunctionName string
}

func loadServerlessConfig() ServerlessConfig {
	return ServerlessConfig{
		IsLambda:     isRunningInLambda(),
		FunctionName: os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
	}
}

// isRunningInLambda detects if the application is running in AWS Lambda
func isRunningInLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// DeploymentMode returns "serverless" inside Lambda and "local" otherwise
func (c *Config) DeploymentMode() string {
	if c.Lambda.IsLambda {
		return "serverless"
	}
	return "local"
}
