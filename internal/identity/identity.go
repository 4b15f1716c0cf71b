// Package identity resolves the AWS account the functions run under.
package identity

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Resolver looks up the account identifier of the calling credentials
type Resolver interface {
	AccountID(ctx context.Context) (string, error)
}

// STSAPI is the subset of the STS client used here
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// STSResolver answers "who am I" through sts:GetCallerIdentity
type STSResolver struct {
	client STSAPI
}

// NewSTSResolver builds a resolver from the default credential chain for region
func NewSTSResolver(ctx context.Context, region string) (*STSResolver, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewSTSResolverWithClient(sts.NewFromConfig(cfg)), nil
}

// NewSTSResolverWithClient wraps an existing STS client
func NewSTSResolverWithClient(client STSAPI) *STSResolver {
	return &STSResolver{client: client}
}

// AccountID returns the caller's account. An identity without an account yields "".
func (r *STSResolver) AccountID(ctx context.Context) (string, error) {
	out, err := r.client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("get caller identity: %w", err)
	}
	return aws.ToString(out.Account), nil
}

// Static always reports the same account. Used for local runs without credentials.
type Static string

// AccountID implements Resolver
func (s Static) AccountID(context.Context) (string, error) {
	return string(s), nil
}
