package catalog

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/glue"
	"github.com/charmbracelet/log"

	"github.com/theapemachine/mcp-server-glue-catalog/pkg/config"
)

// LoadAWSConfig resolves the SDK configuration from the ambient environment,
// overridden by whatever cfg sets explicitly.
func LoadAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error

	if cfg.AWS.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.AWS.Region))
	}
	if cfg.AWS.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(cfg.AWS.Profile))
	}
	if cfg.AWS.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWS.AccessKeyID, cfg.AWS.SecretAccessKey, cfg.AWS.SessionToken),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return awsCfg, nil
}

// NewGlueClient builds a Glue client, pointing it at cfg.AWS.Endpoint when set.
func NewGlueClient(awsCfg aws.Config, cfg *config.Config) *glue.Client {
	return glue.NewFromConfig(awsCfg, func(o *glue.Options) {
		if cfg.AWS.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWS.Endpoint)
		}
	})
}

// NewFromConfig builds a Catalog backed by a real Glue client. When
// cfg.Catalog.HealthCheck is set it probes Glue once and fails if the
// catalog cannot be reached, so the server never starts half working.
func NewFromConfig(ctx context.Context, cfg *config.Config) (*Catalog, error) {
	awsCfg, err := LoadAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	c := New(
		NewGlueClient(awsCfg, cfg),
		WithRegion(awsCfg.Region),
		WithCatalogID(cfg.Catalog.CatalogID),
	)

	if !cfg.Catalog.HealthCheck {
		log.Warn("Skipping catalog health check")
		return c, nil
	}

	checkCtx, cancel := context.WithTimeout(ctx, cfg.Catalog.HealthCheckTimeout)
	defer cancel()

	if err := c.HealthCheck(checkCtx); err != nil {
		return nil, fmt.Errorf("couldn't connect to AWS Glue in region %q: %w", awsCfg.Region, err)
	}

	log.Info("Connected to AWS Glue", "region", awsCfg.Region)
	return c, nil
}
