package mainconfig

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	appconfig "github.com/lemerle/medassist/internal/config"
)

// LoadAWSConfig builds the SDK config shared by the Bedrock chat client and
// the SES sender. AWS_ENDPOINT_OVERRIDE only applies to those of the two the
// configuration enables.
func LoadAWSConfig(ctx context.Context, cfg *appconfig.Config) (aws.Config, error) {
	loaders := []func(*config.LoadOptions) error{config.WithRegion(cfg.AWSRegion)}
	if strings.TrimSpace(cfg.AWSAccessKeyID) != "" && strings.TrimSpace(cfg.AWSSecretAccessKey) != "" {
		loaders = append(loaders, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return aws.Config{}, err
	}

	endpoint := strings.TrimSpace(cfg.AWSEndpointOverride)
	services := enabledServices(cfg)
	if endpoint == "" || len(services) == 0 {
		return awsCfg, nil
	}

	awsCfg.EndpointResolverWithOptions = aws.EndpointResolverWithOptionsFunc(
		func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if !services[service] {
				return aws.Endpoint{}, &aws.EndpointNotFoundError{}
			}
			if region == "" {
				region = cfg.AWSRegion
			}
			return aws.Endpoint{
				URL:               endpoint,
				PartitionID:       "aws",
				SigningRegion:     region,
				HostnameImmutable: true,
			}, nil
		},
	)
	return awsCfg, nil
}

// enabledServices mirrors the provider selection in bootstrap: Bedrock when a
// model id is set and chat is not switched off, SES when it is the email
// provider and has a sender address.
func enabledServices(cfg *appconfig.Config) map[string]bool {
	services := make(map[string]bool, 2)
	switch cfg.LLMProvider {
	case "none", "off":
	default:
		if strings.TrimSpace(cfg.BedrockModelID) != "" {
			services[bedrockruntime.ServiceID] = true
		}
	}
	if cfg.EmailProvider == "ses" && cfg.EmailFrom != "" {
		services[sesv2.ServiceID] = true
	}
	return services
}
