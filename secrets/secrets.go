package secrets

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// SecretsManagerAPI is the slice of the Secrets Manager client the gateway uses.
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

type Gateway struct {
	client SecretsManagerAPI
}

func NewGateway(client SecretsManagerAPI) *Gateway {
	return &Gateway{client: client}
}

// NewClient builds a Secrets Manager client from the default AWS config chain.
func NewClient(ctx context.Context) (*secretsmanager.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return secretsmanager.NewFromConfig(awsCfg), nil
}

// GetSecretString fetches the named secret's current value. Every call is a
// fresh remote fetch; nothing is cached.
func (g *Gateway) GetSecretString(ctx context.Context, name string) (string, error) {
	out, err := g.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	})
	if err != nil {
		return "", fmt.Errorf("getting secret %s: %w", name, err)
	}
	return aws.ToString(out.SecretString), nil
}
