package secrets

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSecretsManager struct {
	input  *secretsmanager.GetSecretValueInput
	output *secretsmanager.GetSecretValueOutput
	err    error
}

func (s *stubSecretsManager) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	s.input = params
	return s.output, s.err
}

func TestGetSecretString(t *testing.T) {
	stub := &stubSecretsManager{output: &secretsmanager.GetSecretValueOutput{
		SecretString: aws.String(`{"notion_secret":"secret-token"}`),
	}}
	gateway := NewGateway(stub)

	value, err := gateway.GetSecretString(context.Background(), "prod/AndyBlog/Notion")
	require.NoError(t, err)

	assert.Equal(t, `{"notion_secret":"secret-token"}`, value)
	assert.Equal(t, "prod/AndyBlog/Notion", aws.ToString(stub.input.SecretId))
}

func TestGetSecretStringPropagatesFailure(t *testing.T) {
	stub := &stubSecretsManager{err: errors.New("secret does not exist")}
	gateway := NewGateway(stub)

	_, err := gateway.GetSecretString(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}
