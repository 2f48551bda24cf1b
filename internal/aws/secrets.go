package awsclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog/log"
)

// SecretsAPI is the part of the Secrets Manager client used here.
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput,
		optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// APIKeys holds the keys for the government and finance APIs.
type APIKeys struct {
	Congress  string `json:"congress"`
	CivicInfo string `json:"civicInfo"`
	FEC       string `json:"fec"`
}

// LoadAPIKeys reads a JSON secret holding the third-party API keys.
func LoadAPIKeys(ctx context.Context, client SecretsAPI, secretName string) (*APIKeys, error) {
	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretName),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			log.Error().Str("code", apiErr.ErrorCode()).Str("secret", secretName).Msg("secrets manager rejected request")
		}
		return nil, fmt.Errorf("error retrieving secret %s: %w", secretName, err)
	}

	if out.SecretString == nil {
		return nil, fmt.Errorf("secret %s has no string value", secretName)
	}

	var keys APIKeys
	if err := json.Unmarshal([]byte(*out.SecretString), &keys); err != nil {
		return nil, fmt.Errorf("error decoding secret %s: %w", secretName, err)
	}
	return &keys, nil
}
