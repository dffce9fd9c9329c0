package secrets

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// ParameterGetter is the part of the SSM client used to read parameters.
type ParameterGetter interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// Resolve returns value when it is set. Otherwise it reads paramName from
// Parameter Store with decryption. Both empty resolves to "".
func Resolve(ctx context.Context, getter ParameterGetter, value, paramName string) (string, error) {
	if value != "" || paramName == "" {
		return value, nil
	}
	if getter == nil {
		return "", errors.New("no parameter store client configured")
	}

	out, err := getter.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(paramName),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to read parameter %s: %w", paramName, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("parameter %s has no value", paramName)
	}
	return *out.Parameter.Value, nil
}
