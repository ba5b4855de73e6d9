package internal

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

func loadBaseConfig(ctx context.Context, profile, region string) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	return config.LoadDefaultConfig(ctx, opts...)
}

// AmbientCredentials resolves credentials from the default chain (env vars,
// shared config, instance role) without any MFA exchange.
func AmbientCredentials(ctx context.Context, profile, region string) (Credentials, error) {
	cfg, err := loadBaseConfig(ctx, profile, region)
	if err != nil {
		return Credentials{}, fmt.Errorf("%w: %v", ErrAuth, err)
	}

	creds, err := cfg.Credentials.Retrieve(ctx)
	if err != nil {
		return Credentials{}, fmt.Errorf("%w: %v", ErrAuth, err)
	}

	return Credentials{
		AccessKey:    creds.AccessKeyID,
		SecretKey:    creds.SecretAccessKey,
		SessionToken: creds.SessionToken,
		Expiration:   creds.Expires,
	}, nil
}

// RefreshWithMFA exchanges an MFA code for temporary session credentials.
// The MFA device serial is looked up from the caller's IAM user; the first
// registered device is used. The returned set replaces whatever credentials
// were active before.
func RefreshWithMFA(ctx context.Context, profile, region, code string) (Credentials, error) {
	cfg, err := loadBaseConfig(ctx, profile, region)
	if err != nil {
		return Credentials{}, fmt.Errorf("%w: %v", ErrAuth, err)
	}

	iamClient := iam.NewFromConfig(cfg)
	devices, err := iamClient.ListMFADevices(ctx, &iam.ListMFADevicesInput{})
	if err != nil {
		return Credentials{}, fmt.Errorf("%w: listing MFA devices: %v", ErrAuth, err)
	}
	if len(devices.MFADevices) == 0 {
		return Credentials{}, fmt.Errorf("%w: no MFA device registered for this user", ErrAuth)
	}
	serial := devices.MFADevices[0].SerialNumber

	stsClient := sts.NewFromConfig(cfg)
	out, err := stsClient.GetSessionToken(ctx, &sts.GetSessionTokenInput{
		SerialNumber: serial,
		TokenCode:    &code,
	})
	if err != nil {
		return Credentials{}, fmt.Errorf("%w: %v", ErrAuth, err)
	}
	if out.Credentials == nil {
		return Credentials{}, fmt.Errorf("%w: STS returned no credentials", ErrAuth)
	}

	return Credentials{
		AccessKey:    *out.Credentials.AccessKeyId,
		SecretKey:    *out.Credentials.SecretAccessKey,
		SessionToken: *out.Credentials.SessionToken,
		Expiration:   *out.Credentials.Expiration,
	}, nil
}

// AwsConfig builds an aws.Config pinned to the given credential set, so every
// call after an MFA refresh uses the refreshed session.
func AwsConfig(ctx context.Context, creds Credentials, region string) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			creds.AccessKey,
			creds.SecretKey,
			creds.SessionToken,
		)),
	}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	return config.LoadDefaultConfig(ctx, opts...)
}
