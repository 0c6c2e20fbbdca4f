// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/neosolar/genbundler/pkg/defaults"
)

// S3URIScheme is the URI scheme for S3 object sources (s3://bucket/key).
const S3URIScheme = "s3://"

// s3Getter is the subset of the S3 client used to fetch objects.
type s3Getter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// newS3Client is swapped in tests.
var newS3Client = func(ctx context.Context, opts SourceOptions) (s3Getter, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if opts.S3Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.S3Region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.S3Endpoint != "" {
			// Path-style addressing for MinIO and other S3-compatible stores.
			o.BaseEndpoint = aws.String(opts.S3Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func readS3Object(ctx context.Context, bucket, key string, opts SourceOptions) ([]byte, error) {
	readCtx, cancel := context.WithTimeout(ctx, defaults.S3ReadTimeout)
	defer cancel()

	c, err := newS3Client(readCtx, opts)
	if err != nil {
		return nil, err
	}

	out, err := c.GetObject(readCtx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, maxHTTPBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read s3://%s/%s: %w", bucket, key, err)
	}
	return data, nil
}

// parseS3URI splits s3://bucket/path/to/key into bucket and key.
func parseS3URI(uri string) (bucket, key string, err error) {
	if !strings.HasPrefix(uri, S3URIScheme) {
		return "", "", fmt.Errorf("invalid S3 URI: must start with %s", S3URIScheme)
	}

	parts := strings.SplitN(strings.TrimPrefix(uri, S3URIScheme), "/", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid S3 URI format: expected %sbucket/key, got %s", S3URIScheme, uri)
	}

	bucket = strings.TrimSpace(parts[0])
	key = strings.TrimSpace(parts[1])
	if bucket == "" {
		return "", "", fmt.Errorf("invalid S3 URI: bucket cannot be empty")
	}
	if key == "" {
		return "", "", fmt.Errorf("invalid S3 URI: key cannot be empty")
	}
	return bucket, key, nil
}
