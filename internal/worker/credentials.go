/*
Copyright 2026.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package worker

import (
	"context"
	"os"

	corev1 "k8s.io/api/core/v1"

	"github.com/stromee/pulumi-operator/internal/apperrors"
	"github.com/stromee/pulumi-operator/internal/k8sgateway"
	"github.com/stromee/pulumi-operator/internal/repository"
)

// awsBackendKeys are the Secret keys hydrateBackendAuth exports verbatim
// into the process environment for Pulumi's S3-compatible backend driver.
var awsBackendKeys = []string{"AWS_ACCESS_KEY_ID", "AWS_DEFAULT_REGION", "AWS_SECRET_ACCESS_KEY"}

// hydrateCredentials exports auth's referenced Secrets into the worker
// process's own environment. This is safe only because each worker runs
// alone in its own pod for a single stack (see SPEC_FULL.md §5); the
// operator process must never call this.
func hydrateCredentials(ctx context.Context, gw *k8sgateway.Gateway, namespace string, auth *repository.ResolvedAuth) error {
	if auth.AccessTokenSecret != nil {
		if err := hydrateAccessToken(ctx, gw, namespace, *auth.AccessTokenSecret); err != nil {
			return err
		}
	}
	if auth.BackendAuthSecret != nil {
		if err := hydrateBackendAuth(ctx, gw, namespace, *auth.BackendAuthSecret); err != nil {
			return err
		}
	}
	return nil
}

func hydrateAccessToken(ctx context.Context, gw *k8sgateway.Gateway, namespace, secretName string) error {
	secret := &corev1.Secret{}
	if err := gw.GetInNamespace(ctx, namespace, secretName, secret); err != nil {
		return err
	}
	token, ok := secret.Data["token"]
	if !ok || len(token) == 0 {
		return apperrors.Newf(apperrors.SecretShapeInvalid, "secret %q missing \"token\" key", secretName)
	}
	return os.Setenv("PULUMI_CONFIG_PASSPHRASE", string(token))
}

func hydrateBackendAuth(ctx context.Context, gw *k8sgateway.Gateway, namespace, secretName string) error {
	secret := &corev1.Secret{}
	if err := gw.GetInNamespace(ctx, namespace, secretName, secret); err != nil {
		return err
	}

	found := 0
	for _, key := range awsBackendKeys {
		val, ok := secret.Data[key]
		if !ok {
			continue
		}
		found++
		if err := os.Setenv(key, string(val)); err != nil {
			return apperrors.Wrapf(err, apperrors.SecretShapeInvalid, "set env %s", key)
		}
	}
	if found == 0 {
		return apperrors.Newf(apperrors.SecretShapeInvalid, "secret %q has none of %v", secretName, awsBackendKeys)
	}
	return nil
}
