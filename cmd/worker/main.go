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

// cmd/worker is the entry point baked into the image every stack's CronJob
// runs. It resolves its PulumiStack from the environment and drives the
// pulumi CLI against it; see internal/worker for the pipeline itself.
package main

import (
	"os"

	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	"k8s.io/apimachinery/pkg/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	pulumiv1 "github.com/stromee/pulumi-operator/api/v1"
	"github.com/stromee/pulumi-operator/internal/apperrors"
	"github.com/stromee/pulumi-operator/internal/config"
	"github.com/stromee/pulumi-operator/internal/k8sgateway"
	"github.com/stromee/pulumi-operator/internal/pulumicli"
	"github.com/stromee/pulumi-operator/internal/worker"
)

func main() {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer zapLogger.Sync() //nolint:errcheck

	logger := zapr.NewLogger(zapLogger)
	log.SetLogger(logger)

	cfg, err := config.LoadWorker()
	if err != nil {
		logger.Error(err, "worker configuration invalid")
		os.Exit(exitCodeFor(err))
	}

	scheme := runtimeScheme()

	restCfg := ctrl.GetConfigOrDie()
	c, err := client.New(restCfg, client.Options{Scheme: scheme})
	if err != nil {
		logger.Error(err, "failed to build Kubernetes client")
		os.Exit(1)
	}

	gw := k8sgateway.New(c)
	driver := pulumicli.NewDriver(logger)

	ctx := ctrl.SetupSignalHandler()

	code, err := worker.Run(ctx, gw, cfg, driver, logger)
	if err != nil {
		logger.Error(err, "worker pipeline failed")
	}
	os.Exit(code)
}

func runtimeScheme() *runtime.Scheme {
	scheme := clientgoscheme.Scheme
	_ = pulumiv1.AddToScheme(scheme)
	_ = apiextensionsv1.AddToScheme(scheme)
	return scheme
}

// exitCodeFor maps a ConfigMissing failure (the only kind that can occur
// before config.LoadWorker returns) to a stable, non-zero exit status.
func exitCodeFor(err error) int {
	if apperrors.Is(err, apperrors.ConfigMissing) {
		return 78 // sysexits.h EX_CONFIG
	}
	return 1
}
