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

// cmd/operator is the composition root: it wires the Kubernetes Gateway,
// CRD Registrar, Stack Service, and Controller together in dependency
// order and starts the manager's watch loop. Dependency-injection-framework
// wiring from the source (SPEC_FULL.md §9) is replaced with this explicit
// construction.
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
	"github.com/stromee/pulumi-operator/internal/config"
	"github.com/stromee/pulumi-operator/internal/controller"
	"github.com/stromee/pulumi-operator/internal/k8sgateway"
	"github.com/stromee/pulumi-operator/internal/stackservice"
)

func main() {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer zapLogger.Sync() //nolint:errcheck

	logger := zapr.NewLogger(zapLogger)
	log.SetLogger(logger)
	setupLog := logger.WithName("setup")

	cfg, err := config.Load()
	if err != nil {
		setupLog.Error(err, "invalid operator configuration")
		os.Exit(1)
	}

	scheme := newScheme()
	restCfg := ctrl.GetConfigOrDie()

	ctx := ctrl.SetupSignalHandler()

	// A direct (uncached) client installs CRDs before the manager's cache
	// starts informers against them — the manager's own client can't be
	// used yet at this point in startup.
	bootstrapClient, err := client.New(restCfg, client.Options{Scheme: scheme})
	if err != nil {
		setupLog.Error(err, "failed to build bootstrap client")
		os.Exit(1)
	}
	if err := k8sgateway.InstallCRDs(ctx, bootstrapClient, k8sgateway.AllCRDs()...); err != nil {
		setupLog.Error(err, "failed to install CRDs")
		os.Exit(1)
	}

	mgr, err := ctrl.NewManager(restCfg, ctrl.Options{Scheme: scheme})
	if err != nil {
		setupLog.Error(err, "failed to start manager")
		os.Exit(1)
	}

	gw := k8sgateway.New(mgr.GetClient())
	service := stackservice.New(gw, cfg.OperatorNamespace, cfg.WorkerImage)

	reconciler := &controller.PulumiStackReconciler{
		Client:  mgr.GetClient(),
		Scheme:  mgr.GetScheme(),
		Gateway: gw,
		Service: service,
	}
	if err := reconciler.SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "failed to set up PulumiStack controller")
		os.Exit(1)
	}

	setupLog.Info("starting manager", "operatorNamespace", cfg.OperatorNamespace)
	if err := mgr.Start(ctx); err != nil {
		setupLog.Error(err, "manager exited with error")
		os.Exit(1)
	}
}

func newScheme() *runtime.Scheme {
	scheme := clientgoscheme.Scheme
	_ = pulumiv1.AddToScheme(scheme)
	_ = apiextensionsv1.AddToScheme(scheme)
	return scheme
}
